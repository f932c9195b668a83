package models

import "time"

// TrendPoint is one bucket of the mood trend chart: the bucket anchor
// date, the mean slider value of its entries, and how many entries it
// holds. Buckets without entries are never emitted.
type TrendPoint struct {
	Date        time.Time
	AverageMood float64
	EntryCount  int
}

// MoodDistribution is one slice of the mood distribution chart.
type MoodDistribution struct {
	Mood       MoodType
	Count      int
	Percentage float64
}

// Statistics is the full statistics snapshot for one period: the trend
// series, the per-mood distribution, the overall average slider value,
// the current writing streak in days, and the best-mood day label
// (nil when the period holds no entries).
type Statistics struct {
	Trends       []TrendPoint
	Distribution []MoodDistribution
	AverageMood  float64
	EntryCount   int
	StreakDays   int
	BestMoodDay  *string
}
