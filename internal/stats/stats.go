// Package stats computes aggregate mood statistics over a window of
// journal entries. Every function is pure: given the same entry list and
// the same "now", the result is identical, with no hidden state.
package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/logmind/moodlog/models"
)

// Period is the statistics lookback window.
type Period int

const (
	PeriodWeek Period = iota
	PeriodMonth
	PeriodThreeMonths
	PeriodYear
)

// Days returns the lookback length of the period.
func (p Period) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	case PeriodThreeMonths:
		return 90
	case PeriodYear:
		return 365
	}
	return 30
}

// Window returns the inclusive [start, end] range the period covers,
// ending at now.
func (p Period) Window(now time.Time) (time.Time, time.Time) {
	return now.AddDate(0, 0, -p.Days()), now
}

// String returns a short label for the period.
func (p Period) String() string {
	switch p {
	case PeriodWeek:
		return "7d"
	case PeriodMonth:
		return "30d"
	case PeriodThreeMonths:
		return "90d"
	case PeriodYear:
		return "1y"
	}
	return "30d"
}

// dateOf truncates a timestamp to its calendar day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// bucketKey maps an entry timestamp to its trend bucket anchor: the day
// itself for 7- and 30-day windows, the Monday of its week for 90 days,
// the first of its month for 365 days.
func bucketKey(t time.Time, period Period) time.Time {
	switch period {
	case PeriodThreeMonths:
		day := dateOf(t)
		offset := (int(day.Weekday()) + 6) % 7 // Monday-anchored
		return day.AddDate(0, 0, -offset)
	case PeriodYear:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	default:
		return dateOf(t)
	}
}

// Trends groups the entries into period-dependent buckets and returns the
// per-bucket mean slider value, sorted by bucket date ascending. The
// result is sparse: buckets with no entries are omitted.
func Trends(journals []models.Journal, period Period) []models.TrendPoint {
	if len(journals) == 0 {
		return nil
	}

	buckets := make(map[time.Time][]models.Journal)
	for _, journal := range journals {
		key := bucketKey(journal.CreatedAt, period)
		buckets[key] = append(buckets[key], journal)
	}

	points := make([]models.TrendPoint, 0, len(buckets))
	for date, entries := range buckets {
		var sum float64
		for _, journal := range entries {
			sum += journal.Mood.SliderValue()
		}
		points = append(points, models.TrendPoint{
			Date:        date,
			AverageMood: sum / float64(len(entries)),
			EntryCount:  len(entries),
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points
}

// Distribution counts entries per mood level and derives each level's
// percentage share, sorted by count descending. An empty input yields an
// empty result, not a zero-filled one.
func Distribution(journals []models.Journal) []models.MoodDistribution {
	total := len(journals)
	if total == 0 {
		return nil
	}

	counts := make(map[models.MoodType]int)
	for _, journal := range journals {
		counts[journal.Mood]++
	}

	distribution := make([]models.MoodDistribution, 0, len(counts))
	for _, mood := range models.AllMoods() {
		count, ok := counts[mood]
		if !ok {
			continue
		}
		distribution = append(distribution, models.MoodDistribution{
			Mood:       mood,
			Count:      count,
			Percentage: float64(count) / float64(total) * 100,
		})
	}

	sort.SliceStable(distribution, func(i, j int) bool {
		return distribution[i].Count > distribution[j].Count
	})

	return distribution
}

// AverageMood returns the mean slider value over the window, or the
// neutral value for an empty window so callers never see NaN.
func AverageMood(journals []models.Journal) float64 {
	if len(journals) == 0 {
		return models.NeutralSliderValue
	}

	var sum float64
	for _, journal := range journals {
		sum += journal.Mood.SliderValue()
	}
	return sum / float64(len(journals))
}

// Streak counts consecutive calendar days with at least one entry, ending
// today. The walk starts at today but tolerates the first entry being on
// yesterday, so an unwritten "today" does not zero an ongoing streak. Any
// older gap breaks the count.
func Streak(journals []models.Journal, now time.Time) int {
	if len(journals) == 0 {
		return 0
	}

	seen := make(map[time.Time]struct{})
	dates := make([]time.Time, 0, len(journals))
	for _, journal := range journals {
		date := dateOf(journal.CreatedAt)
		if _, ok := seen[date]; ok {
			continue
		}
		seen[date] = struct{}{}
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	streak := 0
	current := dateOf(now)

	for _, date := range dates {
		if date.Equal(current) || date.Equal(current.AddDate(0, 0, -1)) {
			streak++
			current = date.AddDate(0, 0, -1)
		} else {
			break
		}
	}

	return streak
}

// BestMoodDay returns the day of the entry with the highest slider value
// in the window, formatted "<month> <day>", or nil for an empty window.
// Ties resolve to the first such entry in input order.
func BestMoodDay(journals []models.Journal) *string {
	if len(journals) == 0 {
		return nil
	}

	best := journals[0]
	for _, journal := range journals[1:] {
		if journal.Mood.SliderValue() > best.Mood.SliderValue() {
			best = journal
		}
	}

	formatted := fmt.Sprintf("%s %d", best.CreatedAt.Month(), best.CreatedAt.Day())
	return &formatted
}
