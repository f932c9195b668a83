package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logmind/moodlog/models"
)

func entryAt(t time.Time, mood models.MoodType) models.Journal {
	return models.Journal{Mood: mood, CreatedAt: t}
}

func TestEmptyWindow(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)

	assert.Equal(t, models.NeutralSliderValue, AverageMood(nil))
	assert.Equal(t, 0, Streak(nil, now))
	assert.Nil(t, BestMoodDay(nil))
	assert.Empty(t, Distribution(nil))
	assert.Empty(t, Trends(nil, PeriodMonth))
}

func TestDistribution_CountsAndPercentages(t *testing.T) {
	day := time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local)
	journals := []models.Journal{
		entryAt(day, models.MoodVeryHappy),
		entryAt(day, models.MoodVeryHappy),
		entryAt(day, models.MoodVerySad),
		entryAt(day, models.MoodVerySad),
		entryAt(day, models.MoodVerySad),
	}

	distribution := Distribution(journals)
	require.Len(t, distribution, 2)

	// Ordered by count descending: three very-sad before two very-happy.
	assert.Equal(t, models.MoodVerySad, distribution[0].Mood)
	assert.Equal(t, 3, distribution[0].Count)
	assert.InDelta(t, 60.0, distribution[0].Percentage, 1e-9)

	assert.Equal(t, models.MoodVeryHappy, distribution[1].Mood)
	assert.Equal(t, 2, distribution[1].Count)
	assert.InDelta(t, 40.0, distribution[1].Percentage, 1e-9)
}

func TestAverageMood(t *testing.T) {
	day := time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local)
	journals := []models.Journal{
		entryAt(day, models.MoodVeryHappy), // 4
		entryAt(day, models.MoodVerySad),   // 0
	}

	assert.InDelta(t, 2.0, AverageMood(journals), 1e-9)
}

func TestStreak_TodayAndYesterday(t *testing.T) {
	now := time.Date(2026, 8, 29, 22, 0, 0, 0, time.Local)
	journals := []models.Journal{
		entryAt(now.Add(-2*time.Hour), models.MoodHappy),
		entryAt(now.AddDate(0, 0, -1), models.MoodNeutral),
	}

	assert.Equal(t, 2, Streak(journals, now))
}

func TestStreak_GapBreaks(t *testing.T) {
	now := time.Date(2026, 8, 29, 22, 0, 0, 0, time.Local)
	journals := []models.Journal{
		entryAt(now, models.MoodHappy),
		entryAt(now.AddDate(0, 0, -3), models.MoodNeutral),
	}

	assert.Equal(t, 1, Streak(journals, now))
}

func TestStreak_StartsYesterdayWhenTodayUnwritten(t *testing.T) {
	now := time.Date(2026, 8, 29, 8, 0, 0, 0, time.Local)
	journals := []models.Journal{
		entryAt(now.AddDate(0, 0, -1), models.MoodHappy),
		entryAt(now.AddDate(0, 0, -2), models.MoodNeutral),
	}

	assert.Equal(t, 2, Streak(journals, now))
}

func TestStreak_MultipleEntriesSameDayCountOnce(t *testing.T) {
	now := time.Date(2026, 8, 29, 22, 0, 0, 0, time.Local)
	journals := []models.Journal{
		entryAt(now, models.MoodHappy),
		entryAt(now.Add(-4*time.Hour), models.MoodSad),
		entryAt(now.AddDate(0, 0, -1), models.MoodNeutral),
	}

	assert.Equal(t, 2, Streak(journals, now))
}

func TestTrends_MonthWindowBucketsByDay(t *testing.T) {
	base := time.Date(2026, 8, 10, 9, 0, 0, 0, time.Local)
	journals := []models.Journal{
		entryAt(base, models.MoodVeryHappy),                    // 4
		entryAt(base.Add(6*time.Hour), models.MoodNeutral),     // 2, same day
		entryAt(base.AddDate(0, 0, 5), models.MoodSad),         // different day
		entryAt(base.AddDate(0, 0, 5).Add(time.Hour), models.MoodSad),
	}

	points := Trends(journals, PeriodMonth)
	require.Len(t, points, 2)

	// Ascending by bucket date.
	assert.Equal(t, time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local), points[0].Date)
	assert.InDelta(t, 3.0, points[0].AverageMood, 1e-9)
	assert.Equal(t, 2, points[0].EntryCount)

	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local), points[1].Date)
	assert.InDelta(t, 1.0, points[1].AverageMood, 1e-9)
}

func TestTrends_ThreeMonthWindowBucketsByMondayWeek(t *testing.T) {
	// 2026-08-26 is a Wednesday; its Monday is 2026-08-24.
	wednesday := time.Date(2026, 8, 26, 10, 0, 0, 0, time.Local)
	sunday := time.Date(2026, 8, 30, 10, 0, 0, 0, time.Local)
	nextMonday := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)

	journals := []models.Journal{
		entryAt(wednesday, models.MoodHappy),
		entryAt(sunday, models.MoodHappy),
		entryAt(nextMonday, models.MoodSad),
	}

	points := Trends(journals, PeriodThreeMonths)
	require.Len(t, points, 2)

	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local), points[0].Date)
	assert.Equal(t, 2, points[0].EntryCount)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local), points[1].Date)
}

func TestTrends_YearWindowBucketsByMonth(t *testing.T) {
	journals := []models.Journal{
		entryAt(time.Date(2026, 3, 5, 10, 0, 0, 0, time.Local), models.MoodHappy),
		entryAt(time.Date(2026, 3, 28, 10, 0, 0, 0, time.Local), models.MoodVeryHappy),
		entryAt(time.Date(2026, 7, 1, 10, 0, 0, 0, time.Local), models.MoodSad),
	}

	points := Trends(journals, PeriodYear)
	require.Len(t, points, 2)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local), points[0].Date)
	assert.InDelta(t, 3.5, points[0].AverageMood, 1e-9)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.Local), points[1].Date)
}

func TestBestMoodDay_FirstMaxWins(t *testing.T) {
	journals := []models.Journal{
		entryAt(time.Date(2026, 8, 12, 10, 0, 0, 0, time.Local), models.MoodVeryHappy),
		entryAt(time.Date(2026, 8, 20, 10, 0, 0, 0, time.Local), models.MoodVeryHappy),
		entryAt(time.Date(2026, 8, 25, 10, 0, 0, 0, time.Local), models.MoodSad),
	}

	best := BestMoodDay(journals)
	require.NotNil(t, best)
	assert.Equal(t, "August 12", *best)
}

func TestPeriodWindow(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)

	start, end := PeriodWeek.Window(now)
	assert.Equal(t, now, end)
	assert.Equal(t, now.AddDate(0, 0, -7), start)

	start, _ = PeriodYear.Window(now)
	assert.Equal(t, now.AddDate(0, 0, -365), start)
}
