package tui

import (
	"fmt"
	"strings"

	"github.com/logmind/moodlog/internal/stats"
	"github.com/logmind/moodlog/internal/viewstate"
	"github.com/logmind/moodlog/models"
)

type statsModel struct {
	state   viewstate.StatisticsState
	loading bool
}

func periodName(p stats.Period) string {
	switch p {
	case stats.PeriodWeek:
		return "Week"
	case stats.PeriodMonth:
		return "Month"
	case stats.PeriodThreeMonths:
		return "3 months"
	case stats.PeriodYear:
		return "Year"
	default:
		return "Week"
	}
}

func (m statsModel) View() string {
	out := viewTitle("Statistics") + "\n"

	out += m.viewPeriodTabs() + "\n\n"

	if m.loading {
		out += "Computing...\n"
		return out + "\n" + helpStyle.Render("esc back")
	}
	if m.state.Err != nil {
		out += errorStyle.Render("Load failed: "+m.state.Err.Error()) + "\n"
		out += helpStyle.Render("r retry") + "\n"
		return out + "\n" + helpStyle.Render("1-4 period  esc back")
	}

	s := m.state.Statistics
	average := models.MoodFromSlider(s.AverageMood)

	out += fmt.Sprintf("Entries:  %d\n", s.EntryCount)
	out += fmt.Sprintf("Average:  %s %.1f\n", average.Emoji(), s.AverageMood)
	out += fmt.Sprintf("Streak:   %d days\n", s.StreakDays)
	if s.BestMoodDay != nil {
		out += "Best day: " + *s.BestMoodDay + "\n"
	}
	out += "\n"

	out += m.viewDistribution(s.Distribution)
	out += m.viewTrends(s.Trends)

	out += "\n" + helpStyle.Render("1-4 period  r reload  esc back")
	return out
}

func (m statsModel) viewPeriodTabs() string {
	parts := make([]string, 0, 4)
	for i, p := range []stats.Period{stats.PeriodWeek, stats.PeriodMonth, stats.PeriodThreeMonths, stats.PeriodYear} {
		name := fmt.Sprintf("%d %s", i+1, periodName(p))
		if p == m.state.Period {
			name = titleStyle.Render("[" + name + "]")
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, "   ")
}

func (m statsModel) viewDistribution(distribution []models.MoodDistribution) string {
	if len(distribution) == 0 {
		return ""
	}
	out := "Moods:\n"
	for _, slice := range distribution {
		bar := strings.Repeat("█", barWidth(slice.Percentage))
		out += fmt.Sprintf("  %s %-3d %s %.0f%%\n", slice.Mood.Emoji(), slice.Count, bar, slice.Percentage)
	}
	return out + "\n"
}

func (m statsModel) viewTrends(trends []models.TrendPoint) string {
	if len(trends) == 0 {
		return ""
	}
	out := "Trend:\n"
	for _, point := range trends {
		mood := models.MoodFromSlider(point.AverageMood)
		out += fmt.Sprintf("  %s  %s %.1f (%d)\n", point.Date.Format("Jan 02"), mood.Emoji(), point.AverageMood, point.EntryCount)
	}
	return out
}

func barWidth(percentage float64) int {
	width := int(percentage / 5)
	if width < 1 {
		width = 1
	}
	if width > 20 {
		width = 20
	}
	return width
}
