package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/logmind/moodlog/internal/viewstate"
	"github.com/logmind/moodlog/models"
)

type homeModel struct {
	state   viewstate.HomeState
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newHomeModel() homeModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return homeModel{spinner: s, loading: true}
}

func (m homeModel) current() (models.Journal, bool) {
	if len(m.state.DayJournals) == 0 || m.idx < 0 || m.idx >= len(m.state.DayJournals) {
		return models.Journal{}, false
	}
	return m.state.DayJournals[m.idx], true
}

func (m homeModel) View() string {
	header := "MoodLog"
	if m.loading {
		header += "  " + m.spinner.View()
	}
	out := viewTitle(header) + "\n"

	out += renderCalendar(m.state.SelectedDate, m.state.MonthJournals)
	out += "\n"

	out += m.state.SelectedDate.Format("Monday, January 2") + "\n\n"

	if m.loading {
		out += "Loading entries...\n"
	} else if len(m.state.DayJournals) == 0 {
		out += "No entries for this day.\n"
	} else {
		for i, journal := range m.state.DayJournals {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += cursor + entryLine(journal) + "\n"
		}
	}

	if m.state.Err != nil {
		out += "\n" + errorStyle.Render("Load failed: "+m.state.Err.Error()) + "\n"
		out += helpStyle.Render("r retry") + "\n"
	}
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("←/→ day  [/] month  ↑/↓ select  enter open  n new  t stats  s settings  p profile  v about  q quit")
	return out
}

func entryLine(journal models.Journal) string {
	line := journal.Mood.Emoji() + " " + journal.CreatedAt.Format("15:04")

	if journal.Content != nil && *journal.Content != "" {
		line += "  " + fitText(firstLine(*journal.Content), 44)
	} else if len(journal.ImageURIs) > 0 {
		line += fmt.Sprintf("  (%d photos)", len(journal.ImageURIs))
	}
	if len(journal.Tags) > 0 {
		line += fmt.Sprintf("  #%d", len(journal.Tags))
	}
	return line
}

// renderCalendar draws the month of the selected day. Days with at least
// one entry are starred; the selected day is bracketed.
func renderCalendar(selected time.Time, monthJournals []models.Journal) string {
	moods := make(map[int]models.MoodType)
	for _, journal := range monthJournals {
		moods[journal.CreatedAt.Day()] = journal.Mood
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(selected.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))
	b.WriteString("\n")

	first := time.Date(selected.Year(), selected.Month(), 1, 0, 0, 0, 0, selected.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	weekday := int(first.Weekday())
	b.WriteString(strings.Repeat("    ", weekday))

	for day := 1; day <= daysInMonth; day++ {
		cell := fmt.Sprintf("%2d", day)
		switch {
		case day == selected.Day():
			b.WriteString("[" + cell + "]")
		case moods[day] != "":
			b.WriteString(" " + cell + "*")
		default:
			b.WriteString(" " + cell + " ")
		}

		weekday = (weekday + 1) % 7
		if weekday == 0 && day != daysInMonth {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	return b.String()
}
