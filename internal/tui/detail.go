package tui

import (
	"fmt"
	"strings"

	"github.com/logmind/moodlog/models"
)

type detailModel struct {
	journal models.Journal
	status  string
}

func moodName(m models.MoodType) string {
	switch m {
	case models.MoodVerySad:
		return "Very sad"
	case models.MoodSad:
		return "Sad"
	case models.MoodNeutral:
		return "Neutral"
	case models.MoodHappy:
		return "Happy"
	case models.MoodVeryHappy:
		return "Very happy"
	default:
		return "Unknown"
	}
}

func (m detailModel) View() string {
	journal := m.journal

	out := fmt.Sprintf("%s  %s  %s\n\n",
		journal.Mood.Emoji(), moodName(journal.Mood), journal.CreatedAt.Format("Mon, 2 Jan 2006 15:04"))

	if journal.Content != nil && *journal.Content != "" {
		out += *journal.Content + "\n\n"
	}

	if len(journal.ImageURIs) > 0 {
		out += "Photos:\n"
		for _, uri := range journal.ImageURIs {
			out += "  " + uri + "\n"
		}
		out += "\n"
	}

	if len(journal.Tags) > 0 {
		names := make([]string, 0, len(journal.Tags))
		for _, tag := range journal.Tags {
			names = append(names, "#"+tag.Name)
		}
		out += strings.Join(names, "  ") + "\n\n"
	}

	if journal.Address != nil && *journal.Address != "" {
		out += "Location: " + *journal.Address + "\n"
	} else if journal.Latitude != nil && journal.Longitude != nil {
		out += fmt.Sprintf("Location: %.5f, %.5f\n", *journal.Latitude, *journal.Longitude)
	}

	if journal.Temperature != nil {
		weather := fmt.Sprintf("Weather:  %.1f°C", *journal.Temperature)
		if journal.WeatherDescription != nil && *journal.WeatherDescription != "" {
			weather += ", " + *journal.WeatherDescription
		}
		out += weather + "\n"
	}

	if journal.AIResponse != nil && *journal.AIResponse != "" {
		out += "\nCompanion: " + *journal.AIResponse + "\n"
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("e edit  d delete  c copy text  esc back")
	return out
}
