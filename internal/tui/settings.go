package tui

import (
	"fmt"

	"github.com/logmind/moodlog/internal/viewstate"
	"github.com/logmind/moodlog/models"
)

type settingsRow int

const (
	rowNotifications settingsRow = iota
	rowAutoSync
	rowThemeMode
	rowColorTheme
	rowLanguage
	rowPersonality
	rowFont
	rowTextAlign
	settingsRowCount
)

type settingsModel struct {
	state viewstate.SettingsState
	idx   settingsRow
}

func (m settingsModel) View() string {
	out := viewTitle("Settings") + "\n"

	s := m.state.Settings
	rows := []struct {
		name  string
		value string
	}{
		{"Notifications", onOff(s.NotificationEnabled)},
		{"Auto sync", onOff(s.AutoSyncEnabled)},
		{"Theme", string(s.ThemeMode)},
		{"Accent color", string(s.ColorTheme)},
		{"Language", string(s.LanguageCode)},
		{"Companion tone", string(s.AIPersonality)},
		{"Font", string(s.FontFamily)},
		{"Text align", string(s.TextAlign)},
	}

	for i, row := range rows {
		cursor := "  "
		if settingsRow(i) == m.idx {
			cursor = "> "
		}
		out += cursor + fmt.Sprintf("%-16s %s", row.name, row.value) + "\n"
	}

	if m.state.Err != nil {
		out += "\n" + errorStyle.Render("Save failed: "+m.state.Err.Error()) + "\n"
	}

	out += "\n" + helpStyle.Render("↑/↓ select  enter/space change  esc back")
	return out
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

func nextThemeMode(mode models.ThemeMode) models.ThemeMode {
	switch mode {
	case models.ThemeLight:
		return models.ThemeDark
	case models.ThemeDark:
		return models.ThemeSystem
	default:
		return models.ThemeLight
	}
}

func nextColorTheme(theme models.ColorTheme) models.ColorTheme {
	all := models.AllColorThemes()
	for i, c := range all {
		if c == theme {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func nextLanguage(code models.LanguageCode) models.LanguageCode {
	all := models.AllLanguageCodes()
	for i, c := range all {
		if c == code {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func nextPersonality(personality models.AIPersonality) models.AIPersonality {
	switch personality {
	case models.PersonalityRational:
		return models.PersonalityBalanced
	case models.PersonalityBalanced:
		return models.PersonalityCompassionate
	default:
		return models.PersonalityRational
	}
}

func nextFont(font models.FontFamily) models.FontFamily {
	all := models.AllFontFamilies()
	for i, f := range all {
		if f == font {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
