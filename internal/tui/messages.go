package tui

import (
	"github.com/logmind/moodlog/internal/viewstate"
	"github.com/logmind/moodlog/models"
)

type homeUpdatedMsg struct {
	state viewstate.HomeState
}

type profileUpdatedMsg struct {
	state viewstate.ProfileState
}

type saveDoneMsg struct {
	outcome viewstate.SaveOutcome
	err     error
}

type entryDeletedMsg struct {
	err error
}

type tagsLoadedMsg struct {
	tags []models.Tag
	err  error
}

type tagCreatedMsg struct {
	tag models.Tag
	err error
}

type statisticsMsg struct {
	state viewstate.StatisticsState
}

type settingsMsg struct {
	state viewstate.SettingsState
}

type authDoneMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}

type reminderMsg struct {
	text string
}
