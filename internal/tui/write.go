package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/logmind/moodlog/models"
)

type writeZone int

const (
	zoneMood writeZone = iota
	zoneContent
	zoneTags
)

type writeModel struct {
	editing   bool
	journalID int64

	moodIdx int
	content textarea.Model

	tags     []models.Tag
	selected map[int64]bool
	tagIdx   int

	addingTag bool
	tagInput  textinput.Model

	zone        writeZone
	saving      bool
	loadingTags bool
	formErr     string
}

func newWriteModel() writeModel {
	content := textarea.New()
	content.Placeholder = "How was your day?"
	content.SetWidth(56)
	content.SetHeight(6)

	tagInput := textinput.New()
	tagInput.Placeholder = "Tag name"
	tagInput.Width = 30

	return writeModel{
		moodIdx:  int(models.NeutralSliderValue),
		content:  content,
		selected: make(map[int64]bool),
		tagInput: tagInput,
		zone:     zoneMood,
	}
}

// startCreate resets the form for a fresh entry.
func (m writeModel) startCreate() writeModel {
	next := newWriteModel()
	next.loadingTags = true
	return next
}

// startEdit preloads the form from an existing entry. The mood is shown
// but locked; it never changes after creation.
func (m writeModel) startEdit(journal models.Journal) writeModel {
	next := newWriteModel()
	next.editing = true
	next.journalID = journal.ID
	next.moodIdx = int(journal.Mood.SliderValue())
	if journal.Content != nil {
		next.content.SetValue(*journal.Content)
	}
	for _, tag := range journal.Tags {
		next.selected[tag.ID] = true
	}
	next.loadingTags = true
	next.zone = zoneContent
	next.content.Focus()
	return next
}

func (m writeModel) mood() models.MoodType {
	return models.MoodFromSlider(float64(m.moodIdx))
}

func (m writeModel) selectedTagIDs() []int64 {
	ids := make([]int64, 0, len(m.selected))
	for _, tag := range m.tags {
		if m.selected[tag.ID] {
			ids = append(ids, tag.ID)
		}
	}
	return ids
}

func (m writeModel) View() string {
	title := "New entry"
	if m.editing {
		title = "Edit entry"
	}
	out := viewTitle(title) + "\n"

	out += m.viewMoodRow() + "\n\n"
	out += m.viewContent() + "\n\n"
	out += m.viewTags() + "\n"

	if m.formErr != "" {
		out += "\n" + errorStyle.Render(m.formErr) + "\n"
	}
	if m.saving {
		out += "\nSaving...\n"
	}

	out += "\n" + helpStyle.Render("tab next section  ctrl+s save  esc cancel")
	return out
}

func (m writeModel) viewMoodRow() string {
	label := "Mood:    "
	if m.editing {
		label = "Mood:    " + m.mood().Emoji() + " " + moodName(m.mood()) + "  (fixed)"
		return label
	}

	var b strings.Builder
	b.WriteString(label)
	for i, mood := range models.AllMoods() {
		cell := mood.Emoji()
		if i == m.moodIdx {
			cell = "[" + cell + "]"
		} else {
			cell = " " + cell + " "
		}
		b.WriteString(cell)
	}
	if m.zone == zoneMood {
		b.WriteString("  " + helpStyle.Render("←/→"))
	}
	return b.String()
}

func (m writeModel) viewContent() string {
	return "Text:\n" + m.content.View()
}

func (m writeModel) viewTags() string {
	if m.addingTag {
		return "New tag: " + m.tagInput.View() + "\n" + helpStyle.Render("enter create  esc cancel")
	}

	out := "Tags:"
	if m.loadingTags {
		return out + "  loading..."
	}
	if len(m.tags) == 0 {
		out += "  none yet"
	}
	out += "\n"

	for i, tag := range m.tags {
		cursor := "  "
		if m.zone == zoneTags && i == m.tagIdx {
			cursor = "> "
		}
		mark := "[ ]"
		if m.selected[tag.ID] {
			mark = "[x]"
		}
		out += cursor + mark + " " + tag.Name + "\n"
	}
	if m.zone == zoneTags {
		out += helpStyle.Render("space toggle  a add tag")
	}
	return out
}
