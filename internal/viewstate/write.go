package viewstate

import (
	"context"
	"errors"
	"sync"

	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/internal/service"
	"github.com/logmind/moodlog/models"
)

// SaveOutcome reports what happened to a save attempt. Saved stays true
// when the entry landed but its tags did not; Message then carries the
// user-facing partial-failure note.
type SaveOutcome struct {
	Saved   bool
	Journal models.Journal
	Message string
}

const msgTagsNotAttached = "Entry saved, but tags could not be attached."

// Write drives the entry editor screen for both new entries and edits.
type Write struct {
	journals service.JournalService
	tags     service.TagService
	logger   *logger.Logger

	mu     sync.Mutex
	saving bool
}

func NewWrite(journals service.JournalService, tags service.TagService, log *logger.Logger) *Write {
	return &Write{
		journals: journals,
		tags:     tags,
		logger:   log,
	}
}

// Saving reports whether a save is in flight; the editor blocks a second
// submit while true.
func (w *Write) Saving() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.saving
}

// Save persists a new entry. A tag-attachment failure is reported as a
// successful save with a warning message, matching the storage contract.
func (w *Write) Save(ctx context.Context, req models.CreateJournalRequest) (SaveOutcome, error) {
	if !w.beginSave() {
		return SaveOutcome{}, ErrSaveInProgress
	}
	defer w.endSave()

	journal, err := w.journals.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrTagsNotAttached) {
			w.logger.Warn().Int64("journal_id", journal.ID).Msg("entry saved without tags")
			return SaveOutcome{Saved: true, Journal: journal, Message: msgTagsNotAttached}, nil
		}
		return SaveOutcome{}, err
	}

	return SaveOutcome{Saved: true, Journal: journal}, nil
}

// Update applies a partial edit to an existing entry and optionally
// replaces its tag set. tagIDs == nil leaves the tags alone.
func (w *Write) Update(ctx context.Context, req models.UpdateJournalRequest, tagIDs []int64) (SaveOutcome, error) {
	if !w.beginSave() {
		return SaveOutcome{}, ErrSaveInProgress
	}
	defer w.endSave()

	journal, err := w.journals.Update(ctx, req)
	if err != nil {
		return SaveOutcome{}, err
	}

	if tagIDs != nil {
		if err = w.journals.ReplaceTags(ctx, journal.ID, tagIDs); err != nil {
			w.logger.Warn().Err(err).Int64("journal_id", journal.ID).Msg("entry updated without tags")
			return SaveOutcome{Saved: true, Journal: journal, Message: msgTagsNotAttached}, nil
		}
		journal, err = w.journals.Get(ctx, journal.ID)
		if err != nil {
			return SaveOutcome{}, err
		}
	}

	return SaveOutcome{Saved: true, Journal: journal}, nil
}

// Delete removes an entry.
func (w *Write) Delete(ctx context.Context, id int64) error {
	return w.journals.Delete(ctx, id)
}

// AvailableTags lists every tag for the tag picker.
func (w *Write) AvailableTags(ctx context.Context) ([]models.Tag, error) {
	return w.tags.GetAll(ctx)
}

// CreateTag adds a tag from the picker's inline input.
func (w *Write) CreateTag(ctx context.Context, name string, color *string) (models.Tag, error) {
	return w.tags.Create(ctx, name, color)
}

func (w *Write) beginSave() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.saving {
		return false
	}
	w.saving = true
	return true
}

func (w *Write) endSave() {
	w.mu.Lock()
	w.saving = false
	w.mu.Unlock()
}
