package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/logmind/moodlog/internal/config"
	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/models"
)

// newTestStorages opens a real sqlite database in a temp dir and applies
// the migrations, so schema-level behavior such as foreign-key cascades is
// exercised for real instead of being asserted against statement text.
func newTestStorages(t *testing.T) *Storages {
	t.Helper()

	storages, err := NewStorages(context.Background(), config.Storage{
		DB: config.DB{Path: filepath.Join(t.TempDir(), "journal.db")},
	}, logger.Nop())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := storages.Close(); closeErr != nil {
			t.Errorf("failed to close test database: %v", closeErr)
		}
	})

	return storages
}

func TestSQLite_DeleteCascadesTagLinks(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()
	journals := storages.JournalRepository
	tags := storages.TagRepository

	createdAt := time.Date(2026, time.August, 28, 21, 15, 0, 0, time.Local)
	content := "an ordinary thursday"

	id, err := journals.Add(ctx, models.CreateJournalRequest{
		Content:   &content,
		Mood:      models.MoodHappy,
		CreatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("failed to add journal: %v", err)
	}

	workID, err := tags.Add(ctx, "work", nil, createdAt)
	if err != nil {
		t.Fatalf("failed to add tag: %v", err)
	}
	color := "#2196F3"
	walkID, err := tags.Add(ctx, "walk", &color, createdAt)
	if err != nil {
		t.Fatalf("failed to add tag: %v", err)
	}

	if err = tags.ReplaceForJournal(ctx, id, []int64{workID, walkID}); err != nil {
		t.Fatalf("failed to link tags: %v", err)
	}

	journal, err := journals.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error reading back journal: %v", err)
	}
	if journal.Content == nil || *journal.Content != content {
		t.Errorf("unexpected content: %v", journal.Content)
	}
	if journal.Mood != models.MoodHappy {
		t.Errorf("expected mood happy, got %s", journal.Mood)
	}
	if !journal.CreatedAt.Equal(createdAt) {
		t.Errorf("expected created_at %v, got %v", createdAt, journal.CreatedAt)
	}
	if len(journal.Tags) != 2 {
		t.Fatalf("expected 2 linked tags, got %d", len(journal.Tags))
	}

	if err = journals.DeleteByID(ctx, id); err != nil {
		t.Fatalf("failed to delete journal: %v", err)
	}

	if _, err = journals.GetByID(ctx, id); !errors.Is(err, ErrJournalNotFound) {
		t.Errorf("expected ErrJournalNotFound after delete, got %v", err)
	}

	linked, err := tags.GetByJournalID(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error reading links after delete: %v", err)
	}
	if len(linked) != 0 {
		t.Errorf("expected tag links to cascade away, got %v", linked)
	}

	// The tags themselves survive the journal delete; only the links go.
	remaining, err := tags.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error listing tags: %v", err)
	}
	if len(remaining) != 2 {
		t.Errorf("expected both tags to survive the delete, got %d", len(remaining))
	}
}
