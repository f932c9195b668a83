package store

import (
	"context"
	"time"

	"github.com/logmind/moodlog/models"
)

// JournalRepository is the data-access layer for journal records. List
// results are ordered by created_at descending, and every read path except
// the live feed hydrates the tag list through a second query.
type JournalRepository interface {
	// GetByID returns one journal with its tags. Fails with
	// ErrJournalNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (models.Journal, error)

	// GetAll returns every journal with tags hydrated.
	GetAll(ctx context.Context) ([]models.Journal, error)

	// GetByDate returns the journals whose created_at falls on the same
	// calendar day as date, ignoring time of day.
	GetByDate(ctx context.Context, date time.Time) ([]models.Journal, error)

	// GetByMonth returns the journals created in the same year-month as
	// date.
	GetByMonth(ctx context.Context, date time.Time) ([]models.Journal, error)

	// GetByDateRange returns the journals with created_at in
	// [start, end] inclusive.
	GetByDateRange(ctx context.Context, start, end time.Time) ([]models.Journal, error)

	// Add inserts a new journal and returns the generated id.
	Add(ctx context.Context, req models.CreateJournalRequest) (int64, error)

	// Update applies a last-non-null-wins partial update and returns the
	// number of affected rows. Fails with ErrJournalNotFound when the
	// target row does not exist.
	Update(ctx context.Context, req models.UpdateJournalRequest) (int64, error)

	// DeleteByID removes a journal; tag links cascade through the schema.
	DeleteByID(ctx context.Context, id int64) error

	// Feed returns the live stream of all journals. Entries on the feed
	// never carry tags; callers that need tags must use the read paths
	// above.
	Feed() *JournalFeed
}

// TagRepository is the data-access layer for tags and their journal links.
type TagRepository interface {
	// GetAll returns every tag, newest first.
	GetAll(ctx context.Context) ([]models.Tag, error)

	// GetByID returns one tag. Fails with ErrTagNotFound when no row
	// matches.
	GetByID(ctx context.Context, id int64) (models.Tag, error)

	// GetByJournalID returns the tags linked to a journal, newest first.
	GetByJournalID(ctx context.Context, journalID int64) ([]models.Tag, error)

	// Add inserts a new tag and returns the generated id.
	Add(ctx context.Context, name string, color *string, createdAt time.Time) (int64, error)

	// Update replaces name and color of an existing tag.
	Update(ctx context.Context, id int64, name string, color *string) error

	// DeleteByID removes a tag; journal links cascade through the schema.
	DeleteByID(ctx context.Context, id int64) error

	// ReplaceForJournal atomically replaces a journal's tag set with
	// tagIDs. Readers observe either the old set or the new set, never a
	// partially cleared one.
	ReplaceForJournal(ctx context.Context, journalID int64, tagIDs []int64) error
}
