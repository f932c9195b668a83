package store

import (
	"context"

	"github.com/logmind/moodlog/internal/config"
	"github.com/logmind/moodlog/internal/logger"
)

// Storages aggregates every repository backed by the journal database.
type Storages struct {
	DB                *DB
	JournalRepository JournalRepository
	TagRepository     TagRepository
}

// NewStorages opens the database, applies migrations, and wires the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		DB:                db,
		JournalRepository: NewJournalRepository(db, log),
		TagRepository:     NewTagRepository(db, log),
	}, nil
}

// Close releases the feed and the database handle.
func (s *Storages) Close() error {
	s.JournalRepository.Feed().Close()
	return s.DB.Close()
}
