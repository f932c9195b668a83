package store

import (
	"database/sql"

	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/migrations"
)

// DB wraps the single sql.DB handle owned by the application. It is
// constructed once in the composition root and passed down explicitly;
// there is no global handle.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
