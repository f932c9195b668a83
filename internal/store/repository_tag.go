package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/models"
)

type tagRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTagRepository constructs the sqlite-backed TagRepository.
func NewTagRepository(db *DB, log *logger.Logger) TagRepository {
	return &tagRepository{
		db:     db,
		logger: log,
	}
}

// scanTags drains a tags result set.
func scanTags(rows *sql.Rows) ([]models.Tag, error) {
	var tags []models.Tag

	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}

	return tags, nil
}

func scanTag(row rowScanner) (models.Tag, error) {
	var (
		tag       models.Tag
		createdAt string
	)

	if err := row.Scan(&tag.ID, &tag.Name, &tag.Color, &createdAt); err != nil {
		return models.Tag{}, err
	}

	var err error
	tag.CreatedAt, err = decodeTime(createdAt)
	if err != nil {
		return models.Tag{}, err
	}

	return tag, nil
}

func (t *tagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	rows, err := t.db.QueryContext(ctx, getAllTags)
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.GetAll").
			Msg("failed to query all tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanTags(rows)
}

func (t *tagRepository) GetByID(ctx context.Context, id int64) (models.Tag, error) {
	log := logger.FromContext(ctx)

	row := t.db.QueryRowContext(ctx, getTagByID, id)

	tag, err := scanTag(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tag{}, ErrTagNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.GetByID").
			Int64("id", id).
			Msg("failed to scan tag row")
		return models.Tag{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return tag, nil
}

func (t *tagRepository) GetByJournalID(ctx context.Context, journalID int64) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	rows, err := t.db.QueryContext(ctx, getTagsByJournalID, journalID)
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.GetByJournalID").
			Int64("journal_id", journalID).
			Msg("failed to query tags by journal id")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanTags(rows)
}

func (t *tagRepository) Add(ctx context.Context, name string, color *string, createdAt time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := t.db.ExecContext(ctx, insertTag, name, color, encodeTime(createdAt))
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.Add").
			Str("name", name).
			Msg("failed to insert tag")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.Add").
			Str("name", name).
			Msg("failed to get generated tag id")
		return 0, fmt.Errorf("failed to get generated tag id: %w", err)
	}

	return id, nil
}

func (t *tagRepository) Update(ctx context.Context, id int64, name string, color *string) error {
	log := logger.FromContext(ctx)

	result, err := t.db.ExecContext(ctx, updateTag, name, color, id)
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.Update").
			Int64("id", id).
			Msg("failed to update tag")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.Update").
			Int64("id", id).
			Msg("failed to get rows affected after tag update")
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrTagNotFound
	}

	return nil
}

func (t *tagRepository) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	_, err := t.db.ExecContext(ctx, deleteTagByID, id)
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.DeleteByID").
			Int64("id", id).
			Msg("failed to delete tag")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ReplaceForJournal clears and re-inserts the link rows for one journal
// inside a single transaction. The tag set is replaced wholesale, not
// diffed; concurrent readers observe either the old set or the new set.
func (t *tagRepository) ReplaceForJournal(ctx context.Context, journalID int64, tagIDs []int64) error {
	log := logger.FromContext(ctx)

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.ReplaceForJournal").
			Int64("journal_id", journalID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteLinksForJournal, journalID); err != nil {
		log.Err(err).
			Str("func", "tagRepository.ReplaceForJournal").
			Int64("journal_id", journalID).
			Msg("failed to clear tag links")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, tagID := range tagIDs {
		if _, err = tx.ExecContext(ctx, insertJournalTagLink, journalID, tagID); err != nil {
			log.Err(err).
				Str("func", "tagRepository.ReplaceForJournal").
				Int64("journal_id", journalID).
				Int64("tag_id", tagID).
				Msg("failed to insert tag link")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "tagRepository.ReplaceForJournal").
			Int64("journal_id", journalID).
			Msg("failed to commit tag link transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}
