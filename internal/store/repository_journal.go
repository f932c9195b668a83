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

type journalRepository struct {
	db     *DB
	feed   *JournalFeed
	logger *logger.Logger
}

// NewJournalRepository constructs the sqlite-backed JournalRepository and
// its live feed.
func NewJournalRepository(db *DB, log *logger.Logger) JournalRepository {
	return &journalRepository{
		db:     db,
		feed:   NewJournalFeed(),
		logger: log,
	}
}

func (j *journalRepository) Feed() *JournalFeed {
	return j.feed
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanJournal reads one journals row. Tags are not populated here.
func scanJournal(row rowScanner) (models.Journal, error) {
	var (
		journal   models.Journal
		moodType  string
		imageURIs *string
		createdAt string
	)

	err := row.Scan(
		&journal.ID,
		&journal.Content,
		&moodType,
		&imageURIs,
		&createdAt,
		&journal.AIResponseEnabled,
		&journal.AIResponse,
		&journal.Latitude,
		&journal.Longitude,
		&journal.Address,
		&journal.Temperature,
		&journal.WeatherIcon,
		&journal.WeatherDescription,
	)
	if err != nil {
		return models.Journal{}, err
	}

	journal.Mood = models.MoodFromString(moodType)

	journal.CreatedAt, err = decodeTime(createdAt)
	if err != nil {
		return models.Journal{}, err
	}

	journal.ImageURIs, err = decodeImageURIs(imageURIs)
	if err != nil {
		return models.Journal{}, err
	}

	return journal, nil
}

func (j *journalRepository) GetByID(ctx context.Context, id int64) (models.Journal, error) {
	log := logger.FromContext(ctx)

	row := j.db.QueryRowContext(ctx, getJournalByID, id)

	journal, err := scanJournal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Journal{}, ErrJournalNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.GetByID").
			Int64("id", id).
			Msg("failed to scan journal row")
		return models.Journal{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	journal.Tags, err = j.tagsForJournal(ctx, journal.ID)
	if err != nil {
		return models.Journal{}, err
	}

	return journal, nil
}

func (j *journalRepository) GetAll(ctx context.Context) ([]models.Journal, error) {
	return j.queryJournals(ctx, "journalRepository.GetAll", getAllJournals)
}

func (j *journalRepository) GetByDate(ctx context.Context, date time.Time) ([]models.Journal, error) {
	return j.queryJournals(ctx, "journalRepository.GetByDate", getJournalsByDate, encodeTime(date))
}

func (j *journalRepository) GetByMonth(ctx context.Context, date time.Time) ([]models.Journal, error) {
	return j.queryJournals(ctx, "journalRepository.GetByMonth", getJournalsByMonth, encodeTime(date))
}

func (j *journalRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.Journal, error) {
	return j.queryJournals(ctx, "journalRepository.GetByDateRange", getJournalsByDateRange,
		encodeTime(start), encodeTime(end))
}

// queryJournals runs a multi-row journal SELECT and hydrates tags for each
// returned row.
func (j *journalRepository) queryJournals(ctx context.Context, funcName, query string, args ...any) ([]models.Journal, error) {
	log := logger.FromContext(ctx)

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Msg("failed to execute journal query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var journals []models.Journal

	for rows.Next() {
		journal, scanErr := scanJournal(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Msg("failed to scan journal row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		journals = append(journals, journal)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating journal rows: %w", rowsErr)
	}

	for i := range journals {
		journals[i].Tags, err = j.tagsForJournal(ctx, journals[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return journals, nil
}

// tagsForJournal hydrates the tag list of one journal.
func (j *journalRepository) tagsForJournal(ctx context.Context, journalID int64) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	rows, err := j.db.QueryContext(ctx, getTagsByJournalID, journalID)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.tagsForJournal").
			Int64("journal_id", journalID).
			Msg("failed to query tags for journal")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanTags(rows)
}

func (j *journalRepository) Add(ctx context.Context, req models.CreateJournalRequest) (int64, error) {
	log := logger.FromContext(ctx)

	imageURIs, err := encodeImageURIs(req.ImageURIs)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.Add").
			Msg("failed to encode image uris")
		return 0, err
	}

	result, err := j.db.ExecContext(ctx, insertJournal,
		req.Content,
		string(req.Mood),
		imageURIs,
		encodeTime(req.CreatedAt),
		req.AIResponseEnabled,
		req.AIResponse,
		req.Latitude,
		req.Longitude,
		req.Address,
		req.Temperature,
		req.WeatherIcon,
		req.WeatherDescription,
	)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.Add").
			Msg("failed to insert journal")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.Add").
			Msg("failed to get generated journal id")
		return 0, fmt.Errorf("failed to get generated journal id: %w", err)
	}

	j.publishSnapshot(ctx)

	return id, nil
}

func (j *journalRepository) Update(ctx context.Context, req models.UpdateJournalRequest) (int64, error) {
	log := logger.FromContext(ctx)

	// The partial update only touches rows that exist; surface NotFound
	// up front so callers can distinguish it from a no-op update.
	if err := j.exists(ctx, req.ID); err != nil {
		return 0, err
	}

	var (
		imageURIs *string
		err       error
	)
	if len(req.ImageURIs) > 0 {
		imageURIs, err = encodeImageURIs(req.ImageURIs)
		if err != nil {
			log.Err(err).
				Str("func", "journalRepository.Update").
				Int64("id", req.ID).
				Msg("failed to encode image uris")
			return 0, err
		}
	}

	query, args, err := buildUpdateJournalQuery(req, imageURIs)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.Update").
			Int64("id", req.ID).
			Msg("failed to build update query")
		return 0, err
	}

	result, err := j.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.Update").
			Int64("id", req.ID).
			Msg("failed to execute journal update")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.Update").
			Int64("id", req.ID).
			Msg("failed to get rows affected after update")
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	j.publishSnapshot(ctx)

	return affected, nil
}

func (j *journalRepository) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	_, err := j.db.ExecContext(ctx, deleteJournalByID, id)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.DeleteByID").
			Int64("id", id).
			Msg("failed to delete journal")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	j.publishSnapshot(ctx)

	return nil
}

func (j *journalRepository) exists(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	var found int64
	err := j.db.QueryRowContext(ctx, `SELECT id FROM journals WHERE id = ?;`, id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrJournalNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.exists").
			Int64("id", id).
			Msg("failed to check journal existence")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// publishSnapshot pushes a fresh full snapshot to the feed. Best effort: a
// failed snapshot read is logged and dropped, never surfaced to the
// mutating caller.
func (j *journalRepository) publishSnapshot(ctx context.Context) {
	log := logger.FromContext(ctx)

	rows, err := j.db.QueryContext(ctx, getAllJournals)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.publishSnapshot").
			Msg("failed to query feed snapshot")
		return
	}
	defer rows.Close()

	var journals []models.Journal
	for rows.Next() {
		journal, scanErr := scanJournal(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "journalRepository.publishSnapshot").
				Msg("failed to scan feed snapshot row")
			return
		}
		journals = append(journals, journal)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "journalRepository.publishSnapshot").
			Msg("error occurred during feed snapshot iteration")
		return
	}

	j.feed.Publish(journals)
}
