package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/internal/stats"
	"github.com/logmind/moodlog/internal/store"
	"github.com/logmind/moodlog/internal/validators"
	"github.com/logmind/moodlog/models"
)

type journalService struct {
	journals  store.JournalRepository
	tags      store.TagRepository
	validator validators.Validator
	logger    *logger.Logger

	now func() time.Time
}

func NewJournalService(journals store.JournalRepository, tags store.TagRepository, log *logger.Logger) JournalService {
	return &journalService{
		journals:  journals,
		tags:      tags,
		validator: validators.NewJournalValidator(),
		logger:    log,
		now:       time.Now,
	}
}

func (s *journalService) Create(ctx context.Context, req models.CreateJournalRequest) (models.Journal, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Journal{}, fmt.Errorf("validate new entry: %w", errors.Join(ErrInvalidDataProvided, err))
	}

	if req.CreatedAt.IsZero() {
		req.CreatedAt = s.now()
	}

	id, err := s.journals.Add(ctx, req)
	if err != nil {
		return models.Journal{}, fmt.Errorf("save new entry: %w", err)
	}

	if len(req.TagIDs) > 0 {
		if err = s.tags.ReplaceForJournal(ctx, id, req.TagIDs); err != nil {
			s.logger.Error().Err(err).Int64("journal_id", id).Msg("entry saved, tag attachment failed")
			saved, _ := s.journals.GetByID(ctx, id)
			return saved, errors.Join(ErrTagsNotAttached, err)
		}
	}

	saved, err := s.journals.GetByID(ctx, id)
	if err != nil {
		return models.Journal{}, fmt.Errorf("load saved entry: %w", err)
	}

	return saved, nil
}

func (s *journalService) Get(ctx context.Context, id int64) (models.Journal, error) {
	journal, err := s.journals.GetByID(ctx, id)
	if err != nil {
		return models.Journal{}, fmt.Errorf("get entry %d: %w", id, err)
	}
	return journal, nil
}

func (s *journalService) GetAll(ctx context.Context) ([]models.Journal, error) {
	journals, err := s.journals.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all entries: %w", err)
	}
	return journals, nil
}

func (s *journalService) GetByDate(ctx context.Context, date time.Time) ([]models.Journal, error) {
	journals, err := s.journals.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("get entries for day: %w", err)
	}
	return journals, nil
}

func (s *journalService) GetByMonth(ctx context.Context, date time.Time) ([]models.Journal, error) {
	journals, err := s.journals.GetByMonth(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("get entries for month: %w", err)
	}
	return journals, nil
}

func (s *journalService) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.Journal, error) {
	journals, err := s.journals.GetByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("get entries for range: %w", err)
	}
	return journals, nil
}

func (s *journalService) Update(ctx context.Context, req models.UpdateJournalRequest) (models.Journal, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Journal{}, fmt.Errorf("validate entry update: %w", errors.Join(ErrInvalidDataProvided, err))
	}

	if _, err := s.journals.Update(ctx, req); err != nil {
		return models.Journal{}, fmt.Errorf("update entry %d: %w", req.ID, err)
	}

	updated, err := s.journals.GetByID(ctx, req.ID)
	if err != nil {
		return models.Journal{}, fmt.Errorf("load updated entry: %w", err)
	}

	return updated, nil
}

func (s *journalService) Delete(ctx context.Context, id int64) error {
	if err := s.journals.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete entry %d: %w", id, err)
	}
	return nil
}

func (s *journalService) ReplaceTags(ctx context.Context, journalID int64, tagIDs []int64) error {
	if err := s.tags.ReplaceForJournal(ctx, journalID, tagIDs); err != nil {
		return fmt.Errorf("replace tags of entry %d: %w", journalID, err)
	}
	return nil
}

func (s *journalService) Subscribe(ctx context.Context) <-chan []models.Journal {
	return s.journals.Feed().Subscribe(ctx)
}

func (s *journalService) Statistics(ctx context.Context, period stats.Period) (models.Statistics, error) {
	now := s.now()
	start, end := period.Window(now)

	window, err := s.journals.GetByDateRange(ctx, start, end)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("load entries for statistics window: %w", err)
	}

	return models.Statistics{
		Trends:       stats.Trends(window, period),
		Distribution: stats.Distribution(window),
		AverageMood:  stats.AverageMood(window),
		EntryCount:   len(window),
		StreakDays:   stats.Streak(window, now),
		BestMoodDay:  stats.BestMoodDay(window),
	}, nil
}
