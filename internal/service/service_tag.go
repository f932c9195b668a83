package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/internal/store"
	"github.com/logmind/moodlog/internal/validators"
	"github.com/logmind/moodlog/models"
)

type tagService struct {
	tags      store.TagRepository
	validator validators.Validator
	logger    *logger.Logger

	now func() time.Time
}

func NewTagService(tags store.TagRepository, log *logger.Logger) TagService {
	return &tagService{
		tags:      tags,
		validator: validators.NewJournalValidator(),
		logger:    log,
		now:       time.Now,
	}
}

func (s *tagService) Create(ctx context.Context, name string, color *string) (models.Tag, error) {
	name = strings.TrimSpace(name)
	if err := s.validator.Validate(ctx, models.Tag{Name: name}); err != nil {
		return models.Tag{}, fmt.Errorf("validate new tag: %w", errors.Join(ErrInvalidDataProvided, err))
	}

	createdAt := s.now()
	id, err := s.tags.Add(ctx, name, color, createdAt)
	if err != nil {
		return models.Tag{}, fmt.Errorf("save new tag: %w", err)
	}

	return models.Tag{ID: id, Name: name, Color: color, CreatedAt: createdAt}, nil
}

func (s *tagService) Get(ctx context.Context, id int64) (models.Tag, error) {
	tag, err := s.tags.GetByID(ctx, id)
	if err != nil {
		return models.Tag{}, fmt.Errorf("get tag %d: %w", id, err)
	}
	return tag, nil
}

func (s *tagService) GetAll(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.tags.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all tags: %w", err)
	}
	return tags, nil
}

func (s *tagService) GetByJournal(ctx context.Context, journalID int64) ([]models.Tag, error) {
	tags, err := s.tags.GetByJournalID(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("get tags of entry %d: %w", journalID, err)
	}
	return tags, nil
}

func (s *tagService) Update(ctx context.Context, id int64, name string, color *string) error {
	name = strings.TrimSpace(name)
	if err := s.validator.Validate(ctx, models.Tag{ID: id, Name: name}, validators.FieldTagID, validators.FieldTagName); err != nil {
		return fmt.Errorf("validate tag update: %w", errors.Join(ErrInvalidDataProvided, err))
	}

	if err := s.tags.Update(ctx, id, name, color); err != nil {
		return fmt.Errorf("update tag %d: %w", id, err)
	}
	return nil
}

func (s *tagService) Delete(ctx context.Context, id int64) error {
	if err := s.tags.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete tag %d: %w", id, err)
	}
	return nil
}
