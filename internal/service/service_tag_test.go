package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/internal/mock"
	"github.com/logmind/moodlog/internal/store"
	"github.com/logmind/moodlog/models"
)

func newTestTagSvc(t *testing.T, ctrl *gomock.Controller, now time.Time) (*tagService, *mock.MockTagRepository) {
	t.Helper()
	mockTags := mock.NewMockTagRepository(ctrl)

	svc := NewTagService(mockTags, logger.Nop()).(*tagService)
	svc.now = func() time.Time { return now }

	return svc, mockTags
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestTagService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.Local)
	svc, mockTags := newTestTagSvc(t, ctrl, now)
	ctx := context.Background()

	color := strPtr("#FFB3BA")
	mockTags.EXPECT().Add(ctx, "work", color, now).Return(int64(4), nil)

	tag, err := svc.Create(ctx, "  work  ", color)
	require.NoError(t, err)
	assert.Equal(t, models.Tag{ID: 4, Name: "work", Color: color, CreatedAt: now}, tag)
}

func TestTagService_Create_BlankName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestTagSvc(t, ctrl, time.Now())

	_, err := svc.Create(context.Background(), "   ", nil)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestTagService_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTags := newTestTagSvc(t, ctrl, time.Now())
	ctx := context.Background()

	mockTags.EXPECT().Update(ctx, int64(4), "life", nil).Return(nil)
	require.NoError(t, svc.Update(ctx, 4, "life", nil))
}

func TestTagService_Update_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestTagSvc(t, ctrl, time.Now())

	err := svc.Update(context.Background(), 0, "life", nil)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestTagService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTags := newTestTagSvc(t, ctrl, time.Now())
	ctx := context.Background()

	mockTags.EXPECT().Update(ctx, int64(99), "life", nil).Return(store.ErrTagNotFound)
	assert.ErrorIs(t, svc.Update(ctx, 99, "life", nil), store.ErrTagNotFound)
}

// ── Reads / Delete ───────────────────────────────────────────────────────────

func TestTagService_GetByJournal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTags := newTestTagSvc(t, ctrl, time.Now())
	ctx := context.Background()

	want := []models.Tag{{ID: 1, Name: "walk"}}
	mockTags.EXPECT().GetByJournalID(ctx, int64(7)).Return(want, nil)

	got, err := svc.GetByJournal(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTagService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTags := newTestTagSvc(t, ctrl, time.Now())
	ctx := context.Background()

	mockTags.EXPECT().DeleteByID(ctx, int64(4)).Return(nil)
	require.NoError(t, svc.Delete(ctx, 4))
}
