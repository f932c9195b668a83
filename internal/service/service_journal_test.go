package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/internal/mock"
	"github.com/logmind/moodlog/internal/stats"
	"github.com/logmind/moodlog/internal/store"
	"github.com/logmind/moodlog/models"
)

// newTestJournalSvc builds a journalService with mocked repositories and a
// frozen clock.
func newTestJournalSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	now time.Time,
) (
	*journalService,
	*mock.MockJournalRepository,
	*mock.MockTagRepository,
) {
	t.Helper()
	mockJournals := mock.NewMockJournalRepository(ctrl)
	mockTags := mock.NewMockTagRepository(ctrl)

	svc := NewJournalService(mockJournals, mockTags, logger.Nop()).(*journalService)
	svc.now = func() time.Time { return now }

	return svc, mockJournals, mockTags
}

func strPtr(s string) *string { return &s }

// ── Create ───────────────────────────────────────────────────────────────────

func TestJournalService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.March, 14, 21, 30, 0, 0, time.Local)
	svc, mockJournals, mockTags := newTestJournalSvc(t, ctrl, now)
	ctx := context.Background()

	req := models.CreateJournalRequest{
		Content: strPtr("long walk by the river"),
		Mood:    models.MoodHappy,
		TagIDs:  []int64{2, 5},
	}

	saved := models.Journal{
		ID:      7,
		Content: req.Content,
		Mood:    models.MoodHappy,
		Tags:    []models.Tag{{ID: 2, Name: "walk"}, {ID: 5, Name: "outside"}},
	}

	gomock.InOrder(
		mockJournals.EXPECT().Add(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, got models.CreateJournalRequest) (int64, error) {
				assert.Equal(t, now, got.CreatedAt, "zero CreatedAt must default to now")
				return int64(7), nil
			},
		),
		mockTags.EXPECT().ReplaceForJournal(ctx, int64(7), []int64{2, 5}).Return(nil),
		mockJournals.EXPECT().GetByID(ctx, int64(7)).Return(saved, nil),
	)

	journal, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, saved, journal)
}

func TestJournalService_Create_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestJournalSvc(t, ctrl, time.Now())
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateJournalRequest{Mood: models.MoodHappy})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestJournalService_Create_KeepsExplicitCreatedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.March, 14, 21, 30, 0, 0, time.Local)
	svc, mockJournals, _ := newTestJournalSvc(t, ctrl, now)
	ctx := context.Background()

	backdated := now.AddDate(0, 0, -3)
	req := models.CreateJournalRequest{
		Content:   strPtr("catching up on a missed day"),
		Mood:      models.MoodNeutral,
		CreatedAt: backdated,
	}

	gomock.InOrder(
		mockJournals.EXPECT().Add(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, got models.CreateJournalRequest) (int64, error) {
				assert.Equal(t, backdated, got.CreatedAt)
				return int64(1), nil
			},
		),
		mockJournals.EXPECT().GetByID(ctx, int64(1)).Return(models.Journal{ID: 1}, nil),
	)

	_, err := svc.Create(ctx, req)
	require.NoError(t, err)
}

func TestJournalService_Create_TagAttachFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockJournals, mockTags := newTestJournalSvc(t, ctrl, time.Now())
	ctx := context.Background()

	req := models.CreateJournalRequest{
		Content: strPtr("entry that outlives its tags"),
		Mood:    models.MoodSad,
		TagIDs:  []int64{9},
	}
	saved := models.Journal{ID: 11, Content: req.Content, Mood: models.MoodSad}

	gomock.InOrder(
		mockJournals.EXPECT().Add(ctx, gomock.Any()).Return(int64(11), nil),
		mockTags.EXPECT().ReplaceForJournal(ctx, int64(11), []int64{9}).Return(errors.New("disk full")),
		mockJournals.EXPECT().GetByID(ctx, int64(11)).Return(saved, nil),
	)

	journal, err := svc.Create(ctx, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTagsNotAttached)
	assert.Equal(t, saved, journal, "the saved entry is returned even when tags failed")
}

func TestJournalService_Create_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockJournals, _ := newTestJournalSvc(t, ctrl, time.Now())
	ctx := context.Background()

	mockJournals.EXPECT().Add(ctx, gomock.Any()).Return(int64(0), errors.New("locked"))

	_, err := svc.Create(ctx, models.CreateJournalRequest{
		Content: strPtr("will not land"),
		Mood:    models.MoodNeutral,
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTagsNotAttached)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestJournalService_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockJournals, _ := newTestJournalSvc(t, ctrl, time.Now())
	ctx := context.Background()

	req := models.UpdateJournalRequest{ID: 3, Content: strPtr("edited")}
	updated := models.Journal{ID: 3, Content: strPtr("edited")}

	gomock.InOrder(
		mockJournals.EXPECT().Update(ctx, req).Return(int64(1), nil),
		mockJournals.EXPECT().GetByID(ctx, int64(3)).Return(updated, nil),
	)

	journal, err := svc.Update(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, updated, journal)
}

func TestJournalService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockJournals, _ := newTestJournalSvc(t, ctrl, time.Now())
	ctx := context.Background()

	req := models.UpdateJournalRequest{ID: 404, Content: strPtr("ghost")}
	mockJournals.EXPECT().Update(ctx, req).Return(int64(0), store.ErrJournalNotFound)

	_, err := svc.Update(ctx, req)
	assert.ErrorIs(t, err, store.ErrJournalNotFound)
}

func TestJournalService_Update_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestJournalSvc(t, ctrl, time.Now())

	_, err := svc.Update(context.Background(), models.UpdateJournalRequest{ID: 3})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Delete / ReplaceTags ─────────────────────────────────────────────────────

func TestJournalService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockJournals, _ := newTestJournalSvc(t, ctrl, time.Now())
	ctx := context.Background()

	mockJournals.EXPECT().DeleteByID(ctx, int64(5)).Return(nil)
	require.NoError(t, svc.Delete(ctx, 5))

	mockJournals.EXPECT().DeleteByID(ctx, int64(6)).Return(store.ErrJournalNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 6), store.ErrJournalNotFound)
}

func TestJournalService_ReplaceTags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockTags := newTestJournalSvc(t, ctrl, time.Now())
	ctx := context.Background()

	mockTags.EXPECT().ReplaceForJournal(ctx, int64(3), []int64{1, 2}).Return(nil)
	require.NoError(t, svc.ReplaceTags(ctx, 3, []int64{1, 2}))
}

// ── Statistics ───────────────────────────────────────────────────────────────

func TestJournalService_Statistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.August, 12, 15, 0, 0, 0, time.Local)
	svc, mockJournals, _ := newTestJournalSvc(t, ctrl, now)
	ctx := context.Background()

	window := []models.Journal{
		{ID: 1, Mood: models.MoodVeryHappy, CreatedAt: now.AddDate(0, 0, -1)},
		{ID: 2, Mood: models.MoodHappy, CreatedAt: now},
	}

	start, end := stats.PeriodWeek.Window(now)
	mockJournals.EXPECT().GetByDateRange(ctx, start, end).Return(window, nil)

	got, err := svc.Statistics(ctx, stats.PeriodWeek)
	require.NoError(t, err)

	assert.Equal(t, 2, got.EntryCount)
	assert.Equal(t, 2, got.StreakDays)
	assert.Len(t, got.Trends, 2)
	assert.Len(t, got.Distribution, 2)
	assert.InDelta(t, 3.5, got.AverageMood, 0.0001)
	require.NotNil(t, got.BestMoodDay)
	assert.Equal(t, "August 11", *got.BestMoodDay)
}

func TestJournalService_Statistics_StreakBoundedByWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.August, 12, 15, 0, 0, 0, time.Local)
	svc, mockJournals, _ := newTestJournalSvc(t, ctrl, now)
	ctx := context.Background()

	// An entry every day for weeks; the weekly window only hands the
	// service its last 8 days, and the streak must not reach past them.
	window := make([]models.Journal, 0, 8)
	for i := 0; i < 8; i++ {
		window = append(window, models.Journal{
			ID:        int64(i + 1),
			Mood:      models.MoodNeutral,
			CreatedAt: now.AddDate(0, 0, -i),
		})
	}

	start, end := stats.PeriodWeek.Window(now)
	mockJournals.EXPECT().GetByDateRange(ctx, start, end).Return(window, nil)

	got, err := svc.Statistics(ctx, stats.PeriodWeek)
	require.NoError(t, err)

	assert.Equal(t, 8, got.EntryCount)
	assert.Equal(t, 8, got.StreakDays, "streak is computed over the selected window only")
}

func TestJournalService_Statistics_EmptyWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.August, 12, 15, 0, 0, 0, time.Local)
	svc, mockJournals, _ := newTestJournalSvc(t, ctrl, now)
	ctx := context.Background()

	start, end := stats.PeriodMonth.Window(now)
	mockJournals.EXPECT().GetByDateRange(ctx, start, end).Return(nil, nil)

	got, err := svc.Statistics(ctx, stats.PeriodMonth)
	require.NoError(t, err)

	assert.Zero(t, got.EntryCount)
	assert.Zero(t, got.StreakDays)
	assert.Empty(t, got.Trends)
	assert.Empty(t, got.Distribution)
	assert.Equal(t, models.NeutralSliderValue, got.AverageMood)
	assert.Nil(t, got.BestMoodDay)
}
