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
	"github.com/logmind/moodlog/models"
)

func newTestSettingsSvc(t *testing.T, ctrl *gomock.Controller, now time.Time) (*settingsService, *mock.MockPreferences) {
	t.Helper()
	mockPrefs := mock.NewMockPreferences(ctrl)

	svc := NewSettingsService(mockPrefs, logger.Nop()).(*settingsService)
	svc.now = func() time.Time { return now }

	return svc, mockPrefs
}

func TestSettingsService_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPrefs := newTestSettingsSvc(t, ctrl, time.Now())
	ctx := context.Background()

	mockPrefs.EXPECT().NotificationEnabled(ctx).Return(true)
	mockPrefs.EXPECT().AutoSyncEnabled(ctx).Return(false)
	mockPrefs.EXPECT().ThemeMode(ctx).Return(models.ThemeDark)
	mockPrefs.EXPECT().ColorTheme(ctx).Return(models.ColorBlue)
	mockPrefs.EXPECT().LanguageCode(ctx).Return(models.LangKorean)
	mockPrefs.EXPECT().AIPersonality(ctx).Return(models.PersonalityCompassionate)
	mockPrefs.EXPECT().FontFamily(ctx).Return(models.FontPretendard)
	mockPrefs.EXPECT().TextAlign(ctx).Return(models.AlignLeft)
	mockPrefs.EXPECT().OnboardedLoginTypes(ctx).Return([]string{"google"})

	settings := svc.Load(ctx)
	assert.Equal(t, models.Settings{
		NotificationEnabled: true,
		AutoSyncEnabled:     false,
		ThemeMode:           models.ThemeDark,
		ColorTheme:          models.ColorBlue,
		LanguageCode:        models.LangKorean,
		AIPersonality:       models.PersonalityCompassionate,
		FontFamily:          models.FontPretendard,
		TextAlign:           models.AlignLeft,
		OnboardedLoginTypes: []string{"google"},
	}, settings)
}

func TestSettingsService_CycleTextAlign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPrefs := newTestSettingsSvc(t, ctrl, time.Now())
	ctx := context.Background()

	next := models.AlignLeft.Next()
	gomock.InOrder(
		mockPrefs.EXPECT().TextAlign(ctx).Return(models.AlignLeft),
		mockPrefs.EXPECT().SetTextAlign(ctx, next).Return(nil),
	)

	got, err := svc.CycleTextAlign(ctx)
	require.NoError(t, err)
	assert.Equal(t, next, got)
}

func TestSettingsService_MarkAIUsed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.March, 14, 22, 15, 0, 0, time.Local)
	svc, mockPrefs := newTestSettingsSvc(t, ctrl, now)
	ctx := context.Background()

	mockPrefs.EXPECT().SetLastAIUsageDate(ctx, now).Return(nil)
	require.NoError(t, svc.MarkAIUsed(ctx))
}

func TestSettingsService_SettersWrapErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPrefs := newTestSettingsSvc(t, ctrl, time.Now())
	ctx := context.Background()

	mockPrefs.EXPECT().SetThemeMode(ctx, models.ThemeLight).Return(assert.AnError)
	assert.ErrorIs(t, svc.SetThemeMode(ctx, models.ThemeLight), assert.AnError)

	mockPrefs.EXPECT().SetNotificationEnabled(ctx, false).Return(nil)
	assert.NoError(t, svc.SetNotificationEnabled(ctx, false))
}
