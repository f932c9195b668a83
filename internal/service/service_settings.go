package service

import (
	"context"
	"fmt"
	"time"

	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/models"
)

type settingsService struct {
	prefs  Preferences
	logger *logger.Logger

	now func() time.Time
}

func NewSettingsService(prefs Preferences, log *logger.Logger) SettingsService {
	return &settingsService{
		prefs:  prefs,
		logger: log,
		now:    time.Now,
	}
}

func (s *settingsService) Load(ctx context.Context) models.Settings {
	return models.Settings{
		NotificationEnabled: s.prefs.NotificationEnabled(ctx),
		AutoSyncEnabled:     s.prefs.AutoSyncEnabled(ctx),
		ThemeMode:           s.prefs.ThemeMode(ctx),
		ColorTheme:          s.prefs.ColorTheme(ctx),
		LanguageCode:        s.prefs.LanguageCode(ctx),
		AIPersonality:       s.prefs.AIPersonality(ctx),
		FontFamily:          s.prefs.FontFamily(ctx),
		TextAlign:           s.prefs.TextAlign(ctx),
		OnboardedLoginTypes: s.prefs.OnboardedLoginTypes(ctx),
	}
}

func (s *settingsService) SetThemeMode(ctx context.Context, mode models.ThemeMode) error {
	if err := s.prefs.SetThemeMode(ctx, mode); err != nil {
		return fmt.Errorf("set theme mode: %w", err)
	}
	return nil
}

func (s *settingsService) SetColorTheme(ctx context.Context, theme models.ColorTheme) error {
	if err := s.prefs.SetColorTheme(ctx, theme); err != nil {
		return fmt.Errorf("set color theme: %w", err)
	}
	return nil
}

func (s *settingsService) SetLanguageCode(ctx context.Context, code models.LanguageCode) error {
	if err := s.prefs.SetLanguageCode(ctx, code); err != nil {
		return fmt.Errorf("set language: %w", err)
	}
	return nil
}

func (s *settingsService) SetAIPersonality(ctx context.Context, personality models.AIPersonality) error {
	if err := s.prefs.SetAIPersonality(ctx, personality); err != nil {
		return fmt.Errorf("set ai personality: %w", err)
	}
	return nil
}

func (s *settingsService) SetFontFamily(ctx context.Context, font models.FontFamily) error {
	if err := s.prefs.SetFontFamily(ctx, font); err != nil {
		return fmt.Errorf("set font family: %w", err)
	}
	return nil
}

func (s *settingsService) SetNotificationEnabled(ctx context.Context, enabled bool) error {
	if err := s.prefs.SetNotificationEnabled(ctx, enabled); err != nil {
		return fmt.Errorf("set notification toggle: %w", err)
	}
	return nil
}

func (s *settingsService) SetAutoSyncEnabled(ctx context.Context, enabled bool) error {
	if err := s.prefs.SetAutoSyncEnabled(ctx, enabled); err != nil {
		return fmt.Errorf("set auto-sync toggle: %w", err)
	}
	return nil
}

func (s *settingsService) CycleTextAlign(ctx context.Context) (models.TextAlign, error) {
	next := s.prefs.TextAlign(ctx).Next()
	if err := s.prefs.SetTextAlign(ctx, next); err != nil {
		return "", fmt.Errorf("cycle text alignment: %w", err)
	}
	return next, nil
}

func (s *settingsService) LastAIUsageDate(ctx context.Context) time.Time {
	return s.prefs.LastAIUsageDate(ctx)
}

func (s *settingsService) MarkAIUsed(ctx context.Context) error {
	if err := s.prefs.SetLastAIUsageDate(ctx, s.now()); err != nil {
		return fmt.Errorf("record ai usage time: %w", err)
	}
	return nil
}
