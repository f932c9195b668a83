package viewstate

import (
	"context"
	"sync"

	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/internal/service"
	"github.com/logmind/moodlog/models"
)

// SettingsState is the snapshot behind the settings screen.
type SettingsState struct {
	Settings models.Settings
	Err      error
}

// Settings drives the settings screen. Every toggle writes through to the
// preference store and refreshes the snapshot from it, so the screen
// always shows what was actually persisted.
type Settings struct {
	settings service.SettingsService
	logger   *logger.Logger

	mu    sync.RWMutex
	state SettingsState
}

func NewSettings(settings service.SettingsService, log *logger.Logger) *Settings {
	return &Settings{
		settings: settings,
		logger:   log,
	}
}

// State returns the current snapshot.
func (s *Settings) State() SettingsState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Reload re-reads every preference.
func (s *Settings) Reload(ctx context.Context) SettingsState {
	loaded := s.settings.Load(ctx)

	s.mu.Lock()
	s.state = SettingsState{Settings: loaded}
	snapshot := s.state
	s.mu.Unlock()

	return snapshot
}

// ToggleNotifications flips the daily reminder preference.
func (s *Settings) ToggleNotifications(ctx context.Context) SettingsState {
	current := s.settings.Load(ctx).NotificationEnabled
	return s.apply(ctx, s.settings.SetNotificationEnabled(ctx, !current))
}

// ToggleAutoSync flips the auto-sync preference.
func (s *Settings) ToggleAutoSync(ctx context.Context) SettingsState {
	current := s.settings.Load(ctx).AutoSyncEnabled
	return s.apply(ctx, s.settings.SetAutoSyncEnabled(ctx, !current))
}

// SetThemeMode persists a theme choice.
func (s *Settings) SetThemeMode(ctx context.Context, mode models.ThemeMode) SettingsState {
	return s.apply(ctx, s.settings.SetThemeMode(ctx, mode))
}

// SetColorTheme persists an accent color choice.
func (s *Settings) SetColorTheme(ctx context.Context, theme models.ColorTheme) SettingsState {
	return s.apply(ctx, s.settings.SetColorTheme(ctx, theme))
}

// SetLanguage persists a locale choice.
func (s *Settings) SetLanguage(ctx context.Context, code models.LanguageCode) SettingsState {
	return s.apply(ctx, s.settings.SetLanguageCode(ctx, code))
}

// SetAIPersonality persists an AI companion tone choice.
func (s *Settings) SetAIPersonality(ctx context.Context, personality models.AIPersonality) SettingsState {
	return s.apply(ctx, s.settings.SetAIPersonality(ctx, personality))
}

// SetFontFamily persists a journal font choice.
func (s *Settings) SetFontFamily(ctx context.Context, font models.FontFamily) SettingsState {
	return s.apply(ctx, s.settings.SetFontFamily(ctx, font))
}

// CycleTextAlign advances the journal text alignment.
func (s *Settings) CycleTextAlign(ctx context.Context) SettingsState {
	_, err := s.settings.CycleTextAlign(ctx)
	return s.apply(ctx, err)
}

func (s *Settings) apply(ctx context.Context, err error) SettingsState {
	if err != nil {
		s.logger.Error().Err(err).Msg("settings write failed")

		s.mu.Lock()
		s.state.Err = err
		snapshot := s.state
		s.mu.Unlock()
		return snapshot
	}

	return s.Reload(ctx)
}
