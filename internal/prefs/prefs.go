// Package prefs is the durable key-value preference store. Each setting
// has an independent get/set pair; reads decode defensively and fall back
// to a documented default, never failing on absent or corrupted values.
// There is no cross-key transactionality.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/models"
)

// Preference keys. Each is namespaced by the store file itself and typed
// by its accessor.
const (
	keyThemeMode           = "theme_mode"
	keyLanguageCode        = "language_code"
	keyAIPersonality       = "ai_personality"
	keyNotificationEnabled = "notification_enabled"
	keyAutoSyncEnabled     = "auto_sync_enabled"
	keyColorTheme          = "color_theme"
	keyFontFamily          = "font_family"
	keyTextAlign           = "text_align"
	keyOnboardedLoginTypes = "onboarded_login_types"
	keyLastAIUsageDate     = "last_ai_usage_date"
)

const lastAIUsageLayout = "2006-01-02T15:04:05"

// Store persists preferences as a flat JSON map in a single file. Writes
// go through a temp file and rename so a crash never leaves a truncated
// store behind. Safe for concurrent use.
type Store struct {
	path   string
	logger *logger.Logger

	mu sync.Mutex
}

// NewStore creates a preference store backed by the file at path. The
// parent directory must exist; the file itself is created on first write.
func NewStore(path string, log *logger.Logger) *Store {
	return &Store{
		path:   path,
		logger: log,
	}
}

// load reads the whole preference map. A missing or unreadable file
// resolves to an empty map: every key then reports its default.
func (s *Store) load() map[string]json.RawMessage {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]json.RawMessage{}
	}

	var values map[string]json.RawMessage
	if err := json.Unmarshal(raw, &values); err != nil {
		s.logger.Warn().
			Str("func", "prefs.Store.load").
			Str("path", s.path).
			Msg("preference file corrupted, falling back to defaults")
		return map[string]json.RawMessage{}
	}

	return values
}

// save writes the whole map atomically.
func (s *Store) save(values map[string]json.RawMessage) error {
	raw, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(s.path), ".prefs.tmp")
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace preference file: %w", err)
	}

	return nil
}

// getString reads one string key; absent or undecodable values resolve to
// the empty string for the typed accessor to default.
func (s *Store) getString(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.load()[key]
	if !ok {
		return ""
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}

func (s *Store) setString(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	values := s.load()
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode preference %s: %w", key, err)
	}
	values[key] = raw

	return s.save(values)
}

func (s *Store) getBool(key string, fallback bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.load()[key]
	if !ok {
		return fallback
	}

	var value bool
	if err := json.Unmarshal(raw, &value); err != nil {
		return fallback
	}
	return value
}

func (s *Store) setBool(ctx context.Context, key string, value bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	values := s.load()
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode preference %s: %w", key, err)
	}
	values[key] = raw

	return s.save(values)
}

// ThemeMode returns the stored theme mode, defaulting to system.
func (s *Store) ThemeMode(ctx context.Context) models.ThemeMode {
	return models.ThemeModeFromString(s.getString(keyThemeMode))
}

// SetThemeMode persists the theme mode.
func (s *Store) SetThemeMode(ctx context.Context, mode models.ThemeMode) error {
	return s.setString(ctx, keyThemeMode, string(mode))
}

// LanguageCode returns the stored locale, defaulting to Korean.
func (s *Store) LanguageCode(ctx context.Context) models.LanguageCode {
	return models.LanguageCodeFromString(s.getString(keyLanguageCode))
}

// SetLanguageCode persists the locale.
func (s *Store) SetLanguageCode(ctx context.Context, code models.LanguageCode) error {
	return s.setString(ctx, keyLanguageCode, string(code))
}

// AIPersonality returns the stored AI personality, defaulting to balanced.
func (s *Store) AIPersonality(ctx context.Context) models.AIPersonality {
	return models.AIPersonalityFromString(s.getString(keyAIPersonality))
}

// SetAIPersonality persists the AI personality.
func (s *Store) SetAIPersonality(ctx context.Context, personality models.AIPersonality) error {
	return s.setString(ctx, keyAIPersonality, string(personality))
}

// NotificationEnabled reports the reminder toggle, defaulting to true.
func (s *Store) NotificationEnabled(ctx context.Context) bool {
	return s.getBool(keyNotificationEnabled, true)
}

// SetNotificationEnabled persists the reminder toggle.
func (s *Store) SetNotificationEnabled(ctx context.Context, enabled bool) error {
	return s.setBool(ctx, keyNotificationEnabled, enabled)
}

// AutoSyncEnabled reports the auto-sync toggle, defaulting to true.
func (s *Store) AutoSyncEnabled(ctx context.Context) bool {
	return s.getBool(keyAutoSyncEnabled, true)
}

// SetAutoSyncEnabled persists the auto-sync toggle.
func (s *Store) SetAutoSyncEnabled(ctx context.Context, enabled bool) error {
	return s.setBool(ctx, keyAutoSyncEnabled, enabled)
}

// ColorTheme returns the stored accent color, defaulting to blue.
func (s *Store) ColorTheme(ctx context.Context) models.ColorTheme {
	return models.ColorThemeFromString(s.getString(keyColorTheme))
}

// SetColorTheme persists the accent color.
func (s *Store) SetColorTheme(ctx context.Context, theme models.ColorTheme) error {
	return s.setString(ctx, keyColorTheme, string(theme))
}

// FontFamily returns the stored font, defaulting to pretendard.
func (s *Store) FontFamily(ctx context.Context) models.FontFamily {
	return models.FontFamilyFromString(s.getString(keyFontFamily))
}

// SetFontFamily persists the font.
func (s *Store) SetFontFamily(ctx context.Context, font models.FontFamily) error {
	return s.setString(ctx, keyFontFamily, string(font))
}

// TextAlign returns the stored alignment, defaulting to left.
func (s *Store) TextAlign(ctx context.Context) models.TextAlign {
	return models.TextAlignFromString(s.getString(keyTextAlign))
}

// SetTextAlign persists the alignment.
func (s *Store) SetTextAlign(ctx context.Context, align models.TextAlign) error {
	return s.setString(ctx, keyTextAlign, string(align))
}

// OnboardedLoginTypes returns the set of login methods the user has
// completed onboarding with. Nil when none are recorded.
func (s *Store) OnboardedLoginTypes(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.load()[keyOnboardedLoginTypes]
	if !ok {
		return nil
	}

	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}
	return values
}

// AddOnboardedLoginType unions loginType into the stored set. Adding an
// already present value is a no-op write.
func (s *Store) AddOnboardedLoginType(ctx context.Context, loginType models.LoginType) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	values := s.load()

	var current []string
	if raw, ok := values[keyOnboardedLoginTypes]; ok {
		_ = json.Unmarshal(raw, &current)
	}

	if slices.Contains(current, string(loginType)) {
		return nil
	}
	current = append(current, string(loginType))

	raw, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("failed to encode preference %s: %w", keyOnboardedLoginTypes, err)
	}
	values[keyOnboardedLoginTypes] = raw

	return s.save(values)
}

// LastAIUsageDate returns the last recorded AI usage timestamp, or the
// zero time when absent or unparsable.
func (s *Store) LastAIUsageDate(ctx context.Context) time.Time {
	stored := s.getString(keyLastAIUsageDate)
	if stored == "" {
		return time.Time{}
	}

	t, err := time.ParseInLocation(lastAIUsageLayout, stored, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SetLastAIUsageDate persists the AI usage timestamp.
func (s *Store) SetLastAIUsageDate(ctx context.Context, t time.Time) error {
	return s.setString(ctx, keyLastAIUsageDate, t.Format(lastAIUsageLayout))
}
