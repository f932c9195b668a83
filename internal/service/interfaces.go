package service

import (
	"context"
	"time"

	"github.com/logmind/moodlog/internal/stats"
	"github.com/logmind/moodlog/models"
)

// JournalService defines the use-case contract for journal records:
// writing, browsing by calendar, partial editing, tag attachment, the
// live feed, and statistics.
type JournalService interface {
	// Create validates and saves a new journal record, then attaches the
	// requested tags. The record survives a failed tag attachment: in
	// that case the saved journal is returned together with an error
	// matching ErrTagsNotAttached.
	Create(ctx context.Context, req models.CreateJournalRequest) (models.Journal, error)

	// Get returns one journal with its tags.
	Get(ctx context.Context, id int64) (models.Journal, error)

	// GetAll returns every journal, newest first, with tags.
	GetAll(ctx context.Context) ([]models.Journal, error)

	// GetByDate returns the journals written on the same calendar day as
	// date.
	GetByDate(ctx context.Context, date time.Time) ([]models.Journal, error)

	// GetByMonth returns the journals written in the same year-month as
	// date, for the calendar screen.
	GetByMonth(ctx context.Context, date time.Time) ([]models.Journal, error)

	// GetByDateRange returns the journals written in [start, end]
	// inclusive.
	GetByDateRange(ctx context.Context, start, end time.Time) ([]models.Journal, error)

	// Update applies a partial edit: nil request fields keep their
	// persisted values. Mood and creation time never change.
	Update(ctx context.Context, req models.UpdateJournalRequest) (models.Journal, error)

	// Delete removes a journal and, through the schema, its tag links.
	Delete(ctx context.Context, id int64) error

	// ReplaceTags atomically replaces a journal's tag set.
	ReplaceTags(ctx context.Context, journalID int64, tagIDs []int64) error

	// Subscribe returns a live stream of the full journal list. Entries
	// on the stream carry no tags.
	Subscribe(ctx context.Context) <-chan []models.Journal

	// Statistics computes the statistics snapshot for one period. Every
	// aggregate, the streak included, runs over the period window.
	Statistics(ctx context.Context, period stats.Period) (models.Statistics, error)
}

// TagService defines the use-case contract for tags.
type TagService interface {
	// Create validates the name and saves a new tag. Duplicate names are
	// allowed.
	Create(ctx context.Context, name string, color *string) (models.Tag, error)

	// Get returns one tag.
	Get(ctx context.Context, id int64) (models.Tag, error)

	// GetAll returns every tag, newest first.
	GetAll(ctx context.Context) ([]models.Tag, error)

	// GetByJournal returns the tags attached to a journal.
	GetByJournal(ctx context.Context, journalID int64) ([]models.Tag, error)

	// Update validates the name and replaces name and color of a tag.
	Update(ctx context.Context, id int64, name string, color *string) error

	// Delete removes a tag everywhere it is attached.
	Delete(ctx context.Context, id int64) error
}

// SettingsService exposes the user preferences as typed reads and writes.
// Reads never fail: missing or corrupted values resolve to defaults.
type SettingsService interface {
	// Load returns a snapshot of every preference.
	Load(ctx context.Context) models.Settings

	SetThemeMode(ctx context.Context, mode models.ThemeMode) error
	SetColorTheme(ctx context.Context, theme models.ColorTheme) error
	SetLanguageCode(ctx context.Context, code models.LanguageCode) error
	SetAIPersonality(ctx context.Context, personality models.AIPersonality) error
	SetFontFamily(ctx context.Context, font models.FontFamily) error
	SetNotificationEnabled(ctx context.Context, enabled bool) error
	SetAutoSyncEnabled(ctx context.Context, enabled bool) error

	// CycleTextAlign advances the journal text alignment to the next
	// option and returns it.
	CycleTextAlign(ctx context.Context) (models.TextAlign, error)

	// LastAIUsageDate returns the time of the last AI companion reply, or
	// the zero time when it was never used.
	LastAIUsageDate(ctx context.Context) time.Time

	// MarkAIUsed records now as the last AI companion reply time.
	MarkAIUsed(ctx context.Context) error
}

// AuthService defines the use-case contract for the remote auth boundary.
type AuthService interface {
	// SignInAnonymously opens an anonymous session and records the
	// anonymous login type as onboarded.
	SignInAnonymously(ctx context.Context) (models.User, error)

	// SignInWithGoogle exchanges a Google ID token for a session and
	// records the google login type as onboarded.
	SignInWithGoogle(ctx context.Context, idToken string) (models.User, error)

	// SignOut ends the session. The local signed-out transition always
	// happens; a failed remote call is logged, not returned.
	SignOut(ctx context.Context)

	// UpdateDisplayName changes the profile display name.
	UpdateDisplayName(ctx context.Context, displayName string) error

	// UpdateProfileImage changes the profile photo URL.
	UpdateProfileImage(ctx context.Context, photoURL string) error

	// CurrentUser returns the signed-in user, or nil.
	CurrentUser() *models.User

	// UserChanges streams the signed-in user on every auth state change;
	// nil means signed out.
	UserChanges(ctx context.Context) <-chan *models.User
}

// AppInfoService exposes build-time metadata.
type AppInfoService interface {
	// GetBuildInfo returns version, build date, and commit.
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// Preferences is everything the services consume from the preference
// store. *prefs.Store satisfies it.
type Preferences interface {
	ThemeMode(ctx context.Context) models.ThemeMode
	SetThemeMode(ctx context.Context, mode models.ThemeMode) error
	LanguageCode(ctx context.Context) models.LanguageCode
	SetLanguageCode(ctx context.Context, code models.LanguageCode) error
	AIPersonality(ctx context.Context) models.AIPersonality
	SetAIPersonality(ctx context.Context, personality models.AIPersonality) error
	NotificationEnabled(ctx context.Context) bool
	SetNotificationEnabled(ctx context.Context, enabled bool) error
	AutoSyncEnabled(ctx context.Context) bool
	SetAutoSyncEnabled(ctx context.Context, enabled bool) error
	ColorTheme(ctx context.Context) models.ColorTheme
	SetColorTheme(ctx context.Context, theme models.ColorTheme) error
	FontFamily(ctx context.Context) models.FontFamily
	SetFontFamily(ctx context.Context, font models.FontFamily) error
	TextAlign(ctx context.Context) models.TextAlign
	SetTextAlign(ctx context.Context, align models.TextAlign) error
	OnboardedLoginTypes(ctx context.Context) []string
	AddOnboardedLoginType(ctx context.Context, loginType models.LoginType) error
	LastAIUsageDate(ctx context.Context) time.Time
	SetLastAIUsageDate(ctx context.Context, t time.Time) error
}
