// Package config assembles the application configuration from environment
// variables, command-line flags, an optional .env file, and an optional
// JSON file, merged in that order.
package config

import (
	"path/filepath"
	"time"
)

// Config is the top-level configuration container for the moodlog
// application.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the journal database and preference store locations.
	Storage Storage `envPrefix:"STORAGE_"`

	// Auth holds the remote auth service settings.
	Auth Auth `envPrefix:"AUTH_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of env and flag values when non-empty.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds application-level settings.
type App struct {
	// DataDir is the directory holding the journal database, the
	// preference file, and imported images.
	// Env: APP_DATA_DIR
	DataDir string `env:"DATA_DIR" json:"dataDir"`

	// ReminderHour is the local hour (0-23) at which the daily journal
	// reminder fires when notifications are enabled.
	// Env: APP_REMINDER_HOUR
	ReminderHour int `env:"REMINDER_HOUR" json:"reminderHour"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION" json:"version"`
}

// Storage groups the persistence locations.
type Storage struct {
	DB    DB    `envPrefix:"DB_" json:"db"`
	Prefs Prefs `envPrefix:"PREFS_" json:"prefs"`
}

// DB holds the journal database settings.
type DB struct {
	// Path is the sqlite database file.
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH" json:"path"`
}

// Prefs holds the preference store settings.
type Prefs struct {
	// Path is the JSON preference file.
	// Env: STORAGE_PREFS_PATH
	Path string `env:"PATH" json:"path"`
}

// Auth holds remote auth service settings.
type Auth struct {
	// BaseURL is the auth service root (e.g. "https://auth.example.com").
	// Env: AUTH_BASE_URL
	BaseURL string `env:"BASE_URL" json:"baseUrl"`

	// Timeout bounds a single auth request.
	// Env: AUTH_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT" json:"timeout"`
}

// GetConfig builds the effective configuration: .env file, then
// environment, then flags, then the JSON file if one was named.
func GetConfig() (*Config, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

// applyDefaults fills locations that were left unset.
func (c *Config) applyDefaults() {
	if c.App.DataDir == "" {
		c.App.DataDir = "."
	}
	if c.App.ReminderHour == 0 {
		c.App.ReminderHour = 21
	}
	if c.Storage.DB.Path == "" {
		c.Storage.DB.Path = filepath.Join(c.App.DataDir, "moodlog.db")
	}
	if c.Storage.Prefs.Path == "" {
		c.Storage.Prefs.Path = filepath.Join(c.App.DataDir, "prefs.json")
	}
	if c.Auth.Timeout <= 0 {
		c.Auth.Timeout = 15 * time.Second
	}
}
