// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LogMind

package config

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup. It runs after defaults have been
// applied, so empty storage paths mean the defaults themselves are broken.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (c *Config) validate() error {
	if c.Storage.DB.Path == "" || c.Storage.Prefs.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if c.App.ReminderHour < 0 || c.App.ReminderHour > 23 {
		return ErrInvalidAppConfigs
	}

	if c.Auth.Timeout <= 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
