// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LogMind

package models

// AppBuildInfo is build-time metadata injected through linker flags and
// surfaced in the TUI version overlay.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo normalizes empty linker values to "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
