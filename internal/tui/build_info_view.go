// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LogMind

package tui

import (
	"strings"

	"github.com/logmind/moodlog/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: MoodLog\n")
	b.WriteString("Version: ")
	b.WriteString(info.Version)
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.Date)
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.Commit)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("esc to close"))

	return overlayBoxStyle.Render(b.String())
}
