package tui

import "strings"

const uiDivider = "──────────────────────────────────────────────────────"

func viewTitle(title string) string {
	return titleStyle.Render(title) + "\n" + uiDivider + "\n"
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func firstLine(v string) string {
	if idx := strings.IndexByte(v, '\n'); idx >= 0 {
		return v[:idx]
	}
	return v
}
