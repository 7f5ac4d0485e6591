package ui

import (
	"fmt"
	"strings"
	"time"
)

// formatDate renders an ISO timestamp as a short date, or an em dash when
// empty or unparseable.
func formatDate(iso string) string {
	t, ok := parseISO(iso)
	if !ok {
		return "—"
	}
	return t.Format("2 Jan 2006")
}

// formatDateTime renders an ISO timestamp with time of day.
func formatDateTime(iso string) string {
	t, ok := parseISO(iso)
	if !ok {
		return "—"
	}
	return t.Format("2 Jan 2006 15:04")
}

// timeAgo renders an ISO timestamp relative to now, degrading to an
// absolute date after a month.
func timeAgo(iso string) string {
	t, ok := parseISO(iso)
	if !ok {
		return "never"
	}
	diff := time.Since(t)
	switch {
	case diff < 10*time.Second:
		return "just now"
	case diff < time.Minute:
		return fmt.Sprintf("%ds ago", int(diff.Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
	return formatDate(iso)
}

func parseISO(iso string) (time.Time, bool) {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return time.Time{}, false
	}
	for _, layout := range [...]string{time.RFC3339, "2006-01-02T15:04:05.000Z", "2006-01-02"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// truncate shortens s to width runes, ellipsizing when cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// pad right-pads or truncates s to exactly width display cells.
func pad(s string, width int) string {
	s = truncate(s, width)
	if gap := width - len([]rune(s)); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// cycle advances through options, treating "" as the first entry so a
// filter cycles back to pass-through.
func cycle(current string, options []string) string {
	if len(options) == 0 {
		return ""
	}
	for i, opt := range options {
		if opt == current {
			if i == len(options)-1 {
				return ""
			}
			return options[i+1]
		}
	}
	return options[0]
}
