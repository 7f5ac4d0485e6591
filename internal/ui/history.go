package ui

import (
	"fmt"
	"strings"
)

// renderHistory draws the change log fetched for one asset. History is
// remote-owned; an empty list after loading means no recorded changes (or
// a failed fetch, which already raised a toast).
func (m Model) renderHistory() string {
	entries, id, loading := m.store.History()

	label := id
	if asset, ok := m.store.Get(id); ok {
		label = assetLabel(asset)
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("History " + label))
	b.WriteString("\n\n")

	switch {
	case loading:
		b.WriteString(m.styles.Muted.Render("loading history…"))
	case !m.store.Configured():
		b.WriteString(m.styles.Muted.Render("endpoint not configured - history unavailable"))
	case len(entries) == 0:
		b.WriteString(m.styles.Muted.Render("no recorded changes"))
	default:
		for i, entry := range entries {
			b.WriteString(m.styles.Accent.Render(formatDateTime(entry.Timestamp)))
			b.WriteString("\n")
			for _, change := range entry.Changes {
				b.WriteString(fmt.Sprintf("  %s: %s → %s\n",
					change.Field,
					emptyDash(change.OldValue),
					emptyDash(change.NewValue)))
			}
			if i < len(entries)-1 {
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Faint.Render("esc close"))
	return b.String()
}

func emptyDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
