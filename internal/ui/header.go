package ui

import (
	"fmt"
	"sort"
	"strings"
)

// renderHeader draws the title line, the stats line derived from the
// filtered view, and the active filter summary.
func (m Model) renderHeader() string {
	var b strings.Builder

	title := m.styles.Title.Render("soletrack")
	status := make([]string, 0, 4)
	if !m.store.Configured() {
		status = append(status, m.styles.Warning.Render("endpoint not configured"))
	}
	if m.store.Offline() {
		status = append(status, m.styles.Danger.Render("offline"))
	}
	switch {
	case m.store.Loading():
		status = append(status, m.styles.Accent.Render("loading…"))
	case m.store.Syncing():
		status = append(status, m.styles.Accent.Render("syncing…"))
	case m.store.Saving():
		status = append(status, m.styles.Accent.Render("saving…"))
	case m.store.Deleting():
		status = append(status, m.styles.Accent.Render("deleting…"))
	}
	status = append(status, m.styles.Faint.Render("synced "+timeAgo(m.store.LastSynced())))

	b.WriteString(title)
	b.WriteString("  ")
	b.WriteString(strings.Join(status, m.styles.Faint.Render(" · ")))
	b.WriteString("\n")

	b.WriteString(m.renderStats())

	if filters := m.store.Filters(); filters.Active() {
		b.WriteString("\n")
		b.WriteString(m.renderFilterBar())
	}
	return b.String()
}

func (m Model) renderStats() string {
	stats := m.store.Stats()
	lists := m.store.Lists()

	parts := []string{
		fmt.Sprintf("%d shown", len(m.rows)),
		fmt.Sprintf("Core %d", stats.Core),
		fmt.Sprintf("Advanced %d", stats.Advanced),
		fmt.Sprintf("Clients %d", stats.WithClients),
		fmt.Sprintf("Lost/Damaged %d", stats.LostDamaged),
	}
	for _, size := range lists.Sizes {
		parts = append(parts, fmt.Sprintf("%s:%d", size.Code, stats.Sizes[size.Code]))
	}
	return m.styles.Muted.Render(strings.Join(parts, " · "))
}

func (m Model) renderFilterBar() string {
	filters := m.store.Filters()
	parts := make([]string, 0, 4)
	if filters.Search != "" {
		parts = append(parts, "search="+filters.Search)
	}
	if filters.Type != "" {
		parts = append(parts, "type="+filters.Type)
	}
	if filters.Size != "" {
		parts = append(parts, "size="+filters.Size)
	}
	if filters.Location != "" {
		parts = append(parts, "location="+filters.Location)
	}
	sort.Strings(parts)
	return m.styles.Accent.Render("filters: " + strings.Join(parts, "  ") + "  (c to clear)")
}

// renderFooter draws the search input when active, the key hints, and the
// live toasts.
func (m Model) renderFooter() string {
	var b strings.Builder

	if m.mode == modeSearch {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Faint.Render(
		"a add · e edit · H history · x delete · / search · f/z/L filters · 1-7 sort · S sync · s settings · ? help · q quit"))

	for _, toast := range m.store.Notifications() {
		b.WriteString("\n")
		b.WriteString(m.renderToast(toast))
	}
	return b.String()
}
