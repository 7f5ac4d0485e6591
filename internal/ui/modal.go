package ui

import "strings"

func (m Model) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.Danger.Render("Delete insole " + m.confirm.label + "?"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("This removes it locally and from the remote store."))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Faint.Render("y delete · n cancel"))
	return b.String()
}

func (m Model) renderHelp() string {
	rows := [][2]string{
		{"j/k, ↑/↓", "move selection"},
		{"g/G", "first / last row"},
		{"a", "add insole"},
		{"e, enter", "edit selected insole"},
		{"H", "change history for selection"},
		{"x", "delete selected insole"},
		{"/", "search (debounced)"},
		{"f", "cycle type filter"},
		{"z", "cycle size filter"},
		{"L", "cycle location filter"},
		{"c", "clear all filters"},
		{"1-7", "sort by column, again to flip"},
		{"S", "sync from remote store"},
		{"s", "edit team/client/size lists"},
		{"q, ctrl+c", "quit"},
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Keys"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(m.styles.Accent.Render(pad(row[0], 12)))
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Faint.Render("any key to close"))
	return b.String()
}
