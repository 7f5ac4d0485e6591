package ui

import (
	"strings"

	"github.com/lubu-ai/soletrack/internal/model"
	"github.com/lubu-ai/soletrack/internal/settings"
)

// tableColumn defines one asset table column.
type tableColumn struct {
	label string
	field string
	width int
}

var tableColumns = []tableColumn{
	{"Serial", "serialNumber", 8},
	{"Type", "type", 10},
	{"Size", "size", 11},
	{"Location", "location", 18},
	{"Added", "dateAdded", 13},
	{"Sent", "dateSent", 13},
	{"Notes", "notes", 0}, // 0 = remaining width
}

const columnGap = "  "

// renderTable draws the filtered asset collection with the cursor row
// inverted, freshly added rows highlighted, and badge colors on type and
// location.
func (m Model) renderTable() string {
	widths := m.columnWidths()
	sorting := m.store.Sorting()
	lists := m.store.Lists()

	var b strings.Builder

	cells := make([]string, len(tableColumns))
	for i, col := range tableColumns {
		label := col.label
		if col.field == sorting.Field {
			if sorting.Desc {
				label += " ▼"
			} else {
				label += " ▲"
			}
		}
		cells[i] = pad(label, widths[i])
	}
	b.WriteString(m.styles.Header.Render(strings.Join(cells, columnGap)))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		if m.store.Loading() {
			b.WriteString(m.styles.Muted.Render("loading insoles…"))
		} else if m.store.Filters().Active() {
			b.WriteString(m.styles.Muted.Render("no insoles match the active filters"))
		} else {
			b.WriteString(m.styles.Muted.Render("no insoles yet - press a to add one"))
		}
		return b.String()
	}

	visible := m.visibleRowCount()
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := start + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(m.rows[i], widths, lists, i == m.selected))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderRow(a model.Asset, widths []int, lists settings.Lists, selected bool) string {
	values := []string{
		a.SerialNumber,
		a.Type,
		lists.SizeLabel(a.Size),
		locationLabel(a.Location),
		formatDate(a.DateAdded),
		formatDate(a.DateSent),
		a.Notes,
	}

	// Selected and highlighted rows take a whole-line style instead of
	// per-cell badge colors.
	if selected || a.Highlight {
		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = pad(v, widths[i])
		}
		line := strings.Join(cells, columnGap)
		if selected {
			return m.styles.Selected.Render(line)
		}
		return m.styles.Highlight.Render(line)
	}

	cells := make([]string, len(values))
	for i, v := range values {
		cell := pad(v, widths[i])
		switch tableColumns[i].field {
		case "type":
			cell = m.styles.TypeStyle(a.Type).Render(cell)
		case "location":
			kind := model.ClassifyLocation(a.Location, lists.TeamMembers, lists.Clients)
			cell = m.styles.LocationStyle(kind).Render(cell)
		case "notes", "dateAdded", "dateSent":
			cell = m.styles.Muted.Render(cell)
		}
		cells[i] = cell
	}
	return strings.Join(cells, columnGap)
}

// columnWidths resolves fixed widths and gives the flexible notes column
// whatever room is left.
func (m Model) columnWidths() []int {
	widths := make([]int, len(tableColumns))
	used := 0
	flexIdx := -1
	for i, col := range tableColumns {
		widths[i] = col.width
		if col.width == 0 {
			flexIdx = i
			continue
		}
		used += col.width + len(columnGap)
	}
	if flexIdx >= 0 {
		remaining := m.width - used
		if remaining < 10 {
			remaining = 10
		}
		widths[flexIdx] = remaining
	}
	return widths
}

func (m Model) visibleRowCount() int {
	// Header block, column header, footer hints and toasts share the
	// screen with the table.
	rows := m.height - 8
	if rows < 3 {
		rows = 3
	}
	return rows
}

func locationLabel(location string) string {
	if strings.TrimSpace(location) == "" {
		return "Unassigned"
	}
	return location
}
