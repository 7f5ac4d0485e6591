package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lubu-ai/soletrack/internal/model"
)

// editFields lists the inline-editable fields in display order.
var editFields = []struct {
	name  string
	label string
}{
	{"serialNumber", "Serial"},
	{"type", "Type"},
	{"size", "Size"},
	{"location", "Location"},
	{"enclosure", "Enclosure"},
	{"pairStatus", "Pair status"},
	{"dateAdded", "Date added"},
	{"dateSent", "Date sent"},
	{"notes", "Notes"},
}

// editState drives the two-phase inline edit: pick a field, then type the
// new value.
type editState struct {
	id       string
	label    string
	fieldIdx int
	typing   bool
	input    textinput.Model
}

func (m *Model) openEdit(asset model.Asset) {
	m.edit = editState{id: asset.ID, label: assetLabel(asset)}
	m.mode = modeEdit
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.edit.typing {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			m.edit.typing = false
			return m, nil

		case "enter":
			field := editFields[m.edit.fieldIdx].name
			value := m.edit.input.Value()
			id := m.edit.id
			m.edit.typing = false
			m.mode = modeTable
			return m, m.runOp(func() { m.store.UpdateField(m.ctx, id, field, value) })
		}

		var cmd tea.Cmd
		m.edit.input, cmd = m.edit.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "q":
		m.mode = modeTable
		return m, nil

	case "j", "down":
		if m.edit.fieldIdx < len(editFields)-1 {
			m.edit.fieldIdx++
		}
		return m, nil

	case "k", "up":
		if m.edit.fieldIdx > 0 {
			m.edit.fieldIdx--
		}
		return m, nil

	case "enter", "e":
		asset, ok := m.store.Get(m.edit.id)
		if !ok {
			m.mode = modeTable
			return m, nil
		}
		in := newInput("", 120)
		in.SetValue(asset.Field(editFields[m.edit.fieldIdx].name))
		in.Focus()
		in.CursorEnd()
		m.edit.input = in
		m.edit.typing = true
		return m, nil
	}
	return m, nil
}

func (m Model) renderEdit() string {
	asset, ok := m.store.Get(m.edit.id)
	if !ok {
		return m.styles.Muted.Render("insole no longer exists")
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Edit " + m.edit.label))
	b.WriteString("\n\n")

	for i, field := range editFields {
		marker := "  "
		if i == m.edit.fieldIdx {
			marker = m.styles.Accent.Render("> ")
		}
		value := asset.Field(field.name)
		if i == m.edit.fieldIdx && m.edit.typing {
			value = m.edit.input.View()
		} else if value == "" {
			value = m.styles.Faint.Render("—")
		}
		b.WriteString(marker + pad(field.label, 12) + value + "\n")
	}

	b.WriteString("\n")
	if m.edit.typing {
		b.WriteString(m.styles.Faint.Render("enter save · esc back"))
	} else {
		b.WriteString(m.styles.Faint.Render("j/k pick field · enter edit · esc close"))
	}
	return b.String()
}
