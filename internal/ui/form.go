package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lubu-ai/soletrack/internal/model"
	"github.com/lubu-ai/soletrack/internal/store"
)

// addForm collects a new insole. Type and size are selectors cycled with
// left/right; everything else is a text input.
type addForm struct {
	serial     textinput.Model
	location   textinput.Model
	enclosure  textinput.Model
	pairStatus textinput.Model
	dateAdded  textinput.Model
	dateSent   textinput.Model
	notes      textinput.Model

	typeIdx int
	sizeIdx int
	focus   int
}

// Form field positions, top to bottom.
const (
	fieldSerial = iota
	fieldType
	fieldSize
	fieldLocation
	fieldEnclosure
	fieldPair
	fieldDateAdded
	fieldDateSent
	fieldNotes
	fieldCount
)

var typeOptions = []string{model.TypeCore, model.TypeAdvanced}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Prompt = ""
	return in
}

// openAddForm seeds the form with the original defaults: type Core,
// size C, first team member as location, enclosure New, pair Both, date
// added today.
func (m *Model) openAddForm() {
	lists := m.store.Lists()

	f := addForm{
		serial:     newInput("4 chars, optional (ctrl+g random)", 4),
		location:   newInput("team member, client or status", 48),
		enclosure:  newInput("enclosure", 32),
		pairStatus: newInput("pair status", 32),
		dateAdded:  newInput("YYYY-MM-DD", 10),
		dateSent:   newInput("YYYY-MM-DD, optional", 10),
		notes:      newInput("notes", 120),
	}
	if len(lists.TeamMembers) > 0 {
		f.location.SetValue(lists.TeamMembers[0])
	}
	f.enclosure.SetValue("New")
	f.pairStatus.SetValue("Both")
	f.dateAdded.SetValue(time.Now().Format("2006-01-02"))

	// Default size C when configured, else the first code.
	for i, size := range lists.Sizes {
		if size.Code == "C" {
			f.sizeIdx = i
			break
		}
	}

	f.serial.Focus()
	m.form = f
	m.mode = modeAdd
}

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.mode = modeTable
		return m, nil

	case "tab", "down":
		m.form.setFocus((m.form.focus + 1) % fieldCount)
		return m, nil

	case "shift+tab", "up":
		m.form.setFocus((m.form.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case "ctrl+g":
		m.form.serial.SetValue(model.GenerateSerial())
		return m, nil

	case "left", "right":
		if m.form.focus == fieldType {
			m.form.typeIdx = (m.form.typeIdx + 1) % len(typeOptions)
			return m, nil
		}
		if m.form.focus == fieldSize {
			if n := len(m.store.Lists().Sizes); n > 0 {
				if msg.String() == "right" {
					m.form.sizeIdx = (m.form.sizeIdx + 1) % n
				} else {
					m.form.sizeIdx = (m.form.sizeIdx + n - 1) % n
				}
			}
			return m, nil
		}

	case "enter":
		return m.submitAddForm()
	}

	var cmd tea.Cmd
	if in := m.form.focusedInput(); in != nil {
		*in, cmd = in.Update(msg)
	}
	return m, cmd
}

func (m Model) submitAddForm() (tea.Model, tea.Cmd) {
	lists := m.store.Lists()
	size := ""
	if len(lists.Sizes) > 0 {
		size = lists.Sizes[m.form.sizeIdx%len(lists.Sizes)].Code
	}

	draft := store.Draft{
		SerialNumber: m.form.serial.Value(),
		Type:         typeOptions[m.form.typeIdx],
		Size:         size,
		Location:     m.form.location.Value(),
		Enclosure:    m.form.enclosure.Value(),
		PairStatus:   m.form.pairStatus.Value(),
		DateAdded:    m.form.dateAdded.Value(),
		DateSent:     m.form.dateSent.Value(),
		Notes:        m.form.notes.Value(),
	}

	// Invalid serials keep the form open; the store surfaces the toast.
	if !model.IsValidSerial(model.NormalizeSerial(draft.SerialNumber)) {
		return m, m.runOp(func() { m.store.Create(m.ctx, draft) })
	}

	m.mode = modeTable
	return m, m.runOp(func() { m.store.Create(m.ctx, draft) })
}

func (f *addForm) inputs() []*textinput.Model {
	return []*textinput.Model{
		&f.serial, nil, nil, &f.location, &f.enclosure,
		&f.pairStatus, &f.dateAdded, &f.dateSent, &f.notes,
	}
}

func (f *addForm) focusedInput() *textinput.Model {
	return f.inputs()[f.focus]
}

func (f *addForm) setFocus(focus int) {
	f.focus = focus
	for i, in := range f.inputs() {
		if in == nil {
			continue
		}
		if i == focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m Model) renderAddForm() string {
	lists := m.store.Lists()

	sizeLabel := "-"
	if len(lists.Sizes) > 0 {
		sizeLabel = lists.SizeLabel(lists.Sizes[m.form.sizeIdx%len(lists.Sizes)].Code)
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Add insole"))
	b.WriteString("\n\n")
	b.WriteString(m.formLine(fieldSerial, "Serial", m.form.serial.View()))
	b.WriteString(m.formLine(fieldType, "Type", m.selectorView(typeOptions[m.form.typeIdx], m.form.focus == fieldType)))
	b.WriteString(m.formLine(fieldSize, "Size", m.selectorView(sizeLabel, m.form.focus == fieldSize)))
	b.WriteString(m.formLine(fieldLocation, "Location", m.form.location.View()))
	b.WriteString(m.formLine(fieldEnclosure, "Enclosure", m.form.enclosure.View()))
	b.WriteString(m.formLine(fieldPair, "Pair status", m.form.pairStatus.View()))
	b.WriteString(m.formLine(fieldDateAdded, "Date added", m.form.dateAdded.View()))
	b.WriteString(m.formLine(fieldDateSent, "Date sent", m.form.dateSent.View()))
	b.WriteString(m.formLine(fieldNotes, "Notes", m.form.notes.View()))
	b.WriteString("\n")
	b.WriteString(m.styles.InputHint.Render("known locations: " + strings.Join(m.store.KnownLocations(), ", ")))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Faint.Render("enter save · tab next · ←/→ change selection · esc cancel"))
	return b.String()
}

func (m Model) formLine(field int, label, value string) string {
	marker := "  "
	if m.form.focus == field {
		marker = m.styles.Accent.Render("> ")
	}
	return marker + pad(label, 12) + value + "\n"
}

func (m Model) selectorView(value string, focused bool) string {
	if focused {
		return m.styles.Accent.Render("‹ " + value + " ›")
	}
	return value
}
