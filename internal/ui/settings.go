package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lubu-ai/soletrack/internal/settings"
)

// settingsForm edits the reference lists as comma-separated text: team
// members, clients, and sizes as code:range pairs.
type settingsForm struct {
	team    textinput.Model
	clients textinput.Model
	sizes   textinput.Model
	focus   int
}

func (m *Model) openSettings() {
	lists := m.store.Lists()

	f := settingsForm{
		team:    newInput("Ahmed, Luca", 200),
		clients: newInput("Spire, HAUHSU", 200),
		sizes:   newInput("B:38-39, C:40-41", 200),
	}
	f.team.SetValue(strings.Join(lists.TeamMembers, ", "))
	f.clients.SetValue(strings.Join(lists.Clients, ", "))
	f.sizes.SetValue(formatSizes(lists.Sizes))
	f.team.Focus()

	m.settings = f
	m.mode = modeSettings
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.mode = modeTable
		return m, nil

	case "tab", "down":
		m.settings.setFocus((m.settings.focus + 1) % 3)
		return m, nil

	case "shift+tab", "up":
		m.settings.setFocus((m.settings.focus + 2) % 3)
		return m, nil

	case "enter":
		lists := settings.Lists{
			TeamMembers: splitList(m.settings.team.Value()),
			Clients:     splitList(m.settings.clients.Value()),
			Sizes:       parseSizes(m.settings.sizes.Value()),
		}
		// Validation failures toast and keep the editor open.
		if err := m.store.UpdateLists(lists); err == nil {
			m.mode = modeTable
		}
		return m, refreshCmd()
	}

	var cmd tea.Cmd
	switch m.settings.focus {
	case 0:
		m.settings.team, cmd = m.settings.team.Update(msg)
	case 1:
		m.settings.clients, cmd = m.settings.clients.Update(msg)
	case 2:
		m.settings.sizes, cmd = m.settings.sizes.Update(msg)
	}
	return m, cmd
}

func (f *settingsForm) setFocus(focus int) {
	f.focus = focus
	inputs := []*textinput.Model{&f.team, &f.clients, &f.sizes}
	for i, in := range inputs {
		if i == focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m Model) renderSettings() string {
	line := func(idx int, label, view string) string {
		marker := "  "
		if m.settings.focus == idx {
			marker = m.styles.Accent.Render("> ")
		}
		return marker + pad(label, 14) + view + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(line(0, "Team members", m.settings.team.View()))
	b.WriteString(line(1, "Clients", m.settings.clients.View()))
	b.WriteString(line(2, "Sizes", m.settings.sizes.View()))
	b.WriteString("\n")
	b.WriteString(m.styles.InputHint.Render("comma-separated; sizes as code:range"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Faint.Render("enter save · tab next · esc cancel"))
	return b.String()
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseSizes(raw string) []settings.Size {
	var sizes []settings.Size
	for _, part := range strings.Split(raw, ",") {
		code, rng, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		sizes = append(sizes, settings.Size{
			Code:  strings.TrimSpace(code),
			Range: strings.TrimSpace(rng),
		})
	}
	return sizes
}

func formatSizes(sizes []settings.Size) string {
	parts := make([]string, 0, len(sizes))
	for _, s := range sizes {
		parts = append(parts, s.Code+":"+s.Range)
	}
	return strings.Join(parts, ", ")
}
