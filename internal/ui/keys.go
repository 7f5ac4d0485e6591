package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lubu-ai/soletrack/internal/model"
)

// sortColumns maps the number keys 1..7 to sortable fields, matching the
// table column order.
var sortColumns = []string{"serialNumber", "type", "size", "location", "dateAdded", "dateSent", "notes"}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeAdd:
		return m.handleAddKey(msg)
	case modeEdit:
		return m.handleEditKey(msg)
	case modeHistory:
		return m.handleHistoryKey(msg)
	case modeDelete:
		return m.handleDeleteKey(msg)
	case modeSettings:
		return m.handleSettingsKey(msg)
	case modeHelp:
		m.mode = modeTable
		return m, nil
	}
	return m.handleTableKey(msg)
}

func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		m.mode = modeHelp
		return m, nil

	case "j", "down":
		if m.selected < len(m.rows)-1 {
			m.selected++
		}
		return m, nil

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "g", "home":
		m.selected = 0
		return m, nil

	case "G", "end":
		if len(m.rows) > 0 {
			m.selected = len(m.rows) - 1
		}
		return m, nil

	case "/":
		m.mode = modeSearch
		m.searchInput.Focus()
		return m, nil

	case "f":
		// Cycle type filter: all -> Core -> Advanced -> all
		next := cycle(m.store.Filters().Type, []string{model.TypeCore, model.TypeAdvanced})
		return m, m.runOp(func() { m.store.SetTypeFilter(next) })

	case "z":
		next := cycle(m.store.Filters().Size, m.store.Lists().SizeCodes())
		return m, m.runOp(func() { m.store.SetSizeFilter(next) })

	case "L":
		next := cycle(m.store.Filters().Location, m.store.UniqueLocations())
		return m, m.runOp(func() { m.store.SetLocationFilter(next) })

	case "c":
		m.searchInput.SetValue("")
		return m, m.runOp(m.store.ClearFilters)

	case "1", "2", "3", "4", "5", "6", "7":
		field := sortColumns[int(msg.String()[0]-'1')]
		return m, m.runOp(func() { m.store.SortBy(field) })

	case "S":
		return m, m.runOp(func() { m.store.Synchronize(m.ctx) })

	case "a":
		m.openAddForm()
		return m, nil

	case "e", "enter":
		if asset, ok := m.selectedAsset(); ok {
			m.openEdit(asset)
		}
		return m, nil

	case "H":
		if asset, ok := m.selectedAsset(); ok {
			m.mode = modeHistory
			id := asset.ID
			return m, m.runOp(func() { m.store.LoadHistory(m.ctx, id) })
		}
		return m, nil

	case "x", "delete":
		if asset, ok := m.selectedAsset(); ok {
			m.confirm = deleteTarget{id: asset.ID, label: assetLabel(asset)}
			m.mode = modeDelete
		}
		return m, nil

	case "s":
		m.openSettings()
		return m, nil
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.mode = modeTable
		m.searchInput.Blur()
		// Apply whatever is typed without waiting out the debounce.
		query := m.searchInput.Value()
		return m, m.runOp(func() { m.store.SetSearch(query) })

	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.searchSeq++
	return m, tea.Batch(cmd, debounceCmd(m.searchSeq))
}

func (m Model) handleDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.confirm.id
		m.confirm = deleteTarget{}
		m.mode = modeTable
		return m, m.runOp(func() { m.store.Remove(m.ctx, id) })

	case "n", "N", "esc":
		m.confirm = deleteTarget{}
		m.mode = modeTable
		return m, nil

	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter", "H":
		m.mode = modeTable
		return m, m.runOp(m.store.ClearHistory)

	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// assetLabel names an asset for confirmations: serial if set, otherwise a
// short id.
func assetLabel(a model.Asset) string {
	if a.SerialNumber != "" {
		return a.SerialNumber
	}
	return truncate(a.ID, 8)
}
