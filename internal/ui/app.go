// Package ui provides the Bubble Tea terminal interface for soletrack:
// an asset table with search, filters and sorting, plus modal overlays
// for adding, inline editing, history, deletion and settings.
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lubu-ai/soletrack/internal/model"
	"github.com/lubu-ai/soletrack/internal/store"
)

// mode is the active screen: the table, or one of its overlays.
type mode int

const (
	modeTable mode = iota
	modeSearch
	modeAdd
	modeEdit
	modeHistory
	modeDelete
	modeSettings
	modeHelp
)

const (
	refreshInterval = 500 * time.Millisecond
	searchDebounce  = 300 * time.Millisecond
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Store   *store.Store
}

// Model is the root Bubble Tea state.
type Model struct {
	ctx    context.Context
	store  *store.Store
	styles Styles

	width  int
	height int
	ready  bool
	mode   mode

	rows     []model.Asset
	selected int

	searchInput textinput.Model
	searchSeq   int

	form     addForm
	edit     editState
	confirm  deleteTarget
	settings settingsForm
}

type deleteTarget struct {
	id    string
	label string
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	search := textinput.New()
	search.Placeholder = "search serial, type, size, location, notes"
	search.Prompt = "/ "
	search.CharLimit = 64

	return Model{
		ctx:         ctx,
		store:       opts.Store,
		styles:      DefaultStyles(),
		searchInput: search,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, tickCmd(), refreshCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		m.refreshRows()
		return m, tickCmd()

	case refreshMsg:
		m.refreshRows()
		return m, nil

	case searchDebounceMsg:
		// Stale timers from superseded keystrokes are dropped.
		if msg.seq != m.searchSeq {
			return m, nil
		}
		query := m.searchInput.Value()
		return m, m.runOp(func() {
			m.store.SetSearch(query)
		})
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.mode {
	case modeAdd:
		return m.placeOverlay(m.renderAddForm())
	case modeEdit:
		return m.placeOverlay(m.renderEdit())
	case modeHistory:
		return m.placeOverlay(m.renderHistory())
	case modeDelete:
		return m.placeOverlay(m.renderDeleteConfirm())
	case modeSettings:
		return m.placeOverlay(m.renderSettings())
	case modeHelp:
		return m.placeOverlay(m.renderHelp())
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTable())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) placeOverlay(content string) string {
	boxed := m.styles.Overlay.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxed)
}

// refreshRows pulls the latest filtered view and keeps the cursor on a
// valid row.
func (m *Model) refreshRows() {
	m.rows = m.store.Filtered()
	if m.selected >= len(m.rows) {
		m.selected = len(m.rows) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) selectedAsset() (model.Asset, bool) {
	if m.selected < 0 || m.selected >= len(m.rows) {
		return model.Asset{}, false
	}
	return m.rows[m.selected], true
}

// Messages

type tickMsg time.Time

type refreshMsg struct{}

type searchDebounceMsg struct {
	seq int
}

// Commands

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// runOp executes a store operation off the event loop and triggers a
// refresh when it settles. All store mutations go through here so the UI
// never blocks on network I/O.
func (m Model) runOp(f func()) tea.Cmd {
	return func() tea.Msg {
		f()
		return refreshMsg{}
	}
}

func debounceCmd(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
