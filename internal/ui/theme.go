package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lubu-ai/soletrack/internal/model"
)

// Styles holds the pre-built lipgloss styles for the UI.
type Styles struct {
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Faint     lipgloss.Style
	Accent    lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Danger    lipgloss.Style
	Header    lipgloss.Style
	Selected  lipgloss.Style
	Highlight lipgloss.Style
	Overlay   lipgloss.Style
	InputHint lipgloss.Style

	BadgeRed     lipgloss.Style
	BadgeOrange  lipgloss.Style
	BadgeGray    lipgloss.Style
	BadgeBlue    lipgloss.Style
	BadgeEmerald lipgloss.Style
	BadgeStone   lipgloss.Style
	BadgeAmber   lipgloss.Style
}

// DefaultStyles builds the single soletrack color scheme.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Faint:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Danger:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true),
		Selected:  lipgloss.NewStyle().Background(lipgloss.Color("57")).Foreground(lipgloss.Color("255")),
		Highlight: lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("255")),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 2),
		InputHint: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),

		BadgeRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		BadgeOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
		BadgeGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		BadgeBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		BadgeEmerald: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		BadgeStone:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		BadgeAmber:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	}
}

// LocationStyle picks the badge style for a location kind, matching the
// original color scheme: red for lost, orange for damaged, gray for stock
// states, blue for team members, emerald for clients, stone when
// unassigned.
func (s Styles) LocationStyle(kind model.LocationKind) lipgloss.Style {
	switch kind {
	case model.LocationLost:
		return s.BadgeRed
	case model.LocationDamaged:
		return s.BadgeOrange
	case model.LocationStock:
		return s.BadgeGray
	case model.LocationTeam:
		return s.BadgeBlue
	case model.LocationClient:
		return s.BadgeEmerald
	default:
		return s.BadgeStone
	}
}

// TypeStyle picks the badge style for an asset type: amber for Advanced,
// stone for Core.
func (s Styles) TypeStyle(assetType string) lipgloss.Style {
	if assetType == model.TypeAdvanced {
		return s.BadgeAmber
	}
	return s.BadgeStone
}
