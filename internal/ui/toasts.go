package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lubu-ai/soletrack/internal/store"
)

// renderToast draws one notification line. Expiring entries fade to the
// faint style just before removal.
func (m Model) renderToast(toast store.Notification) string {
	var style lipgloss.Style
	switch {
	case toast.Expiring:
		style = m.styles.Faint
	case toast.Severity == store.SeverityError:
		style = m.styles.Danger
	case toast.Severity == store.SeveritySuccess:
		style = m.styles.Success
	default:
		style = m.styles.Muted
	}
	return style.Render("• " + toast.Message)
}
