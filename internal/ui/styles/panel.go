package styles

import "github.com/charmbracelet/lipgloss"

var (
	unfocusedPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(T().Border)

	focusedPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(T().BorderFocus)

	// Drawn around a column while a layout transition runs.
	settlingPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.ThickBorder()).
				BorderForeground(T().HandleActive)
)

// PanelStyle returns the column panel style for the given state. A
// settling panel takes precedence over focus.
func PanelStyle(focused, settling bool) lipgloss.Style {
	switch {
	case settling:
		return settlingPanelStyle
	case focused:
		return focusedPanelStyle
	default:
		return unfocusedPanelStyle
	}
}
