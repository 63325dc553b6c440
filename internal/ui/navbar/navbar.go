// Package navbar renders the bottom navigation bar: one toggle per column.
package navbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/smartpack/internal/layout"
	"github.com/llehouerou/smartpack/internal/ui"
	"github.com/llehouerou/smartpack/internal/ui/styles"
)

// Height is the fixed height of the navigation bar (single line).
const Height = 1

const separator = " │ "

// Toggle is the state of one navigation button.
type Toggle struct {
	Column  layout.ColumnID
	Key     string
	Visible bool // pressed
	Enabled bool // false when pressing would hide the last visible column
}

// Toggles builds the buttons for the given visibility in column order.
func Toggles(v layout.Visibility, canToggle func(layout.ColumnID) bool) []Toggle {
	out := make([]Toggle, 0, len(layout.AllColumns))
	for i, id := range layout.AllColumns {
		out = append(out, Toggle{
			Column:  id,
			Key:     string(rune('1' + i)),
			Visible: v.Get(id),
			Enabled: canToggle == nil || canToggle(id),
		})
	}
	return out
}

func label(t Toggle) string {
	return " " + t.Key + " " + t.Column.Title() + " "
}

// span is the cell range of a button within the bar.
type span struct {
	start, end int
}

// spans returns where each button lands when the bar is centered in width.
func spans(toggles []Toggle, width int) []span {
	total := 0
	for i, t := range toggles {
		if i > 0 {
			total += lipgloss.Width(separator)
		}
		total += lipgloss.Width(label(t))
	}

	x := max((width-total)/2, 0)
	out := make([]span, len(toggles))
	for i, t := range toggles {
		if i > 0 {
			x += lipgloss.Width(separator)
		}
		w := lipgloss.Width(label(t))
		out[i] = span{x, x + w}
		x += w
	}
	return out
}

// Render returns the navigation bar for the given width.
func Render(toggles []Toggle, width int) string {
	if width < ui.MinNavBarWidth {
		return ""
	}
	s := styles.T().S()

	parts := make([]string, 0, len(toggles))
	for _, t := range toggles {
		style := s.Released
		switch {
		case !t.Enabled:
			style = s.Disabled
			if t.Visible {
				style = style.Underline(true)
			}
		case t.Visible:
			style = s.Pressed
		}
		parts = append(parts, style.Render(label(t)))
	}
	content := strings.Join(parts, s.Subtle.Render(separator))

	if len(toggles) > 0 {
		pad := spans(toggles, width)[0].start
		content = strings.Repeat(" ", pad) + content
	}
	return content
}

// HitTest returns the column whose button is under cell x.
func HitTest(toggles []Toggle, width, x int) (layout.ColumnID, bool) {
	if width < ui.MinNavBarWidth {
		return 0, false
	}
	for i, sp := range spans(toggles, width) {
		if x >= sp.start && x < sp.end {
			return toggles[i].Column, true
		}
	}
	return 0, false
}
