// Package handle renders the vertical drag handle between two columns.
package handle

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/smartpack/internal/ui/styles"
)

// Width is the width of a handle in cells.
const Width = 1

// State is the interaction state of a handle.
type State int

const (
	Idle State = iota
	Hover
	Focused
	Dragging
)

const (
	idleGlyph   = "│"
	activeGlyph = "┃"
	gripGlyph   = "⁞"
)

// Render draws a handle of the given height. The middle row carries a grip
// while the handle is hovered, focused or dragged. A dragged handle glows
// from the grip outward.
func Render(height int, state State) string {
	if height <= 0 {
		return ""
	}
	t := styles.T()

	glyph := idleGlyph
	style := lipgloss.NewStyle().Foreground(t.Handle)
	if state != Idle {
		glyph = activeGlyph
		style = style.Foreground(t.HandleActive)
	}

	rows := make([]string, height)
	for i := range rows {
		rows[i] = glyph
	}
	if state != Idle && height >= 3 {
		rows[height/2] = gripGlyph
	}

	if state != Dragging {
		return style.Render(strings.Join(rows, "\n"))
	}
	bold := style.Bold(true)
	for i, r := range rows {
		rows[i] = bold.Foreground(glowAt(i, height)).Render(r)
	}
	return strings.Join(rows, "\n")
}

// glowAt is the color of row i of a dragged handle: the accent at the grip,
// fading to the active handle color at both ends.
func glowAt(i, height int) lipgloss.Color {
	t := styles.T()
	mid := height / 2
	dist := float64(abs(i-mid)) / float64(max(mid, 1))
	return styles.NewGradient(t.Primary, t.HandleActive).At(dist)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
