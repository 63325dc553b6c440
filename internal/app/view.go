package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/smartpack/internal/ui/handle"
	"github.com/llehouerou/smartpack/internal/ui/navbar"
	"github.com/llehouerou/smartpack/internal/ui/popup"
	"github.com/llehouerou/smartpack/internal/ui/render"
	"github.com/llehouerou/smartpack/internal/ui/styles"
)

// OSC 22 pointer shapes, understood by xterm, kitty and foot. Other
// terminals ignore the sequence.
const (
	pointerResize  = "\x1b]22;col-resize\x07"
	pointerDefault = "\x1b]22;default\x07"
)

// View renders the application UI.
func (m Model) View() string {
	if m.quitting || m.width == 0 || m.height == 0 {
		return ""
	}

	rows := make([]string, 0, 4)
	rows = append(rows, m.renderHeader())
	if h := m.contentHeight(); h > 0 {
		rows = append(rows, m.renderColumns(h))
	}
	if s := m.status(); s != "" {
		rows = append(rows, styles.T().S().Error.Render(render.Truncate(s, m.width)))
	}
	rows = append(rows, navbar.Render(m.toggles(), m.width))

	view := strings.Join(rows, "\n")
	if m.showHelp {
		box := popup.RenderBordered(m.help.View(), m.width, m.height, popup.SizeAuto)
		view = popup.Compose(view, box, m.width)
	}
	return view
}

func (m Model) renderHeader() string {
	t := styles.T()
	title := styles.NewGradient(t.Primary, t.Secondary).Render("SmartPack", lipgloss.NewStyle().Bold(true))

	right := t.S().Muted.Render(string(m.store.DeviceType()))
	if m.store.PrefersReducedMotion() {
		right = t.S().Subtle.Render("reduced motion · ") + right
	}

	pointer := pointerDefault
	if m.surface.resizing {
		pointer = pointerResize
	}
	return pointer + render.Row(" "+title, right+" ", m.width)
}

// renderColumns draws the panels and handles side by side, height rows tall.
func (m Model) renderColumns(height int) string {
	f := m.frame()
	if len(f.Columns) == 0 {
		return render.Block(nil, m.width, height)
	}

	parts := make([]string, 0, 2*len(f.Columns)+1)
	if x := f.Columns[0].X; x > 0 {
		parts = append(parts, blank(x, height))
	}
	for i, p := range f.Columns {
		if i > 0 {
			parts = append(parts, handle.Render(height, m.handleState(f, i-1)))
		}
		parts = append(parts, m.panels[p.Column].View())
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return render.Block(strings.Split(row, "\n"), m.width, height)
}

// blank is a width x height block of spaces.
func blank(width, height int) string {
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

