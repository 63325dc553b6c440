package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/smartpack/internal/layout"
	"github.com/llehouerou/smartpack/internal/ui/geometry"
	"github.com/llehouerou/smartpack/internal/ui/handle"
	"github.com/llehouerou/smartpack/internal/ui/navbar"
)

// settleTickMsg advances the width transition by one frame.
type settleTickMsg struct{}

func settleTickCmd() tea.Cmd {
	return tea.Tick(time.Second/settleFPS, func(time.Time) tea.Msg {
		return settleTickMsg{}
	})
}

// statusHeight is 1 while there is a status message to show.
func (m Model) statusHeight() int {
	if m.status() != "" {
		return geometry.StatusHeight
	}
	return 0
}

func (m Model) contentOpts() geometry.ContentOpts {
	return geometry.ContentOpts{
		HeaderHeight: geometry.HeaderHeight,
		NavBarHeight: navbar.Height,
		StatusHeight: m.statusHeight(),
	}
}

// contentTop is the first row of the columns.
func (m Model) contentTop() int {
	return geometry.HeaderHeight
}

func (m Model) contentHeight() int {
	return geometry.ContentHeight(m.height, m.contentOpts())
}

// navBarRow is the row of the navigation bar.
func (m Model) navBarRow() int {
	return m.height - navbar.Height
}

// margin is the blank space left of the first column, in cells.
func (m Model) margin() int {
	return m.cell.Cells(m.store.Metrics().Padding / 2)
}

// targetWidths is what the columns settle toward at the current terminal
// width. The store's viewport lags behind while a resize is debounced.
func (m Model) targetWidths() layout.Widths {
	vw, _ := m.cell.Viewport(m.width, m.height)
	return geometry.TargetWidths(m.store.Metrics(), m.store.Visibility(), m.store.Widths(), vw)
}

// frame places the visible columns and handles using the rendered widths.
func (m Model) frame() geometry.Frame {
	cols := m.store.VisibleColumns()
	if len(cols) == 0 || m.width <= 0 {
		return geometry.Frame{}
	}
	margin := m.margin()
	avail := max(m.width-2*margin-handle.Width*(len(cols)-1), 0)

	rendered := m.settle.Current()
	units := make([]float64, len(cols))
	for i, id := range cols {
		units[i] = rendered.Get(id)
	}
	return geometry.Place(cols, geometry.Split(units, avail), margin, handle.Width)
}

// syncLayout brings the rendered widths and panel sizes up to date. On a
// tick the widths move one spring step; outside an animation window they
// snap.
func (m *Model) syncLayout(tick bool) tea.Cmd {
	target := m.targetWidths()

	var cmd tea.Cmd
	animating := m.store.IsAnimating() && !m.store.PrefersReducedMotion()
	switch {
	case !animating:
		m.settle.Snap(target)
	case tick:
		m.settle.Step(target)
	}
	if animating && !m.ticking {
		m.ticking = true
		cmd = settleTickCmd()
	}

	f := m.frame()
	for _, p := range f.Columns {
		panel := m.panels[p.Column]
		panel.SetSize(p.Width, m.contentHeight())
		panel.SetFocused(p.Column == m.focusColumn)
		panel.SetSettling(animating)
	}
	if m.focusHandle >= len(f.Handles) {
		m.focusHandle = -1
	}
	if m.hoverHandle >= len(f.Handles) {
		m.hoverHandle = -1
	}
	if !m.store.Visibility().Get(m.focusColumn) && len(f.Columns) > 0 {
		m.focusColumn = f.Columns[0].Column
	}
	return cmd
}

// handleState returns how the i-th handle of the frame is drawn.
func (m Model) handleState(f geometry.Frame, i int) handle.State {
	h := f.Handles[i]
	switch {
	case m.dragging != nil && m.dragging.Dragging() && m.dragging.Column() == h.Left:
		return handle.Dragging
	case i == m.focusHandle:
		return handle.Focused
	case i == m.hoverHandle:
		return handle.Hover
	default:
		return handle.Idle
	}
}
