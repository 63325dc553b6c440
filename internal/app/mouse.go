package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/smartpack/internal/ui/navbar"
)

const wheelLines = 3

// handleMouse routes pointer events: presses on handles start a drag,
// presses on the navigation bar toggle columns, the wheel scrolls the
// column under the pointer.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.showHelp {
		return
	}
	if m.dragging != nil && !m.dragging.Dragging() {
		// the close threshold ended the drag
		m.dragging = nil
	}

	x := m.cell.Units(msg.X)
	switch msg.Action {
	case tea.MouseActionMotion:
		if m.dragging != nil {
			m.dragging.Move(x)
			return
		}
		m.hoverHandle = -1
		if m.inContent(msg.Y) {
			if i, ok := m.frame().HandleAt(msg.X); ok {
				m.hoverHandle = i
			}
		}

	case tea.MouseActionRelease:
		if m.dragging != nil {
			m.dragging.Move(x)
			m.dragging.End()
			m.dragging = nil
		}

	case tea.MouseActionPress:
		m.handlePress(msg)
	}
}

func (m *Model) handlePress(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if !m.inContent(msg.Y) {
			return
		}
		if id, ok := m.frame().ColumnAt(msg.X); ok {
			if msg.Button == tea.MouseButtonWheelUp {
				m.panels[id].ScrollUp(wheelLines)
			} else {
				m.panels[id].ScrollDown(wheelLines)
			}
		}
		return
	case tea.MouseButtonLeft:
	default:
		return
	}

	if msg.Y == m.navBarRow() {
		if id, ok := navbar.HitTest(m.toggles(), m.width, msg.X); ok {
			m.toggle(id)
		}
		return
	}
	if !m.inContent(msg.Y) {
		return
	}

	f := m.frame()
	if i, ok := f.HandleAt(msg.X); ok {
		c := m.resizers[f.Handles[i].Left]
		if c.Start(m.cell.Units(msg.X)) {
			m.dragging = c
		}
		return
	}
	if id, ok := f.ColumnAt(msg.X); ok {
		m.focusColumn = id
	}
}

func (m Model) inContent(y int) bool {
	top := m.contentTop()
	return y >= top && y < top+m.contentHeight()
}

func (m Model) toggles() []navbar.Toggle {
	return navbar.Toggles(m.store.Visibility(), m.store.CanToggle)
}
