package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/smartpack/internal/keymap"
	"github.com/llehouerou/smartpack/internal/layout"
	"github.com/llehouerou/smartpack/internal/resize"
)

// handleKey routes a key press. The help popup sees keys first, except
// ctrl+c, then esc aborts an active drag, then the layout contexts are tried
// in order until one claims the key.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if m.showHelp && key != "ctrl+c" {
		_, cmd := m.help.Update(msg)
		return cmd
	}
	if m.dragging != nil && key == "esc" {
		m.dragging.Cancel()
		m.dragging = nil
		return nil
	}

	for _, ctx := range keymap.LayoutContexts {
		a, ok := m.keys.Resolve(ctx, key)
		if !ok {
			continue
		}
		if handled, cmd := m.dispatch(ctx, a); handled {
			return cmd
		}
	}
	return nil
}

// dispatch runs a resolved action. It reports false when the action does
// not apply right now, letting a later context try the key.
func (m *Model) dispatch(ctx keymap.Context, a keymap.Action) (bool, tea.Cmd) {
	switch ctx {
	case keymap.ContextGlobal:
		return m.globalAction(a)
	case keymap.ContextColumns:
		return m.columnAction(a), nil
	case keymap.ContextHandle:
		return m.handleAction(a), nil
	}
	return false, nil
}

func (m *Model) globalAction(a keymap.Action) (bool, tea.Cmd) {
	switch a {
	case keymap.ActionQuit:
		m.quitting = true
		m.Close()
		return true, tea.Quit
	case keymap.ActionHelp:
		m.showHelp = true
		m.help.SetContexts(keymap.LayoutContexts)
	case keymap.ActionResetLayout:
		m.store.ResetLayout()
	case keymap.ActionReduceMotion:
		m.store.SetReducedMotion(!m.store.PrefersReducedMotion())
	default:
		return false, nil
	}
	return true, nil
}

func (m *Model) columnAction(a keymap.Action) bool {
	panel := m.panels[m.focusColumn]
	switch a {
	case keymap.ActionToggleTripDetails:
		m.toggle(layout.TripDetails)
	case keymap.ActionTogglePackingChecklist:
		m.toggle(layout.PackingChecklist)
	case keymap.ActionToggleSuggestions:
		m.toggle(layout.Suggestions)
	case keymap.ActionScrollUp:
		panel.ScrollUp(1)
	case keymap.ActionScrollDown:
		panel.ScrollDown(1)
	case keymap.ActionPageUp:
		panel.PageUp()
	case keymap.ActionPageDown:
		panel.PageDown()
	default:
		return false
	}
	return true
}

func (m *Model) handleAction(a keymap.Action) bool {
	switch a {
	case keymap.ActionFocusNextHandle:
		m.cycleHandle(1)
	case keymap.ActionFocusPrevHandle:
		m.cycleHandle(-1)
	case keymap.ActionBlurHandle:
		if m.focusHandle < 0 {
			return false
		}
		m.focusHandle = -1
	case keymap.ActionResizeLeft:
		return m.resizeFocused(resize.ArrowLeft, false)
	case keymap.ActionResizeRight:
		return m.resizeFocused(resize.ArrowRight, false)
	case keymap.ActionResizeLeftLarge:
		return m.resizeFocused(resize.ArrowLeft, true)
	case keymap.ActionResizeRightLarge:
		return m.resizeFocused(resize.ArrowRight, true)
	default:
		return false
	}
	return true
}

// toggle flips a column from the navigation bar or its key. The last
// visible column cannot be toggled off.
func (m *Model) toggle(id layout.ColumnID) {
	if !m.store.CanToggle(id) {
		return
	}
	m.haptics.Tap()
	m.store.ToggleColumn(id)
}

// cycleHandle moves handle focus by delta, wrapping around. The handle
// before the first one is "none".
func (m *Model) cycleHandle(delta int) {
	n := len(m.frame().Handles)
	if n == 0 {
		m.focusHandle = -1
		return
	}
	// -1..n-1 shifted to 0..n
	next := (m.focusHandle + 1 + delta) % (n + 1)
	if next < 0 {
		next += n + 1
	}
	m.focusHandle = next - 1
}

func (m *Model) resizeFocused(arrow resize.Arrow, shift bool) bool {
	f := m.frame()
	if m.focusHandle < 0 || m.focusHandle >= len(f.Handles) {
		return false
	}
	m.resizers[f.Handles[m.focusHandle].Left].Key(arrow, shift)
	return true
}
