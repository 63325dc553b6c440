package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/smartpack/internal/ui/action"
	"github.com/llehouerou/smartpack/internal/ui/popup"
)

// PopupHarness drives a popup the way the root model does: sized to the
// terminal, fed keys by binding name, its commands run synchronously.
type PopupHarness struct {
	popup  popup.Popup
	width  int
	height int
	last   tea.Cmd
}

// NewPopupHarness initializes p and sizes it to a width x height terminal.
func NewPopupHarness(p popup.Popup, width, height int) *PopupHarness {
	h := &PopupHarness{popup: p, width: width, height: height}
	h.last = p.Init()
	p.SetSize(width, height)
	return h
}

// Press sends each named key in turn, e.g. "j", "pgdown", "esc".
func (h *PopupHarness) Press(keys ...string) {
	for _, k := range keys {
		h.Send(Key(k))
	}
}

// Send delivers msg and keeps the returned command.
func (h *PopupHarness) Send(msg tea.Msg) {
	h.popup, h.last = h.popup.Update(msg)
}

// Action runs the last returned command and reports the action it raised.
func (h *PopupHarness) Action() (action.Msg, bool) {
	msg, ok := ExecuteCmd(h.last).(action.Msg)
	return msg, ok
}

// View is the popup content without its border.
func (h *PopupHarness) View() string {
	return h.popup.View()
}

// Screen is the bordered box centered on the terminal, as the root model
// overlays it.
func (h *PopupHarness) Screen() string {
	return popup.RenderBordered(h.popup.View(), h.width, h.height, popup.SizeAuto)
}

// ExecuteCmd runs cmd and returns its message, nil for a nil command.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
