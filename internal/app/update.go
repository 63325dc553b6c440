package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/smartpack/internal/errmsg"
	"github.com/llehouerou/smartpack/internal/ui/action"
	"github.com/llehouerou/smartpack/internal/ui/helpbindings"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	tick := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)

	case timerMsg:
		msg.t.fire()

	case settleTickMsg:
		m.ticking = false
		tick = true

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case action.Msg:
		if _, ok := msg.Action.(helpbindings.Close); ok {
			m.showHelp = false
		}

	case configReloadedMsg:
		m.notice = ""
		if reduced := msg.cfg.ReduceMotion(); reduced != m.store.PrefersReducedMotion() {
			m.logger.Info("reduced motion preference changed", zap.Bool("reduced", reduced))
			m.store.SetReducedMotion(reduced)
		}

	case configErrorMsg:
		m.logger.Warn("config reload failed", zap.Error(msg.err))
		m.notice = errmsg.Format(errmsg.OpConfigReload, msg.err)
	}

	if m.quitting {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.syncLayout(tick))
}

// handleWindowSize records the terminal size. The first size reaches the
// store at once; later ones are debounced.
func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	w, h := m.cell.Viewport(msg.Width, msg.Height)
	if m.store.Viewport().IsZero() {
		m.store.SetViewport(w, h)
	} else {
		m.viewport.Update(w, h)
	}
	m.help.SetSize(msg.Width, msg.Height)
}

// status is the message shown above the navigation bar, if any.
func (m Model) status() string {
	if err := m.store.LastError(); err != nil {
		return errmsg.Format(errmsg.OpLayoutSave, err)
	}
	return m.notice
}
