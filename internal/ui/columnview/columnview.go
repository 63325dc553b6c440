// Package columnview renders one layout column: a bordered panel with a
// title and a scrollable body.
package columnview

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/llehouerou/smartpack/internal/layout"
	"github.com/llehouerou/smartpack/internal/ui"
	"github.com/llehouerou/smartpack/internal/ui/render"
	"github.com/llehouerou/smartpack/internal/ui/styles"
)

// Model is a single column panel.
type Model struct {
	ui.Base
	id       layout.ColumnID
	lines    []string
	body     viewport.Model
	settling bool
}

// New creates a panel for the given column.
func New(id layout.ColumnID) Model {
	return Model{id: id, body: viewport.New(0, 0)}
}

// Column returns the column the panel shows.
func (m Model) Column() layout.ColumnID {
	return m.id
}

// SetContent replaces the body lines. Lines are sanitized.
func (m *Model) SetContent(lines []string) {
	m.lines = make([]string, len(lines))
	for i, l := range lines {
		m.lines[i] = render.Sanitize(l)
	}
	m.refresh()
}

// SetSize sets the outer panel size, border included.
func (m *Model) SetSize(width, height int) {
	if width == m.Width() && height == m.Height() {
		return
	}
	m.Base.SetSize(width, height)
	m.body.Width = m.InnerWidth()
	m.body.Height = m.InnerHeight(ui.PanelOverhead)
	m.refresh()
}

// SetSettling marks the panel as part of a running layout transition.
func (m *Model) SetSettling(settling bool) {
	m.settling = settling
}

// ScrollUp scrolls the body up by n lines.
func (m *Model) ScrollUp(n int) { m.body.ScrollUp(n) }

// ScrollDown scrolls the body down by n lines.
func (m *Model) ScrollDown(n int) { m.body.ScrollDown(n) }

// PageUp scrolls the body up by one screen.
func (m *Model) PageUp() { m.body.ScrollUp(max(m.body.Height, 1)) }

// PageDown scrolls the body down by one screen.
func (m *Model) PageDown() { m.body.ScrollDown(max(m.body.Height, 1)) }

// Offset returns the index of the first visible body line.
func (m Model) Offset() int {
	return m.body.YOffset
}

// View renders the panel at exactly its size.
func (m Model) View() string {
	if !m.Bordered() {
		return render.Block(nil, m.Width(), m.Height())
	}

	inner := m.InnerWidth()
	t := styles.T()
	lines := make([]string, 0, m.InnerHeight(ui.BorderHeight))
	if m.Height() > ui.BorderHeight {
		lines = append(lines, t.S().Title.Render(render.TruncateAndPad(m.id.Title(), inner)))
	}
	if m.Height() > ui.BorderHeight+1 {
		lines = append(lines, t.S().Subtle.Render(render.Separator(inner)))
	}
	if m.body.Height > 0 {
		lines = append(lines, strings.Split(m.body.View(), "\n")...)
	}

	content := render.Block(lines, inner, m.Height()-ui.BorderHeight)
	return styles.PanelStyle(m.IsFocused(), m.settling).Render(content)
}

func (m *Model) refresh() {
	w := m.InnerWidth()
	fitted := make([]string, len(m.lines))
	for i, l := range m.lines {
		fitted[i] = render.Fit(l, w)
	}
	m.body.SetContent(strings.Join(fitted, "\n"))
}
