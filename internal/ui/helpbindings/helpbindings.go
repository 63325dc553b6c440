// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/smartpack/internal/keymap"
	"github.com/llehouerou/smartpack/internal/ui"
	"github.com/llehouerou/smartpack/internal/ui/popup"
	"github.com/llehouerou/smartpack/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// chrome is the rows around the list: border, padding, title, footer and
// the margin kept free around the box.
const chrome = 10

// Model lists the bindings of a set of contexts. The list scrolls when it
// is taller than the screen.
type Model struct {
	ui.Base
	keys     *keymap.Resolver
	sections []keymap.Section
	body     viewport.Model
}

// New creates a help popup for the given contexts.
func New(contexts ...keymap.Context) Model {
	m := Model{
		keys: keymap.NewResolver(keymap.Bindings),
		body: viewport.New(0, 0),
	}
	m.SetContexts(contexts)
	return m
}

// SetContexts selects which contexts are listed, in the given order, and
// scrolls back to the top.
func (m *Model) SetContexts(contexts []keymap.Context) {
	m.sections = keymap.Sections(keymap.Bindings, contexts...)
	m.layout()
	m.body.GotoTop()
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.layout()
}

// Offset is the first listed row shown.
func (m *Model) Offset() int {
	return m.body.YOffset
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	a, ok := m.keys.Resolve(keymap.ContextHelp, keyMsg.String())
	if !ok {
		return m, nil
	}

	switch a {
	case keymap.ActionCloseHelp:
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case keymap.ActionScrollDown:
		m.body.ScrollDown(1)
	case keymap.ActionScrollUp:
		m.body.ScrollUp(1)
	case keymap.ActionPageDown:
		m.body.HalfPageDown()
	case keymap.ActionPageUp:
		m.body.HalfPageUp()
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	var b strings.Builder
	b.WriteString(s.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(m.body.View())
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render(m.footer()))
	return b.String()
}

func (m *Model) footer() string {
	if m.body.TotalLineCount() <= m.body.Height {
		return "?/esc close"
	}
	return fmt.Sprintf("j/k scroll %d%% · ?/esc close", int(m.body.ScrollPercent()*100))
}

// layout sizes the list to its widest row and to the rows the screen can
// spare.
func (m *Model) layout() {
	content := m.list()
	lines := strings.Split(content, "\n")

	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}
	m.body.Width = width
	m.body.Height = min(len(lines), max(m.Height()-chrome, 5))
	m.body.SetContent(content)
}

// list renders one block per context: a heading, a rule, then aligned
// key/description rows.
func (m *Model) list() string {
	t := styles.T()
	heading := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	keyWidth := 0
	for _, sec := range m.sections {
		for _, bnd := range sec.Bindings {
			keyWidth = max(keyWidth, lipgloss.Width(keyLabel(bnd)))
		}
	}

	var rows []string
	for i, sec := range m.sections {
		if i > 0 {
			rows = append(rows, "")
		}
		rows = append(rows,
			heading.Render(sec.Context.Label()),
			t.S().Subtle.Render(strings.Repeat("─", keyWidth+15)))
		for _, bnd := range sec.Bindings {
			label := keyLabel(bnd)
			rows = append(rows, t.S().Key.Render(label+strings.Repeat(" ", keyWidth-lipgloss.Width(label)))+
				"  "+t.S().Base.Render(bnd.Description))
		}
	}
	return strings.Join(rows, "\n")
}

func keyLabel(b keymap.Binding) string {
	return strings.Join(b.Keys, ", ")
}
