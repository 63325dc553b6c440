// Package testutil provides helpers for testing the terminal views.
package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes every escape sequence, styles as well as the OSC
// pointer-shape sequences of the header.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the number of cells s occupies on screen.
func MeasureWidth(s string) int {
	return ansi.StringWidth(s)
}

// AssertContains returns a message when the unstyled output lacks substr,
// or "" when it is there.
func AssertContains(output, substr string) string {
	if !strings.Contains(StripANSI(output), substr) {
		return "expected output to contain " + substr
	}
	return ""
}

// AssertNotContains is the inverse of AssertContains.
func AssertNotContains(output, substr string) string {
	if strings.Contains(StripANSI(output), substr) {
		return "expected output to NOT contain " + substr
	}
	return ""
}

// specialKeys maps the key names used in bindings to their key types.
var specialKeys = map[string]tea.KeyType{
	"esc":         tea.KeyEscape,
	"enter":       tea.KeyEnter,
	"tab":         tea.KeyTab,
	"shift+tab":   tea.KeyShiftTab,
	"up":          tea.KeyUp,
	"down":        tea.KeyDown,
	"left":        tea.KeyLeft,
	"right":       tea.KeyRight,
	"shift+left":  tea.KeyShiftLeft,
	"shift+right": tea.KeyShiftRight,
	"pgup":        tea.KeyPgUp,
	"pgdown":      tea.KeyPgDown,
	"ctrl+c":      tea.KeyCtrlC,
}

// Key builds the key message whose String() is name, so tests can press
// keys by the names the key bindings use.
func Key(name string) tea.KeyMsg {
	if t, ok := specialKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}
