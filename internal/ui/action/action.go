// Package action defines the messages UI components send to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action represents an action from a UI component.
// The ActionType method returns a string identifier for logging.
type Action interface {
	ActionType() string
}

// Msg wraps a UI action with the name of the component that raised it.
type Msg struct {
	Source string // "help", "navbar"
	Action Action
}

var _ tea.Msg = Msg{}
