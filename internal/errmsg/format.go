// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Layout persistence
	OpLayoutLoad  Op = "load column layout"
	OpLayoutSave  Op = "save column layout"
	OpLayoutReset Op = "reset column layout"

	// Column actions
	OpColumnToggle Op = "toggle column"
	OpColumnResize Op = "resize column"

	// Storage
	OpStorageOpen Op = "open layout storage"

	// Configuration
	OpConfigLoad   Op = "load config"
	OpConfigReload Op = "reload config"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
