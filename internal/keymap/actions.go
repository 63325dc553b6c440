// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit         Action = "quit"
	ActionHelp         Action = "help"
	ActionResetLayout  Action = "reset_layout"
	ActionReduceMotion Action = "toggle_reduce_motion"

	// Column visibility (bottom navigation)
	ActionToggleTripDetails      Action = "toggle_trip_details"
	ActionTogglePackingChecklist Action = "toggle_packing_checklist"
	ActionToggleSuggestions      Action = "toggle_suggestions"

	// Drag handle focus
	ActionFocusNextHandle Action = "focus_next_handle" // tab
	ActionFocusPrevHandle Action = "focus_prev_handle" // shift+tab
	ActionBlurHandle      Action = "blur_handle"       // esc

	// Keyboard resizing of the focused handle
	ActionResizeLeft       Action = "resize_left"        // 10 units
	ActionResizeRight      Action = "resize_right"       // 10 units
	ActionResizeLeftLarge  Action = "resize_left_large"  // 50 units
	ActionResizeRightLarge Action = "resize_right_large" // 50 units

	// Help popup
	ActionCloseHelp Action = "close_help"

	// Scrolling, in the focused column or the help popup
	ActionScrollUp   Action = "scroll_up"
	ActionScrollDown Action = "scroll_down"
	ActionPageUp     Action = "page_up"
	ActionPageDown   Action = "page_down"
)
