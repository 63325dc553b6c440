// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// BorderHeight is the vertical space consumed by a panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a panel border.
	BorderWidth = 2

	// TitleHeight is the space for the column title and its separator.
	TitleHeight = 2

	// PanelOverhead is the vertical overhead of a column panel.
	// bodyHeight = panelHeight - PanelOverhead
	PanelOverhead = BorderHeight + TitleHeight

	// MinNavBarWidth is the narrowest terminal the navigation bar renders in.
	MinNavBarWidth = 20
)
