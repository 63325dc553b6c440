package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Blue - focused panels, active handles, pressed toggles
	Secondary lipgloss.Color // Amber - title accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase    lipgloss.Color // Panel backgrounds
	BgPressed lipgloss.Color // Pressed navigation toggle

	// Borders
	Border      lipgloss.Color // Unfocused panel borders
	BorderFocus lipgloss.Color // Focused panel borders

	// Drag handles
	Handle       lipgloss.Color // Idle separator
	HandleActive lipgloss.Color // Hovered, focused or dragging

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style // Default text
	Muted    lipgloss.Style // Dimmed text
	Subtle   lipgloss.Style // Very dim text
	Title    lipgloss.Style // Bold, bright
	Key      lipgloss.Style // Key hints
	Pressed  lipgloss.Style // Toggle for a visible column
	Released lipgloss.Style // Toggle for a hidden column
	Disabled lipgloss.Style // Toggle that cannot be used
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

var defaultTheme = Theme{
	// Blue accent, as the column separators use
	Primary:   lipgloss.Color("#3b82f6"),
	Secondary: lipgloss.Color("#f59e0b"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#d1d5db"),
	FgMuted:  lipgloss.Color("#9ca3af"),
	FgSubtle: lipgloss.Color("#4b5563"),

	// Backgrounds
	BgBase:    lipgloss.Color("#111827"),
	BgPressed: lipgloss.Color("#1e3a8a"),

	// Borders
	Border:      lipgloss.Color("#4b5563"),
	BorderFocus: lipgloss.Color("#3b82f6"),

	// Handles
	Handle:       lipgloss.Color("#6b7280"),
	HandleActive: lipgloss.Color("#2563eb"),

	// Status
	Success: lipgloss.Color("#10b981"),
	Error:   lipgloss.Color("#ef4444"),
	Warning: lipgloss.Color("#f59e0b"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Key: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Pressed: lipgloss.NewStyle().
			Background(t.BgPressed).
			Foreground(t.FgBase).
			Bold(true),
		Released: lipgloss.NewStyle().Foreground(t.FgMuted),
		Disabled: lipgloss.NewStyle().
			Foreground(t.FgSubtle).
			Faint(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
