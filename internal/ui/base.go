package ui

// Base holds the box a component is drawn into and whether it has focus.
// Column panels and popups embed it.
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

func (b Base) Width() int  { return b.width }
func (b Base) Height() int { return b.height }

// Bordered reports whether the box is large enough to draw a border in.
func (b Base) Bordered() bool {
	return b.width >= BorderWidth && b.height >= BorderHeight
}

// InnerWidth is the width left inside a border, never below zero.
func (b Base) InnerWidth() int {
	return max(b.width-BorderWidth, 0)
}

// InnerHeight returns the height left after subtracting overhead, never
// below zero.
func (b Base) InnerHeight(overhead int) int {
	return max(b.height-overhead, 0)
}
