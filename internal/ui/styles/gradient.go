package styles

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient blends between two colors in HCL space.
type Gradient struct {
	from, to colorful.Color
}

// NewGradient returns the gradient running from one color to another.
func NewGradient(from, to lipgloss.Color) Gradient {
	return Gradient{from: toColorful(from), to: toColorful(to)}
}

// At returns the color at position t, clamped to [0, 1].
func (g Gradient) At(t float64) lipgloss.Color {
	if math.IsNaN(t) {
		t = 0
	}
	t = min(max(t, 0), 1)
	return lipgloss.Color(g.from.BlendHcl(g.to, t).Clamped().Hex())
}

// Steps returns n evenly spaced colors, the first and last being the ends
// of the gradient.
func (g Gradient) Steps(n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{g.At(0)}
	}
	out := make([]lipgloss.Color, n)
	for i := range out {
		out[i] = g.At(float64(i) / float64(n-1))
	}
	return out
}

// Render colors text one grapheme at a time along the gradient, on top of
// base.
func (g Gradient) Render(text string, base lipgloss.Style) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	var b strings.Builder
	for i, c := range g.Steps(len(clusters)) {
		b.WriteString(base.Foreground(c).Render(clusters[i]))
	}
	return b.String()
}

// toColorful reads a hex color directly and lets lipgloss resolve ANSI
// colors. Anything unreadable blends as mid gray.
func toColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	if col, ok := colorful.MakeColor(c); ok {
		return col
	}
	return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
}
