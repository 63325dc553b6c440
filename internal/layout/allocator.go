package layout

import "math"

// MinColumnWidth is the smallest width any column may have.
const MinColumnWidth = 275.0

// HandleWidth is the width of the drag handle between two adjacent visible columns.
const HandleWidth = 8.0

// HorizontalPadding is subtracted from the viewport before allocating columns.
const HorizontalPadding = 32.0

// ShrinkPriority is the order in which columns are hidden when the viewport
// cannot hold every visible column at minimum width.
var ShrinkPriority = [...]ColumnID{Suggestions, TripDetails, PackingChecklist}

// extraShare is the fraction of slack space given to each visible column.
var extraShare = map[ColumnID]float64{
	PackingChecklist: 0.5,
	TripDetails:      0.25,
	Suggestions:      0.25,
}

// Metrics holds the sizing constants of the allocator.
type Metrics struct {
	MinColumnWidth float64 `koanf:"min_column_width"`
	HandleWidth    float64 `koanf:"handle_width"`
	Padding        float64 `koanf:"padding"`
}

// DefaultMetrics returns the standard sizing constants.
func DefaultMetrics() Metrics {
	return Metrics{
		MinColumnWidth: MinColumnWidth,
		HandleWidth:    HandleWidth,
		Padding:        HorizontalPadding,
	}
}

// ClampWidth raises a width to the minimum. Non-finite and negative values
// become the minimum.
func (m Metrics) ClampWidth(width float64) float64 {
	if math.IsNaN(width) || math.IsInf(width, 0) || width < m.MinColumnWidth {
		return m.MinColumnWidth
	}
	return width
}

// HandleSpace returns the space taken by drag handles between n columns.
func (m Metrics) HandleSpace(n int) float64 {
	return float64(max(0, n-1)) * m.HandleWidth
}

// AvailableWidth returns the viewport width minus the horizontal padding.
func (m Metrics) AvailableWidth(viewportWidth float64) float64 {
	return viewportWidth - m.Padding
}

// CanFitMinimumWidths reports whether the given columns fit side by side at
// minimum width, handles included.
func (m Metrics) CanFitMinimumWidths(cols []ColumnID, viewportWidth float64) bool {
	totalMin := float64(len(cols)) * m.MinColumnWidth
	return m.AvailableWidth(viewportWidth) >= totalMin+m.HandleSpace(len(cols))
}

// ResponsiveWidths distributes the viewport among the visible columns.
//
// When the visible columns fit at minimum width, the slack is shared
// 50/25/25 between packingChecklist, tripDetails and suggestions. Otherwise
// every visible column gets exactly the minimum. Hidden columns keep the
// width they have in w.
func (m Metrics) ResponsiveWidths(v Visibility, w Widths, viewportWidth float64) Widths {
	visible := v.Columns()
	usable := m.AvailableWidth(viewportWidth) - m.HandleSpace(len(visible))
	totalMin := float64(len(visible)) * m.MinColumnWidth

	if usable < totalMin {
		for _, c := range visible {
			w = w.With(c, m.MinColumnWidth)
		}
		return w
	}

	extra := usable - totalMin
	for _, c := range visible {
		w = w.With(c, m.MinColumnWidth+extra*extraShare[c])
	}
	return w
}

// EnforceHorizontalConstraints hides columns the viewport cannot hold.
//
// If the visible columns do not fit, candidates are taken out in
// ShrinkPriority order until the remaining columns fit; every column taken
// out on the way is hidden. The last visible column is never hidden, and if
// no subset fits the visibility is returned unchanged. The second return
// value reports whether anything changed.
//
// Hiding is cumulative: at 500 units both suggestions and tripDetails go in
// one call, rather than only the first candidate in ShrinkPriority.
func (m Metrics) EnforceHorizontalConstraints(v Visibility, viewportWidth float64) (Visibility, bool) {
	remaining := v.Columns()
	if m.CanFitMinimumWidths(remaining, viewportWidth) {
		return v, false
	}

	var removed []ColumnID
	for _, candidate := range ShrinkPriority {
		if len(remaining) <= 1 {
			break
		}
		if !v.Get(candidate) {
			continue
		}
		remaining = without(remaining, candidate)
		removed = append(removed, candidate)
		if m.CanFitMinimumWidths(remaining, viewportWidth) {
			for _, c := range removed {
				v = v.With(c, false)
			}
			return v, true
		}
	}
	return v, false
}

func without(cols []ColumnID, id ColumnID) []ColumnID {
	out := make([]ColumnID, 0, len(cols))
	for _, c := range cols {
		if c != id {
			out = append(out, c)
		}
	}
	return out
}
