// Package geometry provides pure functions mapping the column layout onto
// terminal cells.
package geometry

import (
	"math"
	"sort"

	"github.com/llehouerou/smartpack/internal/layout"
)

// Fixed rows around the columns.
const (
	HeaderHeight = 1
	NavBarHeight = 1
	StatusHeight = 1
)

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight int
	NavBarHeight int // 0 when the navigation bar is hidden
	StatusHeight int // 0 when there is no status message
}

// ContentHeight calculates the rows left for the columns.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.NavBarHeight
	height -= opts.StatusHeight
	return max(height, 0)
}

// Cell is the size of one terminal cell in layout units.
type Cell struct {
	Width  float64
	Height float64
}

// Viewport converts a terminal size to layout units.
func (c Cell) Viewport(cols, rows int) (width, height float64) {
	return float64(cols) * c.Width, float64(rows) * c.Height
}

// Units converts a horizontal cell count or position to layout units.
func (c Cell) Units(cells int) float64 {
	return float64(cells) * c.Width
}

// Cells converts layout units to whole cells, rounding down.
func (c Cell) Cells(units float64) int {
	if c.Width <= 0 || units <= 0 {
		return 0
	}
	return int(math.Floor(units/c.Width + 1e-9))
}

// TargetWidths returns the widths the visible columns are drawn at. The
// stored widths are used as long as they fit; the last visible column
// absorbs the remaining space. When they overflow, every visible column
// keeps the minimum and the space above it is shared in proportion to how
// far each stored width exceeds the minimum, so a wider stored column is
// still drawn wider.
func TargetWidths(m layout.Metrics, v layout.Visibility, stored layout.Widths, viewportWidth float64) layout.Widths {
	cols := v.Columns()
	if len(cols) == 0 {
		return stored
	}
	usable := m.AvailableWidth(viewportWidth) - m.HandleSpace(len(cols))

	sum := 0.0
	for _, id := range cols {
		sum += stored.Get(id)
	}
	if sum <= usable {
		last := cols[len(cols)-1]
		return stored.With(last, stored.Get(last)+usable-sum)
	}
	return shrink(m.MinColumnWidth, cols, stored, usable)
}

// shrink scales the part of each width above minWidth so the columns sum
// to usable. Below n*minWidth every column is at the minimum.
func shrink(minWidth float64, cols []layout.ColumnID, stored layout.Widths, usable float64) layout.Widths {
	extra := usable - float64(len(cols))*minWidth
	excess := 0.0
	for _, id := range cols {
		excess += math.Max(stored.Get(id)-minWidth, 0)
	}

	out := stored
	for _, id := range cols {
		w := minWidth
		if extra > 0 && excess > 0 {
			w += math.Max(stored.Get(id)-minWidth, 0) / excess * extra
		}
		out = out.With(id, w)
	}
	return out
}

// Split converts unit widths to cell widths summing to exactly total. Cells
// are handed out by largest remainder; each column gets at least one cell
// while total allows it.
func Split(widths []float64, total int) []int {
	out := make([]int, len(widths))
	if len(widths) == 0 || total <= 0 {
		return out
	}

	sum := 0.0
	for _, w := range widths {
		sum += math.Max(w, 0)
	}

	fracs := make([]float64, len(widths))
	used := 0
	for i, w := range widths {
		exact := float64(total) / float64(len(widths))
		if sum > 0 {
			exact = math.Max(w, 0) / sum * float64(total)
		}
		out[i] = int(math.Floor(exact))
		fracs[i] = exact - float64(out[i])
		used += out[i]
	}

	// larger remainder first, leftmost on ties
	order := make([]int, len(widths))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fracs[order[a]] > fracs[order[b]]
	})
	for k := range total - used {
		out[order[k%len(order)]]++
	}

	// no zero-width column while another can spare a cell
	for i := range out {
		if out[i] > 0 {
			continue
		}
		donor := widest(out)
		if out[donor] > 1 {
			out[donor]--
			out[i]++
		}
	}
	return out
}

func widest(cells []int) int {
	best := 0
	for i, c := range cells {
		if c > cells[best] {
			best = i
		}
	}
	return best
}
