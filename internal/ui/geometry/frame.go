package geometry

import "github.com/llehouerou/smartpack/internal/layout"

// Placement is the horizontal span of a column, in cells.
type Placement struct {
	Column layout.ColumnID
	X      int
	Width  int
}

// Handle is a drag handle between two adjacent columns. It resizes the
// right edge of Left.
type Handle struct {
	X     int
	Width int
	Left  layout.ColumnID
	Right layout.ColumnID
}

// Frame is the horizontal arrangement of the visible columns.
type Frame struct {
	Columns []Placement
	Handles []Handle
}

// Place lays cols out from x0 with the given cell widths and a handle of
// handleWidth cells between each pair.
func Place(cols []layout.ColumnID, cells []int, x0, handleWidth int) Frame {
	var f Frame
	x := x0
	for i, id := range cols {
		if i > 0 {
			f.Handles = append(f.Handles, Handle{
				X:     x,
				Width: handleWidth,
				Left:  cols[i-1],
				Right: id,
			})
			x += handleWidth
		}
		w := 0
		if i < len(cells) {
			w = cells[i]
		}
		f.Columns = append(f.Columns, Placement{Column: id, X: x, Width: w})
		x += w
	}
	return f
}

// HandleAt returns the index of the handle under cell x.
func (f Frame) HandleAt(x int) (int, bool) {
	for i, h := range f.Handles {
		if x >= h.X && x < h.X+max(h.Width, 1) {
			return i, true
		}
	}
	return 0, false
}

// ColumnAt returns the column under cell x.
func (f Frame) ColumnAt(x int) (layout.ColumnID, bool) {
	for _, p := range f.Columns {
		if x >= p.X && x < p.X+p.Width {
			return p.Column, true
		}
	}
	return 0, false
}
