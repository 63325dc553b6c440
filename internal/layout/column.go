// Package layout provides pure functions for the three-column layout:
// device classification, visibility rules and width allocation.
package layout

// ColumnID identifies one of the three fixed columns.
type ColumnID int

const (
	TripDetails ColumnID = iota
	PackingChecklist
	Suggestions
)

// AllColumns lists every column in display order.
var AllColumns = [...]ColumnID{TripDetails, PackingChecklist, Suggestions}

// String returns the stable identifier used in storage and logs.
func (c ColumnID) String() string {
	switch c {
	case TripDetails:
		return "tripDetails"
	case PackingChecklist:
		return "packingChecklist"
	case Suggestions:
		return "suggestions"
	default:
		return "unknown"
	}
}

// Title returns the human-readable column name.
func (c ColumnID) Title() string {
	switch c {
	case TripDetails:
		return "Trip Details"
	case PackingChecklist:
		return "Packing Checklist"
	case Suggestions:
		return "Suggestions"
	default:
		return ""
	}
}

// ParseColumnID maps a stored identifier back to a ColumnID.
func ParseColumnID(s string) (ColumnID, bool) {
	for _, c := range AllColumns {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// Visibility records which columns are shown.
type Visibility struct {
	TripDetails      bool `json:"tripDetails"`
	PackingChecklist bool `json:"packingChecklist"`
	Suggestions      bool `json:"suggestions"`
}

// DefaultVisibility shows every column.
var DefaultVisibility = Visibility{TripDetails: true, PackingChecklist: true, Suggestions: true}

// Get returns the visibility of a column.
func (v Visibility) Get(id ColumnID) bool {
	switch id {
	case TripDetails:
		return v.TripDetails
	case PackingChecklist:
		return v.PackingChecklist
	case Suggestions:
		return v.Suggestions
	default:
		return false
	}
}

// With returns a copy with one column set.
func (v Visibility) With(id ColumnID, visible bool) Visibility {
	switch id {
	case TripDetails:
		v.TripDetails = visible
	case PackingChecklist:
		v.PackingChecklist = visible
	case Suggestions:
		v.Suggestions = visible
	}
	return v
}

// Count returns the number of visible columns.
func (v Visibility) Count() int {
	n := 0
	for _, c := range AllColumns {
		if v.Get(c) {
			n++
		}
	}
	return n
}

// Columns returns the visible columns in display order.
func (v Visibility) Columns() []ColumnID {
	cols := make([]ColumnID, 0, len(AllColumns))
	for _, c := range AllColumns {
		if v.Get(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// Widths records the width of each column in layout units.
// A hidden column keeps its last width.
type Widths struct {
	TripDetails      float64 `json:"tripDetails"`
	PackingChecklist float64 `json:"packingChecklist"`
	Suggestions      float64 `json:"suggestions"`
}

// DefaultWidths are used when nothing was persisted.
var DefaultWidths = Widths{TripDetails: 350, PackingChecklist: 400, Suggestions: 350}

// Get returns the width of a column.
func (w Widths) Get(id ColumnID) float64 {
	switch id {
	case TripDetails:
		return w.TripDetails
	case PackingChecklist:
		return w.PackingChecklist
	case Suggestions:
		return w.Suggestions
	default:
		return 0
	}
}

// With returns a copy with one column width set.
func (w Widths) With(id ColumnID, width float64) Widths {
	switch id {
	case TripDetails:
		w.TripDetails = width
	case PackingChecklist:
		w.PackingChecklist = width
	case Suggestions:
		w.Suggestions = width
	}
	return w
}

// VisibilityPatch is a partial Visibility; nil fields leave the base value alone.
type VisibilityPatch struct {
	TripDetails      *bool `json:"tripDetails,omitempty"`
	PackingChecklist *bool `json:"packingChecklist,omitempty"`
	Suggestions      *bool `json:"suggestions,omitempty"`
}

// Apply returns v with the patch's set fields copied over.
func (p VisibilityPatch) Apply(v Visibility) Visibility {
	if p.TripDetails != nil {
		v.TripDetails = *p.TripDetails
	}
	if p.PackingChecklist != nil {
		v.PackingChecklist = *p.PackingChecklist
	}
	if p.Suggestions != nil {
		v.Suggestions = *p.Suggestions
	}
	return v
}

// WidthsPatch is a partial Widths; nil fields leave the base value alone.
type WidthsPatch struct {
	TripDetails      *float64 `json:"tripDetails,omitempty"`
	PackingChecklist *float64 `json:"packingChecklist,omitempty"`
	Suggestions      *float64 `json:"suggestions,omitempty"`
}

// Apply returns w with the patch's set fields copied over.
func (p WidthsPatch) Apply(w Widths) Widths {
	if p.TripDetails != nil {
		w.TripDetails = *p.TripDetails
	}
	if p.PackingChecklist != nil {
		w.PackingChecklist = *p.PackingChecklist
	}
	if p.Suggestions != nil {
		w.Suggestions = *p.Suggestions
	}
	return w
}
