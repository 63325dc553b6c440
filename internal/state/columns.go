package state

import (
	"encoding/json"

	"github.com/llehouerou/smartpack/internal/layout"
)

// Storage keys of the column layout.
const (
	KeyColumnVisibility = "smartpack-column-visibility"
	KeyColumnWidths     = "smartpack-column-widths"
)

// LoadVisibility returns the defaults, overlaid with the stored partial
// visibility, overlaid with overrides. A missing key, a read error or an
// unparsable value all count as "nothing stored".
func LoadVisibility(s Storage, overrides layout.VisibilityPatch) layout.Visibility {
	var stored layout.VisibilityPatch
	if !loadJSON(s, KeyColumnVisibility, &stored) {
		stored = layout.VisibilityPatch{}
	}
	return overrides.Apply(stored.Apply(layout.DefaultVisibility))
}

// LoadWidths is LoadVisibility for column widths.
func LoadWidths(s Storage, overrides layout.WidthsPatch) layout.Widths {
	var stored layout.WidthsPatch
	if !loadJSON(s, KeyColumnWidths, &stored) {
		stored = layout.WidthsPatch{}
	}
	return overrides.Apply(stored.Apply(layout.DefaultWidths))
}

// SaveVisibility writes v under KeyColumnVisibility.
func SaveVisibility(s Storage, v layout.Visibility) error {
	return saveJSON(s, KeyColumnVisibility, v)
}

// SaveWidths writes w under KeyColumnWidths.
func SaveWidths(s Storage, w layout.Widths) error {
	return saveJSON(s, KeyColumnWidths, w)
}

// SaveLayout writes both maps in a single storage call.
func SaveLayout(s Storage, v layout.Visibility, w layout.Widths) error {
	vb, err := json.Marshal(v)
	if err != nil {
		return err
	}
	wb, err := json.Marshal(w)
	if err != nil {
		return err
	}
	return s.SetItems(map[string]string{
		KeyColumnVisibility: string(vb),
		KeyColumnWidths:     string(wb),
	})
}

// ClearLayout removes both layout keys.
func ClearLayout(s Storage) error {
	if err := s.RemoveItem(KeyColumnVisibility); err != nil {
		return err
	}
	return s.RemoveItem(KeyColumnWidths)
}

func loadJSON(s Storage, key string, dst any) bool {
	raw, ok, err := s.GetItem(key)
	if err != nil || !ok || raw == "" {
		return false
	}
	return json.Unmarshal([]byte(raw), dst) == nil
}

func saveJSON(s Storage, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.SetItem(key, string(b))
}
