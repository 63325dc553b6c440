package layout

// portraitPreference is the order in which a single column is kept on
// mobile-portrait when more than one is requested.
var portraitPreference = [...]ColumnID{PackingChecklist, TripDetails, Suggestions}

// EnforceVisibilityRules corrects a requested visibility for the device type.
//
// At least one column is always visible (packingChecklist is forced on).
// On mobile-portrait at most one column is visible; on mobile-landscape at
// most two, suggestions being hidden first. Applying the rules to their own
// output returns it unchanged.
func EnforceVisibilityRules(v Visibility, d DeviceType) Visibility {
	count := v.Count()

	if count == 0 {
		return v.With(PackingChecklist, true)
	}

	if d == MobilePortrait && count > 1 {
		keep := PackingChecklist
		for _, c := range portraitPreference {
			if v.Get(c) {
				keep = c
				break
			}
		}
		return Visibility{}.With(keep, true)
	}

	if d == MobileLandscape && count > 2 {
		return v.With(Suggestions, false)
	}

	return v
}

// Toggle flips one column and re-applies the rules, so a toggle that would
// break an invariant is corrected rather than ignored.
func Toggle(v Visibility, id ColumnID, d DeviceType) Visibility {
	return EnforceVisibilityRules(v.With(id, !v.Get(id)), d)
}
