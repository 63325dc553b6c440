package app

import "github.com/llehouerou/smartpack/internal/layout"

// sampleContent fills the columns until a host supplies real trip data.
func sampleContent() map[layout.ColumnID][]string {
	return map[layout.ColumnID][]string{
		layout.TripDetails: {
			"Destination  Lisbon, Portugal",
			"Dates        12 Jun - 19 Jun",
			"Travelers    2 adults",
			"Trip type    City break",
			"",
			"Weather",
			"  Sunny, 19-27 °C",
			"  Light wind in the evening",
			"",
			"Activities",
			"  Walking tours",
			"  Beach day in Cascais",
			"  Fado dinner",
		},
		layout.PackingChecklist: {
			"Clothing",
			"  [x] T-shirts (5)",
			"  [x] Light trousers (2)",
			"  [ ] Light jacket",
			"  [ ] Swimwear",
			"  [ ] Walking shoes",
			"",
			"Toiletries",
			"  [x] Toothbrush",
			"  [ ] Sunscreen SPF 50",
			"  [ ] After-sun",
			"",
			"Documents",
			"  [x] ID cards",
			"  [ ] Travel insurance",
			"  [ ] Hotel confirmation",
			"",
			"Electronics",
			"  [ ] Phone charger",
			"  [ ] Power bank",
		},
		layout.Suggestions: {
			"Hills everywhere: pack",
			"comfortable shoes.",
			"",
			"Evenings by the river get",
			"cool, bring a layer.",
			"",
			"Pharmacies close early on",
			"Sundays.",
			"",
			"Most places take cards;",
			"keep some cash for trams.",
		},
	}
}
