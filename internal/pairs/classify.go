package pairs

import "github.com/papapumpkin/plexus/internal/protein"

// UnobservedCrossCompartment returns the rows whose endpoints sit in
// different compartments and whose pair, in either orientation, is not
// a known interaction: candidate interactions nobody has observed.
// Order is preserved and the input is never modified.
func UnobservedCrossCompartment(rows []Row, known *protein.EdgeSet) []Row {
	out := make([]Row, 0)
	for _, r := range rows {
		if r.CompartmentsDiffer() && !known.Contains(r.Pair.A, r.Pair.B) {
			out = append(out, r)
		}
	}
	return out
}

// CrossGroupCrossCompartment returns the rows whose endpoints sit in
// different compartments and belong to different connectivity groups.
// Because proteins joined by a known interaction always share a group,
// every row returned here also satisfies UnobservedCrossCompartment.
func CrossGroupCrossCompartment(rows []Row) []Row {
	out := make([]Row, 0)
	for _, r := range rows {
		if r.CompartmentsDiffer() && r.GroupsDiffer() {
			out = append(out, r)
		}
	}
	return out
}
