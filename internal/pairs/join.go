package pairs

import "github.com/papapumpkin/plexus/internal/protein"

// Row is a universe pair joined with the attributes of its endpoints.
// An empty compartment means the assignment is unknown; HasGroupA and
// HasGroupB distinguish group 0 from no group at all.
type Row struct {
	Pair         protein.Pair
	CompartmentA string
	CompartmentB string
	GroupA       int
	GroupB       int
	HasGroupA    bool
	HasGroupB    bool
}

// CompartmentsDiffer reports whether the endpoints sit in different
// compartments. An unknown compartment never equals anything, not even
// another unknown, so any unknown endpoint makes the pair differ.
func (r Row) CompartmentsDiffer() bool {
	known := r.CompartmentA != "" && r.CompartmentB != ""
	return !(known && r.CompartmentA == r.CompartmentB)
}

// GroupsDiffer reports whether the endpoints belong to different
// connectivity groups, under the same sentinel rule: a protein with no
// group shares a group with nothing.
func (r Row) GroupsDiffer() bool {
	return !(r.HasGroupA && r.HasGroupB && r.GroupA == r.GroupB)
}

// Join attaches compartment and group attributes to every universe
// pair by map lookup, preserving order. Missing proteins produce the
// sentinels rather than errors: an empty compartment, or an absent
// group. A nil map simply marks everything unknown.
func Join(universe []protein.Pair, compartments map[string]string, groups map[string]int) []Row {
	rows := make([]Row, 0, len(universe))
	for _, p := range universe {
		row := Row{
			Pair:         p,
			CompartmentA: compartments[p.A],
			CompartmentB: compartments[p.B],
		}
		row.GroupA, row.HasGroupA = groups[p.A]
		row.GroupB, row.HasGroupB = groups[p.B]
		rows = append(rows, row)
	}
	return rows
}
