package protein

// EdgeSet holds the known interaction pairs of a dataset, keyed by
// canonical orientation. Membership queries accept either orientation,
// so callers never have to re-canonicalize.
type EdgeSet struct {
	pairs map[Pair]bool
}

// NewEdgeSet builds an EdgeSet from canonicalized pairs. Duplicates
// collapse silently.
func NewEdgeSet(pairs []Pair) *EdgeSet {
	s := &EdgeSet{pairs: make(map[Pair]bool, len(pairs))}
	for _, p := range pairs {
		s.pairs[p] = true
	}
	return s
}

// Contains reports whether the pair (a, b) is a known interaction, in
// either orientation.
func (s *EdgeSet) Contains(a, b string) bool {
	return s.pairs[Pair{A: a, B: b}] || s.pairs[Pair{A: b, B: a}]
}

// Len returns the number of distinct pairs in the set.
func (s *EdgeSet) Len() int {
	return len(s.pairs)
}
