// Package network discovers protein connectivity groups. A union-find
// partition is built from the canonicalized interaction list, then the
// resulting components are numbered densely and exposed as groups.
package network

import (
	"errors"

	"github.com/papapumpkin/plexus/internal/protein"
)

// ErrUnknownProtein is returned when an operation references a protein
// that never appeared in any interaction.
var ErrUnknownProtein = errors.New("protein not present in any interaction")

// FromEdges builds the partition for a canonicalized edge list. Each
// edge registers its endpoints and merges their sets, in input order.
// Only proteins appearing in at least one edge enter the partition;
// a self-edge registers its protein without merging anything, and
// duplicate edges are no-ops.
func FromEdges(edges []protein.Pair) *UnionFind {
	uf := NewUnionFind()
	for _, e := range edges {
		uf.Add(e.A)
		uf.Add(e.B)
		// Endpoints were just registered, so Union cannot fail.
		_ = uf.Union(e.A, e.B)
	}
	return uf
}
