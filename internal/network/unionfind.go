package network

import "fmt"

// UnionFind implements a disjoint-set (union-find) data structure over
// protein identifiers with full path compression. Proteins must be
// registered with Add before they can be queried; there is no
// auto-registration, so a lookup of an unknown protein is an error
// rather than a silent singleton.
type UnionFind struct {
	parent map[string]string
}

// NewUnionFind creates an empty UnionFind.
func NewUnionFind() *UnionFind {
	return &UnionFind{parent: make(map[string]string)}
}

// Add registers a protein as its own singleton set. Re-adding an
// existing protein is a no-op and never disturbs its set.
func (uf *UnionFind) Add(x string) {
	if _, ok := uf.parent[x]; ok {
		return
	}
	uf.parent[x] = x
}

// Has reports whether x has been registered.
func (uf *UnionFind) Has(x string) bool {
	_, ok := uf.parent[x]
	return ok
}

// Len returns the number of registered proteins.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Find returns the representative (root) of the set containing x, or
// ErrUnknownProtein if x was never registered.
func (uf *UnionFind) Find(x string) (string, error) {
	if _, ok := uf.parent[x]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownProtein, x)
	}
	return uf.findRoot(x), nil
}

// findRoot walks from x to its root, then rewrites every node on the
// visited path to point directly at the root. x must be registered.
func (uf *UnionFind) findRoot(x string) string {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		uf.parent[x], x = root, uf.parent[x]
	}
	return root
}

// Union merges the sets containing a and b by attaching b's root under
// a's root. Which identifier ends up as the representative is an
// implementation detail; only membership is meaningful. Returns
// ErrUnknownProtein if either protein was never registered.
func (uf *UnionFind) Union(a, b string) error {
	ra, err := uf.Find(a)
	if err != nil {
		return err
	}
	rb, err := uf.Find(b)
	if err != nil {
		return err
	}
	if ra == rb {
		return nil
	}
	uf.parent[rb] = ra
	return nil
}

// Connected reports whether a and b belong to the same set.
func (uf *UnionFind) Connected(a, b string) (bool, error) {
	ra, err := uf.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := uf.Find(b)
	if err != nil {
		return false, err
	}
	return ra == rb, nil
}

// Components returns the disjoint sets as a map from each set's
// representative to its members. Member order is not guaranteed.
func (uf *UnionFind) Components() map[string][]string {
	comps := make(map[string][]string)
	for x := range uf.parent {
		root := uf.findRoot(x)
		comps[root] = append(comps[root], x)
	}
	return comps
}
