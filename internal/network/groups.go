package network

import (
	"fmt"
	"sort"

	"github.com/papapumpkin/plexus/internal/protein"
)

// Group is a connectivity group: a maximal set of proteins joined,
// directly or transitively, by known interactions.
type Group struct {
	// ID is the dense integer identifier assigned to this group,
	// starting at 0. IDs are equivalence keys within one analysis run,
	// not stable labels across datasets.
	ID int

	// Members lists the group's proteins, sorted by numeric token.
	Members []string
}

// ComputeGroups numbers the partition's components densely. Groups are
// enumerated by ascending numeric token of each component's root and
// members are sorted the same way, so one build sequence always yields
// the same ids. The returned map carries only proteins registered in
// the partition; absence of a key means the protein was never seen in
// an interaction, and callers must not invent a group for it.
func ComputeGroups(uf *UnionFind) ([]Group, map[string]int, error) {
	comps := uf.Components()
	if len(comps) == 0 {
		return nil, nil, nil
	}

	tokens := make(map[string]int, uf.Len())
	for _, members := range comps {
		for _, id := range members {
			n, err := protein.NumericID(id)
			if err != nil {
				return nil, nil, fmt.Errorf("group extraction: %w", err)
			}
			tokens[id] = n
		}
	}
	byToken := func(ids []string) func(i, j int) bool {
		return func(i, j int) bool {
			if tokens[ids[i]] != tokens[ids[j]] {
				return tokens[ids[i]] < tokens[ids[j]]
			}
			return ids[i] < ids[j]
		}
	}

	roots := make([]string, 0, len(comps))
	for root := range comps {
		roots = append(roots, root)
	}
	sort.Slice(roots, byToken(roots))

	groups := make([]Group, 0, len(roots))
	index := make(map[string]int, uf.Len())
	for i, root := range roots {
		members := comps[root]
		sort.Slice(members, byToken(members))
		for _, id := range members {
			index[id] = i
		}
		groups = append(groups, Group{ID: i, Members: members})
	}
	return groups, index, nil
}
