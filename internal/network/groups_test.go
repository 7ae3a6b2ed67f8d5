package network

import (
	"errors"
	"testing"

	"github.com/papapumpkin/plexus/internal/protein"
)

func TestComputeGroups_TwoGroups(t *testing.T) {
	t.Parallel()
	// P1–P2 and P3–P4: two groups, densely numbered.
	uf := FromEdges([]protein.Pair{
		{A: "P1", B: "P2"},
		{A: "P3", B: "P4"},
	})

	groups, index, err := ComputeGroups(uf)
	if err != nil {
		t.Fatalf("ComputeGroups: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if index["P1"] != index["P2"] {
		t.Error("P1 and P2 should share a group id")
	}
	if index["P3"] != index["P4"] {
		t.Error("P3 and P4 should share a group id")
	}
	if index["P1"] == index["P3"] {
		t.Error("P1 and P3 should be in different groups")
	}
	for _, want := range []int{0, 1} {
		if groups[want].ID != want {
			t.Errorf("groups[%d].ID = %d, want %d", want, groups[want].ID, want)
		}
	}
}

func TestComputeGroups_IsolatedProteinAbsent(t *testing.T) {
	t.Parallel()
	// P3 appears in no interaction: it must be absent from the group
	// map rather than mapped to a group of its own.
	uf := FromEdges([]protein.Pair{
		{A: "P1", B: "P2"},
	})

	groups, index, err := ComputeGroups(uf)
	if err != nil {
		t.Fatalf("ComputeGroups: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if _, ok := index["P3"]; ok {
		t.Error("P3 must not have a group id")
	}
	if _, ok := index["P1"]; !ok {
		t.Error("P1 should have a group id")
	}
}

func TestComputeGroups_NumberedByRootToken(t *testing.T) {
	t.Parallel()
	// The high-token component arrives first in the edge list, but
	// groups are numbered by ascending numeric token of their root.
	uf := FromEdges([]protein.Pair{
		{A: "P9", B: "P10"},
		{A: "P2", B: "P3"},
	})

	groups, index, err := ComputeGroups(uf)
	if err != nil {
		t.Fatalf("ComputeGroups: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if index["P2"] != 0 {
		t.Errorf("group of P2 = %d, want 0", index["P2"])
	}
	if index["P9"] != 1 {
		t.Errorf("group of P9 = %d, want 1", index["P9"])
	}
}

func TestComputeGroups_MembersSortedNumerically(t *testing.T) {
	t.Parallel()
	// Numeric token order, not lexical: P2 before P10.
	uf := FromEdges([]protein.Pair{
		{A: "P2", B: "P10"},
		{A: "P1", B: "P2"},
	})

	groups, _, err := ComputeGroups(uf)
	if err != nil {
		t.Fatalf("ComputeGroups: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	want := []string{"P1", "P2", "P10"}
	got := groups[0].Members
	if len(got) != len(want) {
		t.Fatalf("members = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("members = %v, want %v", got, want)
		}
	}
}

func TestComputeGroups_Empty(t *testing.T) {
	t.Parallel()
	groups, index, err := ComputeGroups(NewUnionFind())
	if err != nil {
		t.Fatalf("ComputeGroups: %v", err)
	}
	if groups != nil {
		t.Errorf("groups = %v, want nil", groups)
	}
	if index != nil {
		t.Errorf("index = %v, want nil", index)
	}
}

func TestComputeGroups_MalformedMember(t *testing.T) {
	t.Parallel()
	uf := NewUnionFind()
	uf.Add("untagged")

	_, _, err := ComputeGroups(uf)
	if !errors.Is(err, protein.ErrNoDigits) {
		t.Errorf("err = %v, want ErrNoDigits", err)
	}
}

func TestComputeGroups_SameBuildSameIDs(t *testing.T) {
	t.Parallel()
	edges := []protein.Pair{
		{A: "P1", B: "P5"},
		{A: "P2", B: "P6"},
		{A: "P3", B: "P7"},
	}

	_, first, err := ComputeGroups(FromEdges(edges))
	if err != nil {
		t.Fatalf("ComputeGroups: %v", err)
	}
	_, second, err := ComputeGroups(FromEdges(edges))
	if err != nil {
		t.Fatalf("ComputeGroups: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("map sizes differ: %d vs %d", len(first), len(second))
	}
	for id, g := range first {
		if second[id] != g {
			t.Errorf("group of %s differs across identical builds: %d vs %d", id, g, second[id])
		}
	}
}
