package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/papapumpkin/plexus/internal/pairs"
)

// Paging bounds for the candidate_pairs tool.
const (
	defaultPageSize = 100
	maxPageSize     = 500
)

// classifyPairInput is the input schema for the classify_pair tool.
type classifyPairInput struct {
	RunID   string `json:"run_id,omitempty" jsonschema:"Stored run to query"`
	EntityA string `json:"entity_a,omitempty" jsonschema:"First protein identifier"`
	EntityB string `json:"entity_b,omitempty" jsonschema:"Second protein identifier"`
}

// classifyPairOutput is the output schema for the classify_pair tool.
// Attribute fields follow the pair record contract; compartments are
// known only for pairs the run retained in a classified subset.
type classifyPairOutput struct {
	EntityA      string `json:"entity_A"`
	EntityB      string `json:"entity_B"`
	CompartmentA string `json:"compartment_A"`
	CompartmentB string `json:"compartment_B"`
	GroupA       *int   `json:"group_A,omitempty"`
	GroupB       *int   `json:"group_B,omitempty"`

	UnobservedCrossCompartment bool `json:"unobserved_cross_compartment"`
	CrossGroupCandidate        bool `json:"cross_group_candidate"`
}

// pairEntry is a single classified pair in the candidate_pairs
// response, following the pair record contract.
type pairEntry struct {
	EntityA      string `json:"entity_A"`
	EntityB      string `json:"entity_B"`
	CompartmentA string `json:"compartment_A"`
	CompartmentB string `json:"compartment_B"`
	GroupA       *int   `json:"group_A,omitempty"`
	GroupB       *int   `json:"group_B,omitempty"`
}

// candidatePairsInput is the input schema for the candidate_pairs tool.
type candidatePairsInput struct {
	RunID  string `json:"run_id" jsonschema:"Stored run to query"`
	Kind   string `json:"kind,omitempty" jsonschema:"Pair subset: cross_group (default) or unobserved"`
	Offset int    `json:"offset,omitempty" jsonschema:"Rows to skip (default: 0)"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Maximum rows to return (default: 100; max: 500)"`
}

// candidatePairsOutput is the output schema for the candidate_pairs tool.
type candidatePairsOutput struct {
	RunID  string      `json:"run_id"`
	Kind   string      `json:"kind"`
	Total  int         `json:"total"`
	Offset int         `json:"offset"`
	Pairs  []pairEntry `json:"pairs"`
}

// registerPairTools registers the classify_pair and candidate_pairs
// MCP tools.
func (s *Server) registerPairTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "classify_pair",
		Description: "Report how a stored run classified one protein pair",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input classifyPairInput) (*mcp.CallToolResult, classifyPairOutput, error) {
		if input.RunID == "" {
			return nil, classifyPairOutput{}, fmt.Errorf("run_id is required")
		}
		if input.EntityA == "" {
			return nil, classifyPairOutput{}, fmt.Errorf("entity_a is required")
		}
		if input.EntityB == "" {
			return nil, classifyPairOutput{}, fmt.Errorf("entity_b is required")
		}

		res, err := s.store.LoadRun(ctx, input.RunID)
		if err != nil {
			return nil, classifyPairOutput{}, fmt.Errorf("loading run: %w", err)
		}

		out := classifyPairOutput{EntityA: input.EntityA, EntityB: input.EntityB}
		if ga, ok := res.GroupIndex[input.EntityA]; ok {
			out.GroupA = &ga
		}
		if gb, ok := res.GroupIndex[input.EntityB]; ok {
			out.GroupB = &gb
		}

		if row, ok := findRow(res.Unobserved, input.EntityA, input.EntityB); ok {
			out.UnobservedCrossCompartment = true
			out.CompartmentA, out.CompartmentB = orientCompartments(row, input.EntityA)
		}
		if _, ok := findRow(res.CrossGroup, input.EntityA, input.EntityB); ok {
			out.CrossGroupCandidate = true
		}

		return nil, out, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "candidate_pairs",
		Description: "Page through a stored run's classified pair subsets",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input candidatePairsInput) (*mcp.CallToolResult, candidatePairsOutput, error) {
		if input.RunID == "" {
			return nil, candidatePairsOutput{}, fmt.Errorf("run_id is required")
		}
		if input.Offset < 0 {
			return nil, candidatePairsOutput{}, fmt.Errorf("offset must be non-negative")
		}
		if input.Limit < 0 {
			return nil, candidatePairsOutput{}, fmt.Errorf("limit must be non-negative")
		}

		kind := input.Kind
		if kind == "" {
			kind = "cross_group"
		}

		res, err := s.store.LoadRun(ctx, input.RunID)
		if err != nil {
			return nil, candidatePairsOutput{}, fmt.Errorf("loading run: %w", err)
		}

		var rows []pairs.Row
		switch kind {
		case "cross_group":
			rows = res.CrossGroup
		case "unobserved":
			rows = res.Unobserved
		default:
			return nil, candidatePairsOutput{}, fmt.Errorf("unknown kind %q (want cross_group or unobserved)", input.Kind)
		}

		limit := input.Limit
		if limit == 0 {
			limit = defaultPageSize
		}
		if limit > maxPageSize {
			limit = maxPageSize
		}

		page := []pairs.Row{}
		if input.Offset < len(rows) {
			page = rows[input.Offset:]
			if len(page) > limit {
				page = page[:limit]
			}
		}

		entries := make([]pairEntry, len(page))
		for i, r := range page {
			entries[i] = newPairEntry(r)
		}

		return nil, candidatePairsOutput{
			RunID:  input.RunID,
			Kind:   kind,
			Total:  len(rows),
			Offset: input.Offset,
			Pairs:  entries,
		}, nil
	})
}

// findRow looks a pair up in a classified subset, in either endpoint
// order.
func findRow(rows []pairs.Row, a, b string) (pairs.Row, bool) {
	for _, r := range rows {
		if (r.Pair.A == a && r.Pair.B == b) || (r.Pair.A == b && r.Pair.B == a) {
			return r, true
		}
	}
	return pairs.Row{}, false
}

// orientCompartments returns the row's compartments aligned with the
// caller's endpoint order.
func orientCompartments(r pairs.Row, a string) (string, string) {
	if r.Pair.A == a {
		return r.CompartmentA, r.CompartmentB
	}
	return r.CompartmentB, r.CompartmentA
}

func newPairEntry(r pairs.Row) pairEntry {
	e := pairEntry{
		EntityA:      r.Pair.A,
		EntityB:      r.Pair.B,
		CompartmentA: r.CompartmentA,
		CompartmentB: r.CompartmentB,
	}
	if r.HasGroupA {
		ga := r.GroupA
		e.GroupA = &ga
	}
	if r.HasGroupB {
		gb := r.GroupB
		e.GroupB = &gb
	}
	return e
}
