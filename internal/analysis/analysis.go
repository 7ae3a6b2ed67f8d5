// Package analysis runs the interaction screening pipeline over a
// loaded dataset: canonicalize the observed edges, compute
// connectivity groups, enumerate the pair universe, join compartment
// and group annotations, and classify candidate pairs.
package analysis

import (
	"fmt"
	"time"

	"github.com/papapumpkin/plexus/internal/dataset"
	"github.com/papapumpkin/plexus/internal/network"
	"github.com/papapumpkin/plexus/internal/pairs"
	"github.com/papapumpkin/plexus/internal/protein"
	"github.com/papapumpkin/plexus/internal/telemetry"
)

// Options tunes a single pipeline run.
type Options struct {
	// MaxPairs caps the pair universe size. Zero or negative disables
	// the cap.
	MaxPairs int

	// RunID names the run in telemetry and persisted results. A fresh
	// id is generated when empty.
	RunID string

	// Emitter receives stage boundary events. May be nil.
	Emitter *telemetry.Emitter
}

// Run executes the pipeline over ds and returns the classified result.
// The input dataset is not modified.
func Run(ds *dataset.Dataset, opts Options) (*Result, error) {
	runID := opts.RunID
	if runID == "" {
		runID = NewRunID()
	}
	start := time.Now()

	emit := func(kind string, data map[string]any) {
		_ = opts.Emitter.Emit(telemetry.Event{
			Timestamp: time.Now().UTC(),
			Kind:      kind,
			RunID:     runID,
			Data:      data,
		})
	}
	fail := func(stage string, err error) (*Result, error) {
		emit(telemetry.KindRunFailed, map[string]any{
			"stage": stage,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%s: %w", stage, err)
	}

	emit(telemetry.KindRunStart, map[string]any{
		"proteins": len(ds.Proteins),
		"edges":    len(ds.Interactions),
	})

	stageStart := time.Now()
	canonical, edges, err := canonicalizeEdges(ds.Interactions)
	if err != nil {
		return fail("canonicalizing edges", err)
	}
	emit(telemetry.KindEdgesCanonical, map[string]any{
		"unique":     edges.unique,
		"duplicates": edges.duplicates,
		"self_edges": edges.selfEdges,
		"elapsed_ms": time.Since(stageStart).Milliseconds(),
	})

	stageStart = time.Now()
	uf := network.FromEdges(canonical)
	groups, index, err := network.ComputeGroups(uf)
	if err != nil {
		return fail("computing groups", err)
	}
	emit(telemetry.KindGroupsComputed, map[string]any{
		"groups":        len(groups),
		"edge_proteins": uf.Len(),
		"elapsed_ms":    time.Since(stageStart).Milliseconds(),
	})

	stageStart = time.Now()
	universe, err := pairs.Universe(ds.Proteins, opts.MaxPairs)
	if err != nil {
		return fail("building pair universe", err)
	}
	emit(telemetry.KindUniverseBuilt, map[string]any{
		"pairs":      len(universe),
		"elapsed_ms": time.Since(stageStart).Milliseconds(),
	})

	stageStart = time.Now()
	rows := pairs.Join(universe, ds.Compartments, index)
	known := protein.NewEdgeSet(canonical)
	unobserved := pairs.UnobservedCrossCompartment(rows, known)
	crossGroup := pairs.CrossGroupCrossCompartment(rows)
	emit(telemetry.KindPairsClassified, map[string]any{
		"unobserved":  len(unobserved),
		"cross_group": len(crossGroup),
		"elapsed_ms":  time.Since(stageStart).Milliseconds(),
	})

	res := &Result{
		RunID:      runID,
		Groups:     groups,
		GroupIndex: index,
		Unobserved: unobserved,
		CrossGroup: crossGroup,
		Stats: Stats{
			Proteins:       len(ds.Proteins),
			RawEdges:       len(ds.Interactions),
			UniqueEdges:    edges.unique,
			DuplicateEdges: edges.duplicates,
			SelfEdges:      edges.selfEdges,
			EdgeProteins:   uf.Len(),
			Groups:         len(groups),
			UniversePairs:  len(universe),
			Unobserved:     len(unobserved),
			CrossGroup:     len(crossGroup),
			Elapsed:        time.Since(start),
		},
	}

	emit(telemetry.KindRunDone, map[string]any{
		"groups":      len(groups),
		"unobserved":  len(unobserved),
		"cross_group": len(crossGroup),
		"elapsed_ms":  res.Stats.Elapsed.Milliseconds(),
	})
	return res, nil
}

// edgeCounts tallies what canonicalization observed.
type edgeCounts struct {
	unique     int
	duplicates int
	selfEdges  int
}

// canonicalizeEdges rewrites every observed edge into canonical
// orientation, preserving input order and multiplicity. Duplicate and
// self edges are counted but kept; the downstream stages tolerate
// both.
func canonicalizeEdges(raw []protein.Pair) ([]protein.Pair, edgeCounts, error) {
	canonical := make([]protein.Pair, 0, len(raw))
	seen := make(map[protein.Pair]bool, len(raw))
	var counts edgeCounts
	for _, e := range raw {
		p, err := protein.Canonicalize(e.A, e.B)
		if err != nil {
			return nil, edgeCounts{}, err
		}
		if p.A == p.B {
			counts.selfEdges++
		}
		if seen[p] {
			counts.duplicates++
		} else {
			seen[p] = true
			counts.unique++
		}
		canonical = append(canonical, p)
	}
	return canonical, counts, nil
}
