package quality

import (
	"errors"
	"fmt"
	"strings"

	"github.com/papapumpkin/plexus/internal/dataset"
	"github.com/papapumpkin/plexus/internal/protein"
)

// sampleLimit caps how many offending identifiers a finding lists.
const sampleLimit = 10

func emptyCheck(strict bool) func(*dataset.Dataset) (string, error) {
	return func(ds *dataset.Dataset) (string, error) {
		var notes []string
		if len(ds.Proteins) == 0 {
			notes = append(notes, "protein list is empty")
		}
		if len(ds.Interactions) == 0 {
			notes = append(notes, "interaction list is empty")
		}
		if len(ds.Compartments) == 0 {
			notes = append(notes, "compartment table is empty")
		}
		findings := strings.Join(notes, "\n")
		if strict && findings != "" {
			return findings, errors.New("empty input")
		}
		return findings, nil
	}
}

// identifiersCheck fails on any identifier without a numeric token,
// regardless of strictness: canonical ordering cannot work without it.
func identifiersCheck(ds *dataset.Dataset) (string, error) {
	var bad []string
	seen := make(map[string]bool)
	note := func(id string) {
		if seen[id] {
			return
		}
		seen[id] = true
		bad = append(bad, id)
	}

	for _, id := range ds.Proteins {
		if _, err := protein.NumericID(id); err != nil {
			note(id)
		}
	}
	for _, edge := range ds.Interactions {
		for _, id := range []string{edge.A, edge.B} {
			if _, err := protein.NumericID(id); err != nil {
				note(id)
			}
		}
	}

	if len(bad) > 0 {
		findings := fmt.Sprintf("identifiers without numeric tokens: %s", sample(bad))
		return findings, fmt.Errorf("%d malformed identifiers", len(bad))
	}
	return "", nil
}

func uniquenessCheck(strict bool) func(*dataset.Dataset) (string, error) {
	return func(ds *dataset.Dataset) (string, error) {
		seen := make(map[string]bool, len(ds.Proteins))
		var dups []string
		for _, id := range ds.Proteins {
			if seen[id] {
				dups = append(dups, id)
			}
			seen[id] = true
		}
		if len(dups) == 0 {
			return "", nil
		}
		findings := fmt.Sprintf("protein list entries repeated: %s", sample(dups))
		if strict {
			return findings, fmt.Errorf("%d duplicate protein list entries", len(dups))
		}
		return findings, nil
	}
}

// coverageCheck reports proteins without a compartment assignment.
// Never a failure: the unknown sentinel is part of the data model.
func coverageCheck(ds *dataset.Dataset) (string, error) {
	var missing []string
	for _, id := range ds.Proteins {
		if ds.Compartments[id] == "" {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return "", nil
	}
	return fmt.Sprintf("proteins without compartment: %s", sample(missing)), nil
}

func endpointsCheck(strict bool) func(*dataset.Dataset) (string, error) {
	return func(ds *dataset.Dataset) (string, error) {
		listed := make(map[string]bool, len(ds.Proteins))
		for _, id := range ds.Proteins {
			listed[id] = true
		}
		var unknown []string
		seen := make(map[string]bool)
		for _, edge := range ds.Interactions {
			for _, id := range []string{edge.A, edge.B} {
				if !listed[id] && !seen[id] {
					seen[id] = true
					unknown = append(unknown, id)
				}
			}
		}
		if len(unknown) == 0 {
			return "", nil
		}
		findings := fmt.Sprintf("edge endpoints missing from protein list: %s", sample(unknown))
		if strict {
			return findings, fmt.Errorf("%d unknown edge endpoints", len(unknown))
		}
		return findings, nil
	}
}

func duplicatesCheck(strict bool) func(*dataset.Dataset) (string, error) {
	return func(ds *dataset.Dataset) (string, error) {
		seen := make(map[protein.Pair]bool, len(ds.Interactions))
		dups := 0
		for _, edge := range ds.Interactions {
			canonical, err := protein.Canonicalize(edge.A, edge.B)
			if err != nil {
				// The identifiers check owns malformed ids.
				continue
			}
			if seen[canonical] {
				dups++
			}
			seen[canonical] = true
		}
		if dups == 0 {
			return "", nil
		}
		findings := fmt.Sprintf("%d duplicate edges (after canonicalization)", dups)
		if strict {
			return findings, fmt.Errorf("%d duplicate edges", dups)
		}
		return findings, nil
	}
}

func selfInteractionsCheck(strict bool) func(*dataset.Dataset) (string, error) {
	return func(ds *dataset.Dataset) (string, error) {
		var selfs []string
		for _, edge := range ds.Interactions {
			if edge.A == edge.B {
				selfs = append(selfs, edge.A)
			}
		}
		if len(selfs) == 0 {
			return "", nil
		}
		findings := fmt.Sprintf("self-interactions: %s", sample(selfs))
		if strict {
			return findings, fmt.Errorf("%d self-interactions", len(selfs))
		}
		return findings, nil
	}
}

// sample renders up to sampleLimit identifiers from a list.
func sample(ids []string) string {
	if len(ids) <= sampleLimit {
		return strings.Join(ids, ", ")
	}
	return fmt.Sprintf("%s, and %d more", strings.Join(ids[:sampleLimit], ", "), len(ids)-sampleLimit)
}
