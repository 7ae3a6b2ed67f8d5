// Package dataset loads the analyzer's input files: the ordered
// protein list, the compartment assignments, the raw interaction
// edges, and optionally the protein sequences. It also repairs the
// structurally corrupted CSVs that sequence files arrive in.
package dataset

import (
	"bufio"
	"crypto/sha256"
	"fmt"
	"os"
	"strings"

	"github.com/papapumpkin/plexus/internal/protein"
)

// Dataset is the parsed input of one analysis run.
type Dataset struct {
	// Proteins lists every protein identifier in file order. The
	// order defines the pair universe and must be preserved.
	Proteins []string

	// Compartments maps protein id to compartment id. Proteins absent
	// from the map have an unknown compartment.
	Compartments map[string]string

	// Interactions holds the raw edges exactly as read: not yet
	// canonicalized, duplicates and self-edges possible.
	Interactions []protein.Pair

	// Digest is a "sha256:<hex>" hash over the three input files,
	// letting stored runs be traced back to their exact input bytes.
	Digest string
}

// Load reads the three canonical input files named by the manifest.
func Load(files Files) (*Dataset, error) {
	for name, path := range map[string]string{
		"proteins":     files.Proteins,
		"compartments": files.Compartments,
		"interactions": files.Interactions,
	} {
		if path == "" {
			return nil, fmt.Errorf("%w: %s", ErrNoFile, name)
		}
	}

	proteins, err := readProteins(files.Proteins)
	if err != nil {
		return nil, fmt.Errorf("loading proteins: %w", err)
	}
	compartments, err := readCompartments(files.Compartments)
	if err != nil {
		return nil, fmt.Errorf("loading compartments: %w", err)
	}
	interactions, err := readInteractions(files.Interactions)
	if err != nil {
		return nil, fmt.Errorf("loading interactions: %w", err)
	}
	digest, err := digestFiles(files.Proteins, files.Compartments, files.Interactions)
	if err != nil {
		return nil, fmt.Errorf("hashing inputs: %w", err)
	}

	return &Dataset{
		Proteins:     proteins,
		Compartments: compartments,
		Interactions: interactions,
		Digest:       digest,
	}, nil
}

// digestFiles hashes the input files in a fixed order so the digest
// identifies the exact input bytes of a run.
func digestFiles(paths ...string) (string, error) {
	h := sha256.New()
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return "", err
		}
		h.Write(data)
	}
	return fmt.Sprintf("sha256:%x", h.Sum(nil)), nil
}

// readProteins reads a headerless single-column protein list, one
// identifier per line. Blank lines and surrounding whitespace are
// tolerated.
func readProteins(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		id := strings.TrimSpace(scanner.Text())
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// readInteractions reads whitespace-separated identifier pairs, one
// edge per line.
func readInteractions(path string) ([]protein.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var edges []protein.Pair
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d has %d fields, want 2", ErrBadEdge, line, len(fields))
		}
		edges = append(edges, protein.Pair{A: fields[0], B: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return edges, nil
}
