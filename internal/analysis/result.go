package analysis

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/papapumpkin/plexus/internal/network"
	"github.com/papapumpkin/plexus/internal/pairs"
)

// Stats summarizes a completed run.
type Stats struct {
	Proteins       int           `json:"proteins"`
	RawEdges       int           `json:"raw_edges"`
	UniqueEdges    int           `json:"unique_edges"`
	DuplicateEdges int           `json:"duplicate_edges"`
	SelfEdges      int           `json:"self_edges"`
	EdgeProteins   int           `json:"edge_proteins"`
	Groups         int           `json:"groups"`
	UniversePairs  int           `json:"universe_pairs"`
	Unobserved     int           `json:"unobserved"`
	CrossGroup     int           `json:"cross_group"`
	Elapsed        time.Duration `json:"elapsed"`
}

// Result holds everything a completed run produced.
type Result struct {
	RunID      string
	Stats      Stats
	Groups     []network.Group
	GroupIndex map[string]int
	Unobserved []pairs.Row
	CrossGroup []pairs.Row
}

// NewRunID returns a timestamp-based run identifier. A random suffix
// keeps ids from runs started within the same second distinct, so a
// later run never overwrites an earlier one in the store.
func NewRunID() string {
	var b [4]byte
	rand.Read(b[:])
	return time.Now().UTC().Format("20060102-150405") + "-" + hex.EncodeToString(b[:])
}
