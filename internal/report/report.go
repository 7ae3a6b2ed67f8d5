// Package report writes analysis results to disk and renders terminal
// summaries. File writers are atomic: output lands under its final
// name only after a complete write.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/papapumpkin/plexus/internal/network"
	"github.com/papapumpkin/plexus/internal/pairs"
)

// pairColumns is the column contract for classified pair tables.
// Downstream consumers match these names exactly.
var pairColumns = []string{
	"entity_A", "entity_B",
	"compartment_A", "compartment_B",
	"group_A", "group_B",
}

// pairRecord mirrors pairColumns for JSON output. Group ids are
// omitted entirely when a side has no connectivity group.
type pairRecord struct {
	EntityA      string `json:"entity_A"`
	EntityB      string `json:"entity_B"`
	CompartmentA string `json:"compartment_A"`
	CompartmentB string `json:"compartment_B"`
	GroupA       *int   `json:"group_A,omitempty"`
	GroupB       *int   `json:"group_B,omitempty"`
}

// WritePairsCSV writes a classified pair table as CSV in row order.
// Sides without a connectivity group get an empty group field.
func WritePairsCSV(path string, rows []pairs.Row) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(pairColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.Pair.A, r.Pair.B,
			r.CompartmentA, r.CompartmentB,
			groupField(r.GroupA, r.HasGroupA),
			groupField(r.GroupB, r.HasGroupB),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing rows: %w", err)
	}
	return writeAtomic(path, buf.Bytes())
}

// WritePairsJSON writes a classified pair table as a JSON array in
// row order.
func WritePairsJSON(path string, rows []pairs.Row) error {
	records := make([]pairRecord, len(rows))
	for i, r := range rows {
		rec := pairRecord{
			EntityA:      r.Pair.A,
			EntityB:      r.Pair.B,
			CompartmentA: r.CompartmentA,
			CompartmentB: r.CompartmentB,
		}
		if r.HasGroupA {
			g := r.GroupA
			rec.GroupA = &g
		}
		if r.HasGroupB {
			g := r.GroupB
			rec.GroupB = &g
		}
		records[i] = rec
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling pairs: %w", err)
	}
	data = append(data, '\n')
	return writeAtomic(path, data)
}

// WriteGroupsCSV writes the group listing in long form, one member
// per row, ordered by group id then member order.
func WriteGroupsCSV(path string, groups []network.Group) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"group_id", "protein_id"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, g := range groups {
		id := strconv.Itoa(g.ID)
		for _, m := range g.Members {
			if err := w.Write([]string{id, m}); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing rows: %w", err)
	}
	return writeAtomic(path, buf.Bytes())
}

func groupField(id int, ok bool) string {
	if !ok {
		return ""
	}
	return strconv.Itoa(id)
}

// writeAtomic writes data to a temp file beside path and renames it
// into place.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}
