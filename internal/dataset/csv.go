package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// readCompartments reads a headered CSV with protein_id and
// compartment_id columns. Extra columns are ignored. When the same
// protein appears twice, the last assignment wins. An empty
// compartment value is the unknown sentinel.
func readCompartments(path string) (map[string]string, error) {
	rows, header, err := readHeadered(path)
	if err != nil {
		return nil, err
	}
	idCol, err := columnIndex(header, "protein_id")
	if err != nil {
		return nil, err
	}
	compCol, err := columnIndex(header, "compartment_id")
	if err != nil {
		return nil, err
	}

	compartments := make(map[string]string, len(rows))
	for _, row := range rows {
		if idCol >= len(row) {
			continue
		}
		id := strings.TrimSpace(row[idCol])
		if id == "" {
			continue
		}
		var comp string
		if compCol < len(row) {
			comp = strings.TrimSpace(row[compCol])
		}
		compartments[id] = comp
	}
	return compartments, nil
}

// Sequence is one protein's amino-acid sequence.
type Sequence struct {
	ID  string
	Seq string
}

// ReadSequences reads a headered protein_id,sequence CSV, tolerating
// the leading unnamed index column that repaired files carry. File
// order is preserved.
func ReadSequences(path string) ([]Sequence, error) {
	rows, header, err := readHeadered(path)
	if err != nil {
		return nil, err
	}
	idCol, err := columnIndex(header, "protein_id")
	if err != nil {
		return nil, err
	}
	seqCol, err := columnIndex(header, "sequence")
	if err != nil {
		return nil, err
	}

	seqs := make([]Sequence, 0, len(rows))
	for _, row := range rows {
		if idCol >= len(row) || seqCol >= len(row) {
			continue
		}
		id := strings.TrimSpace(row[idCol])
		if id == "" {
			continue
		}
		seqs = append(seqs, Sequence{ID: id, Seq: strings.TrimSpace(row[seqCol])})
	}
	return seqs, nil
}

// readHeadered reads a whole CSV leniently, returning the data rows
// and the header. Variable field counts are allowed so structurally
// damaged files can still be inspected.
func readHeadered(path string) ([][]string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var header []string
	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if header == nil {
			header = record
			continue
		}
		rows = append(rows, record)
	}
	if header == nil {
		return nil, nil, fmt.Errorf("reading %s: empty file", path)
	}
	return rows, header, nil
}

// columnIndex finds a named column in a header, case-insensitively.
func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrMissingColumn, name)
}
