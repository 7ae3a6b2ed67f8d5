package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Anomaly describes a data row whose field count deviates from the
// header's. Row indices are 0-based over the data rows, header
// excluded.
type Anomaly struct {
	Row    int
	Fields int
	Want   int
}

// Diagnose scans a CSV leniently and reports every structurally
// damaged row without modifying anything.
func Diagnose(path string) ([]Anomaly, error) {
	rows, header, err := readHeadered(path)
	if err != nil {
		return nil, err
	}
	want := len(header)

	var anomalies []Anomaly
	for i, row := range rows {
		if len(row) != want {
			anomalies = append(anomalies, Anomaly{Row: i, Fields: len(row), Want: want})
		}
	}
	return anomalies, nil
}

// RepairResult holds a repaired table and the indices of the rows the
// repair touched.
type RepairResult struct {
	Header  []string
	Rows    [][]string
	Fixed   []int // rows repaired by collapsing a spurious empty field
	Dropped []int // rows removed because no safe repair exists
}

// Repair reads a structurally damaged CSV and fixes what it safely
// can. A row with exactly one extra field collapses its first empty
// field; content is never guessed, so any other mismatch drops the
// row. Indices in the result refer to the input's data rows, 0-based.
func Repair(path string) (*RepairResult, error) {
	rows, header, err := readHeadered(path)
	if err != nil {
		return nil, err
	}
	want := len(header)

	res := &RepairResult{Header: header}
	for i, row := range rows {
		if len(row) == want {
			res.Rows = append(res.Rows, row)
			continue
		}
		if j := firstEmptyField(row); len(row) == want+1 && j >= 0 {
			repaired := make([]string, 0, want)
			repaired = append(repaired, row[:j]...)
			repaired = append(repaired, row[j+1:]...)
			res.Rows = append(res.Rows, repaired)
			res.Fixed = append(res.Fixed, i)
			continue
		}
		res.Dropped = append(res.Dropped, i)
	}
	return res, nil
}

// Write saves the repaired table as a well-formed CSV.
func (r *RepairResult) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(r.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range r.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

func firstEmptyField(row []string) int {
	for i, field := range row {
		if strings.TrimSpace(field) == "" {
			return i
		}
	}
	return -1
}
