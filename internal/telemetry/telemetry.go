// Package telemetry provides a JSONL event stream for recording
// analysis runs. Every pipeline stage boundary is recorded as a
// structured JSON event, making runs auditable and comparable.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Event kinds identify the type of telemetry event.
const (
	KindRunStart         = "run_start"
	KindRunDone          = "run_done"
	KindRunFailed        = "run_failed"
	KindDatasetLoaded    = "dataset_loaded"
	KindEdgesCanonical   = "edges_canonicalized"
	KindGroupsComputed   = "groups_computed"
	KindUniverseBuilt    = "universe_built"
	KindPairsClassified  = "pairs_classified"
	KindValidationResult = "validation_result"
	KindReportWritten    = "report_written"
	KindWatchTriggered   = "watch_triggered"
)

// Event represents a single telemetry record. Each event carries a
// timestamp, a kind tag, and the run it belongs to, along with
// arbitrary structured data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	RunID     string    `json:"run,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Emitter writes telemetry events to a JSONL file. It is safe for
// concurrent use. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	file *os.File
	enc  *json.Encoder
	mu   sync.Mutex
}

// NewEmitter creates an Emitter that writes JSONL events to the file
// at path, creating or appending as needed.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		file: f,
		enc:  json.NewEncoder(f),
	}, nil
}

// Emit writes a single event. Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file. Calling Close on a
// nil Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}
