package ui

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/papapumpkin/plexus/internal/analysis"
	"github.com/papapumpkin/plexus/internal/quality"
)

// captureStderr redirects os.Stderr to a pipe and returns the captured output.
func captureStderr(fn func()) string {
	r, w, _ := os.Pipe()
	orig := os.Stderr
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = orig

	buf := make([]byte, 4096)
	n, _ := r.Read(buf)
	r.Close()
	return string(buf[:n])
}

func TestAnalysisDone(t *testing.T) {
	p := New()
	output := captureStderr(func() {
		p.AnalysisDone(analysis.Stats{
			Groups: 2, Unobserved: 4, CrossGroup: 4,
			DuplicateEdges: 1,
			Elapsed:        42 * time.Millisecond,
		})
	})

	for _, want := range []string{
		"analysis",
		"groups:      2",
		"unobserved:  4",
		"cross-group: 4",
		"tolerated",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestAnalysisDone_CleanInputHasNoWarning(t *testing.T) {
	p := New()
	output := captureStderr(func() {
		p.AnalysisDone(analysis.Stats{Groups: 1})
	})
	if strings.Contains(output, "tolerated") {
		t.Errorf("clean stats should not warn:\n%s", output)
	}
}

func TestValidationResult(t *testing.T) {
	p := New()

	t.Run("passing", func(t *testing.T) {
		res := &quality.Result{
			Passed: true,
			Checks: []quality.CheckResult{
				{Name: "identifiers", Passed: true},
				{Name: "duplicates", Passed: true, Findings: "2 duplicate edges"},
			},
		}
		output := captureStderr(func() { p.ValidationResult(res) })
		for _, want := range []string{"identifiers", "2 duplicate edges", "dataset OK"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q:\n%s", want, output)
			}
		}
	})

	t.Run("failing", func(t *testing.T) {
		res := &quality.Result{
			Checks: []quality.CheckResult{
				{Name: "identifiers", Passed: false, Findings: "1 malformed id"},
			},
		}
		output := captureStderr(func() { p.ValidationResult(res) })
		for _, want := range []string{"dataset rejected", "identifiers", "1 malformed id"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q:\n%s", want, output)
			}
		}
	})
}

func TestWatchTriggered(t *testing.T) {
	p := New()
	output := captureStderr(func() {
		p.WatchTriggered("/data/proteins.txt")
	})
	if !strings.Contains(output, "/data/proteins.txt") {
		t.Errorf("output missing path:\n%s", output)
	}
}
