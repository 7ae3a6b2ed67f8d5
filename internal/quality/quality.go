// Package quality runs deterministic validation checks over a loaded
// dataset before analysis. Anomalies the pipeline tolerates (duplicate
// edges, self-interactions, spotty compartment coverage) surface as
// findings on passing checks; strict mode escalates the structural
// ones to failures. Malformed identifiers always fail, since numeric
// ordering is mandatory downstream.
package quality

import "time"

// Result contains the outcome of a validation run.
type Result struct {
	Passed bool          // true if all checks passed
	Checks []CheckResult // individual check outcomes, in execution order
}

// CheckResult is the outcome of a single check.
type CheckResult struct {
	Name     string        // "identifiers", "duplicates", ...
	Passed   bool          // true if this check passed
	Findings string        // human-readable findings, possibly non-empty even on pass
	Elapsed  time.Duration // wall-clock time for this check
}

// FirstFailure returns the first failing check, or nil if all passed.
func (r *Result) FirstFailure() *CheckResult {
	for i := range r.Checks {
		if !r.Checks[i].Passed {
			return &r.Checks[i]
		}
	}
	return nil
}
