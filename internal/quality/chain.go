package quality

import (
	"time"

	"github.com/papapumpkin/plexus/internal/dataset"
)

// Check is a single named check in the validation chain. A check
// returns findings text and, if the dataset is unacceptable, an error.
type Check struct {
	Name string
	Fn   func(ds *dataset.Dataset) (findings string, err error)
}

// Chain runs checks sequentially, stopping on first failure.
type Chain struct {
	Checks []Check
}

// Run executes each check in sequence. It stops on the first failure
// and returns a Result with Passed=false; findings from passing
// checks are retained so tolerated anomalies stay visible.
func (c *Chain) Run(ds *dataset.Dataset) *Result {
	result := &Result{Passed: true}

	for _, check := range c.Checks {
		start := time.Now()
		findings, err := check.Fn(ds)
		elapsed := time.Since(start)

		result.Checks = append(result.Checks, CheckResult{
			Name:     check.Name,
			Passed:   err == nil,
			Findings: findings,
			Elapsed:  elapsed,
		})
		if err != nil {
			result.Passed = false
			return result
		}
	}

	return result
}

// DefaultChain returns the standard validation chain. With strict set,
// findings the pipeline would tolerate (duplicate list entries,
// unknown edge endpoints, duplicate edges, self-interactions, empty
// inputs) become failures instead of notes.
func DefaultChain(strict bool) *Chain {
	return &Chain{Checks: []Check{
		{Name: "empty", Fn: emptyCheck(strict)},
		{Name: "identifiers", Fn: identifiersCheck},
		{Name: "uniqueness", Fn: uniquenessCheck(strict)},
		{Name: "coverage", Fn: coverageCheck},
		{Name: "endpoints", Fn: endpointsCheck(strict)},
		{Name: "duplicates", Fn: duplicatesCheck(strict)},
		{Name: "self-interactions", Fn: selfInteractionsCheck(strict)},
	}}
}
