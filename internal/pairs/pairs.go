// Package pairs materializes the universe of possible protein pairs,
// joins each pair with its endpoint attributes, and classifies the
// result into candidate subsets.
package pairs

import (
	"errors"
	"fmt"

	"github.com/papapumpkin/plexus/internal/protein"
)

// ErrUniverseTooLarge is returned when the pair universe would exceed
// the configured limit.
var ErrUniverseTooLarge = errors.New("pair universe exceeds limit")

// Universe returns every two-element combination of the protein list,
// in list order: (list[i], list[j]) for all i < j. Positions, not
// values, define the combinations, so a list of distinct ids yields
// each unordered pair exactly once and no self-pairs. maxPairs caps
// the n*(n-1)/2 materialization; zero or negative means no cap.
func Universe(ids []string, maxPairs int) ([]protein.Pair, error) {
	n := len(ids)
	count := n * (n - 1) / 2
	if maxPairs > 0 && count > maxPairs {
		return nil, fmt.Errorf("%w: %d proteins yield %d pairs (limit %d)",
			ErrUniverseTooLarge, n, count, maxPairs)
	}

	universe := make([]protein.Pair, 0, count)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			universe = append(universe, protein.Pair{A: ids[i], B: ids[j]})
		}
	}
	return universe, nil
}
