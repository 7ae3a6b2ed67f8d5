package motif

import (
	"errors"
	"fmt"

	"github.com/papapumpkin/plexus/internal/dataset"
)

// DefaultMaxWords bounds the combinatorial expansion of a motif.
const DefaultMaxWords = 100000

// ErrMotifTooBroad is returned when a motif expands to more concrete
// words than the enumeration engine allows.
var ErrMotifTooBroad = errors.New("motif expands to too many words")

// EnumEngine searches sequences by expanding the motif into every
// concrete word it can match, then scanning for those words. Slower to
// build than the regex engine but trivially auditable, and a useful
// cross-check.
type EnumEngine struct {
	motif Motif
	words map[string]bool
}

// NewEnumEngine expands a motif into a search engine. maxWords bounds
// the expansion; zero or negative applies DefaultMaxWords.
func NewEnumEngine(m Motif, maxWords int) (*EnumEngine, error) {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	count := 1
	for _, e := range m.Elements {
		count *= len(e.Residues)
		if count > maxWords {
			return nil, fmt.Errorf("%w: %q exceeds %d", ErrMotifTooBroad, m.Raw, maxWords)
		}
	}

	words := make(map[string]bool, count)
	expand(m.Elements, "", words)
	return &EnumEngine{motif: m, words: words}, nil
}

func expand(elements []Element, prefix string, words map[string]bool) {
	if len(elements) == 0 {
		words[prefix] = true
		return
	}
	for i := 0; i < len(elements[0].Residues); i++ {
		expand(elements[1:], prefix+string(elements[0].Residues[i]), words)
	}
}

// Words returns the number of concrete words the motif expanded to.
func (e *EnumEngine) Words() int {
	return len(e.words)
}

// Search scans every sequence and returns the proteins with at least
// one occurrence, in input order.
func (e *EnumEngine) Search(seqs []dataset.Sequence) []Match {
	k := e.motif.Len()
	var matches []Match
	for _, s := range seqs {
		var positions []int
		for i := 0; i+k <= len(s.Seq); i++ {
			if e.words[s.Seq[i:i+k]] {
				positions = append(positions, i)
			}
		}
		if len(positions) > 0 {
			matches = append(matches, Match{ID: s.ID, Positions: positions})
		}
	}
	return matches
}
