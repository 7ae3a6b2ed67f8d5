package motif

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/papapumpkin/plexus/internal/dataset"
)

// RegexEngine searches sequences by compiling the motif to an anchored
// regular expression and testing it at every offset, so overlapping
// occurrences are all found.
type RegexEngine struct {
	motif Motif
	re    *regexp.Regexp
}

// NewRegexEngine compiles a motif into a search engine.
func NewRegexEngine(m Motif) (*RegexEngine, error) {
	var b strings.Builder
	b.WriteByte('^')
	for _, e := range m.Elements {
		if len(e.Residues) == 1 {
			b.WriteString(e.Residues)
			continue
		}
		b.WriteByte('[')
		b.WriteString(e.Residues)
		b.WriteByte(']')
	}
	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("compiling motif %q: %w", m.Raw, err)
	}
	return &RegexEngine{motif: m, re: re}, nil
}

// Search scans every sequence and returns the proteins with at least
// one occurrence, in input order.
func (e *RegexEngine) Search(seqs []dataset.Sequence) []Match {
	k := e.motif.Len()
	var matches []Match
	for _, s := range seqs {
		var positions []int
		for i := 0; i+k <= len(s.Seq); i++ {
			if e.re.MatchString(s.Seq[i:]) {
				positions = append(positions, i)
			}
		}
		if len(positions) > 0 {
			matches = append(matches, Match{ID: s.ID, Positions: positions})
		}
	}
	return matches
}
