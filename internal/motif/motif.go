// Package motif parses PROSITE-style sequence motifs and searches
// protein sequences for them. Two independent engines, one built on
// regular expressions and one on combinatorial expansion, produce
// identical hits and cross-check each other.
package motif

import (
	"errors"
	"fmt"
	"strings"
)

// Alphabet is the set of standard amino acid codes a wildcard ranges
// over.
const Alphabet = "ACDEFGHIKLMNPQRSTVWY"

// ErrBadMotif is returned when a motif expression cannot be parsed.
var ErrBadMotif = errors.New("malformed motif expression")

// Element is one position of a motif: the set of residues allowed
// there. A wildcard position allows the whole alphabet.
type Element struct {
	Residues string
}

// Motif is a parsed motif such as "T-[AV]-T-x-T": a fixed-length
// pattern of single-residue positions, alternative sets in brackets,
// and x wildcards. Dashes between positions are optional.
type Motif struct {
	Raw      string
	Elements []Element
}

// Len returns the motif's length in residues.
func (m Motif) Len() int {
	return len(m.Elements)
}

// Parse reads a PROSITE-style motif expression.
func Parse(expr string) (Motif, error) {
	m := Motif{Raw: expr}
	s := strings.TrimSpace(expr)
	if s == "" {
		return Motif{}, fmt.Errorf("%w: empty expression", ErrBadMotif)
	}

	for i := 0; i < len(s); {
		switch c := s[i]; {
		case c == '-':
			i++
		case c == 'x':
			m.Elements = append(m.Elements, Element{Residues: Alphabet})
			i++
		case c == '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return Motif{}, fmt.Errorf("%w: unclosed [ in %q", ErrBadMotif, expr)
			}
			set := s[i+1 : i+end]
			if set == "" {
				return Motif{}, fmt.Errorf("%w: empty [] in %q", ErrBadMotif, expr)
			}
			for j := 0; j < len(set); j++ {
				if !strings.ContainsRune(Alphabet, rune(set[j])) {
					return Motif{}, fmt.Errorf("%w: %q is not an amino acid code", ErrBadMotif, set[j])
				}
			}
			m.Elements = append(m.Elements, Element{Residues: set})
			i += end + 1
		case strings.ContainsRune(Alphabet, rune(c)):
			m.Elements = append(m.Elements, Element{Residues: string(c)})
			i++
		default:
			return Motif{}, fmt.Errorf("%w: unexpected %q in %q", ErrBadMotif, c, expr)
		}
	}
	if len(m.Elements) == 0 {
		return Motif{}, fmt.Errorf("%w: no positions in %q", ErrBadMotif, expr)
	}
	return m, nil
}

// Match lists every occurrence of a motif in one protein, as 0-based
// offsets into the sequence. Overlapping occurrences all count.
type Match struct {
	ID        string
	Positions []int
}
