package protein

// Pair is a pair of protein identifiers. Canonicalize produces the
// canonical orientation, with the smaller numeric token in A.
type Pair struct {
	A string
	B string
}

// Reversed returns the pair with its orientation flipped.
func (p Pair) Reversed() Pair {
	return Pair{A: p.B, B: p.A}
}

// Canonicalize orders a raw pair so the identifier with the smaller
// numeric token comes first. Identifiers with equal tokens fall back
// to lexical order, so the result is a total deterministic function of
// the unordered pair. If either identifier has no numeric token the
// whole pair is rejected.
func Canonicalize(a, b string) (Pair, error) {
	na, err := NumericID(a)
	if err != nil {
		return Pair{}, err
	}
	nb, err := NumericID(b)
	if err != nil {
		return Pair{}, err
	}
	if na > nb || (na == nb && a > b) {
		a, b = b, a
	}
	return Pair{A: a, B: b}, nil
}
