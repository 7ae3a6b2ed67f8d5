// Package protein defines protein identifier conventions and the
// canonical form of pairwise interactions. Identifiers embed a numeric
// token ("P51" → 51) that orders proteins and their pairs throughout
// the analyzer.
package protein

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNoDigits is returned when an identifier contains no digit characters.
var ErrNoDigits = errors.New("identifier has no numeric token")

// NumericID extracts the numeric token embedded in an identifier by
// concatenating its decimal digits in order and parsing them as a
// single integer. "P51" yields 51; "prot_1_2" yields 12.
func NumericID(id string) (int, error) {
	digits := make([]byte, 0, len(id))
	for i := 0; i < len(id); i++ {
		if id[i] >= '0' && id[i] <= '9' {
			digits = append(digits, id[i])
		}
	}
	if len(digits) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoDigits, id)
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0, fmt.Errorf("numeric token of %q: %w", id, err)
	}
	return n, nil
}
