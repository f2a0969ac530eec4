package gyp

import (
	"math"
	"regexp"
	"strconv"
)

// numberRe is JSON's number grammar, except that a fraction may have no
// digits and the exponent must carry a sign.
var numberRe = regexp.MustCompile(`^-?([1-9][0-9]+|[0-9])(\.[0-9]*)?([eE][+-][0-9]+)?`)

// parseNumber reads the longest number at the cursor. A leading "+" is
// accepted and dropped.
func parseNumber(input string, at int) (float64, int, error) {
	if peek(input, at) == '+' {
		at++
	}
	m := numberRe.FindString(input[at:])
	if m == "" {
		return 0, at, newSyntaxError(input, at, ExpectedNumber)
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil && !math.IsInf(f, 0) {
		// Unreachable for anything numberRe matches.
		return 0, at, newSyntaxError(input, at, ExpectedNumber)
	}
	// Magnitudes beyond float64 become infinities rather than errors.
	return f, at + len(m), nil
}
