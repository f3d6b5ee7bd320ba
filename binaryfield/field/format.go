package gf127

import (
	"strconv"
	"strings"
)

// This file provides the pretty-printing spec.md §1 calls a thin,
// external-collaborator concern: polynomial notation (ported from
// original_source/BinaryField.c:print_polynomial) and comma-separated
// word-array notation (print_array). Neither is used by the arithmetic
// itself; both exist purely for debugging and test failure messages.

// String renders a as a sum of powers of z, highest degree first, e.g.
// "z^126+z^3+1". The zero polynomial renders as "0".
func (a Element) String() string {
	return formatPolynomial(a[:])
}

// String renders c the same way as Element.String, across all four words.
func (c Wide) String() string {
	return formatPolynomial(c[:])
}

func formatPolynomial(a []uint64) string {
	indices := SetBits(a)
	if len(indices) == 0 {
		return "0"
	}
	terms := make([]string, len(indices))
	for i, idx := range indices {
		term := "z^" + strconv.Itoa(idx)
		if idx == 0 {
			term = "1"
		}
		terms[len(indices)-1-i] = term
	}
	return strings.Join(terms, "+")
}

// FormatWords renders a as its comma-separated decimal word array, e.g.
// "1,0" (ported from original_source/BinaryField.c:print_array).
func FormatWords(a []uint64) string {
	parts := make([]string, len(a))
	for i, w := range a {
		parts[i] = strconv.FormatUint(w, 10)
	}
	return strings.Join(parts, ",")
}
