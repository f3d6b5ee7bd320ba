package gf127

import "sync"

// This file implements modular reduction mod F (spec.md §4.5, Alg 2.40 of
// original_source/binaryfield.c), exploiting the sparse form of
// f = z^127 + z^63 + 1: reducing a set bit at position p (127 <= p <= 252)
// only ever requires XORing in R shifted by p-127, and those 64 possible
// shifts of R are precomputed once.

var (
	reductionShifts     [64]Element
	reductionShiftsOnce sync.Once
)

func buildReductionShifts() {
	reductionShifts[0] = R
	for i := 1; i < 64; i++ {
		reductionShifts[i] = reductionShifts[i-1]
		LeftShift(reductionShifts[i][:])
	}
}

// Reduce reduces c modulo F and returns the result as a field element. c
// must have degree at most 252 (this is the case for any Wide produced by
// this package's multipliers or Square). After Reduce, only c[0] and c[1]
// hold meaningful data relative to the returned Element; Reduce also
// zeroes c[2] and c[3] and clears bit 127 of c[1] in place, matching the
// "general fix" noted in spec.md §9: the bit-at-a-time loop below can
// itself set bit 127 via one of its own XORs, and that bit must be
// cleared explicitly once the loop is done.
func Reduce(c *Wide) Element {
	IncrementCallCounter("Reduce")
	reductionShiftsOnce.Do(buildReductionShifts)

	for digit := 252; digit >= 127; digit-- {
		word, bit := digit/64, uint(digit%64)
		if c[word]&(uint64(1)<<bit) == 0 {
			continue
		}
		shift := digit - 127
		k, j := shift%64, shift/64
		s := reductionShifts[k]
		AddExt(s[:], c[j:j+2], c[j:j+2])
	}

	c[1] &^= pow2to63
	c[2] = 0
	c[3] = 0
	return Element{c[0], c[1]}
}
