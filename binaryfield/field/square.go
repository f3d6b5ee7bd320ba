package gf127

import "sync"

// This file implements polynomial squaring (spec.md §4.4, Alg 2.39 of
// original_source/binaryfield.c). Over GF(2), (Σ a_i z^i)^2 = Σ a_i z^(2i):
// squaring a polynomial is bit-spreading its coefficients, inserting a zero
// between every pair of bits. squareSpread precomputes this spread for
// every byte once, so Square only ever does table lookups and shifts.

var (
	squareSpread     [256]uint16
	squareSpreadOnce sync.Once
)

func buildSquareSpread() {
	for i := 0; i < 256; i++ {
		var v uint16
		for bit := uint(0); bit < 8; bit++ {
			if i&(1<<bit) != 0 {
				v |= 1 << (2 * bit)
			}
		}
		squareSpread[i] = v
	}
}

// Square computes c = a*a without reducing modulo F, leaving an unreduced
// four-word result of degree at most 252. Pass c to Reduce to get the
// field element.
func Square(a *Element, c *Wide) {
	IncrementCallCounter("Square")
	squareSpreadOnce.Do(buildSquareSpread)

	for i := 0; i < 2; i++ {
		valA := a[i]
		var u [8]byte
		for j := 0; j < 8; j++ {
			u[j] = byte(valA)
			valA >>= 8
		}

		c[2*i] = uint64(squareSpread[u[0]]) |
			uint64(squareSpread[u[1]])<<16 |
			uint64(squareSpread[u[2]])<<32 |
			uint64(squareSpread[u[3]])<<48

		c[2*i+1] = uint64(squareSpread[u[4]]) |
			uint64(squareSpread[u[5]])<<16 |
			uint64(squareSpread[u[6]])<<32 |
			uint64(squareSpread[u[7]])<<48
	}
}
