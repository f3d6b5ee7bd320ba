package gf127

// This file implements the four multiplication variants of spec.md §4.3
// (Alg 2.33-2.36 of Hankerson/Menezes/Vanstone, ported from
// original_source/binaryfield.c). They compute the same polynomial
// product; MulShiftAdd additionally reduces the result mod F, the other
// three leave a four-word unreduced Wide for the caller to pass to Reduce.

// MulShiftAdd multiplies a and b and reduces the result modulo F in the
// same pass (right-to-left shift-and-add, Alg 2.33). a and b must have
// degree at most 126; this is not checked.
func MulShiftAdd(a, b *Element, c *Element) {
	IncrementCallCounter("MulShiftAdd")
	bp := *b

	if a[0]&1 == 1 {
		*c = bp
	} else {
		*c = Element{}
	}

	for i := 1; i < 127; i++ {
		LeftShift(bp[:])
		if bp[1]&pow2to63 != 0 {
			bp[1] &^= pow2to63
			Add(&bp, &R, &bp)
		}
		word, bit := i/64, uint(i%64)
		if a[word]&(uint64(1)<<bit) != 0 {
			Add(c, &bp, c)
		}
	}
}

// MulRLComb multiplies a and b without reducing, producing an unreduced
// four-word Wide of degree at most 252 (right-to-left comb, Alg 2.34).
func MulRLComb(a, b *Element, c *Wide) {
	IncrementCallCounter("MulRLComb")
	bp := [3]uint64{b[0], b[1], 0}
	*c = Wide{}

	for k := 0; k < 64; k++ {
		for j := 0; j < 2; j++ {
			if a[j]&(uint64(1)<<uint(k)) != 0 {
				AddExt(bp[:], c[j:j+3], c[j:j+3])
			}
		}
		if k < 63 {
			LeftShift(bp[:])
		}
	}
}

// MulLRComb multiplies a and b without reducing (left-to-right comb,
// Alg 2.35).
func MulLRComb(a, b *Element, c *Wide) {
	IncrementCallCounter("MulLRComb")
	*c = Wide{}

	for k := 63; k >= 0; k-- {
		for j := 0; j < 2; j++ {
			if a[j]&(uint64(1)<<uint(k)) != 0 {
				AddExt(b[:], c[j:j+2], c[j:j+2])
			}
		}
		if k > 0 {
			LeftShift(c[:])
		}
	}
}

// MulLRCombWindow multiplies a and b without reducing, using a
// left-to-right comb processing w bits of a at a time against a
// precomputed table of the 2^w small multiples of b (Alg 2.36). w must
// divide 64, and must be small enough that the 2^w-entry table stays
// practical: the source's own comment caps this at w < 32, and every
// caller of the general algorithm uses w=16, so this port accepts
// 1 <= w <= 16.
func MulLRCombWindow(a, b *Element, c *Wide, w int) {
	IncrementCallCounter("MulLRCombWindow")
	if w <= 0 || w > 16 || 64%w != 0 {
		panic(ErrorPrefix + "MulLRCombWindow called with a window width outside the supported range 1..16 or that does not divide 64")
	}
	numPolynomials := 1 << uint(w)

	// Product can't actually fill more than the first 3 words, but the
	// table entries are Wides to conform to the multiplier producing them.
	windowProducts := make([]Wide, numPolynomials)
	for u := 0; u < numPolynomials; u++ {
		scalar := Element{uint64(u), 0}
		MulRLComb(b, &scalar, &windowProducts[u])
	}

	*c = Wide{}
	digitVal := pow2to63
	for k := 64/w - 1; k >= 0; k-- {
		for j := 0; j < 2; j++ {
			u := 0
			dv := digitVal
			for i := w - 1; i >= 0; i-- {
				u <<= 1
				if a[j]&dv != 0 {
					u++
				}
				dv >>= 1
			}
			AddExt(windowProducts[u][:3], c[j:j+3], c[j:j+3])
		}
		digitVal >>= uint(w)
		if k != 0 {
			for i := 0; i < w; i++ {
				LeftShift(c[:])
			}
		}
	}
}

// MulLRCombWindow8 is MulLRCombWindow specialized to w=8: the per-window
// shift is an 8-bit shift across all four words of c, done with explicit
// byte-carry propagation instead of eight 1-bit LeftShift calls.
func MulLRCombWindow8(a, b *Element, c *Wide) {
	IncrementCallCounter("MulLRCombWindow8")
	const w = 8
	var windowProducts [256]Wide
	for u := 0; u < 256; u++ {
		scalar := Element{uint64(u), 0}
		MulRLComb(b, &scalar, &windowProducts[u])
	}

	*c = Wide{}
	digitVal := pow2to63
	for k := 7; k >= 0; k-- {
		for j := 0; j < 2; j++ {
			u := 0
			dv := digitVal
			for i := 7; i >= 0; i-- {
				u <<= 1
				if a[j]&dv != 0 {
					u++
				}
				dv >>= 1
			}
			AddExt(windowProducts[u][:3], c[j:j+3], c[j:j+3])
		}
		digitVal >>= w
		if k != 0 {
			shiftWideByByte(c)
		}
	}
}

// shiftWideByByte shifts c left by 8 bits across all four words, carrying
// the top byte of each word into the bottom byte of the next.
func shiftWideByByte(c *Wide) {
	var oldCarry uint64
	for i := 0; i < 4; i++ {
		carry := c[i] >> 56
		c[i] = c[i]<<8 | oldCarry
		oldCarry = carry
	}
}
