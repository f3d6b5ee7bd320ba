package gf127

// This file implements the two inversion algorithms of spec.md §4.6
// (Algs 2.47-2.49 of original_source/binaryfield.c): an extended
// Euclidean inversion specialized to a fixed modulus F, the general
// two-sided extended Euclidean algorithm it's built on, and a binary
// (right-shift) inversion that avoids degree tracking entirely.
//
// Both InvEuclid and InvBinary require a nonzero; the C source spins
// forever (InvEuclid) or returns a wrong answer (InvBinary) on a zero
// input, since the loop's termination condition is never met. This port
// upgrades that into a checked panic, since testing a == 0 costs nothing
// next to the loop it guards.

// shiftLeftBy returns a shifted left by j bits, 0 <= j <= 126. This is the
// two-word specialization used by the Euclidean routines below, where the
// shift amount is a degree difference and therefore never loses bits.
func shiftLeftBy(a Element, j int) Element {
	switch {
	case j == 0:
		return a
	case j > 63:
		return Element{0, a[0] << uint(j-64)}
	default:
		carry := a[0] >> uint(64-j)
		return Element{a[0] << uint(j), a[1]<<uint(j) | carry}
	}
}

// ExtendedEuclid computes d = gcd(a, b) and g, h such that a*g + b*h = d,
// for a, b of degree at most 126 (Alg 2.47, generalized to report both
// Bézout coefficients instead of just the one used by InvEuclid).
func ExtendedEuclid(a, b *Element) (d, g, h Element) {
	u, v := *a, *b
	degU, degV := Degree(u[:]), Degree(v[:])
	g1, g2 := Element{1, 0}, Element{0, 0}
	h1, h2 := Element{0, 0}, Element{1, 0}

	for u[0] != 0 || u[1] != 0 {
		j := degU - degV
		if j < 0 {
			u, v = v, u
			g1, g2 = g2, g1
			h1, h2 = h2, h1
			degU, degV = degV, degU
			j = -j
		}

		shifted := shiftLeftBy(v, j)
		Add(&u, &shifted, &u)
		degU = Degree(u[:])

		shiftedG := shiftLeftBy(g2, j)
		Add(&g1, &shiftedG, &g1)

		shiftedH := shiftLeftBy(h2, j)
		Add(&h1, &shiftedH, &h1)
	}

	return v, g2, h2
}

// InvEuclid computes a^-1 mod F for a nonzero element a of degree at most
// 126, using an extended Euclidean loop specialized to F (Alg 2.48).
func InvEuclid(a *Element) Element {
	IncrementCallCounter("InvEuclid")
	if a[0] == 0 && a[1] == 0 {
		panic(ErrorPrefix + "InvEuclid called with the zero element, which has no inverse")
	}

	u, v := *a, F
	degU, degV := Degree(u[:]), 127
	g1, g2 := Element{1, 0}, Element{0, 0}

	for !(u[0] == 1 && u[1] == 0) {
		j := degU - degV
		if j < 0 {
			u, v = v, u
			g1, g2 = g2, g1
			degU, degV = degV, degU
			j = -j
		}

		shifted := shiftLeftBy(v, j)
		Add(&u, &shifted, &u)
		degU = Degree(u[:])

		shiftedG := shiftLeftBy(g2, j)
		Add(&g1, &shiftedG, &g1)
	}

	return g1
}

// InvBinary computes a^-1 mod F for a nonzero element a of degree at most
// 126, using the binary (right-shift) inversion algorithm (Alg 2.49),
// which avoids explicit degree tracking in favor of parity tests and a
// two-word integer comparison.
func InvBinary(a *Element) Element {
	IncrementCallCounter("InvBinary")
	if a[0] == 0 && a[1] == 0 {
		panic(ErrorPrefix + "InvBinary called with the zero element, which has no inverse")
	}

	u, v := *a, F
	g1, g2 := Element{1, 0}, Element{0, 0}

	for !(u[0] == 1 && u[1] == 0) && !(v[0] == 1 && v[1] == 0) {
		for u[0]&1 == 0 {
			RightShift(u[:])
			if g1[0]&1 == 1 {
				Add(&g1, &F, &g1)
			}
			RightShift(g1[:])
		}
		for v[0]&1 == 0 {
			RightShift(v[:])
			if g2[0]&1 == 1 {
				Add(&g2, &F, &g2)
			}
			RightShift(g2[:])
		}

		if u[1] > v[1] || (u[1] == v[1] && u[0] > v[0]) {
			Add(&u, &v, &u)
			Add(&g1, &g2, &g1)
		} else {
			Add(&v, &u, &v)
			Add(&g2, &g1, &g2)
		}
	}

	if u[0] == 1 && u[1] == 0 {
		return g1
	}
	return g2
}
