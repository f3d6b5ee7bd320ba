package gf127

import (
	"testing"

	"github.com/binaryfield/gf127/internal/testutils"
	"github.com/binaryfield/gf127/internal/utils"
)

func TestAddScenario(t *testing.T) {
	// spec.md §8 scenario 1.
	var a, b, want, got Element
	IndexToPolynomial([]int{0, 2, 3, 5, 64}, a[:])
	IndexToPolynomial([]int{1, 2, 4, 8, 16, 32, 64}, b[:])
	IndexToPolynomial([]int{0, 1, 3, 4, 5, 8, 16, 32}, want[:])

	Add(&a, &b, &got)
	testutils.FatalUnless(t, ElementsEqual(&got, &want), "add mismatch: got %v, want %v", got, want)
}

func TestAddExtAliasing(t *testing.T) {
	var a, b Element
	IndexToPolynomial([]int{0, 5, 64}, a[:])
	IndexToPolynomial([]int{5, 6}, b[:])

	var want Element
	Add(&a, &b, &want)

	AddExt(a[:], b[:], a[:]) // c aliases a
	testutils.FatalUnless(t, ElementsEqual(&a, &want), "AddExt with c==a mismatch")
}

func TestAddIsCommutativeAndSelfInverse(t *testing.T) {
	xs := randomElements(1, 50)
	ys := randomElements(2, 50)
	for i := range xs {
		x, y := xs[i], ys[i]

		var xy, yx Element
		Add(&x, &y, &xy)
		Add(&y, &x, &yx)
		testutils.FatalUnless(t, ElementsEqual(&xy, &yx), "addition is not commutative")

		var zero Element
		Add(&x, &x, &zero)
		testutils.FatalUnless(t, zero == (Element{}), "x+x != 0")

		var xPlus0 Element
		Add(&x, &zero, &xPlus0)
		testutils.FatalUnless(t, ElementsEqual(&xPlus0, &x), "x+0 != x")
	}
}

func TestAddIsAssociative(t *testing.T) {
	xs := randomElements(3, 30)
	ys := randomElements(4, 30)
	zs := randomElements(5, 30)
	for i := range xs {
		x, y, z := xs[i], ys[i], zs[i]

		var xy, xyz1 Element
		Add(&x, &y, &xy)
		Add(&xy, &z, &xyz1)

		var yz, xyz2 Element
		Add(&y, &z, &yz)
		Add(&x, &yz, &xyz2)

		testutils.FatalUnless(t, ElementsEqual(&xyz1, &xyz2), "addition is not associative")
	}
}

func TestLeftShiftRightShiftRoundTrip(t *testing.T) {
	for _, e := range randomElements(6, 50) {
		a := e
		LeftShift(a[:])
		RightShift(a[:])
		testutils.FatalUnless(t, a == e, "left-shift then right-shift did not round-trip")
	}
}

func TestDegree(t *testing.T) {
	var zero, one, b Element
	testutils.FatalUnless(t, Degree(zero[:]) == 0, "degree of zero should be 0")

	IndexToPolynomial([]int{0}, one[:])
	testutils.FatalUnless(t, Degree(one[:]) == 0, "degree of 1 should be 0")

	IndexToPolynomial([]int{1, 2, 4, 8, 16, 32, 64}, b[:])
	testutils.FatalUnless(t, Degree(b[:]) == 64, "degree of b mismatch: got %v", Degree(b[:]))

	var hi Element
	IndexToPolynomial([]int{126}, hi[:])
	testutils.FatalUnless(t, Degree(hi[:]) == 126, "degree of z^126 mismatch: got %v", Degree(hi[:]))
}

func TestIndexToPolynomialRoundTrip(t *testing.T) {
	indices := []int{0, 1, 3, 4, 5, 8, 16, 32, 126}
	var a Element
	IndexToPolynomial(indices, a[:])
	testutils.FatalUnless(t, utils.CompareSlices(SetBits(a[:]), indices), "round-trip through IndexToPolynomial/SetBits failed")
}

func TestIndexToPolynomialSkipsOutOfRange(t *testing.T) {
	var a Element
	IndexToPolynomial([]int{0, 127, 200}, a[:])
	testutils.FatalUnless(t, utils.CompareSlices(SetBits(a[:]), []int{0, 127}), "IndexToPolynomial should silently skip indices beyond 64*len(a)")
}

func TestRandomElementClearsTopBit(t *testing.T) {
	for _, e := range randomElements(7, 200) {
		testutils.FatalUnless(t, e[1]&pow2to63 == 0, "RandomElement must never set bit 127")
	}
}
