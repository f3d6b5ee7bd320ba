package gf127

import (
	"testing"

	"github.com/binaryfield/gf127/internal/testutils"
)

func TestSquareScenario(t *testing.T) {
	// spec.md §8 scenario 5.
	var wide, want, got Wide
	IndexToPolynomial([]int{3, 89, 126}, wide[:])
	IndexToPolynomial([]int{6, 178, 252}, want[:])

	a := Element{wide[0], wide[1]}
	Square(&a, &got)
	testutils.FatalUnless(t, WidesEqual(&got, &want), "Square scenario mismatch: got %v, want %v", got, want)
}

func TestSquareConsistentWithMulShiftAdd(t *testing.T) {
	for _, x := range randomElements(30, 50) {
		var squared Wide
		Square(&x, &squared)
		reduced := Reduce(&squared)

		var shiftAdd Element
		MulShiftAdd(&x, &x, &shiftAdd)

		testutils.FatalUnless(t, ElementsEqual(&reduced, &shiftAdd), "square(x) then reduce != mult_shiftadd(x, x) for x=%v", x)
	}
}

func TestSquareDoesNotModifyOperand(t *testing.T) {
	for _, x := range randomElements(31, 20) {
		before := x
		var squared Wide
		Square(&x, &squared)
		testutils.FatalUnless(t, x == before, "Square modified its operand")
	}
}
