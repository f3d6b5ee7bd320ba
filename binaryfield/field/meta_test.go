package gf127

import (
	"math/rand"

	"github.com/binaryfield/gf127/internal/testutils"
)

// elementCache hands out reusable pseudorandom field elements keyed by
// seed, so property tests that want "N random elements" don't each pay
// for generating their own and so repeated runs of the same test see the
// same inputs. Grounded on the teacher's GetPrecomputedFieldElements
// pattern (field_element_differential_test.go).
var elementCache = testutils.MakePrecomputedCache[int64, Element](
	testutils.DefaultCreateRandFromSeed,
	func(rng *rand.Rand, _ int64) Element { return RandomElement(rng) },
	nil,
)

func randomElements(seed int64, n int) []Element {
	return elementCache.GetElements(seed, n)
}

func randomNonzeroElements(seed int64, n int) []Element {
	ret := make([]Element, 0, n)
	var i int64
	for len(ret) < n {
		candidates := elementCache.GetElements(seed+i, 1)
		e := candidates[0]
		if e[0] != 0 || e[1] != 0 {
			ret = append(ret, e)
		}
		i++
	}
	return ret
}
