//go:build !callcounters

package gf127

import (
	"testing"

	"github.com/binaryfield/gf127/internal/callcounters"
)

// This file contains the dummy implementations used whenever the
// callcounters build tag is absent, to avoid any runtime impact.

// CallCountersActive is true if call counters are active, which means we
// profile the number of calls to certain functions.
const CallCountersActive = false

// IncrementCallCounter increments the given call counter if call counters
// are active (via build tags). It is a no-op if they are inactive.
func IncrementCallCounter(id callcounters.Id) {
}

// BenchmarkWithCallCounters stops the benchmark timer and includes call
// counters in the report as custom metrics. No-op if call counters are
// inactive.
func BenchmarkWithCallCounters(b *testing.B) {
}
