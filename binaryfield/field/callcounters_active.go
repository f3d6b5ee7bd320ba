//go:build callcounters

package gf127

import (
	"testing"

	"github.com/binaryfield/gf127/internal/callcounters"
)

// This file is only compiled if tags=callcounters is set, otherwise
// callcounters_inactive.go is used. The difference is just that the
// functions defined here are replaced by no-ops.

// CallCountersActive is true if call counters are active, which means we
// profile the number of calls to certain functions.
const CallCountersActive = true

var _ = callcounters.CreateHierarchicalCallCounter("FieldOps", "Field Operations", "")
var _ = callcounters.CreateHierarchicalCallCounter("MulShiftAdd", "", "FieldOps")
var _ = callcounters.CreateHierarchicalCallCounter("MulRLComb", "", "FieldOps")
var _ = callcounters.CreateHierarchicalCallCounter("MulLRComb", "", "FieldOps")
var _ = callcounters.CreateHierarchicalCallCounter("MulLRCombWindow", "", "FieldOps")
var _ = callcounters.CreateHierarchicalCallCounter("MulLRCombWindow8", "", "FieldOps")
var _ = callcounters.CreateHierarchicalCallCounter("Square", "", "FieldOps")
var _ = callcounters.CreateHierarchicalCallCounter("Reduce", "", "FieldOps")
var _ = callcounters.CreateHierarchicalCallCounter("InvEuclid", "", "FieldOps")
var _ = callcounters.CreateHierarchicalCallCounter("InvBinary", "", "FieldOps")

// IncrementCallCounter increments the given call counter if call counters
// are active (via build tags). It is a no-op if they are inactive.
func IncrementCallCounter(id callcounters.Id) {
	id.Increment()
}

// BenchmarkWithCallCounters stops the benchmark timer and includes call
// counters in the report as custom metrics. No-op if call counters are
// inactive.
func BenchmarkWithCallCounters(b *testing.B) {
	b.StopTimer()
	reports := callcounters.ReportCallCounters(true, false)
	for _, item := range reports {
		b.ReportMetric(float64(item.Calls)/float64(b.N), item.Tag+"/op")
	}
}
