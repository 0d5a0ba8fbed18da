package impstub

import "github.com/toejough/impstub/internal/core"

// ClearAll forgets the received calls of every proxy created for t. Stub rules are kept.
func ClearAll(t TestReporter) {
	core.ClearAll(t)
}

// GetOrCreateImp returns the Imp for the given test, creating one if needed.
// Multiple calls with the same TestReporter return the same Imp instance.
// This enables chronological checks across the substitutes of one test.
func GetOrCreateImp(t TestReporter) *Imp {
	return core.GetOrCreateImp(t)
}
