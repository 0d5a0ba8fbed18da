package core

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
)

// Imp coordinates the proxies of one test. It numbers proxies, stamps every recorded call
// with a test-wide sequence number, and forwards failures to the test.
type Imp struct {
	t TestReporter

	clock atomic.Uint64

	mu      sync.Mutex
	ids     map[string]int
	proxies []*Proxy
}

// NewImp creates a new Imp coordinator.
func NewImp(testReporter TestReporter) *Imp {
	return &Imp{t: testReporter, ids: make(map[string]int)}
}

// ClearAll forgets the received calls of every proxy created for t. Stub rules are kept.
func ClearAll(t TestReporter) {
	registryMu.Lock()

	imp, ok := registry[t]

	registryMu.Unlock()

	if !ok {
		return
	}

	for _, proxy := range imp.Proxies() {
		proxy.ClearReceivedCalls()
	}
}

// GetOrCreateImp returns the Imp for the given test, creating one if needed.
// Multiple calls with the same TestReporter return the same Imp instance.
//
// If the TestReporter supports Cleanup (like *testing.T), the Imp is
// automatically removed from the registry when the test completes.
func GetOrCreateImp(t TestReporter) *Imp {
	registryMu.Lock()
	defer registryMu.Unlock()

	if imp, ok := registry[t]; ok {
		return imp
	}

	imp := NewImp(t)
	registry[t] = imp

	if cr, ok := t.(cleanupRegistrar); ok {
		cr.Cleanup(func() {
			registryMu.Lock()
			delete(registry, t)
			registryMu.Unlock()
		})
	}

	return imp
}

// Fatalf fails the test with a formatted message.
// Implements TestReporter interface.
func (i *Imp) Fatalf(format string, args ...any) {
	i.t.Fatalf(format, args...)
}

// Helper marks the calling function as a test helper.
// Implements TestReporter interface.
func (i *Imp) Helper() {
	i.t.Helper()
}

// Proxies returns the proxies created for the test, in creation order.
func (i *Imp) Proxies() []*Proxy {
	i.mu.Lock()
	defer i.mu.Unlock()

	return slices.Clone(i.proxies)
}

// register adds a proxy and returns its readable name, e.g. "Calculator#2".
func (i *Imp) register(proxy *Proxy, base string) string {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.ids[base]++
	i.proxies = append(i.proxies, proxy)

	return fmt.Sprintf("%s#%d", base, i.ids[base])
}

// tick returns the next test-wide sequence number.
func (i *Imp) tick() uint64 {
	return i.clock.Add(1)
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Package-level registry is intentional for test coordination
	registry = make(map[TestReporter]*Imp)
	//nolint:gochecknoglobals // Mutex for registry
	registryMu sync.Mutex
)
