package core

import (
	"reflect"
	"slices"
	"sync"
)

// Ledger is a proxy's append-only record of received calls.
type Ledger struct {
	mu       sync.Mutex
	calls    []*Invocation
	next     uint64
	receiver *Proxy
	clock    func() uint64
}

func newLedger(receiver *Proxy, clock func() uint64) *Ledger {
	return &Ledger{receiver: receiver, clock: clock}
}

// Calls returns the recorded calls in order.
func (l *Ledger) Calls() []*Invocation {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.Clone(l.calls)
}

// CallsTo returns the recorded calls to the named member in order.
func (l *Ledger) CallsTo(member string) []*Invocation {
	l.mu.Lock()
	defer l.mu.Unlock()

	var calls []*Invocation

	for _, call := range l.calls {
		if call.member.Name == member {
			calls = append(calls, call)
		}
	}

	return calls
}

// Clear forgets every recorded call. Sequence numbers keep increasing.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.calls = nil
}

// Count returns how many calls to the named member match expected, one entry per parameter.
func (l *Ledger) Count(member string, expected []any) int {
	count := 0

	for _, call := range l.CallsTo(member) {
		if matchAll(expected, call.args) {
			count++
		}
	}

	return count
}

// CountAny returns how many calls to the named member were received, whatever their arguments.
func (l *Ledger) CountAny(member string) int {
	return len(l.CallsTo(member))
}

// Len returns the number of recorded calls.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.calls)
}

// Record appends a call to member. args are copied, and so is the trailing slice of a
// variadic member.
func (l *Ledger) Record(member *Member, args []any) *Invocation {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.next++

	inv := &Invocation{
		member:   member,
		args:     snapshotArgs(member, args),
		receiver: l.receiver,
		seq:      l.next,
	}

	if l.clock != nil {
		inv.global = l.clock()
	}

	l.calls = append(l.calls, inv)

	return inv
}

func snapshotArgs(member *Member, args []any) []any {
	copied := slices.Clone(args)
	if !member.Variadic || len(copied) == 0 {
		return copied
	}

	last := len(copied) - 1

	rest := reflect.ValueOf(copied[last])
	if rest.Kind() != reflect.Slice || rest.IsNil() {
		return copied
	}

	clone := reflect.MakeSlice(rest.Type(), rest.Len(), rest.Len())
	reflect.Copy(clone, rest)
	copied[last] = clone.Interface()

	return copied
}
