package core

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// Proxy is the run-time half of a substitute. It records every call in its ledger,
// answers calls from its stub rules, and tracks event subscriptions.
// Typed adapters forward their methods to Invoke.
type Proxy struct {
	t        TestReporter
	imp      *Imp
	set      *CapabilitySet
	name     string
	ledger   *Ledger
	resolver *Resolver
	events   *EventChannel

	mu      sync.Mutex
	handles map[string]*Handle
	nested  []nestedResults
	value   any
}

// For creates a proxy implementing the given interface types.
func For(t TestReporter, types []reflect.Type, opts ...CapabilityOption) (*Proxy, error) {
	set, err := NewCapabilitySet(types, opts...)
	if err != nil {
		return nil, err
	}

	return NewProxy(t, set)
}

// NewProxy creates a proxy for a capability set. The proxy joins the Imp of t.
func NewProxy(t TestReporter, set *CapabilitySet) (*Proxy, error) {
	if set == nil {
		return nil, fmt.Errorf("%w: nil capability set", ErrNotInterface)
	}

	imp := GetOrCreateImp(t)
	proxy := &Proxy{
		t:        t,
		imp:      imp,
		set:      set,
		resolver: &Resolver{},
		events:   &EventChannel{},
		handles:  make(map[string]*Handle),
	}
	proxy.ledger = newLedger(proxy, imp.tick)
	proxy.name = imp.register(proxy, set.Name())

	return proxy, nil
}

// Base returns the value built by WithBase, or nil.
func (p *Proxy) Base() any {
	return p.set.Base()
}

// Bind records the typed adapter value that forwards to this proxy.
func (p *Proxy) Bind(value any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.value = value
}

// Calls returns the recorded calls in order.
func (p *Proxy) Calls() []*Invocation {
	return p.ledger.Calls()
}

// Capabilities returns the proxy's capability set.
func (p *Proxy) Capabilities() *CapabilitySet {
	return p.set
}

// ClearReceivedCalls forgets the recorded calls. Stub rules and subscriptions are kept.
func (p *Proxy) ClearReceivedCalls() {
	p.ledger.Clear()
}

// Events returns the proxy's event subscriptions.
func (p *Proxy) Events() *EventChannel {
	return p.events
}

// Handle returns the handle for the named member. It panics if the member is unknown.
func (p *Proxy) Handle(name string) *Handle {
	member := p.mustMember(name)

	p.mu.Lock()
	defer p.mu.Unlock()

	if handle, ok := p.handles[name]; ok {
		return handle
	}

	handle := &Handle{proxy: p, member: member}
	p.handles[name] = handle

	return handle
}

// Imp returns the coordinator of the proxy's test.
func (p *Proxy) Imp() *Imp {
	return p.imp
}

// Invoke records a call to the named member and returns its results, one per declared result.
// Unknown members and wrong argument counts are programming errors and panic.
func (p *Proxy) Invoke(name string, args ...any) []any {
	member := p.mustMember(name)

	err := member.checkArity(args)
	if err != nil {
		panic(fmt.Errorf("%s: %w", p.name, err))
	}

	inv := p.ledger.Record(member, args)

	switch member.Kind {
	case KindEventAdd:
		p.events.subscribe(member.Subject, args[0])
	case KindEventRemove:
		p.events.unsubscribe(member.Subject, args[0])
	case KindPropertySet, KindIndexSet:
		p.remember(member, args)
	case KindMethod, KindPropertyGet, KindIndexGet:
	}

	values, answered, err := p.resolver.Resolve(inv)
	if err != nil {
		p.t.Helper()
		p.t.Fatalf("%s: %v", inv, err)

		return member.zeroResults()
	}

	if answered {
		return values
	}

	return p.defaultResults(inv)
}

// Ledger returns the proxy's call ledger.
func (p *Proxy) Ledger() *Ledger {
	return p.ledger
}

// Name returns the readable name of the proxy, e.g. "Calculator#1".
func (p *Proxy) Name() string {
	return p.name
}

// Raise calls the current subscribers of event in subscription order.
// Missing trailing arguments are passed as zero values.
func (p *Proxy) Raise(event string, args ...any) {
	p.t.Helper()

	adder, ok := p.set.Event(event)
	if !ok {
		p.t.Fatalf("%s: %v: no event %q", p.name, ErrUnknownMember, event)

		return
	}

	_, err := callArgs(handlerFuncType(adder.Params[0]), args)
	if err != nil {
		p.t.Fatalf("%s: raising %s: %v", p.name, event, err)

		return
	}

	handlers := p.events.Subscribers(event)
	if len(handlers) == 0 {
		if logger, ok := p.t.(logReporter); ok {
			logger.Logf("%s: raised %s with no subscribers", p.name, event)
		}

		return
	}

	for _, handler := range handlers {
		err := callHandler(handler, adder.Params[0], args)
		if err != nil {
			p.t.Fatalf("%s: raising %s: %v", p.name, event, err)

			return
		}
	}
}

// Resolver returns the proxy's stub rules.
func (p *Proxy) Resolver() *Resolver {
	return p.resolver
}

func (p *Proxy) String() string {
	return p.name
}

// Value returns the adapter bound with Bind, or nil.
func (p *Proxy) Value() any {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.value
}

// defaultResults answers a call no rule answered: zero values, except that interfaces with a
// registered adapter get a nested proxy, the same one for equal arguments.
func (p *Proxy) defaultResults(inv *Invocation) []any {
	results := inv.member.zeroResults()

	nestable := false

	for _, typ := range inv.member.Results {
		if _, ok := adapterFor(typ); ok {
			nestable = true
		}
	}

	if !nestable {
		return results
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, entry := range p.nested {
		if entry.member == inv.member && reflect.DeepEqual(entry.args, inv.args) {
			return entry.results
		}
	}

	for index, typ := range inv.member.Results {
		factory, ok := adapterFor(typ)
		if !ok {
			continue
		}

		child, err := For(p.t, []reflect.Type{typ})
		if err != nil {
			p.t.Helper()
			p.t.Fatalf("%s: nested proxy for %v: %v", inv, typ, err)

			return inv.member.zeroResults()
		}

		results[index] = factory(child)
	}

	p.nested = append(p.nested, nestedResults{member: inv.member, args: inv.args, results: results})

	return results
}

func (p *Proxy) mustMember(name string) *Member {
	member, ok := p.set.Member(name)
	if !ok {
		panic(fmt.Errorf("%w: %s has no member %q", ErrUnknownMember, p.name, name))
	}

	return member
}

// remember makes the getter paired with a setter return the assigned value for the same keys.
func (p *Proxy) remember(setter *Member, args []any) {
	getter, ok := p.set.Member(setter.Pair)
	if !ok {
		return
	}

	keys := slices.Clone(args[:len(args)-1])
	assigned := args[len(args)-1]

	rule := newRule(p, getter, keys, false)
	rule.implicit = true

	values, err := getter.shape([]any{assigned})
	if err != nil {
		return
	}

	rule.add(response{values: values})
	p.resolver.registerImplicit(rule)
}

type nestedResults struct {
	member  *Member
	args    []any
	results []any
}
