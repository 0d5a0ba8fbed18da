package core

// Handle addresses one member of a proxy, for stubbing and verification.
type Handle struct {
	proxy  *Proxy
	member *Member
}

// Calls returns the recorded calls to the member in order.
func (h *Handle) Calls() []*Invocation {
	return h.proxy.ledger.CallsTo(h.member.Name)
}

// DidNotReceive starts a check that the member was never called.
func (h *Handle) DidNotReceive() *Verifier {
	return &Verifier{handle: h, quantity: Never()}
}

// Member returns the member description.
func (h *Handle) Member() *Member {
	return h.member
}

// Proxy returns the proxy the member belongs to.
func (h *Handle) Proxy() *Proxy {
	return h.proxy
}

// Received starts a check that the member was called at least once.
func (h *Handle) Received() *Verifier {
	return &Verifier{handle: h, quantity: AtLeast(1)}
}

// ReceivedTimes starts a check that the member was called exactly count times.
func (h *Handle) ReceivedTimes(count int) *Verifier {
	return &Verifier{handle: h, quantity: Exactly(count)}
}

// Returns stubs every call to the member, whatever its arguments, to return values.
func (h *Handle) Returns(values ...any) *Rule {
	return h.WhenAnyArgs().Returns(values...)
}

func (h *Handle) String() string {
	return h.proxy.Name() + "." + h.member.Name
}

// When registers a rule for calls whose arguments match args, one matcher or plain
// value per parameter.
func (h *Handle) When(args ...any) *Rule {
	expected, err := h.member.pair(args)
	if err != nil {
		h.proxy.t.Helper()
		h.proxy.t.Fatalf("%s: %v", h, err)

		// detached, so chaining on it stays harmless
		return newRule(h.proxy, h.member, nil, false).Disable()
	}

	rule := newRule(h.proxy, h.member, expected, false)
	h.proxy.resolver.Register(rule)

	return rule
}

// WhenAnyArgs registers a rule for every call to the member.
func (h *Handle) WhenAnyArgs() *Rule {
	rule := newRule(h.proxy, h.member, nil, true)
	h.proxy.resolver.Register(rule)

	return rule
}
