package core

import (
	"fmt"
	"slices"
)

// Expectation is one call expected by InOrder.
type Expectation struct {
	handle   *Handle
	expected []any
	anyArgs  bool
	err      error
}

// Call expects a call to handle's member with arguments matching args.
func Call(handle *Handle, args ...any) Expectation {
	expected, err := handle.member.pair(args)

	return Expectation{handle: handle, expected: expected, err: err}
}

// CallAnyArgs expects a call to handle's member with any arguments.
func CallAnyArgs(handle *Handle) Expectation {
	return Expectation{handle: handle, anyArgs: true}
}

func (e Expectation) String() string {
	if e.anyArgs {
		return fmt.Sprintf("%s(any args)", e.handle)
	}

	return fmt.Sprintf("%s(%s)", e.handle, describeAll(e.expected))
}

func (e Expectation) matches(inv *Invocation) bool {
	if inv.receiver != e.handle.proxy || inv.member != e.handle.member {
		return false
	}

	return e.anyArgs || matchAll(e.expected, inv.args)
}

// InOrder checks that the expected calls were received in the given order, possibly with
// other calls between them. Calls from every proxy involved are merged chronologically,
// and only calls to the members named in expected are considered.
// It returns an *OrderViolation when they were not.
func InOrder(expected ...Expectation) error {
	if len(expected) == 0 {
		return nil
	}

	imp := expected[0].handle.proxy.imp

	var proxies []*Proxy

	for _, exp := range expected {
		if exp.err != nil {
			return fmt.Errorf("%s: %w", exp.handle, exp.err)
		}

		if exp.handle.proxy.imp != imp {
			return fmt.Errorf("%w: %s and %s", ErrForeignProxy, expected[0].handle.proxy, exp.handle.proxy)
		}

		if !slices.Contains(proxies, exp.handle.proxy) {
			proxies = append(proxies, exp.handle.proxy)
		}
	}

	received := involvedCalls(proxies, expected)

	next := 0

	for _, call := range received {
		if next < len(expected) && expected[next].matches(call) {
			next++
		}
	}

	if next == len(expected) {
		return nil
	}

	violation := &OrderViolation{Missing: next}

	for _, exp := range expected {
		violation.Expected = append(violation.Expected, exp.String())
	}

	for _, call := range received {
		violation.Received = append(violation.Received, call.String())
	}

	return violation
}

// involvedCalls returns the calls to the expected members, ordered by test-wide sequence.
func involvedCalls(proxies []*Proxy, expected []Expectation) []*Invocation {
	var calls []*Invocation

	for _, proxy := range proxies {
		for _, call := range proxy.Calls() {
			involved := slices.ContainsFunc(expected, func(exp Expectation) bool {
				return exp.handle.member == call.member && exp.handle.proxy == proxy
			})

			if involved {
				calls = append(calls, call)
			}
		}
	}

	slices.SortFunc(calls, func(left, right *Invocation) int {
		switch {
		case left.global < right.global:
			return -1
		case left.global > right.global:
			return 1
		default:
			return 0
		}
	})

	return calls
}
