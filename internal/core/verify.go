package core

import (
	"fmt"
)

// Quantity is an allowed range of call counts.
type Quantity struct {
	min, max int // max < 0 means unbounded
}

// AtLeast allows count or more calls.
func AtLeast(count int) Quantity {
	return Quantity{min: count, max: -1}
}

// Exactly allows exactly count calls.
func Exactly(count int) Quantity {
	return Quantity{min: count, max: count}
}

// Never allows no calls.
func Never() Quantity {
	return Exactly(0)
}

// Allows reports whether count calls satisfy the quantity.
func (q Quantity) Allows(count int) bool {
	return count >= q.min && (q.max < 0 || count <= q.max)
}

func (q Quantity) String() string {
	switch {
	case q.max == 0:
		return "never"
	case q.max < 0:
		return "at least " + times(q.min)
	case q.min == q.max:
		return "exactly " + times(q.min)
	default:
		return fmt.Sprintf("between %d and %s", q.min, times(q.max))
	}
}

// Verifier checks how often a member was received. Obtain one from a Handle.
type Verifier struct {
	handle   *Handle
	quantity Quantity
}

// Check returns a *VerificationFailed if the number of calls matching args is not allowed.
// It returns an error wrapping ErrAmbiguousMatcher if args cannot be paired with the parameters.
func (v *Verifier) Check(args ...any) error {
	expected, err := v.handle.member.pair(args)
	if err != nil {
		return fmt.Errorf("%s: %w", v.handle, err)
	}

	count := v.handle.proxy.ledger.Count(v.handle.member.Name, expected)

	return v.verdict(describeAll(expected), count)
}

// CheckAnyArgs returns a *VerificationFailed if the number of calls is not allowed.
func (v *Verifier) CheckAnyArgs() error {
	return v.verdict("any args", v.handle.proxy.ledger.CountAny(v.handle.member.Name))
}

// With fails the test unless the number of calls matching args is allowed.
func (v *Verifier) With(args ...any) {
	err := v.Check(args...)
	if err != nil {
		v.handle.proxy.t.Helper()
		v.handle.proxy.t.Fatalf("%v", err)
	}
}

// WithAnyArgs fails the test unless the number of calls, whatever their arguments, is allowed.
func (v *Verifier) WithAnyArgs() {
	err := v.CheckAnyArgs()
	if err != nil {
		v.handle.proxy.t.Helper()
		v.handle.proxy.t.Fatalf("%v", err)
	}
}

func (v *Verifier) verdict(args string, count int) error {
	if v.quantity.Allows(count) {
		return nil
	}

	calls := v.handle.Calls()
	described := make([]string, len(calls))

	for index, call := range calls {
		described[index] = call.String()
	}

	return &VerificationFailed{
		Member:   v.handle.String(),
		Args:     args,
		Expected: v.quantity,
		Actual:   count,
		Calls:    described,
	}
}
