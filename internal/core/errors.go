package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akedrou/textdiff"
)

// Exported variables.
var (
	// ErrConflictingSignature is returned when two capabilities declare the same member with different signatures.
	ErrConflictingSignature = errors.New("conflicting member signature")
	// ErrMissingConstructorArgs is returned when a base constructor cannot be called with the given arguments.
	ErrMissingConstructorArgs = errors.New("missing or mismatched constructor arguments")
	// ErrNotInterface is returned when a capability is neither an interface nor, for func proxies, a func type.
	ErrNotInterface = errors.New("capability is not an interface")
	// ErrAmbiguousMatcher is returned when argument matchers cannot be paired with a member's parameters.
	ErrAmbiguousMatcher = errors.New("ambiguous argument matcher")
	// ErrUnknownMember is raised when a proxy is asked about a member its capabilities do not declare.
	ErrUnknownMember = errors.New("unknown member")
	// ErrArity is raised when a member is invoked with the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")
	// ErrBadResult is reported when a stubbed value does not fit the member's result types.
	ErrBadResult = errors.New("stubbed value does not fit result type")
	// ErrForeignProxy is returned when an ordered check spans proxies from different tests.
	ErrForeignProxy = errors.New("proxy belongs to a different test")
	// ErrNotSubstitute is raised when a value is not backed by a proxy.
	ErrNotSubstitute = errors.New("value is not a substitute")
	// ErrVerificationFailed is the sentinel wrapped by every *VerificationFailed.
	ErrVerificationFailed = errors.New("verification failed")
	// ErrOrderViolation is the sentinel wrapped by every *OrderViolation.
	ErrOrderViolation = errors.New("calls received out of order")
)

// OrderViolation reports that an expected call sequence is not a subsequence of the recorded calls.
type OrderViolation struct {
	// Expected describes the expected calls, in order.
	Expected []string
	// Received describes the recorded calls to the involved members, in chronological order.
	Received []string
	// Missing is the index into Expected of the first call that could not be found in order.
	Missing int
}

func (e *OrderViolation) Error() string {
	diff := textdiff.Unified(
		"expected", "received",
		strings.Join(e.Expected, "\n")+"\n",
		strings.Join(e.Received, "\n")+"\n",
	)

	return fmt.Sprintf("%s: could not find %s after the calls before it\n%s",
		ErrOrderViolation, e.Expected[e.Missing], diff)
}

func (e *OrderViolation) Unwrap() error {
	return ErrOrderViolation
}

// VerificationFailed reports that a member was not received the expected number of times.
type VerificationFailed struct {
	// Member is the qualified member name, e.g. "Calculator#1.Add".
	Member string
	// Args describes the argument filter that was applied, or "any args".
	Args string
	// Expected is the expected quantity of matching calls.
	Expected Quantity
	// Actual is the number of matching calls.
	Actual int
	// Calls describes every recorded call to the member.
	Calls []string
}

func (e *VerificationFailed) Error() string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "%s: expected %s(%s) to be received %s, but it was received %s",
		ErrVerificationFailed, e.Member, e.Args, e.Expected, times(e.Actual))

	if len(e.Calls) == 0 {
		builder.WriteString("\nno calls to this member were received")

		return builder.String()
	}

	builder.WriteString("\nreceived calls to this member:")

	for _, call := range e.Calls {
		builder.WriteString("\n  ")
		builder.WriteString(call)
	}

	return builder.String()
}

func (e *VerificationFailed) Unwrap() error {
	return ErrVerificationFailed
}

func times(count int) string {
	if count == 1 {
		return "1 time"
	}

	return fmt.Sprintf("%d times", count)
}
