// Package impstub provides substitutes for Go interfaces and funcs: proxies that record
// every call, answer calls from stub rules, and verify what they received.
//
// Substitutes are generated by impgen, or built directly with For and ForFunc.
//
// This is the public API entry point. Implementation lives in internal/core.
package impstub

import (
	"reflect"

	"github.com/toejough/impstub/internal/core"
)

// CapabilitySet is the dispatch table of a proxy.
type CapabilitySet = core.CapabilitySet

// Expectation is one call expected by InOrder.
type Expectation = core.Expectation

// FuncProxy substitutes a func type F.
type FuncProxy[F any] = core.FuncProxy[F]

// Handle addresses one member of a proxy, for stubbing and verification.
type Handle = core.Handle

// Imp coordinates the proxies of one test.
type Imp = core.Imp

// Invocation is one recorded call.
type Invocation = core.Invocation

// Matcher defines the interface for flexible value matching.
// Compatible with gomega.GomegaMatcher via duck typing.
type Matcher = core.Matcher

// Member describes one member of a proxy.
type Member = core.Member

// Option configures a proxy's capabilities.
type Option = core.CapabilityOption

// OrderViolation reports calls received out of order.
type OrderViolation = core.OrderViolation

// Proxy is the run-time half of a substitute.
type Proxy = core.Proxy

// Rule is a stub registered for one member.
type Rule = core.Rule

// Substitute is implemented by every value backed by a proxy.
type Substitute = core.Substitute

// TestReporter is the minimal interface impstub needs from test frameworks.
type TestReporter = core.TestReporter

// VerificationFailed reports a member received an unexpected number of times.
type VerificationFailed = core.VerificationFailed

// Verifier checks how often a member was received.
type Verifier = core.Verifier

// Errors re-exported from internal/core.
var (
	ErrAmbiguousMatcher       = core.ErrAmbiguousMatcher
	ErrArity                  = core.ErrArity
	ErrBadResult              = core.ErrBadResult
	ErrConflictingSignature   = core.ErrConflictingSignature
	ErrForeignProxy           = core.ErrForeignProxy
	ErrMissingConstructorArgs = core.ErrMissingConstructorArgs
	ErrNotInterface           = core.ErrNotInterface
	ErrNotSubstitute          = core.ErrNotSubstitute
	ErrOrderViolation         = core.ErrOrderViolation
	ErrUnknownMember          = core.ErrUnknownMember
	ErrVerificationFailed     = core.ErrVerificationFailed
)

// Any returns a matcher that accepts every value.
func Any() Matcher {
	return core.Any()
}

// AnyOf returns a matcher that accepts any value of type T.
func AnyOf[T any]() Matcher {
	return core.AnyOf[T]()
}

// ArgAt returns the argument at index as T.
func ArgAt[T any](inv *Invocation, index int) T {
	return core.ArgAt[T](inv, index)
}

// ArgOfType returns the first non-nil argument that is a T.
func ArgOfType[T any](inv *Invocation) (T, bool) {
	return core.ArgOfType[T](inv)
}

// Call expects a call to handle's member with arguments matching args.
func Call(handle *Handle, args ...any) Expectation {
	return core.Call(handle, args...)
}

// CallAnyArgs expects a call to handle's member with any arguments.
func CallAnyArgs(handle *Handle) Expectation {
	return core.CallAnyArgs(handle)
}

// Capture returns a matcher that checks the argument against inner and hands it to fn.
func Capture[T any](inner any, fn func(T)) Matcher {
	return core.Capture(inner, fn)
}

// Do returns a matcher that accepts any T and hands it to fn.
func Do[T any](fn func(T)) Matcher {
	return core.Do(fn)
}

// Equal returns a matcher that compares with reflect.DeepEqual and describes mismatches as a diff.
func Equal(expected any) Matcher {
	return core.Equal(expected)
}

// For creates a proxy implementing the given interface types, failing the test if it cannot.
func For(t TestReporter, types []reflect.Type, opts ...Option) *Proxy {
	proxy, err := core.For(t, types, opts...)
	if err != nil {
		t.Helper()
		t.Fatalf("impstub: %v", err)

		return nil
	}

	return proxy
}

// ForFunc creates a substitute for the func type F, failing the test if F is not a func.
func ForFunc[F any](t TestReporter) *FuncProxy[F] {
	sub, err := core.NewFuncProxy[F](t)
	if err != nil {
		t.Helper()
		t.Fatalf("impstub: %v", err)

		return nil
	}

	return sub
}

// InOrder fails the test unless the expected calls were received in order.
func InOrder(t TestReporter, expected ...Expectation) {
	err := core.InOrder(expected...)
	if err != nil {
		t.Helper()
		t.Fatalf("%v", err)
	}
}

// Invoke returns a matcher that calls a callback argument with args.
func Invoke(args ...any) Matcher {
	return core.Invoke(args...)
}

// Is returns a matcher that accepts values of type T for which predicate returns true.
func Is[T any](predicate func(T) bool) Matcher {
	return core.Is(predicate)
}

// MatchValue checks if actual matches expected.
func MatchValue(actual, expected any) (bool, string) {
	return core.MatchValue(actual, expected)
}

// MustProxyOf returns the proxy behind a substitute value and panics if there is none.
func MustProxyOf(value any) *Proxy {
	proxy, err := core.ProxyOf(value)
	if err != nil {
		panic(err)
	}

	return proxy
}

// ProxyOf returns the proxy behind a substitute value.
func ProxyOf(value any) (*Proxy, error) {
	return core.ProxyOf(value)
}

// RegisterAdapter makes interface I available for nested proxies.
func RegisterAdapter[I any](factory func(*Proxy) I) {
	core.RegisterAdapter(factory)
}

// Result returns results[index] as T, or the zero T when it is nil.
func Result[T any](results []any, index int) T {
	return core.Result[T](results, index)
}

// Satisfies returns a matcher that uses a predicate function to check for a match.
func Satisfies[T any](predicate func(T) error) Matcher {
	return core.Satisfies(predicate)
}

// TypeOf returns the reflect.Type of T. Use it to name interface capabilities.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// WithBase constructs a base value for the proxy by calling constructor with args.
func WithBase(constructor any, args ...any) Option {
	return core.WithBase(constructor, args...)
}

// WithoutAccessorConventions treats every member as a plain method.
func WithoutAccessorConventions() Option {
	return core.WithoutAccessorConventions()
}
