// Package match provides argument matchers for impstub rules and verifications.
// This package is designed to be dot-imported alongside gomega matchers, which are
// accepted wherever these are:
//
//	import (
//	    . "github.com/onsi/gomega"
//	    . "github.com/toejough/impstub/match"
//	)
//
//	calc.Add.When(BeAny, BeNumerically(">", 0)).Returns(42)
package match

import (
	"github.com/toejough/impstub/internal/core"
)

// Matcher defines the interface for flexible value matching.
// Compatible with gomega.GomegaMatcher via duck typing - any type
// implementing Match and FailureMessage will work.
type Matcher = core.Matcher

// BeAny is a matcher that matches any value.
// Useful when you don't care about a particular argument.
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var BeAny Matcher = core.Any()

// BeAnyOf returns a matcher for any value of type T, including values whose types
// implement T when T is an interface.
//
// Example:
//
//	fmt.Format.When(BeAnyOf[fmt.Stringer]()).Returns("stringer")
func BeAnyOf[T any]() Matcher {
	return core.AnyOf[T]()
}

// CaptureWhen returns a matcher that checks the argument against inner and, when the whole
// rule matches, hands it to fn.
func CaptureWhen[T any](inner any, fn func(T)) Matcher {
	return core.Capture(inner, fn)
}

// Capturing returns a matcher for any value of type T that hands the argument to fn when
// the whole rule matches.
//
// Example:
//
//	var seen []int
//	calc.Multiply.When(BeAny, Capturing(func(x int) { seen = append(seen, x) }))
func Capturing[T any](fn func(T)) Matcher {
	return core.Do(fn)
}

// Invoking returns a matcher for a callback argument that calls it with args when the
// whole rule matches.
//
// Example:
//
//	orders.Process.When(BeAny, Invoking("shipped"))
func Invoking(args ...any) Matcher {
	return core.Invoke(args...)
}

// Satisfying returns a matcher that uses a predicate function to check for a match.
// The predicate should return nil if the value matches, or an error describing
// the mismatch if it does not.
//
// Example:
//
//	calc.Add.Received().With(Satisfying(func(x int) error {
//	    if x < 0 { return fmt.Errorf("expected positive, got %d", x) }
//	    return nil
//	}), BeAny)
func Satisfying[T any](predicate func(T) error) Matcher {
	return core.Satisfies(predicate)
}

// Where returns a matcher for values of type T for which predicate returns true.
// A predicate that panics does not match.
func Where[T any](predicate func(T) bool) Matcher {
	return core.Is(predicate)
}
