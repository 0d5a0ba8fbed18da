package match_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	. "github.com/onsi/gomega"

	. "github.com/toejough/impstub/match"
)

//nolint:varnamelen // Standard Go test parameter name
func TestBeAny(t *testing.T) {
	t.Parallel()

	ok, err := BeAny.Match(42) //nolint:varnamelen // ok is idiomatic
	if !ok || err != nil {
		t.Errorf("BeAny.Match(42) = (%v, %v), want (true, nil)", ok, err)
	}

	if msg := BeAny.FailureMessage(42); msg != "" {
		t.Errorf("BeAny.FailureMessage(42) = %q, want empty string", msg)
	}
}

func TestBeAnyOf(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(BeAnyOf[fmt.Stringer]().Match(time.Second)).To(BeTrue())
	g.Expect(BeAnyOf[fmt.Stringer]().Match(42)).To(BeFalse())
}

func TestCapturing(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	matcher := Capturing(func(int) {})

	g.Expect(matcher.Match(3)).To(BeTrue())
	g.Expect(matcher.Match("three")).To(BeFalse())
}

func TestCaptureWhen(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	matcher := CaptureWhen(BeNumerically(">", 2), func(int) {})

	g.Expect(matcher.Match(3)).To(BeTrue())
	g.Expect(matcher.Match(1)).To(BeFalse())
}

func TestInvoking(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(Invoking("x").Match(func(string) {})).To(BeTrue())
	g.Expect(Invoking("x").Match(nil)).To(BeFalse())
}

//nolint:varnamelen // Standard Go test parameter name
func TestSatisfying(t *testing.T) {
	t.Parallel()

	matcher := Satisfying(func(val int) error {
		if val <= 10 {
			return errors.New("must be greater than 10")
		}

		return nil
	})

	ok, err := matcher.Match(42)
	if !ok || err != nil {
		t.Errorf("Satisfying().Match(42) = (%v, %v), want (true, nil)", ok, err)
	}

	ok, err = matcher.Match(5)
	if ok || err != nil {
		t.Errorf("Satisfying().Match(5) = (%v, %v), want (false, nil)", ok, err)
	}

	expected := "value 5 does not satisfy predicate: must be greater than 10"
	if msg := matcher.FailureMessage(5); msg != expected {
		t.Errorf("Satisfying().FailureMessage(5) = %q, want %q", msg, expected)
	}
}

func TestWhere(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	long := Where(func(s string) bool { return len(s) > 3 })

	g.Expect(long.Match("long enough")).To(BeTrue())
	g.Expect(long.Match("no")).To(BeFalse())
}
