package core

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Matcher defines the interface for flexible value matching.
// Compatible with gomega.GomegaMatcher via duck typing.
type Matcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// capturer is implemented by matchers that act on the argument once the whole rule has matched.
type capturer interface {
	capture(actual any) error
}

// MatchValue checks if actual matches expected.
// If expected implements the Matcher interface, uses its Match method.
// A nil expected matches nil and typed nil values, a func expected matches the same func,
// and anything else is compared with reflect.DeepEqual.
// Returns (success, errorMessage). If success is true, errorMessage is empty.
//
// A matcher that panics or returns an error does not match.
func MatchValue(actual, expected any) (success bool, message string) {
	if matches(actual, expected) {
		return true, ""
	}

	return false, mismatch(actual, expected)
}

// matches is MatchValue without the failure message.
func matches(actual, expected any) (success bool) {
	defer func() {
		if recover() != nil {
			success = false
		}
	}()

	if matcher, ok := expected.(Matcher); ok {
		matched, err := matcher.Match(actual)

		return matched && err == nil
	}

	if expected == nil {
		return isNil(actual)
	}

	if reflect.ValueOf(expected).Kind() == reflect.Func {
		return sameHandler(actual, expected)
	}

	return reflect.DeepEqual(actual, expected)
}

// mismatch describes why actual does not match expected.
func mismatch(actual, expected any) (message string) {
	defer func() {
		if r := recover(); r != nil {
			message = fmt.Sprintf("matcher %s panicked: %v", describe(expected), r)
		}
	}()

	if matcher, ok := expected.(Matcher); ok {
		_, err := matcher.Match(actual)
		if err != nil {
			return err.Error()
		}

		return matcher.FailureMessage(actual)
	}

	if expected == nil {
		return fmt.Sprintf("expected nil, got %s", formatValue(actual))
	}

	if reflect.ValueOf(expected).Kind() == reflect.Func {
		return fmt.Sprintf("expected func %T, got %s", expected, describeFunc(actual))
	}

	return fmt.Sprintf("expected %s, got %s", formatValue(expected), formatValue(actual))
}

// Any returns a matcher that accepts every value.
func Any() Matcher {
	return anyMatcher{}
}

// AnyOf returns a matcher that accepts any value of type T, including values of
// types implementing T when T is an interface. Nil matches when T can be nil.
func AnyOf[T any]() Matcher {
	return anyOfMatcher[T]{}
}

// Capture returns a matcher that checks the argument against inner (a matcher or plain value)
// and hands it to fn once the whole rule matches.
func Capture[T any](inner any, fn func(T)) Matcher {
	return &captureMatcher[T]{inner: inner, fn: fn}
}

// Do returns a matcher that accepts any value of type T and hands it to fn once the whole
// rule matches.
func Do[T any](fn func(T)) Matcher {
	return &captureMatcher[T]{inner: anyOfMatcher[T]{}, fn: fn}
}

// Equal returns a matcher that compares with reflect.DeepEqual and describes mismatches as a diff.
func Equal(expected any) Matcher {
	return &equalMatcher{expected: expected}
}

// Invoke returns a matcher that accepts a callback argument, a func or a single-method value,
// and calls it with args once the whole rule matches. Missing trailing arguments are zero.
func Invoke(args ...any) Matcher {
	return &invokeMatcher{args: args}
}

// Is returns a matcher that accepts values of type T for which predicate returns true.
func Is[T any](predicate func(T) bool) Matcher {
	return &predicateMatcher[T]{check: func(value T) error {
		if predicate(value) {
			return nil
		}

		return errPredicateFalse
	}}
}

// Satisfies returns a matcher that accepts values of type T for which predicate returns nil.
func Satisfies[T any](predicate func(T) error) Matcher {
	return &predicateMatcher[T]{check: predicate}
}

// unexported variables.
var (
	errPredicateFalse = errors.New("predicate returned false")
	errTypeMismatch   = errors.New("type mismatch")
)

type anyMatcher struct{}

func (anyMatcher) FailureMessage(any) string {
	return ""
}

func (anyMatcher) Match(any) (bool, error) {
	return true, nil
}

func (anyMatcher) String() string {
	return "any"
}

type anyOfMatcher[T any] struct{}

func (anyOfMatcher[T]) FailureMessage(actual any) string {
	return fmt.Sprintf("expected any %v, got %T", reflect.TypeFor[T](), actual)
}

func (anyOfMatcher[T]) Match(actual any) (bool, error) {
	_, ok := asType[T](actual)

	return ok, nil
}

func (anyOfMatcher[T]) String() string {
	return "any " + reflect.TypeFor[T]().String()
}

type captureMatcher[T any] struct {
	inner any
	fn    func(T)
}

func (m *captureMatcher[T]) FailureMessage(actual any) string {
	return mismatch(actual, m.inner)
}

func (m *captureMatcher[T]) Match(actual any) (bool, error) {
	if _, ok := asType[T](actual); !ok {
		return false, nil
	}

	return matches(actual, m.inner), nil
}

func (m *captureMatcher[T]) String() string {
	return "capture " + describe(m.inner)
}

func (m *captureMatcher[T]) capture(actual any) error {
	value, ok := asType[T](actual)
	if !ok {
		return fmt.Errorf("%w: expected %v, got %T", errTypeMismatch, reflect.TypeFor[T](), actual)
	}

	m.fn(value)

	return nil
}

// elementsMatcher matches a variadic slice element by element.
type elementsMatcher struct {
	elems []any
}

func (m *elementsMatcher) FailureMessage(actual any) string {
	values, ok := sliceValues(actual)
	if !ok || len(values) != len(m.elems) {
		return fmt.Sprintf("expected %d variadic argument(s), got %s", len(m.elems), formatValue(actual))
	}

	for index, value := range values {
		if !matches(value, m.elems[index]) {
			return fmt.Sprintf("variadic argument %d: %s", index, mismatch(value, m.elems[index]))
		}
	}

	return ""
}

func (m *elementsMatcher) Match(actual any) (bool, error) {
	values, ok := sliceValues(actual)
	if !ok || len(values) != len(m.elems) {
		return false, nil
	}

	for index, value := range values {
		if !matches(value, m.elems[index]) {
			return false, nil
		}
	}

	return true, nil
}

func (m *elementsMatcher) String() string {
	parts := make([]string, len(m.elems))

	for index, elem := range m.elems {
		parts[index] = describe(elem)
	}

	return strings.Join(parts, ", ")
}

func (m *elementsMatcher) capture(actual any) error {
	values, _ := sliceValues(actual)

	for index, elem := range m.elems {
		if capt, ok := elem.(capturer); ok && index < len(values) {
			err := capt.capture(values[index])
			if err != nil {
				return fmt.Errorf("variadic argument %d: %w", index, err)
			}
		}
	}

	return nil
}

type equalMatcher struct {
	expected any
}

func (m *equalMatcher) FailureMessage(actual any) (message string) {
	defer func() {
		if recover() != nil {
			message = fmt.Sprintf("expected %s, got %s", formatValue(m.expected), formatValue(actual))
		}
	}()

	diff := cmp.Diff(m.expected, actual, cmp.Exporter(func(reflect.Type) bool { return true }))

	return "values differ (-expected +actual):\n" + diff
}

func (m *equalMatcher) Match(actual any) (bool, error) {
	return reflect.DeepEqual(actual, m.expected), nil
}

func (m *equalMatcher) String() string {
	return formatValue(m.expected)
}

type invokeMatcher struct {
	args []any
}

func (m *invokeMatcher) FailureMessage(actual any) string {
	return fmt.Sprintf("expected a callback, got %T", actual)
}

func (m *invokeMatcher) Match(actual any) (bool, error) {
	if isNil(actual) {
		return false, nil
	}

	value := reflect.ValueOf(actual)

	return value.Kind() == reflect.Func || value.NumMethod() == 1, nil
}

func (m *invokeMatcher) String() string {
	return "invoke(" + formatArgs(m.args) + ")"
}

func (m *invokeMatcher) capture(actual any) error {
	return callWith(actual, m.args)
}

type predicateMatcher[T any] struct {
	check func(T) error
}

func (m *predicateMatcher[T]) FailureMessage(actual any) string {
	value, ok := asType[T](actual)
	if !ok {
		return fmt.Sprintf("expected %v, got %T", reflect.TypeFor[T](), actual)
	}

	if err := m.run(value); err != nil {
		return fmt.Sprintf("value %s does not satisfy predicate: %v", formatValue(actual), err)
	}

	return fmt.Sprintf("value %s does not satisfy predicate", formatValue(actual))
}

func (m *predicateMatcher[T]) Match(actual any) (bool, error) {
	value, ok := asType[T](actual)
	if !ok {
		return false, fmt.Errorf("%w: expected %v, got %T", errTypeMismatch, reflect.TypeFor[T](), actual)
	}

	return m.run(value) == nil, nil
}

func (m *predicateMatcher[T]) String() string {
	return "predicate on " + reflect.TypeFor[T]().String()
}

// run calls the predicate, turning a panic into an error.
func (m *predicateMatcher[T]) run(value T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("predicate panicked: %v", r)
		}
	}()

	return m.check(value)
}

// asType converts actual to T. A nil actual converts to the zero T when T can be nil.
func asType[T any](actual any) (T, bool) {
	if value, ok := actual.(T); ok {
		return value, true
	}

	var zero T

	if actual == nil && nilable(reflect.TypeFor[T]()) {
		return zero, true
	}

	return zero, false
}

// captureAll runs the capturing matchers of a rule that matched args.
func captureAll(expected, args []any) error {
	for index, exp := range expected {
		capt, ok := exp.(capturer)
		if !ok {
			continue
		}

		err := capt.capture(args[index])
		if err != nil {
			return fmt.Errorf("argument %d: %w", index, err)
		}
	}

	return nil
}

// describe renders an expected value or matcher for failure messages.
func describe(expected any) string {
	if stringer, ok := expected.(fmt.Stringer); ok {
		if _, isMatcher := expected.(Matcher); isMatcher {
			return stringer.String()
		}
	}

	if _, ok := expected.(Matcher); ok {
		return fmt.Sprintf("<%T>", expected)
	}

	return formatValue(expected)
}

func describeAll(expected []any) string {
	parts := make([]string, len(expected))

	for index, exp := range expected {
		parts[index] = describe(exp)
	}

	return strings.Join(parts, ", ")
}

func describeFunc(actual any) string {
	if actual == nil || reflect.TypeOf(actual).Kind() != reflect.Func {
		return fmt.Sprintf("%T", actual)
	}

	return "a different " + reflect.TypeOf(actual).String()
}

func formatArgs(args []any) string {
	parts := make([]string, len(args))

	for index, arg := range args {
		parts[index] = formatValue(arg)
	}

	return strings.Join(parts, ", ")
}

func formatValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", typed)
	}

	if reflect.ValueOf(value).Kind() == reflect.Func {
		return fmt.Sprintf("%T", value)
	}

	return fmt.Sprintf("%v", value)
}

// matchAll reports whether every argument matches its expected entry.
func matchAll(expected, args []any) bool {
	if len(expected) != len(args) {
		return false
	}

	for index, exp := range expected {
		if !matches(args[index], exp) {
			return false
		}
	}

	return true
}

func sliceValues(actual any) ([]any, bool) {
	if actual == nil {
		return nil, true
	}

	value := reflect.ValueOf(actual)
	if value.Kind() != reflect.Slice {
		return nil, false
	}

	values := make([]any, value.Len())

	for index := range values {
		values[index] = value.Index(index).Interface()
	}

	return values, true
}
