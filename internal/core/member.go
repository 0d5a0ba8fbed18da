package core

import (
	"fmt"
	"reflect"
	"strings"
)

// MemberKind classifies a member of a capability set.
type MemberKind int

// MemberKind values.
const (
	KindMethod MemberKind = iota
	KindPropertyGet
	KindPropertySet
	KindIndexGet
	KindIndexSet
	KindEventAdd
	KindEventRemove
)

func (k MemberKind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindPropertyGet:
		return "property get"
	case KindPropertySet:
		return "property set"
	case KindIndexGet:
		return "indexer get"
	case KindIndexSet:
		return "indexer set"
	case KindEventAdd:
		return "event add"
	case KindEventRemove:
		return "event remove"
	default:
		return fmt.Sprintf("MemberKind(%d)", int(k))
	}
}

// Member describes one entry of a proxy's dispatch table.
type Member struct {
	// Name is the Go method name, which is also the member identity.
	Name string
	// Kind classifies the member as a plain method, an accessor or an event subscription.
	Kind MemberKind
	// Type is the method's func type, without receiver.
	Type reflect.Type
	// Params are the parameter types. A variadic member's last parameter is its slice type.
	Params []reflect.Type
	// Results are the result types.
	Results []reflect.Type
	// Variadic reports whether the last parameter is variadic.
	Variadic bool
	// Subject names the property, indexer or event an accessor belongs to.
	Subject string
	// Pair names the opposite accessor: the setter of a getter, the remover of an adder, and so on.
	Pair string
	// Owner names the first capability that declared the member.
	Owner string
}

func newMember(name string, typ reflect.Type, owner string) *Member {
	member := &Member{
		Name:     name,
		Kind:     KindMethod,
		Type:     typ,
		Params:   make([]reflect.Type, typ.NumIn()),
		Results:  make([]reflect.Type, typ.NumOut()),
		Variadic: typ.IsVariadic(),
		Owner:    owner,
	}

	for i := range member.Params {
		member.Params[i] = typ.In(i)
	}

	for i := range member.Results {
		member.Results[i] = typ.Out(i)
	}

	return member
}

func (m *Member) String() string {
	return m.Name + strings.TrimPrefix(m.Type.String(), "func")
}

// checkArity verifies that args can be the arguments of a call to this member.
// Variadic arguments are passed as a single slice.
func (m *Member) checkArity(args []any) error {
	if len(args) != len(m.Params) {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrArity, m.Name, len(m.Params), len(args))
	}

	return nil
}

// pair lines the given expected values and matchers up with the member's parameters.
// Plain values are converted to the parameter type when that is lossless, so an untyped
// constant like 5 can stand for an int64 parameter.
//
// A variadic member accepts either one entry for the whole slice (a matcher, nil, or a
// slice value) or one entry per element.
func (m *Member) pair(given []any) ([]any, error) {
	if !m.Variadic {
		if len(given) != len(m.Params) {
			return nil, fmt.Errorf("%w: %s takes %d argument(s), got %d matcher(s)",
				ErrAmbiguousMatcher, m.Name, len(m.Params), len(given))
		}

		return m.pairFixed(given, len(given))
	}

	fixed := len(m.Params) - 1
	if len(given) < fixed {
		return nil, fmt.Errorf("%w: %s takes at least %d argument(s), got %d matcher(s)",
			ErrAmbiguousMatcher, m.Name, fixed, len(given))
	}

	paired, err := m.pairFixed(given, fixed)
	if err != nil {
		return nil, err
	}

	sliceType := m.Params[fixed]
	rest := given[fixed:]

	if len(rest) == 1 && fitsWhole(rest[0], sliceType) {
		expected, err := normalizeExpected(rest[0], sliceType)
		if err != nil {
			return nil, fmt.Errorf("%s variadic argument: %w", m.Name, err)
		}

		return append(paired, expected), nil
	}

	elems := make([]any, len(rest))

	for index, elem := range rest {
		expected, err := normalizeExpected(elem, sliceType.Elem())
		if err != nil {
			return nil, fmt.Errorf("%s variadic element %d: %w", m.Name, index, err)
		}

		elems[index] = expected
	}

	return append(paired, &elementsMatcher{elems: elems}), nil
}

func (m *Member) pairFixed(given []any, count int) ([]any, error) {
	paired := make([]any, 0, len(m.Params))

	for index := range count {
		expected, err := normalizeExpected(given[index], m.Params[index])
		if err != nil {
			return nil, fmt.Errorf("%s argument %d: %w", m.Name, index, err)
		}

		paired = append(paired, expected)
	}

	return paired, nil
}

// shape converts stubbed values to the member's result types.
func (m *Member) shape(values []any) ([]any, error) {
	if len(values) != len(m.Results) {
		return nil, fmt.Errorf("%w: %s returns %d value(s), got %d", ErrBadResult, m.Name, len(m.Results), len(values))
	}

	shaped := make([]any, len(values))

	for index, value := range values {
		fitted, err := fitValue(value, m.Results[index])
		if err != nil {
			return nil, fmt.Errorf("%s result %d: %w", m.Name, index, err)
		}

		shaped[index] = fitted
	}

	return shaped, nil
}

// zeroResults returns the zero value of every result type.
func (m *Member) zeroResults() []any {
	results := make([]any, len(m.Results))

	for index, typ := range m.Results {
		results[index] = reflect.Zero(typ).Interface()
	}

	return results
}

// fitsWhole reports whether a single expected entry stands for a whole variadic slice.
func fitsWhole(expected any, sliceType reflect.Type) bool {
	if expected == nil {
		return true
	}

	if _, ok := expected.(Matcher); ok {
		return true
	}

	_, ok := convertLossless(reflect.ValueOf(expected), sliceType)

	return ok
}
