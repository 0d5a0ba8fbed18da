package core

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// CapabilityOption configures a CapabilitySet.
type CapabilityOption func(*capabilityConfig)

// CapabilitySet is the ordered set of capabilities a single proxy satisfies,
// flattened into one dispatch table.
type CapabilitySet struct {
	types   []reflect.Type
	members []*Member
	byName  map[string]*Member
	events  map[string]*Member // event name -> adder
	base    any
}

// NewCapabilitySet builds the dispatch table for the given interface types.
//
// Members declared by more than one interface with identical signatures are unified.
// Unless WithoutAccessorConventions is given, X()/SetX(v) pairs become properties,
// X(k)/SetX(k, v) pairs become indexers, and AddX(h)/RemoveX(h) pairs become events.
func NewCapabilitySet(types []reflect.Type, opts ...CapabilityOption) (*CapabilitySet, error) {
	var cfg capabilityConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	if len(types) == 0 {
		return nil, fmt.Errorf("%w: no capabilities given", ErrNotInterface)
	}

	set := &CapabilitySet{
		byName: make(map[string]*Member),
		events: make(map[string]*Member),
	}

	for _, typ := range types {
		err := set.add(typ)
		if err != nil {
			return nil, err
		}
	}

	if cfg.base != nil {
		value, err := cfg.base.construct()
		if err != nil {
			return nil, err
		}

		set.base = value
	}

	if !cfg.plain {
		set.classify()
	}

	return set, nil
}

// WithBase constructs a base value for the proxy by calling constructor with args.
// The constructor must be a func whose first result is the base; an optional trailing
// error result is honoured. The base is exposed through Proxy.Base and is never called
// by interception.
func WithBase(constructor any, args ...any) CapabilityOption {
	return func(cfg *capabilityConfig) {
		cfg.base = &baseSpec{constructor: constructor, args: args}
	}
}

// WithoutAccessorConventions treats every member as a plain method.
func WithoutAccessorConventions() CapabilityOption {
	return func(cfg *capabilityConfig) {
		cfg.plain = true
	}
}

// Base returns the value built by WithBase, or nil.
func (s *CapabilitySet) Base() any {
	return s.base
}

// Event returns the adder member of the named event.
func (s *CapabilitySet) Event(name string) (*Member, bool) {
	member, ok := s.events[name]

	return member, ok
}

// Member returns the member with the given name.
func (s *CapabilitySet) Member(name string) (*Member, bool) {
	member, ok := s.byName[name]

	return member, ok
}

// Members returns the members in declaration order.
func (s *CapabilitySet) Members() []*Member {
	return slices.Clone(s.members)
}

// Name joins the capability names, e.g. "Command+Closer".
func (s *CapabilitySet) Name() string {
	names := make([]string, len(s.types))

	for index, typ := range s.types {
		names[index] = typeName(typ)
	}

	return strings.Join(names, "+")
}

// Types returns the capability types in order.
func (s *CapabilitySet) Types() []reflect.Type {
	return slices.Clone(s.types)
}

func (s *CapabilitySet) add(typ reflect.Type) error {
	if typ == nil || typ.Kind() != reflect.Interface {
		return fmt.Errorf("%w: %v", ErrNotInterface, typ)
	}

	if slices.Contains(s.types, typ) {
		return nil
	}

	s.types = append(s.types, typ)

	for index := range typ.NumMethod() {
		method := typ.Method(index)

		err := s.addMember(method.Name, method.Type, typeName(typ))
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *CapabilitySet) addMember(name string, typ reflect.Type, owner string) error {
	if existing, ok := s.byName[name]; ok {
		if existing.Type != typ {
			return fmt.Errorf("%w: %s declares %s but %s declares %s",
				ErrConflictingSignature, existing.Owner, existing, owner, name+strings.TrimPrefix(typ.String(), "func"))
		}

		return nil
	}

	member := newMember(name, typ, owner)
	s.members = append(s.members, member)
	s.byName[name] = member

	return nil
}

// classify applies the accessor and event naming conventions.
func (s *CapabilitySet) classify() {
	for _, member := range s.members {
		if member.Kind != KindMethod {
			continue
		}

		if subject, ok := strings.CutPrefix(member.Name, "Set"); ok && subject != "" {
			s.classifyAccessors(subject, member)

			continue
		}

		if subject, ok := strings.CutPrefix(member.Name, "Add"); ok && subject != "" {
			s.classifyEvent(subject, member)
		}
	}
}

func (s *CapabilitySet) classifyAccessors(subject string, setter *Member) {
	getter, ok := s.byName[subject]
	if !ok || getter.Kind != KindMethod || !isAccessorPair(getter, setter) {
		return
	}

	getKind, setKind := KindPropertyGet, KindPropertySet
	if len(getter.Params) > 0 {
		getKind, setKind = KindIndexGet, KindIndexSet
	}

	getter.Kind, getter.Subject, getter.Pair = getKind, subject, setter.Name
	setter.Kind, setter.Subject, setter.Pair = setKind, subject, getter.Name
}

func (s *CapabilitySet) classifyEvent(subject string, adder *Member) {
	remover, ok := s.byName["Remove"+subject]
	if !ok || remover.Kind != KindMethod || adder.Type != remover.Type {
		return
	}

	if len(adder.Params) != 1 || len(adder.Results) != 0 || adder.Variadic || !isHandlerType(adder.Params[0]) {
		return
	}

	adder.Kind, adder.Subject, adder.Pair = KindEventAdd, subject, remover.Name
	remover.Kind, remover.Subject, remover.Pair = KindEventRemove, subject, adder.Name
	s.events[subject] = adder
}

type baseSpec struct {
	constructor any
	args        []any
}

func (b *baseSpec) construct() (any, error) {
	ctor := reflect.ValueOf(b.constructor)
	if ctor.Kind() != reflect.Func || ctor.IsNil() {
		return nil, fmt.Errorf("%w: base constructor %T is not a function", ErrMissingConstructorArgs, b.constructor)
	}

	ctorType := ctor.Type()
	if ctorType.NumOut() == 0 {
		return nil, fmt.Errorf("%w: base constructor %v returns nothing", ErrMissingConstructorArgs, ctorType)
	}

	fixed := ctorType.NumIn()
	if ctorType.IsVariadic() {
		fixed--
	}

	if len(b.args) < fixed || (!ctorType.IsVariadic() && len(b.args) != fixed) {
		return nil, fmt.Errorf("%w: base constructor %v takes %d argument(s), got %d",
			ErrMissingConstructorArgs, ctorType, fixed, len(b.args))
	}

	in, err := callArgs(ctorType, b.args)
	if err != nil {
		return nil, fmt.Errorf("%w: base constructor %v: %w", ErrMissingConstructorArgs, ctorType, err)
	}

	var out []reflect.Value
	if ctorType.IsVariadic() {
		out = ctor.CallSlice(in)
	} else {
		out = ctor.Call(in)
	}

	if last := out[len(out)-1]; len(out) > 1 && last.Type() == errorType && !last.IsNil() {
		return nil, fmt.Errorf("base constructor failed: %w", last.Interface().(error))
	}

	return out[0].Interface(), nil
}

type capabilityConfig struct {
	base  *baseSpec
	plain bool
}

// unexported variables.
var (
	//nolint:gochecknoglobals // reflect type cache
	errorType = reflect.TypeFor[error]()
)

func isAccessorPair(getter, setter *Member) bool {
	if getter.Variadic || setter.Variadic || len(getter.Results) != 1 || len(setter.Params) != len(getter.Params)+1 {
		return false
	}

	for index, param := range getter.Params {
		if setter.Params[index] != param {
			return false
		}
	}

	return setter.Params[len(setter.Params)-1] == getter.Results[0]
}

// isHandlerType reports whether typ can be called when an event is raised.
func isHandlerType(typ reflect.Type) bool {
	return handlerFuncType(typ) != nil
}

// handlerFuncType returns the call signature of an event handler type: the type itself for
// funcs, or the single method of a one-method interface.
func handlerFuncType(typ reflect.Type) reflect.Type {
	switch {
	case typ.Kind() == reflect.Func:
		return typ
	case typ.Kind() == reflect.Interface && typ.NumMethod() == 1:
		return typ.Method(0).Type
	default:
		return nil
	}
}

func typeName(typ reflect.Type) string {
	if typ == nil {
		return "<nil>"
	}

	if typ.Name() != "" {
		return typ.Name()
	}

	return typ.String()
}
