package core

import (
	"fmt"
	"reflect"
	"unsafe"
)

// normalizeExpected prepares an expected value for comparison against arguments of type typ.
// Matchers and nil pass through; plain values are converted losslessly or rejected.
func normalizeExpected(expected any, typ reflect.Type) (any, error) {
	if expected == nil {
		return nil, nil
	}

	if _, ok := expected.(Matcher); ok {
		return expected, nil
	}

	converted, ok := convertLossless(reflect.ValueOf(expected), typ)
	if !ok {
		return nil, fmt.Errorf("%w: cannot pair %T with a parameter of type %v", ErrAmbiguousMatcher, expected, typ)
	}

	if typ.Kind() == reflect.Interface {
		return expected, nil
	}

	return converted.Interface(), nil
}

// fitValue converts a stubbed value to a result of type typ.
func fitValue(value any, typ reflect.Type) (any, error) {
	if value == nil {
		if !nilable(typ) {
			return nil, fmt.Errorf("%w: nil for %v", ErrBadResult, typ)
		}

		return reflect.Zero(typ).Interface(), nil
	}

	converted, ok := convertLossless(reflect.ValueOf(value), typ)
	if !ok {
		return nil, fmt.Errorf("%w: %T for %v", ErrBadResult, value, typ)
	}

	if typ.Kind() == reflect.Interface {
		return value, nil
	}

	return converted.Interface(), nil
}

// convertValue converts an argument for a reflective call to a parameter of type typ.
func convertValue(value any, typ reflect.Type) (reflect.Value, error) {
	if value == nil {
		if !nilable(typ) {
			return reflect.Value{}, fmt.Errorf("%w: nil for %v", ErrArity, typ)
		}

		return reflect.Zero(typ), nil
	}

	converted, ok := convertLossless(reflect.ValueOf(value), typ)
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %T for %v", ErrArity, value, typ)
	}

	return converted, nil
}

// convertLossless converts value to typ when it is assignable, or when it is a
// conversion within the same kind family that round-trips without loss.
func convertLossless(value reflect.Value, typ reflect.Type) (reflect.Value, bool) {
	if value.Type().AssignableTo(typ) {
		if typ.Kind() == reflect.Interface {
			return value, true
		}

		return value.Convert(typ), true
	}

	if !value.Type().ConvertibleTo(typ) {
		return reflect.Value{}, false
	}

	from, into := value.Kind(), typ.Kind()

	if isNumber(from) && isNumber(into) {
		converted := value.Convert(typ)
		if converted.Convert(value.Type()).Interface() != value.Interface() {
			return reflect.Value{}, false
		}

		return converted, true
	}

	if from != into {
		return reflect.Value{}, false
	}

	return value.Convert(typ), true
}

func isNumber(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func nilable(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice,
		reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// isNil reports whether value is nil or a typed nil.
func isNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	return nilable(rv.Type()) && rv.IsNil()
}

// sameHandler reports whether two subscription handlers are the same.
// Funcs compare by closure instance: two closures built from one literal are different
// handlers, while a top-level func is always the same handler as itself.
func sameHandler(left, right any) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}

	lv, rv := reflect.ValueOf(left), reflect.ValueOf(right)
	if lv.Type() != rv.Type() {
		return false
	}

	if lv.Kind() == reflect.Func {
		return closureOf(lv) == closureOf(rv)
	}

	if !lv.Comparable() {
		return false
	}

	return lv.Equal(rv)
}

// closureOf returns the closure object a func value points at.
// reflect.Value.Pointer only exposes the code pointer, which closures from one literal share.
func closureOf(fn reflect.Value) unsafe.Pointer {
	if fn.IsNil() {
		return nil
	}

	slot := reflect.New(fn.Type()).Elem()
	slot.Set(fn)

	return *(*unsafe.Pointer)(slot.Addr().UnsafePointer())
}

// callWith calls a func, or the single method of a one-method value, with loosely typed args.
// Missing trailing arguments are filled with zero values.
func callWith(target any, args []any) error {
	if target == nil {
		return nil
	}

	fn := reflect.ValueOf(target)

	if fn.Kind() != reflect.Func {
		if fn.NumMethod() != 1 {
			return fmt.Errorf("%w: %T is neither a func nor a single-method value", ErrArity, target)
		}

		fn = fn.Method(0)
	}

	return callValue(fn, args)
}

// callHandler calls an event handler declared with type handlerType.
func callHandler(handler any, handlerType reflect.Type, args []any) error {
	fn := reflect.ValueOf(handler)

	if handlerType.Kind() == reflect.Interface {
		fn = fn.MethodByName(handlerType.Method(0).Name)
	}

	return callValue(fn, args)
}

func callValue(fn reflect.Value, args []any) error {
	if fn.Kind() == reflect.Func && fn.IsNil() {
		return nil
	}

	in, err := callArgs(fn.Type(), args)
	if err != nil {
		return err
	}

	if fn.Type().IsVariadic() {
		fn.CallSlice(in)
	} else {
		fn.Call(in)
	}

	return nil
}

func callArgs(typ reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := typ.NumIn()
	if typ.IsVariadic() {
		fixed--
	}

	if len(args) > fixed && !typ.IsVariadic() {
		return nil, fmt.Errorf("%w: %v takes %d argument(s), got %d", ErrArity, typ, fixed, len(args))
	}

	in := make([]reflect.Value, 0, typ.NumIn())

	for index := range fixed {
		if index >= len(args) {
			in = append(in, reflect.Zero(typ.In(index)))

			continue
		}

		value, err := convertValue(args[index], typ.In(index))
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", index, err)
		}

		in = append(in, value)
	}

	if !typ.IsVariadic() {
		return in, nil
	}

	sliceType := typ.In(fixed)
	rest := reflect.MakeSlice(sliceType, 0, max(len(args)-fixed, 0))

	for index := fixed; index < len(args); index++ {
		value, err := convertValue(args[index], sliceType.Elem())
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", index, err)
		}

		rest = reflect.Append(rest, value)
	}

	return append(in, rest), nil
}
