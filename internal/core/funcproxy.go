package core

import (
	"fmt"
	"reflect"
)

// FuncProxy substitutes a func type F. The func is a single member named "Call".
type FuncProxy[F any] struct {
	*Proxy

	// Call is the handle of the func's only member.
	Call *Handle

	fn F
}

// NewFuncProxy creates a substitute for the func type F.
func NewFuncProxy[F any](t TestReporter) (*FuncProxy[F], error) {
	typ := reflect.TypeFor[F]()
	if typ.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %v is not a func type", ErrNotInterface, typ)
	}

	set := newFuncCapabilitySet(typ)

	proxy, err := NewProxy(t, set)
	if err != nil {
		return nil, err
	}

	sub := &FuncProxy[F]{Proxy: proxy, Call: proxy.Handle(funcMember)}

	reflect.ValueOf(&sub.fn).Elem().Set(reflect.MakeFunc(typ, func(in []reflect.Value) []reflect.Value {
		args := make([]any, len(in))

		for index, value := range in {
			args[index] = value.Interface()
		}

		results := proxy.Invoke(funcMember, args...)
		out := make([]reflect.Value, len(results))

		for index, result := range results {
			out[index] = reflect.New(typ.Out(index)).Elem()
			if result != nil {
				out[index].Set(reflect.ValueOf(result))
			}
		}

		return out
	}))

	proxy.Bind(sub.fn)

	return sub, nil
}

// Func returns the substitute func.
func (f *FuncProxy[F]) Func() F {
	return f.fn
}

const funcMember = "Call"

func newFuncCapabilitySet(typ reflect.Type) *CapabilitySet {
	member := newMember(funcMember, typ, typeName(typ))

	return &CapabilitySet{
		types:   []reflect.Type{typ},
		members: []*Member{member},
		byName:  map[string]*Member{funcMember: member},
		events:  map[string]*Member{},
	}
}
