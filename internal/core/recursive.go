package core

import (
	"fmt"
	"reflect"
	"sync"
)

// Substitute is implemented by every value backed by a proxy.
type Substitute interface {
	ImpstubProxy() *Proxy
}

// ProxyOf returns the proxy behind a substitute value.
func ProxyOf(value any) (*Proxy, error) {
	sub, ok := value.(Substitute)
	if !ok || isNil(value) {
		return nil, fmt.Errorf("%w: %T", ErrNotSubstitute, value)
	}

	proxy := sub.ImpstubProxy()
	if proxy == nil {
		return nil, fmt.Errorf("%w: %T has no proxy", ErrNotSubstitute, value)
	}

	return proxy, nil
}

// RegisterAdapter makes interface I available for nested proxies: when a member returning I
// has no stub, the proxy creates a new proxy for I and wraps it with factory.
// Generated code registers its adapters from init.
func RegisterAdapter[I any](factory func(*Proxy) I) {
	typ := reflect.TypeFor[I]()
	if typ.Kind() != reflect.Interface {
		panic(fmt.Errorf("%w: cannot register adapter for %v", ErrNotInterface, typ))
	}

	adaptersMu.Lock()
	defer adaptersMu.Unlock()

	adapters[typ] = func(proxy *Proxy) any { return factory(proxy) }
}

// unexported variables.
var (
	//nolint:gochecknoglobals // adapters are registered from generated init funcs
	adapters = make(map[reflect.Type]func(*Proxy) any)
	//nolint:gochecknoglobals // Mutex for adapters
	adaptersMu sync.RWMutex
)

func adapterFor(typ reflect.Type) (func(*Proxy) any, bool) {
	adaptersMu.RLock()
	defer adaptersMu.RUnlock()

	factory, ok := adapters[typ]

	return factory, ok
}
