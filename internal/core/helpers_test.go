package core_test

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/toejough/impstub/internal/core"
)

type calculator interface {
	Add(a, b int) int
	Divide(a, b int) (int, error)
	Mode() string
	SetMode(mode string)
}

type command interface {
	Run(target string)
	Execute()
}

type connection interface {
	Open()
	Close()
}

type engine interface {
	AddIdling(handler func())
	RemoveIdling(handler func())
	AddLowFuel(handler func(level int, critical bool))
	RemoveLowFuel(handler func(level int, critical bool))
}

type formatter interface {
	Format(value any) string
}

type lookup interface {
	TryGet(key string, out *int) bool
}

type logger interface {
	Log(format string, args ...any)
}

type orderProcessor interface {
	Process(id int, done func(status string))
}

type parser interface {
	Parse(text string) []string
}

type parserFactory interface {
	Create(separator rune) parser
}

type retrier interface {
	Retry(attempt any) bool
}

type settings interface {
	Value(key string) string
	SetValue(key, value string)
}

type user struct {
	Name string
}

type parserAdapter struct {
	proxy *core.Proxy
}

func (a *parserAdapter) ImpstubProxy() *core.Proxy {
	return a.proxy
}

func (a *parserAdapter) Parse(text string) []string {
	return core.Result[[]string](a.proxy.Invoke("Parse", text), 0)
}

// fakeReporter records failures instead of stopping the test.
type fakeReporter struct {
	mu       sync.Mutex
	failures []string
	logs     []string
}

func (f *fakeReporter) Failures() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string{}, f.failures...)
}

func (f *fakeReporter) Fatalf(format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.failures = append(f.failures, fmt.Sprintf(format, args...))
}

func (f *fakeReporter) Helper() {}

func (f *fakeReporter) Logf(format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.logs = append(f.logs, fmt.Sprintf(format, args...))
}

func (f *fakeReporter) Logs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string{}, f.logs...)
}

//nolint:gochecknoinits // mirrors how generated adapters register themselves
func init() {
	core.RegisterAdapter(func(proxy *core.Proxy) parser {
		adapter := &parserAdapter{proxy: proxy}
		proxy.Bind(adapter)

		return adapter
	})
}

func newProxy[I any](t *testing.T, reporter core.TestReporter) *core.Proxy {
	t.Helper()

	proxy, err := core.For(reporter, typesOf[I]())
	if err != nil {
		t.Fatalf("creating proxy: %v", err)
	}

	return proxy
}

func typesOf[I any]() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[I]()}
}
