package core

import (
	"fmt"
	"reflect"
	"sync"
)

// Rule is a stub registered for one member: an argument filter plus the responses and
// side effects to apply to calls that pass it.
//
// A rule with responses answers calls; the newest matching one wins, and its responses are
// used in order, repeating the last. A rule without responses only runs its captures and
// Do callbacks.
type Rule struct {
	proxy    *Proxy
	member   *Member
	expected []any
	anyArgs  bool
	implicit bool

	mu        sync.Mutex
	responses []response
	cursor    int
	andDoes   []func(*Invocation)
	actions   []func(*Invocation)
	disabled  bool
}

func newRule(proxy *Proxy, member *Member, expected []any, anyArgs bool) *Rule {
	return &Rule{proxy: proxy, member: member, expected: expected, anyArgs: anyArgs}
}

// AndDoes adds a callback that runs after this rule produced a response, before the
// values are returned. It may write through pointer arguments.
func (r *Rule) AndDoes(fn func(*Invocation)) *Rule {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.andDoes = append(r.andDoes, fn)

	return r
}

// Disable stops the rule from matching.
func (r *Rule) Disable() *Rule {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.disabled = true

	return r
}

// Do adds a callback that runs for every matching call, whether or not this rule answers it.
func (r *Rule) Do(fn func(*Invocation)) *Rule {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.actions = append(r.actions, fn)

	return r
}

// Enable lets a disabled rule match again.
func (r *Rule) Enable() *Rule {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.disabled = false

	return r
}

// ForAnyArgs makes the rule match every call to its member.
func (r *Rule) ForAnyArgs() *Rule {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.anyArgs = true

	return r
}

// Member returns the stubbed member.
func (r *Rule) Member() *Member {
	return r.member
}

// Panics adds a response that panics with value in the caller of the member.
func (r *Rule) Panics(value any) *Rule {
	return r.add(response{panics: true, panicValue: value})
}

// Returns adds a response of fixed values, one per result of the member.
func (r *Rule) Returns(values ...any) *Rule {
	shaped, err := r.member.shape(values)
	if err != nil {
		r.proxy.t.Helper()
		r.proxy.t.Fatalf("%s.%s: %v", r.proxy.Name(), r.member.Name, err)

		return r
	}

	return r.add(response{values: shaped})
}

// ReturnsCall adds a response computed by fn, a func with the member's own signature.
func (r *Rule) ReturnsCall(fn any) *Rule {
	value := reflect.ValueOf(fn)
	if value.Kind() != reflect.Func || !value.Type().ConvertibleTo(r.member.Type) {
		r.proxy.t.Helper()
		r.proxy.t.Fatalf("%s.%s: %v: got %T, want %v",
			r.proxy.Name(), r.member.Name, ErrBadResult, fn, r.member.Type)

		return r
	}

	return r.add(response{call: value.Convert(r.member.Type)})
}

// ReturnsFunc adds a response computed from the invocation.
func (r *Rule) ReturnsFunc(fn func(*Invocation) []any) *Rule {
	return r.add(response{compute: fn})
}

func (r *Rule) String() string {
	if r.anyArgs {
		return fmt.Sprintf("%s.%s(any args)", r.proxy.Name(), r.member.Name)
	}

	return fmt.Sprintf("%s.%s(%s)", r.proxy.Name(), r.member.Name, describeAll(r.expected))
}

// Then adds the next response in the sequence. It reads better than Returns after the first.
func (r *Rule) Then(values ...any) *Rule {
	return r.Returns(values...)
}

// ThenPanics adds a panicking response to the sequence.
func (r *Rule) ThenPanics(value any) *Rule {
	return r.Panics(value)
}

func (r *Rule) add(resp response) *Rule {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.responses = append(r.responses, resp)

	return r
}

// answers reports whether the rule has responses.
func (r *Rule) answers() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.responses) > 0
}

func (r *Rule) callbacks() (actions, andDoes []func(*Invocation)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]func(*Invocation){}, r.actions...), append([]func(*Invocation){}, r.andDoes...)
}

func (r *Rule) matches(inv *Invocation) bool {
	r.mu.Lock()
	disabled, anyArgs := r.disabled, r.anyArgs
	r.mu.Unlock()

	if disabled {
		return false
	}

	return anyArgs || matchAll(r.expected, inv.args)
}

// next returns the current response and advances, clamping at the last one.
func (r *Rule) next() response {
	r.mu.Lock()
	defer r.mu.Unlock()

	resp := r.responses[r.cursor]
	if r.cursor < len(r.responses)-1 {
		r.cursor++
	}

	return resp
}

func (r *Rule) runCaptures(inv *Invocation) error {
	r.mu.Lock()
	anyArgs := r.anyArgs
	r.mu.Unlock()

	if anyArgs {
		return nil
	}

	return captureAll(r.expected, inv.args)
}

type response struct {
	values     []any
	compute    func(*Invocation) []any
	call       reflect.Value
	panics     bool
	panicValue any
}

func (resp response) produce(inv *Invocation) ([]any, error) {
	switch {
	case resp.panics:
		panic(resp.panicValue)
	case resp.compute != nil:
		return inv.member.shape(resp.compute(inv))
	case resp.call.IsValid():
		return resp.invoke(inv), nil
	default:
		return resp.values, nil
	}
}

func (resp response) invoke(inv *Invocation) []any {
	in := make([]reflect.Value, len(inv.args))

	for index, arg := range inv.args {
		in[index] = reflect.New(inv.member.Params[index]).Elem()
		if arg != nil {
			in[index].Set(reflect.ValueOf(arg))
		}
	}

	var out []reflect.Value
	if inv.member.Variadic {
		out = resp.call.CallSlice(in)
	} else {
		out = resp.call.Call(in)
	}

	results := make([]any, len(out))

	for index, value := range out {
		results[index] = value.Interface()
	}

	return results
}
