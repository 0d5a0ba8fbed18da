package core

import (
	"fmt"
	"slices"
)

// Invocation is one recorded call to a proxy member. It is never modified after recording.
type Invocation struct {
	member   *Member
	args     []any
	receiver *Proxy
	seq      uint64
	global   uint64
}

// Arg returns the argument at index. A variadic member's last argument is its slice.
func (i *Invocation) Arg(index int) any {
	return i.args[index]
}

// Args returns a copy of the arguments.
func (i *Invocation) Args() []any {
	return slices.Clone(i.args)
}

// Global returns the invocation's position among all calls recorded in the same test.
func (i *Invocation) Global() uint64 {
	return i.global
}

// Member returns the invoked member.
func (i *Invocation) Member() *Member {
	return i.member
}

// Receiver returns the proxy that received the call.
func (i *Invocation) Receiver() *Proxy {
	return i.receiver
}

// Seq returns the invocation's position in its proxy's ledger, starting at 1.
func (i *Invocation) Seq() uint64 {
	return i.seq
}

// String renders the call, e.g. `Calculator#1.Add(1, 2)`.
func (i *Invocation) String() string {
	return fmt.Sprintf("%s.%s(%s)", i.receiver.Name(), i.member.Name, formatArgs(i.flatArgs()))
}

// flatArgs spreads a variadic slice into individual arguments.
func (i *Invocation) flatArgs() []any {
	if !i.member.Variadic || len(i.args) == 0 {
		return i.args
	}

	fixed := i.args[:len(i.args)-1]
	rest, _ := sliceValues(i.args[len(i.args)-1])

	return append(slices.Clone(fixed), rest...)
}

// ArgAt returns the argument at index as T, or the zero T when it is not a T.
func ArgAt[T any](inv *Invocation, index int) T {
	value, _ := asType[T](inv.Arg(index))

	return value
}

// ArgOfType returns the first non-nil argument that is a T.
func ArgOfType[T any](inv *Invocation) (T, bool) {
	for _, arg := range inv.args {
		if value, ok := arg.(T); ok && arg != nil {
			return value, true
		}
	}

	var zero T

	return zero, false
}
