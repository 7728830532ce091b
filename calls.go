// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package callfake

// Invocation is the ordered argument list of one recorded call.
type Invocation []any

// Len returns the number of arguments the call was made with.
func (i Invocation) Len() int {
	return len(i)
}

// Arg returns the argument at position n. It panics when n is out of range.
func (i Invocation) Arg(n int) any {
	return i[n]
}

// Predicate selects invocations. Arguments are passed positionally, so a
// predicate written for a fixed arity must only be used against invocations
// made with at least that many arguments.
type Predicate func(args ...any) bool

// Any matches every invocation.
func Any() Predicate {
	return func(...any) bool { return true }
}

// Arg1 adapts a typed single-argument func into a Predicate. Arguments past
// the first are ignored.
func Arg1[A any](fn func(A) bool) Predicate {
	return func(args ...any) bool {
		return fn(argAs[A](args, 0))
	}
}

// Arg2 adapts a typed two-argument func into a Predicate.
func Arg2[A, B any](fn func(A, B) bool) Predicate {
	return func(args ...any) bool {
		return fn(argAs[A](args, 0), argAs[B](args, 1))
	}
}

// ArgAt applies fn to the argument at position n.
func ArgAt[T any](n int, fn func(T) bool) Predicate {
	return func(args ...any) bool {
		return fn(argAs[T](args, n))
	}
}

// argAs converts the argument at position n to T. A nil argument becomes
// the zero value of T; any other mismatch panics.
func argAs[T any](args []any, n int) T {
	v := args[n]
	if typed, ok := v.(T); ok {
		return typed
	}
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

// Call is a ledger entry returned by FindCalls.
type Call struct {
	Index int
	Args  Invocation
}

// Calls holds matching ledger entries in recording order.
type Calls []Call

// Len returns the number of matching calls.
func (c Calls) Len() int {
	return len(c)
}

// Indexes returns the ledger positions of the matching calls.
func (c Calls) Indexes() []int {
	indexes := make([]int, 0, len(c))
	for _, call := range c {
		indexes = append(indexes, call.Index)
	}
	return indexes
}

// Args returns the argument lists of the matching calls.
func (c Calls) Args() []Invocation {
	args := make([]Invocation, 0, len(c))
	for _, call := range c {
		args = append(args, call.Args)
	}
	return args
}

// Map returns the matching calls keyed by ledger position.
func (c Calls) Map() map[int]Invocation {
	m := make(map[int]Invocation, len(c))
	for _, call := range c {
		m[call.Index] = call.Args
	}
	return m
}
