// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package callfake provides a fake callable for tests. A Fake records the
// arguments of every call made to it, hands back a value computed by its
// return resolver, and offers assertions over the recorded calls.
//
// A Fake is not safe for concurrent use. Guard it externally when the code
// under test calls it from several goroutines.
package callfake

import (
	"log/slog"

	"github.com/llbbl/callfake/internal/logging"
)

// Resolver computes the value returned for a call.
type Resolver[R any] func(args ...any) R

// Fake is a recording stand-in for a func(...any) R. The ledger of calls is
// append-only; nothing on a Fake removes or rewrites a recorded call.
type Fake[R any] struct {
	ledger   []Invocation
	resolver Resolver[R]
	asserter Asserter
	t        TestingT
	log      *slog.Logger
}

// Option configures a Fake.
type Option func(*options)

type options struct {
	asserter Asserter
	logger   *slog.Logger
	name     string
}

// WithAsserter routes assertion failures through a instead of the default
// fatal testify asserter.
func WithAsserter(a Asserter) Option {
	return func(o *options) {
		o.asserter = a
	}
}

// WithLogger sets the logger that capture and failures are logged to.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithName labels the Fake in log output.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// New creates a Fake whose calls return nil.
func New(t TestingT, opts ...Option) *Fake[any] {
	return NewFunc[any](t, nil, opts...)
}

// NewFunc creates a Fake that returns resolver(args...) for each call. A nil
// resolver returns the zero value of R.
func NewFunc[R any](t TestingT, resolver Resolver[R], opts ...Option) *Fake[R] {
	o := options{name: "callable"}
	for _, opt := range opts {
		opt(&o)
	}

	if o.asserter == nil {
		if t == nil {
			panic("callfake: New needs a TestingT or WithAsserter")
		}
		o.asserter = Require(t)
	}
	if o.logger == nil {
		o.logger = logging.WithComponent("callfake")
	}
	if resolver == nil {
		resolver = func(...any) R {
			var zero R
			return zero
		}
	}

	return &Fake[R]{
		ledger:   make([]Invocation, 0),
		resolver: resolver,
		asserter: o.asserter,
		t:        t,
		log:      o.logger.With("fake", o.name),
	}
}

// WithReturnResolver creates a Fake that answers each call with resolver.
func WithReturnResolver[R any](t TestingT, resolver Resolver[R], opts ...Option) *Fake[R] {
	return NewFunc(t, resolver, opts...)
}

// Invoke records args as the next call and returns the resolver's result.
func (f *Fake[R]) Invoke(args ...any) R {
	call := make(Invocation, len(args))
	copy(call, args)
	f.ledger = append(f.ledger, call)

	f.log.Debug("invocation recorded", "index", len(f.ledger)-1, "arg_count", len(call))

	return f.resolver(args...)
}

// Func returns Invoke as a plain function value so the Fake can be passed
// wherever a func(...any) R is expected.
func (f *Fake[R]) Func() func(args ...any) R {
	return f.Invoke
}

// WasInvoked reports whether the Fake has been called at all.
func (f *Fake[R]) WasInvoked() bool {
	return len(f.ledger) > 0
}

// WasNotInvoked reports whether the Fake has never been called.
func (f *Fake[R]) WasNotInvoked() bool {
	return !f.WasInvoked()
}

// TimesInvoked returns the total number of recorded calls.
func (f *Fake[R]) TimesInvoked() int {
	return len(f.ledger)
}

// Invocations returns a copy of the ledger.
func (f *Fake[R]) Invocations() []Invocation {
	out := make([]Invocation, len(f.ledger))
	copy(out, f.ledger)
	return out
}

// Invocation returns the call recorded at index.
func (f *Fake[R]) Invocation(index int) (Invocation, bool) {
	if index < 0 || index >= len(f.ledger) {
		return nil, false
	}
	return f.ledger[index], true
}

// FindCalls returns the recorded calls matching p, keeping their ledger
// positions and order.
func (f *Fake[R]) FindCalls(p Predicate) Calls {
	calls := make(Calls, 0)
	for i, args := range f.ledger {
		if p(args...) {
			calls = append(calls, Call{Index: i, Args: args})
		}
	}
	return calls
}
