// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package selfcheck runs a catalog of behavioural scenarios against
// callfake outside of go test, collecting failures with a callfake.Collector.
package selfcheck

import (
	"github.com/llbbl/callfake"
)

// Scenario exercises a Fake and states which failure, if any, it expects.
type Scenario struct {
	Name        string
	Description string
	// Run drives a Fake built on a. Failures raised through a are compared
	// against WantFailure.
	Run func(a callfake.Asserter)
	// WantFailure is the first failure message the scenario should raise.
	// Empty means no failure is expected.
	WantFailure string
}

func newFake(a callfake.Asserter) *callfake.Fake[any] {
	return callfake.New(nil, callfake.WithAsserter(a))
}

func equals(want string) callfake.Predicate {
	return callfake.Arg1(func(arg string) bool { return arg == want })
}

// Catalog returns every built-in scenario in a stable order.
func Catalog() []Scenario {
	return []Scenario{
		{
			Name:        "never-invoked",
			Description: "a fresh fake reports no invocations",
			Run: func(a callfake.Asserter) {
				f := newFake(a)
				a.True(!f.WasInvoked(), "WasInvoked should be false")
				a.True(f.WasNotInvoked(), "WasNotInvoked should be true")
				f.AssertTimesInvoked(0).AssertNotInvoked()
			},
		},
		{
			Name:        "assert-invoked-without-calls",
			Description: "AssertInvoked fails on a fresh fake",
			Run: func(a callfake.Asserter) {
				newFake(a).AssertInvoked()
			},
			WantFailure: callfake.MsgNotInvoked,
		},
		{
			Name:        "assert-not-invoked-after-call",
			Description: "AssertNotInvoked fails once the fake was called",
			Run: func(a callfake.Asserter) {
				f := newFake(a)
				f.Invoke()
				f.AssertNotInvoked()
			},
			WantFailure: callfake.MsgInvoked,
		},
		{
			Name:        "called-with-match",
			Description: "AssertCalled holds for a matching call",
			Run: func(a callfake.Asserter) {
				f := newFake(a)
				f.Invoke("a")
				f.AssertCalled(equals("a"))
			},
		},
		{
			Name:        "called-without-match",
			Description: "AssertCalled fails when no call matches",
			Run: func(a callfake.Asserter) {
				f := newFake(a)
				f.Invoke("a")
				f.AssertCalled(equals("x"))
			},
			WantFailure: callfake.MsgNotCalled,
		},
		{
			Name:        "called-never-invoked",
			Description: "AssertCalled on a fresh fake reports it was never called",
			Run: func(a callfake.Asserter) {
				newFake(a).AssertCalled(callfake.Any())
			},
			WantFailure: callfake.MsgNeverCalled,
		},
		{
			Name:        "not-called-with-match",
			Description: "AssertNotCalled fails when a call matches",
			Run: func(a callfake.Asserter) {
				f := newFake(a)
				f.Invoke("a")
				f.AssertNotCalled(equals("a"))
			},
			WantFailure: callfake.MsgUnexpectedCall,
		},
		{
			Name:        "called-times-mismatch",
			Description: "AssertCalledTimes reports actual and expected counts",
			Run: func(a callfake.Asserter) {
				f := newFake(a)
				f.Invoke("a")
				f.AssertCalledTimes(equals("a"), 2)
			},
			WantFailure: callfake.CalledTimesMessage(1, 2),
		},
		{
			Name:        "times-invoked-mismatch",
			Description: "AssertTimesInvoked counts every call",
			Run: func(a callfake.Asserter) {
				f := newFake(a)
				f.Invoke()
				f.AssertTimesInvoked(2)
			},
			WantFailure: callfake.TimesInvokedMessage(1, 2),
		},
		{
			Name:        "called-index-match",
			Description: "AssertCalledIndex holds when every expected index matched",
			Run: func(a callfake.Asserter) {
				f := newFake(a)
				f.Invoke("b")
				f.Invoke("a")
				f.Invoke("b")
				f.AssertCalledIndex(equals("b"), 0, 2)
			},
		},
		{
			Name:        "called-index-mismatch",
			Description: "AssertCalledIndex lists found and expected indexes",
			Run: func(a callfake.Asserter) {
				f := newFake(a)
				f.Invoke("b")
				f.Invoke("a")
				f.Invoke("b")
				f.AssertCalledIndex(equals("b"), 1)
			},
			WantFailure: callfake.CalledIndexMessage([]int{0, 2}, []int{1}),
		},
		{
			Name:        "called-index-tolerates-extra",
			Description: "AssertCalledIndex ignores matches at unlisted indexes",
			Run: func(a callfake.Asserter) {
				f := newFake(a)
				f.Invoke("b")
				f.Invoke("a")
				f.Invoke("b")
				f.AssertCalledIndex(equals("b"), 2)
			},
		},
		{
			Name:        "find-calls-keeps-indexes",
			Description: "FindCalls keeps ledger positions and order",
			Run: func(a callfake.Asserter) {
				f := newFake(a)
				f.Invoke("a", "b")
				f.Invoke("c", "d")
				f.Invoke("x", "y")
				calls := f.FindCalls(callfake.Arg1(func(arg string) bool {
					return arg == "a" || arg == "c"
				}))
				a.Equal([]int{0, 1}, calls.Indexes(), "FindCalls returned the wrong indexes")
				a.Equal(map[int]callfake.Invocation{
					0: {"a", "b"},
					1: {"c", "d"},
				}, calls.Map(), "FindCalls returned the wrong arguments")
			},
		},
		{
			Name:        "return-resolver",
			Description: "a resolver computes the value handed back",
			Run: func(a callfake.Asserter) {
				values := map[int]string{0: "a", 1: "b"}
				f := callfake.WithReturnResolver(nil, func(args ...any) string {
					return values[args[0].(int)]
				}, callfake.WithAsserter(a))
				a.Equal("a", f.Invoke(0), "index 0 should resolve to a")
				a.Equal("b", f.Invoke(1), "index 1 should resolve to b")
			},
		},
		{
			Name:        "default-resolver",
			Description: "without a resolver calls return nil",
			Run: func(a callfake.Asserter) {
				f := newFake(a)
				a.True(f.Invoke(0) == nil, "default resolver should return nil")
			},
		},
		{
			Name:        "func-reference",
			Description: "calls through Func are recorded like direct calls",
			Run: func(a callfake.Asserter) {
				f := newFake(a)
				call := func(fn func(args ...any) any) {
					fn("a")
				}
				call(f.Func())
				f.AssertCalled(equals("a")).AssertTimesInvoked(1)
			},
		},
	}
}
