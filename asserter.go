// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package callfake

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestingT is the subset of *testing.T a Fake reports failures through.
type TestingT = require.TestingT

type tHelper interface {
	Helper()
}

// Asserter raises test failures on behalf of a Fake. Every method reports
// whether the check held; the Fake stops evaluating an assertion at the
// first false.
type Asserter interface {
	Fail(message string) bool
	Equal(expected, actual any, message string) bool
	Len(object any, length int, message string) bool
	True(value bool, message string) bool
}

// Require returns an Asserter that fails the test and stops it with
// t.FailNow, like testify's require package.
func Require(t TestingT) Asserter {
	return &testifyAsserter{t: t, fatal: true}
}

// Assert returns an Asserter that marks the test failed and lets it carry on.
func Assert(t assert.TestingT) Asserter {
	return &testifyAsserter{t: t}
}

type testifyAsserter struct {
	t     assert.TestingT
	fatal bool
}

func (a *testifyAsserter) Fail(message string) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	return a.done(assert.Fail(a.t, message))
}

func (a *testifyAsserter) Equal(expected, actual any, message string) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	return a.done(assert.Equal(a.t, expected, actual, message))
}

func (a *testifyAsserter) Len(object any, length int, message string) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	return a.done(assert.Len(a.t, object, length, message))
}

func (a *testifyAsserter) True(value bool, message string) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	return a.done(assert.True(a.t, value, message))
}

func (a *testifyAsserter) done(ok bool) bool {
	if !ok && a.fatal {
		if t, isFatal := a.t.(require.TestingT); isFatal {
			t.FailNow()
		}
	}
	return ok
}

// Collector is an Asserter that keeps failure messages instead of reporting
// them to a test framework.
type Collector struct {
	failures []string
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Fail(message string) bool {
	c.failures = append(c.failures, message)
	return false
}

func (c *Collector) Equal(expected, actual any, message string) bool {
	if assert.ObjectsAreEqual(expected, actual) {
		return true
	}
	return c.Fail(message)
}

// Len fails when object has no length or a length other than the given one.
func (c *Collector) Len(object any, length int, message string) bool {
	if assert.Len(new(assert.CollectT), object, length) {
		return true
	}
	return c.Fail(message)
}

func (c *Collector) True(value bool, message string) bool {
	if value {
		return true
	}
	return c.Fail(message)
}

// Failures returns the collected messages in the order they were raised.
func (c *Collector) Failures() []string {
	out := make([]string, len(c.failures))
	copy(out, c.failures)
	return out
}

// Failed reports whether any check failed.
func (c *Collector) Failed() bool {
	return len(c.failures) > 0
}
