// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package callfake

import (
	"fmt"
	"strconv"
	"strings"
)

// Failure messages raised by the assertions.
const (
	MsgNeverCalled     = "The callable was never called."
	MsgNotCalled       = "The expected callable was not called."
	MsgUnexpectedCall  = "An unexpected callable was called."
	MsgNotInvoked      = "The callable was not invoked."
	MsgInvoked         = "The callable was invoked."
	msgCalledTimes     = "The expected callable was called %d times instead of the expected %d times."
	msgTimesInvoked    = "The callable was invoked %d times instead of the expected %d times."
	msgCalledOutOfTurn = "The callable was not called in the expected order. Found at index: %s. Expected to be found at index: %s"
)

// CalledTimesMessage is the AssertCalledTimes failure for the given counts.
func CalledTimesMessage(actual, expected int) string {
	return fmt.Sprintf(msgCalledTimes, actual, expected)
}

// TimesInvokedMessage is the AssertTimesInvoked failure for the given counts.
func TimesInvokedMessage(actual, expected int) string {
	return fmt.Sprintf(msgTimesInvoked, actual, expected)
}

// CalledIndexMessage is the AssertCalledIndex failure for the given indexes.
func CalledIndexMessage(actual, expected []int) string {
	return fmt.Sprintf(msgCalledOutOfTurn, joinIndexes(actual), joinIndexes(expected))
}

func joinIndexes(indexes []int) string {
	parts := make([]string, 0, len(indexes))
	for _, i := range indexes {
		parts = append(parts, strconv.Itoa(i))
	}
	return strings.Join(parts, ", ")
}

func (f *Fake[R]) helper() {
	if h, ok := f.t.(tHelper); ok {
		h.Helper()
	}
}

func (f *Fake[R]) check(ok bool, assertion string) bool {
	if !ok {
		f.log.Debug("assertion failed", "assertion", assertion, "invocations", len(f.ledger))
	}
	return ok
}

// AssertCalled fails unless at least one recorded call matches p.
func (f *Fake[R]) AssertCalled(p Predicate) *Fake[R] {
	f.helper()
	f.assertCalled(p)
	return f
}

func (f *Fake[R]) assertCalled(p Predicate) bool {
	f.helper()
	if !f.check(f.asserter.True(len(f.ledger) > 0, MsgNeverCalled), "AssertCalled") {
		return false
	}
	return f.check(f.asserter.True(f.FindCalls(p).Len() > 0, MsgNotCalled), "AssertCalled")
}

// AssertNotCalled fails if any recorded call matches p.
func (f *Fake[R]) AssertNotCalled(p Predicate) *Fake[R] {
	f.helper()
	f.check(f.asserter.Len(f.FindCalls(p), 0, MsgUnexpectedCall), "AssertNotCalled")
	return f
}

// AssertCalledTimes fails unless exactly times recorded calls match p.
func (f *Fake[R]) AssertCalledTimes(p Predicate, times int) *Fake[R] {
	f.helper()
	actual := f.FindCalls(p).Len()
	f.check(f.asserter.Equal(times, actual, CalledTimesMessage(actual, times)), "AssertCalledTimes")
	return f
}

// AssertCalledIndex fails unless a call matching p was recorded at each of
// the given ledger positions. Matches at other positions are allowed, so
// AssertCalledIndex(p, 0) holds for calls matching at 0 and 2.
func (f *Fake[R]) AssertCalledIndex(p Predicate, indexes ...int) *Fake[R] {
	f.helper()
	if !f.assertCalled(p) {
		return f
	}

	actual := f.FindCalls(p).Indexes()
	found := make(map[int]struct{}, len(actual))
	for _, i := range actual {
		found[i] = struct{}{}
	}

	matches := 0
	for _, i := range indexes {
		if _, ok := found[i]; ok {
			matches++
		}
	}

	f.check(f.asserter.Equal(len(indexes), matches, CalledIndexMessage(actual, indexes)), "AssertCalledIndex")
	return f
}

// AssertTimesInvoked fails unless the Fake was called exactly count times,
// whatever the arguments.
func (f *Fake[R]) AssertTimesInvoked(count int) *Fake[R] {
	f.helper()
	actual := len(f.ledger)
	f.check(f.asserter.Equal(count, actual, TimesInvokedMessage(actual, count)), "AssertTimesInvoked")
	return f
}

// AssertInvoked fails if the Fake was never called.
func (f *Fake[R]) AssertInvoked() *Fake[R] {
	f.helper()
	f.check(f.asserter.True(f.WasInvoked(), MsgNotInvoked), "AssertInvoked")
	return f
}

// AssertNotInvoked fails if the Fake was called.
func (f *Fake[R]) AssertNotInvoked() *Fake[R] {
	f.helper()
	f.check(f.asserter.True(f.WasNotInvoked(), MsgInvoked), "AssertNotInvoked")
	return f
}
