// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package testutil provides testing utilities and helpers for the callfake project.
package testutil

import (
	"fmt"
	"strings"
	"sync"
)

// RecordingT stands in for *testing.T when a test needs to observe the
// failures another helper reports. It records every Errorf and counts
// FailNow calls without stopping the calling goroutine.
type RecordingT struct {
	mu       sync.Mutex
	Errors   []string // Formatted Errorf messages, in order
	failNows int
	helpers  int
}

// NewRecordingT creates a RecordingT with nothing recorded.
func NewRecordingT() *RecordingT {
	return &RecordingT{
		Errors: make([]string, 0),
	}
}

// Errorf records the formatted message.
func (r *RecordingT) Errorf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// FailNow records that the test would have been stopped.
func (r *RecordingT) FailNow() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failNows++
}

// Helper counts calls so tests can check helpers mark themselves.
func (r *RecordingT) Helper() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.helpers++
}

// Failed reports whether Errorf was called.
func (r *RecordingT) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Errors) > 0
}

// FailNowCount returns the number of FailNow calls made.
func (r *RecordingT) FailNowCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failNows
}

// HelperCount returns the number of Helper calls made.
func (r *RecordingT) HelperCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.helpers
}

// Output returns every recorded message joined by newlines.
func (r *RecordingT) Output() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.Errors, "\n")
}
