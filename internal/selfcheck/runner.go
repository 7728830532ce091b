// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package selfcheck

import (
	"fmt"
	"log/slog"

	"github.com/llbbl/callfake"
	"github.com/llbbl/callfake/internal/logging"
)

// Result is the outcome of one scenario.
type Result struct {
	Name        string
	Description string
	WantFailure string
	Failures    []string
	Panic       string
	Passed      bool
}

// Options controls a run.
type Options struct {
	// Names restricts the run to these scenarios. Empty runs all of them.
	Names []string
	// FailFast stops after the first scenario that does not pass.
	FailFast bool
	Logger   *slog.Logger
}

// Run executes scenarios in order and reports each outcome. It returns an
// error when Names refers to a scenario that is not in the list.
func Run(scenarios []Scenario, opts Options) ([]Result, error) {
	log := opts.Logger
	if log == nil {
		log = logging.WithComponent("selfcheck")
	}

	selected, err := Select(scenarios, opts.Names)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(selected))
	for _, s := range selected {
		log.Debug("running scenario", "scenario", s.Name)
		r := runOne(s)
		results = append(results, r)

		if !r.Passed {
			log.Warn("scenario did not pass", "scenario", s.Name, "want", s.WantFailure, "got", r.Failures, "panic", r.Panic)
			if opts.FailFast {
				log.Debug("stopping after first failure", "ran", len(results), "selected", len(selected))
				break
			}
		}
	}

	return results, nil
}

// Select returns the named scenarios in catalog order, or all of them when
// names is empty.
func Select(scenarios []Scenario, names []string) ([]Scenario, error) {
	if len(names) == 0 {
		return scenarios, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = false
	}

	selected := make([]Scenario, 0, len(names))
	for _, s := range scenarios {
		if _, ok := wanted[s.Name]; ok {
			wanted[s.Name] = true
			selected = append(selected, s)
		}
	}

	for _, n := range names {
		if !wanted[n] {
			return nil, fmt.Errorf("unknown scenario %q", n)
		}
	}

	return selected, nil
}

func runOne(s Scenario) (r Result) {
	c := callfake.NewCollector()
	r = Result{
		Name:        s.Name,
		Description: s.Description,
		WantFailure: s.WantFailure,
	}

	defer func() {
		if p := recover(); p != nil {
			r.Panic = fmt.Sprint(p)
			c.Fail("scenario panicked: " + r.Panic)
			r.Failures = c.Failures()
			r.Passed = false
		}
	}()

	s.Run(c)

	r.Failures = c.Failures()
	r.Passed = outcomeMatches(s.WantFailure, r.Failures)
	return r
}

func outcomeMatches(want string, failures []string) bool {
	if want == "" {
		return len(failures) == 0
	}
	return len(failures) > 0 && failures[0] == want
}
