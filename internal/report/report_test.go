// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/llbbl/callfake"
	"github.com/llbbl/callfake/internal/selfcheck"
)

func mixedResults() []selfcheck.Result {
	return []selfcheck.Result{
		{
			Name:        "called-with-match",
			Description: "AssertCalled holds for a matching call",
			Passed:      true,
		},
		{
			Name:        "called-times-mismatch",
			Description: "AssertCalledTimes reports actual and expected counts",
			WantFailure: callfake.CalledTimesMessage(1, 2),
			Failures:    []string{callfake.MsgNeverCalled},
		},
	}
}

func TestBuild_Totals(t *testing.T) {
	tests := []struct {
		name       string
		results    []selfcheck.Result
		wantPassed int
		wantFailed int
	}{
		{name: "empty", results: nil},
		{name: "mixed", results: mixedResults(), wantPassed: 1, wantFailed: 1},
		{
			name: "all passed",
			results: []selfcheck.Result{
				{Name: "a", Passed: true},
				{Name: "b", Passed: true},
			},
			wantPassed: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := Build(tt.results)

			assert.Equal(t, len(tt.results), rep.Total)
			assert.Equal(t, tt.wantPassed, rep.Passed)
			assert.Equal(t, tt.wantFailed, rep.Failed)
			assert.Len(t, rep.Scenarios, len(tt.results))
		})
	}
}

func TestRender_JSONGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, mixedResults(), "json"))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "mixed_results", buf.Bytes())
}

func TestRender_JSONIsValid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, mixedResults(), "json"))

	var rep Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rep))
	assert.Equal(t, 2, rep.Total)
	assert.Equal(t, "called-times-mismatch", rep.Scenarios[1].Name)
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, mixedResults(), "yaml"))

	assert.Contains(t, buf.String(), "total: 2")
	assert.Contains(t, buf.String(), "name: called-with-match")
	assert.NotContains(t, buf.String(), "panic:")

	var rep Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rep))
	assert.Equal(t, 1, rep.Failed)
	assert.Equal(t, []string{callfake.MsgNeverCalled}, rep.Scenarios[1].Failures)
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, mixedResults(), "text"))

	output := buf.String()
	assert.Contains(t, output, "callfake selfcheck")
	assert.Contains(t, output, "PASS")
	assert.Contains(t, output, "FAIL")
	assert.Contains(t, output, "called-with-match")
	assert.Contains(t, output, "want: "+callfake.CalledTimesMessage(1, 2))
	assert.Contains(t, output, "got:  "+callfake.MsgNeverCalled)
	assert.Contains(t, output, "2 scenarios, 1 passed, 1 failed")
}

func TestRender_TextShowsPanic(t *testing.T) {
	results := []selfcheck.Result{{
		Name:     "arity",
		Panic:    "runtime error: index out of range [0] with length 0",
		Failures: []string{"scenario panicked: runtime error: index out of range [0] with length 0"},
	}}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, results, "text"))

	assert.Contains(t, buf.String(), "want: (no failure)")
	assert.Contains(t, buf.String(), "panic: runtime error")
}

func TestRender_EmptyFormatIsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, nil, ""))

	assert.Contains(t, buf.String(), "0 scenarios, 0 passed, 0 failed")
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, mixedResults(), "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report format")
	assert.Zero(t, buf.Len())
}
