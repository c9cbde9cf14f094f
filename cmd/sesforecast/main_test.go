package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeries(t *testing.T) {
	got, err := parseSeries("value\n1, 2;3\n 4\t5\n\n")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, got)

	_, err = parseSeries("1\n2\nabc\n")
	assert.Error(t, err)
}

func TestRun_FixedParameters(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--alpha", "1", "--init-level", "0", "--horizon", "5"},
		strings.NewReader("1 2 3 4 5"), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "t\tobserved\tforecast", lines[0])
	assert.Equal(t, "0\t1\t0", lines[1])
	assert.Equal(t, "9\t\t5", lines[10])
	assert.NotContains(t, stderr.String(), "level=warning")
}

func TestRun_EstimatesAndWarns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.csv")
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n3\n4\n5\n6\n"), 0o600))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-i", path, "-f", "json", "--horizon", "2"}, nil, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var traces []struct {
		Name string    `json:"name"`
		Y    []float64 `json:"y"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &traces))
	require.Len(t, traces, 2)
	assert.Len(t, traces[1].Y, 8)
	assert.Contains(t, stderr.String(), "parameter=alpha")
	assert.Contains(t, stderr.String(), "parameter=init_level")
}

func TestRun_JSONLogsToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--log-format", "json", "-f", "csv", "--init-level", "2.5e-7"},
		strings.NewReader("2.5e-7 3.1e-7 2.9e-7"), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		assert.Contains(t, entry, "level")
	}
	assert.Contains(t, stdout.String(), "observed,0,2.5e-07,line,")
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		input string
	}{
		{"empty input", nil, ""},
		{"bad alpha", []string{"--alpha", "2"}, "1 2 3"},
		{"bad policy", []string{"--fit_policy", "nope"}, "1 2 3"},
		{"bad format", []string{"--format", "svg", "--alpha", "0.5", "--init-level", "1"}, "1 2 3"},
		{"missing file", []string{"-i", "/definitely/not/here"}, ""},
	}
	for _, tc := range cases {
		var stdout, stderr bytes.Buffer
		code := run(tc.args, strings.NewReader(tc.input), &stdout, &stderr)
		assert.Equal(t, 1, code, tc.name)
		assert.NotEmpty(t, stderr.String(), tc.name)
	}
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"--nope"}, strings.NewReader(""), &stdout, &stderr))
}
