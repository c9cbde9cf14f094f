package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/goses/forecast/smoothing"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, parseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, parseLevel(" WARN "))
	assert.Equal(t, logrus.InfoLevel, parseLevel("loud"))
}

func TestLogDiagnostics_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput(&buf, "info", "json")

	LogDiagnostics(logger, []smoothing.Diagnostic{
		{Parameter: smoothing.ParamAlpha, Value: 0.25, Message: "alpha estimated"},
		{Parameter: smoothing.ParamInitLevel, Value: 3, Message: "level estimated"},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "alpha", entry["parameter"])
	assert.Equal(t, 0.25, entry["value"])
	assert.Equal(t, "alpha estimated", entry["msg"])
}

func TestLogDiagnostics_SuppressedByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput(&buf, "error", "text")
	LogDiagnostics(logger, []smoothing.Diagnostic{{Parameter: "alpha", Message: "x"}})
	assert.Empty(t, buf.String())
}
