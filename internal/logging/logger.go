package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/evdnx/goses/forecast/smoothing"
)

// NewWithOutput returns a logrus logger writing to w at the given level.
// format "json" selects the JSON formatter; anything else gives text output.
// Unknown levels fall back to info.
func NewWithOutput(w io.Writer, level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(parseLevel(level))
	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logger
}

func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// LogDiagnostics emits one warning per fit diagnostic.
func LogDiagnostics(logger logrus.FieldLogger, diags []smoothing.Diagnostic) {
	for _, d := range diags {
		logger.WithFields(logrus.Fields{
			"parameter": d.Parameter,
			"value":     d.Value,
		}).Warn(d.Message)
	}
}
