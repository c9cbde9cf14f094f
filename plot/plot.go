// Package plot turns an observed series and its forecast into plot data and
// renders it as JSON, CSV or a plain text table.
package plot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/evdnx/goses/forecast/core"
	"github.com/evdnx/goses/forecast/smoothing"
)

var ErrLengthMismatch = errors.New("observed series is longer than the forecast")

// Format selects the output encoding of Render.
type Format string

const (
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatPlain Format = "plain"
)

const (
	ObservedName = "observed"
	ForecastName = "forecast"
)

// Series builds the two plot traces. Both share the X axis 0,1,2,… so that
// forecast[t] lines up with observed[t]; the forecast simply runs further.
// When interval is positive each trace also carries timestamps starting at
// start.
func Series(observed, forecast []float64, start, interval int64) ([]core.PlotData, error) {
	if len(observed) > len(forecast) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(observed), len(forecast))
	}
	obs := core.PlotData{
		Name: ObservedName,
		X:    core.Sequence(0, len(observed)),
		Y:    core.CopySlice(observed),
		Type: "line",
	}
	fc := core.PlotData{
		Name: ForecastName,
		X:    core.Sequence(0, len(forecast)),
		Y:    core.CopySlice(forecast),
		Type: "line",
	}
	if interval > 0 {
		obs.Timestamp = core.GenerateTimestamps(start, len(observed), interval)
		fc.Timestamp = core.GenerateTimestamps(start, len(forecast), interval)
	}
	return []core.PlotData{obs, fc}, nil
}

// Render encodes plot data in the requested format.
func Render(data []core.PlotData, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return core.FormatPlotDataJSON(data)
	case FormatCSV:
		return core.FormatPlotDataCSV(data)
	case FormatPlain:
		return renderTable(data)
	default:
		return "", fmt.Errorf("unsupported plot format %q", format)
	}
}

// Model fits f, predicts, and renders the result next to observed. The fit
// diagnostics are handed back for the caller to surface.
func Model(f smoothing.Forecaster, observed []float64, format Format) (string, []smoothing.Diagnostic, error) {
	diags, err := f.Fit()
	if err != nil {
		return "", nil, err
	}
	forecast, err := f.Predict()
	if err != nil {
		return "", diags, err
	}
	data, err := Series(observed, forecast, 0, 0)
	if err != nil {
		return "", diags, err
	}
	out, err := Render(data, format)
	return out, diags, err
}

// renderTable lays the traces out column by column, one row per X position.
func renderTable(data []core.PlotData) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	rows := 0
	for _, d := range data {
		if len(d.X) != len(d.Y) {
			return "", fmt.Errorf("mismatched X and Y lengths for %s: %d vs %d", d.Name, len(d.X), len(d.Y))
		}
		rows = max(rows, len(d.Y))
	}

	var sb strings.Builder
	sb.WriteString("t")
	for _, d := range data {
		sb.WriteString("\t" + d.Name)
	}
	sb.WriteByte('\n')
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "%d", i)
		for _, d := range data {
			if i < len(d.Y) {
				fmt.Fprintf(&sb, "\t%g", d.Y[i])
			} else {
				sb.WriteString("\t")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
