// Package goses forecasts a series with simple exponential smoothing: it
// estimates the smoothing weight and the initial level by minimizing the
// one-step-ahead squared error, then extends the smoothed level flat over a
// forecast horizon.
//
//	m, err := goses.NewSimpleExpSmoothing(y, goses.WithHorizon(6))
//	if err != nil {
//	    return err
//	}
//	diags, err := m.Fit() // diags lists every parameter that was estimated
//	if err != nil {
//	    return err
//	}
//	forecast, err := m.Predict() // len(y)+6 values
package goses

import (
	"github.com/evdnx/goses/config"
	"github.com/evdnx/goses/forecast"
	"github.com/evdnx/goses/plot"
)

// ---- Shared data helpers ----
type PlotData = forecast.PlotData

func GenerateTimestamps(startTime int64, count int, interval int64) []int64 {
	return forecast.GenerateTimestamps(startTime, count, interval)
}

func FormatPlotDataJSON(data []forecast.PlotData) (string, error) {
	return forecast.FormatPlotDataJSON(data)
}

func FormatPlotDataCSV(data []forecast.PlotData) (string, error) {
	return forecast.FormatPlotDataCSV(data)
}

// ---- Simple exponential smoothing ----
type (
	Forecaster         = forecast.Forecaster
	SimpleExpSmoothing = forecast.SimpleExpSmoothing
	Param              = forecast.Param
	Option             = forecast.Option
	Diagnostic         = forecast.Diagnostic
	Result             = forecast.Result
)

var (
	ErrInvalidInput = forecast.ErrInvalidInput
	ErrFitFailure   = forecast.ErrFitFailure
	ErrNotFitted    = forecast.ErrNotFitted
)

func Fixed(v float64) Param { return forecast.Fixed(v) }
func Auto() Param           { return forecast.Auto() }

func WithHorizon(h int) Option                     { return forecast.WithHorizon(h) }
func WithAlpha(alpha float64) Option               { return forecast.WithAlpha(alpha) }
func WithInitLevel(level float64) Option           { return forecast.WithInitLevel(level) }
func WithConfig(cfg config.SmoothingConfig) Option { return forecast.WithConfig(cfg) }

func NewSimpleExpSmoothing(y []float64, opts ...Option) (*forecast.SimpleExpSmoothing, error) {
	return forecast.NewSimpleExpSmoothing(y, opts...)
}

func NewSimpleExpSmoothingWithParams(y []float64, h int, alpha, initLevel Param, cfg config.SmoothingConfig) (*forecast.SimpleExpSmoothing, error) {
	return forecast.NewSimpleExpSmoothingWithParams(y, h, alpha, initLevel, cfg)
}

func Smooth(y []float64, alpha, initLevel float64, h int) (Result, error) {
	return forecast.Smooth(y, alpha, initLevel, h)
}

func SSE(y []float64, alpha, initLevel float64) (float64, error) {
	return forecast.SSE(y, alpha, initLevel)
}

func InitialLevel(y []float64, window int) float64 {
	return forecast.InitialLevel(y, window)
}

// ---- Rendering ----
type PlotFormat = plot.Format

const (
	PlotJSON  = plot.FormatJSON
	PlotCSV   = plot.FormatCSV
	PlotPlain = plot.FormatPlain
)

// Plot fits f, predicts and renders the forecast next to observed.
func Plot(f Forecaster, observed []float64, format PlotFormat) (string, []Diagnostic, error) {
	return plot.Model(f, observed, format)
}
