// Package forecast gathers the smoothing models, their optimizers and the
// shared helpers behind one import.
package forecast

import (
	"github.com/evdnx/goses/config"
	"github.com/evdnx/goses/forecast/core"
	"github.com/evdnx/goses/forecast/optimize"
	"github.com/evdnx/goses/forecast/smoothing"
)

// ---- Shared data helpers ----
type PlotData = core.PlotData

func GenerateTimestamps(startTime int64, count int, interval int64) []int64 {
	return core.GenerateTimestamps(startTime, count, interval)
}

func FormatPlotDataJSON(data []PlotData) (string, error) {
	return core.FormatPlotDataJSON(data)
}

func FormatPlotDataCSV(data []PlotData) (string, error) {
	return core.FormatPlotDataCSV(data)
}

// ---- Models ----
type (
	Forecaster         = smoothing.Forecaster
	SimpleExpSmoothing = smoothing.SimpleExpSmoothing
	Param              = smoothing.Param
	Option             = smoothing.Option
	Diagnostic         = smoothing.Diagnostic
	Result             = smoothing.Result
)

var (
	ErrInvalidInput = smoothing.ErrInvalidInput
	ErrFitFailure   = smoothing.ErrFitFailure
	ErrNotFitted    = smoothing.ErrNotFitted
)

func Fixed(v float64) Param { return smoothing.Fixed(v) }
func Auto() Param           { return smoothing.Auto() }

func WithHorizon(h int) Option                     { return smoothing.WithHorizon(h) }
func WithAlpha(alpha float64) Option               { return smoothing.WithAlpha(alpha) }
func WithInitLevel(level float64) Option           { return smoothing.WithInitLevel(level) }
func WithConfig(cfg config.SmoothingConfig) Option { return smoothing.WithConfig(cfg) }

func NewSimpleExpSmoothing(y []float64, opts ...Option) (*smoothing.SimpleExpSmoothing, error) {
	return smoothing.NewSimpleExpSmoothing(y, opts...)
}

func NewSimpleExpSmoothingWithParams(y []float64, h int, alpha, initLevel Param, cfg config.SmoothingConfig) (*smoothing.SimpleExpSmoothing, error) {
	return smoothing.NewSimpleExpSmoothingWithParams(y, h, alpha, initLevel, cfg)
}

// ---- Recursion & initializer ----
func Smooth(y []float64, alpha, initLevel float64, h int) (Result, error) {
	return smoothing.Smooth(y, alpha, initLevel, h)
}

func SSE(y []float64, alpha, initLevel float64) (float64, error) {
	return smoothing.SSE(y, alpha, initLevel)
}

func InitialLevel(y []float64, window int) float64 {
	return smoothing.InitialLevel(y, window)
}

// ---- Optimizers ----
type (
	OptimizerSettings = optimize.Settings
	OptimizerResult   = optimize.Result
	Problem           = optimize.Problem
)

var (
	ErrNotConverged = optimize.ErrNotConverged
	ErrBadObjective = optimize.ErrBadObjective
)

func Bounded(f func(float64) float64, lo, hi, x0 float64, s OptimizerSettings) (OptimizerResult, error) {
	return optimize.Bounded(f, lo, hi, x0, s)
}

func LBFGSB(p Problem, x0 []float64, s OptimizerSettings) (OptimizerResult, error) {
	return optimize.LBFGSB(p, x0, s)
}
