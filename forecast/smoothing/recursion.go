package smoothing

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/evdnx/goses/forecast/core"
)

// Result is one evaluation of the smoothing recursion.
type Result struct {
	// Forecast has len(y)+h elements: the in-sample levels 0..n followed by
	// h-1 copies of the last level.
	Forecast []float64
	// Residuals[t] = y[t] - Forecast[t], the one-step-ahead errors.
	Residuals []float64
	SSE       float64
}

// Levels returns the in-sample part of the forecast (len(y)+1 values).
func (r Result) Levels() []float64 {
	return core.KeepFirst(r.Forecast, len(r.Residuals)+1)
}

// Ahead returns the values past the last in-sample level (h-1 values).
func (r Result) Ahead() []float64 {
	return core.KeepLast(r.Forecast, len(r.Forecast)-len(r.Residuals)-1)
}

// Smooth runs the simple exponential smoothing recursion
//
//	level[0] = initLevel
//	level[t] = alpha*y[t-1] + (1-alpha)*level[t-1]
//
// and extends the last level flat over the horizon h.
func Smooth(y []float64, alpha, initLevel float64, h int) (Result, error) {
	if err := validate(y, h, Fixed(alpha), Fixed(initLevel)); err != nil {
		return Result{}, err
	}
	forecast := smooth(y, alpha, initLevel, h)
	residuals := make([]float64, len(y))
	floats.SubTo(residuals, y, forecast[:len(y)])
	return Result{
		Forecast:  forecast,
		Residuals: residuals,
		SSE:       floats.Dot(residuals, residuals),
	}, nil
}

// SSE returns the sum of squared one-step-ahead errors for the given
// parameters.
func SSE(y []float64, alpha, initLevel float64) (float64, error) {
	if err := validate(y, 1, Fixed(alpha), Fixed(initLevel)); err != nil {
		return 0, fmt.Errorf("SSE: %w", err)
	}
	return sse(y, alpha, initLevel), nil
}

func smooth(y []float64, alpha, level float64, h int) []float64 {
	n := len(y)
	out := make([]float64, n+h)
	out[0] = level
	for t := 1; t <= n; t++ {
		out[t] = alpha*y[t-1] + (1-alpha)*out[t-1]
	}
	for t := n + 1; t < n+h; t++ {
		out[t] = out[n]
	}
	return out
}

// sse is the allocation-free objective evaluated by the optimizers. It does
// not check its inputs: the minimizers probe alpha slightly outside [0,1]
// when differencing.
func sse(y []float64, alpha, level float64) float64 {
	var sum float64
	for _, v := range y {
		e := level - v
		sum += e * e
		level = alpha*v + (1-alpha)*level
	}
	return sum
}
