package smoothing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/evdnx/goses/config"
	"github.com/evdnx/goses/forecast/core"
	"github.com/evdnx/goses/forecast/optimize"
)

// Fit estimates every parameter the caller left unset by minimizing the SSE,
// holding supplied parameters fixed, and marks the model fitted.
//
//   - both supplied: nothing to search.
//   - only alpha unset: Brent search over [0,1] with the initial level fixed.
//   - initial level unset: projected L-BFGS over the free subset of
//     {alpha, initial level}, starting from (0, trend-intercept estimate).
//     Under FitPolicyHeuristic the level is instead pinned to that estimate
//     and only alpha is searched.
//
// Every call starts again from the parameters given at construction. One
// Diagnostic is returned per estimated parameter. A minimizer that does not
// converge yields ErrFitFailure and leaves the model unchanged.
func (m *SimpleExpSmoothing) Fit() ([]Diagnostic, error) {
	alpha, level := m.requestedAlpha, m.requestedLevel
	if alpha.IsSet() && level.IsSet() {
		m.alpha, m.initLevel, m.fitted = alpha, level, true
		return nil, nil
	}

	settings := optimize.Settings{
		MaxIterations: m.config.MaxIterations,
		Tolerance:     m.config.Tolerance,
	}
	guess := InitialLevel(m.y, m.config.HeuristicWindow)

	var diags []Diagnostic
	if !level.IsSet() && m.config.FitPolicy == config.FitPolicyHeuristic {
		level = Fixed(guess)
		diags = append(diags, Diagnostic{
			Parameter: ParamInitLevel,
			Value:     guess,
			Message:   "initial level set from the trend intercept of the leading observations",
		})
	}

	var (
		a, l float64
		err  error
	)
	switch {
	case level.IsSet() && alpha.IsSet():
		a, _ = alpha.Value()
		l, _ = level.Value()
	case level.IsSet():
		l, _ = level.Value()
		a, err = m.searchAlpha(l, settings)
		if err != nil {
			return nil, err
		}
	default:
		a, l, err = m.searchJoint(alpha, guess, settings)
		if err != nil {
			return nil, err
		}
		diags = append(diags, Diagnostic{
			Parameter: ParamInitLevel,
			Value:     l,
			Message:   "initial level estimated by minimizing the sum of squared errors",
		})
	}
	if !alpha.IsSet() {
		diags = append(diags, Diagnostic{
			Parameter: ParamAlpha,
			Value:     a,
			Message:   "smoothing parameter estimated by minimizing the sum of squared errors",
		})
	}

	m.alpha, m.initLevel, m.fitted = Fixed(a), Fixed(l), true
	return diags, nil
}

// searchAlpha minimizes the SSE over alpha ∈ [0,1] with the level fixed.
func (m *SimpleExpSmoothing) searchAlpha(level float64, s optimize.Settings) (float64, error) {
	res, err := optimize.Bounded(func(a float64) float64 {
		return sse(m.y, a, level)
	}, 0, 1, 0, s)
	if err != nil {
		return 0, fmt.Errorf("%w: alpha search: %w", ErrFitFailure, err)
	}
	return core.Clamp(res.X[0], 0, 1), nil
}

// searchJoint minimizes the SSE over the initial level, and over alpha too
// when the caller did not fix it.
func (m *SimpleExpSmoothing) searchJoint(alpha Param, guess float64, s optimize.Settings) (float64, float64, error) {
	if a, ok := alpha.Value(); ok {
		res, err := optimize.LBFGSB(optimize.Problem{
			Func:  func(x []float64) float64 { return sse(m.y, a, x[0]) },
			Lower: []float64{math.Inf(-1)},
			Upper: []float64{math.Inf(1)},
		}, []float64{guess}, s)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: level search: %w", ErrFitFailure, err)
		}
		return a, res.X[0], nil
	}

	res, err := optimize.LBFGSB(optimize.Problem{
		Func:  func(x []float64) float64 { return sse(m.y, x[0], x[1]) },
		Lower: []float64{0, math.Inf(-1)},
		Upper: []float64{1, math.Inf(1)},
	}, []float64{0, guess}, s)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: joint search: %w", ErrFitFailure, err)
	}
	a, l := polishOnFaces(m.y, core.Clamp(res.X[0], 0, 1), res.X[1])
	return a, l, nil
}

// polishOnFaces compares the local joint optimum with the best point on each
// alpha bound, where the optimal level has a closed form: the mean of y for
// alpha=0 and y[0] for alpha=1. The local search can stop on a saddle of the
// box; the lowest of the three points wins.
func polishOnFaces(y []float64, a, l float64) (float64, float64) {
	best := sse(y, a, l)
	for _, c := range [][2]float64{{0, stat.Mean(y, nil)}, {1, y[0]}} {
		if v := sse(y, c[0], c[1]); v < best {
			a, l, best = c[0], c[1], v
		}
	}
	return a, l
}
