// Package optimize holds the bound-constrained minimizers used to estimate
// smoothing parameters: a univariate Brent search on a closed interval and a
// projected limited-memory BFGS method for small box-constrained problems.
package optimize

import (
	"errors"
	"fmt"
	"math"

	"github.com/evdnx/goses/config"
)

var (
	ErrNotConverged   = errors.New("optimizer did not converge")
	ErrBadObjective   = errors.New("objective returned a non-finite value")
	ErrInvalidProblem = errors.New("invalid optimization problem")
)

// Settings bounds the work a minimizer may do.
type Settings struct {
	MaxIterations int     // bound on solver steps
	Tolerance     float64 // convergence threshold
}

// DefaultSettings uses the optimizer defaults of config.DefaultConfig.
func DefaultSettings() Settings {
	return Settings{MaxIterations: config.DefaultMaxIterations, Tolerance: config.DefaultTolerance}
}

func (s Settings) validate() error {
	if s.MaxIterations < 1 {
		return fmt.Errorf("%w: MaxIterations must be at least 1, got %d", ErrInvalidProblem, s.MaxIterations)
	}
	if !(s.Tolerance > 0) || math.IsInf(s.Tolerance, 0) {
		return fmt.Errorf("%w: Tolerance must be positive, got %v", ErrInvalidProblem, s.Tolerance)
	}
	return nil
}

// Problem is a box-constrained minimization problem. Lower/Upper may hold
// ±Inf for unbounded coordinates. Func must also be defined slightly outside
// the box, since gradients are taken by central differences.
type Problem struct {
	Func  func(x []float64) float64
	Lower []float64
	Upper []float64
}

func (p Problem) validate(dim int) error {
	if p.Func == nil {
		return fmt.Errorf("%w: nil objective", ErrInvalidProblem)
	}
	if dim == 0 {
		return fmt.Errorf("%w: empty start point", ErrInvalidProblem)
	}
	if len(p.Lower) != dim || len(p.Upper) != dim {
		return fmt.Errorf("%w: bounds have length %d/%d, start point %d",
			ErrInvalidProblem, len(p.Lower), len(p.Upper), dim)
	}
	for i := range p.Lower {
		if math.IsNaN(p.Lower[i]) || math.IsNaN(p.Upper[i]) || p.Lower[i] > p.Upper[i] {
			return fmt.Errorf("%w: bad bounds [%v, %v] for coordinate %d",
				ErrInvalidProblem, p.Lower[i], p.Upper[i], i)
		}
	}
	return nil
}

// Result is the outcome of a minimization.
type Result struct {
	X           []float64
	F           float64
	Iterations  int
	Evaluations int
	Converged   bool
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func project(x, lower, upper []float64) {
	for i := range x {
		if x[i] < lower[i] {
			x[i] = lower[i]
		} else if x[i] > upper[i] {
			x[i] = upper[i]
		}
	}
}
