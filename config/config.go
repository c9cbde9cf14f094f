package config

import (
	"fmt"
	"math"
)

// -----------------------------------------------------------------------------
// Exported constants (magic numbers made visible)
// -----------------------------------------------------------------------------
const (
	DefaultMaxIterations   = 1000
	DefaultTolerance       = 1e-8
	DefaultHeuristicWindow = 10 // points used by the initial-level trend fit
	DefaultHorizon         = 5
)

// FitPolicy selects how an unset initial level is resolved during Fit.
type FitPolicy string

const (
	// FitPolicyJoint searches the initial level together with alpha.
	FitPolicyJoint FitPolicy = "joint"
	// FitPolicyHeuristic pins the initial level to the trend-intercept
	// estimate and only searches alpha.
	FitPolicyHeuristic FitPolicy = "heuristic"
)

// -----------------------------------------------------------------------------
// SmoothingConfig – central place for all tunable parameters
// -----------------------------------------------------------------------------
type SmoothingConfig struct {
	MaxIterations int       `mapstructure:"max_iterations"` // bound on solver steps
	Tolerance     float64   `mapstructure:"tolerance"`      // convergence threshold
	FitPolicy     FitPolicy `mapstructure:"fit_policy"`

	// HeuristicWindow is the number of leading observations the initial
	// level estimate is fitted on.
	HeuristicWindow int `mapstructure:"heuristic_window"`
	DefaultHorizon  int `mapstructure:"default_horizon"`
}

// DefaultConfig returns a sensible set of defaults for the smoothing models.
func DefaultConfig() SmoothingConfig {
	return SmoothingConfig{
		MaxIterations:   DefaultMaxIterations,
		Tolerance:       DefaultTolerance,
		FitPolicy:       FitPolicyJoint,
		HeuristicWindow: DefaultHeuristicWindow,
		DefaultHorizon:  DefaultHorizon,
	}
}

// -------------------------------------------------------------------
// Validate – checks that the configuration values are sensible.
// -------------------------------------------------------------------
func (c SmoothingConfig) Validate() error {
	// Upper‑bound sanity check – anything absurdly large is treated as a
	// mistake rather than a request for a very long search.
	const maxReasonable = 1_000_000

	if c.MaxIterations <= 0 {
		return fmt.Errorf("MaxIterations must be greater than 0, got %d", c.MaxIterations)
	}
	if c.MaxIterations > maxReasonable {
		return fmt.Errorf("MaxIterations is unreasonably large (%d); must be ≤ %d", c.MaxIterations, maxReasonable)
	}
	if math.IsNaN(c.Tolerance) || c.Tolerance <= 0 || c.Tolerance >= 1 {
		return fmt.Errorf("Tolerance must be in (0,1), got %v", c.Tolerance)
	}
	switch c.FitPolicy {
	case FitPolicyJoint, FitPolicyHeuristic:
	default:
		return fmt.Errorf("unknown FitPolicy %q", c.FitPolicy)
	}
	if c.HeuristicWindow < 1 {
		return fmt.Errorf("HeuristicWindow must be at least 1, got %d", c.HeuristicWindow)
	}
	if c.HeuristicWindow > maxReasonable {
		return fmt.Errorf("HeuristicWindow is unreasonably large (%d); must be ≤ %d", c.HeuristicWindow, maxReasonable)
	}
	if c.DefaultHorizon <= 0 {
		return fmt.Errorf("DefaultHorizon must be greater than 0, got %d", c.DefaultHorizon)
	}
	return nil
}
