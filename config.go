package goses

import "github.com/evdnx/goses/config"

// -----------------------------------------------------------------------------
// Configuration re-exports
// -----------------------------------------------------------------------------
type (
	SmoothingConfig = config.SmoothingConfig
	FitPolicy       = config.FitPolicy
)

const (
	FitPolicyJoint     = config.FitPolicyJoint
	FitPolicyHeuristic = config.FitPolicyHeuristic

	DefaultMaxIterations   = config.DefaultMaxIterations
	DefaultTolerance       = config.DefaultTolerance
	DefaultHeuristicWindow = config.DefaultHeuristicWindow
	DefaultHorizon         = config.DefaultHorizon
)

// DefaultConfig returns a sensible set of defaults for every model.
func DefaultConfig() SmoothingConfig {
	return config.DefaultConfig()
}
