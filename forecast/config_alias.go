package forecast

import "github.com/evdnx/goses/config"

// Re-export config defaults and types so model code can stay lean.
type (
	SmoothingConfig = config.SmoothingConfig
	FitPolicy       = config.FitPolicy
)

const (
	FitPolicyJoint     = config.FitPolicyJoint
	FitPolicyHeuristic = config.FitPolicyHeuristic
)

func DefaultConfig() SmoothingConfig {
	return config.DefaultConfig()
}
