package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxIterations != DefaultMaxIterations {
		t.Fatalf("expected default MaxIterations=%d, got %d", DefaultMaxIterations, cfg.MaxIterations)
	}
	if cfg.FitPolicy != FitPolicyJoint {
		t.Fatalf("expected joint fit policy by default, got %q", cfg.FitPolicy)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name    string
		modify  func(*SmoothingConfig)
		wantErr bool
	}{
		{
			name:    "zero iterations",
			modify:  func(c *SmoothingConfig) { c.MaxIterations = 0 },
			wantErr: true,
		},
		{
			name:    "absurd iterations",
			modify:  func(c *SmoothingConfig) { c.MaxIterations = 10_000_000 },
			wantErr: true,
		},
		{
			name:    "negative tolerance",
			modify:  func(c *SmoothingConfig) { c.Tolerance = -1e-6 },
			wantErr: true,
		},
		{
			name:    "tolerance of one",
			modify:  func(c *SmoothingConfig) { c.Tolerance = 1 },
			wantErr: true,
		},
		{
			name:    "unknown policy",
			modify:  func(c *SmoothingConfig) { c.FitPolicy = "greedy" },
			wantErr: true,
		},
		{
			name:    "empty heuristic window",
			modify:  func(c *SmoothingConfig) { c.HeuristicWindow = 0 },
			wantErr: true,
		},
		{
			name:    "zero horizon",
			modify:  func(c *SmoothingConfig) { c.DefaultHorizon = 0 },
			wantErr: true,
		},
		{
			name: "valid heuristic policy",
			modify: func(c *SmoothingConfig) {
				c.FitPolicy = FitPolicyHeuristic
				c.HeuristicWindow = 3
			},
			wantErr: false,
		},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.modify(&cfg)
		err := cfg.Validate()
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("max_iterations", 50)
	v.Set("tolerance", 1e-6)
	v.Set("fit_policy", "HEURISTIC")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.MaxIterations)
	assert.InDelta(t, 1e-6, cfg.Tolerance, 1e-18)
	assert.Equal(t, FitPolicyHeuristic, cfg.FitPolicy)
	assert.Equal(t, DefaultHorizon, cfg.DefaultHorizon)
}

func TestLoad_Invalid(t *testing.T) {
	v := viper.New()
	v.Set("tolerance", 2.0)
	_, err := Load(v)
	assert.Error(t, err)
}

func TestNewViper_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ses.yaml")
	body := "max_iterations: 250\nfit_policy: heuristic\nheuristic_window: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	v, err := NewViper(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.MaxIterations)
	assert.Equal(t, FitPolicyHeuristic, cfg.FitPolicy)
	assert.Equal(t, 4, cfg.HeuristicWindow)
}

func TestNewViper_MissingExplicitFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestNewViper_Env(t *testing.T) {
	t.Setenv("SES_MAX_ITERATIONS", "77")
	v, err := NewViper("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 77, cfg.MaxIterations)
}
