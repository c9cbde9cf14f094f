package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SES_TOLERANCE.
const EnvPrefix = "SES"

// NewViper returns a viper instance with the smoothing defaults registered and
// environment overrides enabled. When file is non-empty it is read as the
// config file; otherwise "sesforecast.{yaml,toml,json}" is looked up in the
// working directory and a missing file is not an error.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", file, err)
		}
		return v, nil
	}

	v.SetConfigName("sesforecast")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return v, nil
}

// Load decodes and validates a SmoothingConfig from v. Keys that were never
// set fall back to DefaultConfig.
func Load(v *viper.Viper) (SmoothingConfig, error) {
	setDefaults(v)

	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return SmoothingConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.FitPolicy = FitPolicy(strings.ToLower(string(cfg.FitPolicy)))
	if err := cfg.Validate(); err != nil {
		return SmoothingConfig{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("max_iterations", def.MaxIterations)
	v.SetDefault("tolerance", def.Tolerance)
	v.SetDefault("fit_policy", string(def.FitPolicy))
	v.SetDefault("heuristic_window", def.HeuristicWindow)
	v.SetDefault("default_horizon", def.DefaultHorizon)
}
