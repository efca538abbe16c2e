// Package config provides configuration management for the Match Point engine.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads and parses the configuration from file and environment variables.
// Environment variable placeholders in the YAML file (${VAR_NAME}) are
// expanded before parsing.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	v := newViper()
	if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// LoadWithDefaults loads configuration with default values for optional
// fields. A missing config file is not an error: defaults plus environment
// variables apply.
func LoadWithDefaults(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	v := newViper()
	setDefaults(v)

	if data, err := os.ReadFile(configPath); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("MATCH_POINT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "match-point")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	// Reference engine parameters: 0.62 is the generic men's-tour prior for
	// serve-point-win; the live blend trusts observed stats at 0.70.
	v.SetDefault("engine.blending_weight_live", 0.70)
	v.SetDefault("engine.generic_prior_serve_point_win", 0.62)
	v.SetDefault("engine.game_point_cap", 10)
	v.SetDefault("engine.set_game_cap", 12)
	v.SetDefault("engine.tiebreak_point_cap", 20)
	v.SetDefault("engine.game_score_trials", 5000)
	v.SetDefault("engine.set_score_trials", 1000)
	v.SetDefault("engine.score_report_threshold", 0.001)

	v.SetDefault("momentum.window_size", 20)
	v.SetDefault("momentum.alpha", 3.4)
	v.SetDefault("momentum.smoothing", 1)
	v.SetDefault("momentum.spike_threshold", 0.15)

	v.SetDefault("session.cache_ttl_seconds", 30)
	v.SetDefault("session.recompute_per_second", 4)
	v.SetDefault("session.recompute_burst", 8)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("metrics.path", "/metrics")
}
