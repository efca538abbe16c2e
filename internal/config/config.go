// Package config provides configuration management for the Match Point engine.
package config

import "time"

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Engine   EngineConfig   `mapstructure:"engine" validate:"required"`
	Momentum MomentumConfig `mapstructure:"momentum" validate:"required"`
	Session  SessionConfig  `mapstructure:"session" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// EngineConfig represents probability-engine tunables
type EngineConfig struct {
	BlendingWeightLive        float64 `mapstructure:"blending_weight_live" validate:"gte=0,lte=1"`
	GenericPriorServePointWin float64 `mapstructure:"generic_prior_serve_point_win" validate:"gte=0,lte=1"`
	GamePointCap              int     `mapstructure:"game_point_cap" validate:"required,gt=0"`
	SetGameCap                int     `mapstructure:"set_game_cap" validate:"required,gt=0"`
	TiebreakPointCap          int     `mapstructure:"tiebreak_point_cap" validate:"required,gt=0"`
	GameScoreTrials           int     `mapstructure:"game_score_trials" validate:"required,gt=0"`
	SetScoreTrials            int     `mapstructure:"set_score_trials" validate:"required,gt=0"`
	ScoreReportThreshold      float64 `mapstructure:"score_report_threshold" validate:"gte=0,lt=1"`
	Seed                      int64   `mapstructure:"seed"`
}

// MomentumConfig represents momentum-tracker tunables
type MomentumConfig struct {
	WindowSize int `mapstructure:"window_size" validate:"required,gt=0"`
	// Alpha is the EWMA decay parameter. The reference default of 3.4 makes
	// the weights alternate in sign; conventional values live in [0,1].
	Alpha          float64 `mapstructure:"alpha"`
	Smoothing      int     `mapstructure:"smoothing" validate:"gte=0"`
	SpikeThreshold float64 `mapstructure:"spike_threshold" validate:"gt=0,lte=1"`
}

// SessionConfig represents the caller-side session layer settings
type SessionConfig struct {
	CacheTTLSeconds    int     `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
	RecomputePerSecond float64 `mapstructure:"recompute_per_second" validate:"required,gt=0"`
	RecomputeBurst     int     `mapstructure:"recompute_burst" validate:"required,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// CacheTTL returns the session cache TTL as a duration
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Session.CacheTTLSeconds) * time.Second
}
