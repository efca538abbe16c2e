package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "match-point", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.InDelta(t, 0.70, cfg.Engine.BlendingWeightLive, 1e-12)
	assert.InDelta(t, 0.62, cfg.Engine.GenericPriorServePointWin, 1e-12)
	assert.Equal(t, 10, cfg.Engine.GamePointCap)
	assert.Equal(t, 12, cfg.Engine.SetGameCap)
	assert.Equal(t, 20, cfg.Engine.TiebreakPointCap)
	assert.Equal(t, 5000, cfg.Engine.GameScoreTrials)
	assert.Equal(t, 1000, cfg.Engine.SetScoreTrials)
	assert.InDelta(t, 0.001, cfg.Engine.ScoreReportThreshold, 1e-12)

	assert.Equal(t, 20, cfg.Momentum.WindowSize)
	assert.InDelta(t, 3.4, cfg.Momentum.Alpha, 1e-12)
	assert.Equal(t, 1, cfg.Momentum.Smoothing)
	assert.InDelta(t, 0.15, cfg.Momentum.SpikeThreshold, 1e-12)

	assert.Equal(t, 30, cfg.Session.CacheTTLSeconds)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL())

	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9090, cfg.Metrics.Port)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	// Defaults must pass validation as-is.
	require.NoError(t, Validate(cfg))
}

func TestLoadWithDefaultsFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
app:
  environment: production
  log_level: warn
engine:
  blending_weight_live: 0.8
momentum:
  window_size: 30
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadWithDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.InDelta(t, 0.8, cfg.Engine.BlendingWeightLive, 1e-12)
	assert.Equal(t, 30, cfg.Momentum.WindowSize)

	// Untouched keys keep their defaults.
	assert.Equal(t, 10, cfg.Engine.GamePointCap)

	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadExpandsEnvPlaceholders(t *testing.T) {
	t.Setenv("TEST_MP_LOG_LEVEL", "debug")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
app:
  log_level: ${TEST_MP_LOG_LEVEL}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadWithDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestValidateRejectsBadEnvironment(t *testing.T) {
	cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	cfg.App.Environment = "sandbox"

	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "development, staging, production")
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	cfg.App.LogLevel = "verbose"

	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "debug, info, warn, error")
}

func TestValidateCrossField(t *testing.T) {
	base := func() *Config {
		cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.Engine.GamePointCap = 3
	assert.Error(t, Validate(cfg))

	cfg = base()
	cfg.Engine.SetGameCap = 6
	assert.Error(t, Validate(cfg))

	cfg = base()
	cfg.Engine.TiebreakPointCap = 5
	assert.Error(t, Validate(cfg))

	cfg = base()
	cfg.Momentum.Smoothing = 25
	assert.Error(t, Validate(cfg))
}
