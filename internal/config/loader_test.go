package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Kafka.Enabled)
	assert.False(t, cfg.Redis.Enabled)
	assert.NotEmpty(t, cfg.Detection.Signatures)
	assert.Equal(t, 0.50, cfg.Valuation.BaseRates["article"].Mid)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CRAWLVALUE_LOG_LEVEL", "debug")
	t.Setenv("CRAWLVALUE_REDIS_ADDR", "redis.internal:6379")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: warn
  format: console
portfolio:
  high_value_threshold: 25.0
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 25.0, cfg.Portfolio.HighValueThreshold)

	// Untouched sections keep their defaults.
	assert.NotEmpty(t, cfg.Detection.Signatures)
	assert.Equal(t, 7, cfg.Portfolio.TrailingWindowDays)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)
}

func TestLoad_InvalidConfigIsRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: loud
`), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

//Personal.AI order the ending
