package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 100, cfg.BatchLimit)
	assert.Equal(t, 100, cfg.GenerateMaxCount)
	assert.Empty(t, cfg.Redis.URL)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("SAUDIID_ADDR", ":9999")
	t.Setenv("SAUDIID_LOG_LEVEL", "debug")
	t.Setenv("SAUDIID_BATCH_LIMIT", "25")
	t.Setenv("SAUDIID_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("SAUDIID_REDIS_URL", "redis://localhost:6379/0")

	cfg := FromEnv()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 25, cfg.BatchLimit)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
}

func TestFromEnv_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("SAUDIID_BATCH_LIMIT", "not-a-number")
	t.Setenv("SAUDIID_GENERATE_MAX_COUNT", "-5")
	t.Setenv("SAUDIID_SHUTDOWN_TIMEOUT", "eventually")

	cfg := FromEnv()

	assert.Equal(t, 100, cfg.BatchLimit)
	assert.Equal(t, 100, cfg.GenerateMaxCount)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}
