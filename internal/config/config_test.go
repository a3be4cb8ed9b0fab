package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"GOCIVIL_ENV", "GOCIVIL_LOG_LEVEL", "GOCIVIL_ADDR", "PORT", "GOCIVIL_CONCRETE", "GOCIVIL_RATE_BURST"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "K-250", cfg.ConcreteGrade)
	assert.Equal(t, 10, cfg.Server.RateBurst)
	assert.Positive(t, cfg.Batch.Workers)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GOCIVIL_ENV", "production")
	t.Setenv("GOCIVIL_ADDR", "")
	t.Setenv("PORT", "9000")
	t.Setenv("GOCIVIL_LOG_LEVEL", "")
	t.Setenv("GOCIVIL_RATE_LIMIT", "2.5")
	t.Setenv("GOCIVIL_BATCH_WORKERS", "not-a-number")

	cfg := Load()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 2.5, cfg.Server.RateLimit)
	assert.Positive(t, cfg.Batch.Workers)
}
