package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"API_PORT", "SUBMIT_MODE", "MAX_SCHEDULE_DAYS", "MAX_BLOCK_HOURS", "JWT_SECRET"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SubmitModeDirect, cfg.SubmitMode)
	assert.Equal(t, 731, cfg.MaxScheduleDays)
	assert.Equal(t, 20*time.Hour, cfg.MaxBlockTime)
	assert.Empty(t, cfg.JWTSecret)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("SUBMIT_MODE", "Temporal")
	t.Setenv("MAX_SCHEDULE_DAYS", "90")
	t.Setenv("MAX_BLOCK_HOURS", "not-a-number")
	t.Setenv("READ_TIMEOUT", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, SubmitModeTemporal, cfg.SubmitMode)
	assert.Equal(t, 90, cfg.MaxScheduleDays)
	assert.Equal(t, 20*time.Hour, cfg.MaxBlockTime)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
}

func TestLoadConfig_UnknownSubmitModeFallsBack(t *testing.T) {
	t.Setenv("SUBMIT_MODE", "kafka")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, SubmitModeDirect, cfg.SubmitMode)
}
