package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("REQUEST_TIMEOUT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg, "LoadConfig must not return nil")

	assert.Equal(t, cfg.ServerPort, "8080")
	assert.Equal(t, cfg.LogLevel, "info")
	assert.Equal(t, cfg.LogFormat, "json")
	assert.Equal(t, cfg.RequestTimeout, 60*time.Second)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("REQUEST_TIMEOUT", "15s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, cfg.ServerPort, "9090")
	assert.Equal(t, cfg.LogLevel, "debug")
	assert.Equal(t, cfg.LogFormat, "text")
	assert.Equal(t, cfg.RequestTimeout, 15*time.Second)
}
