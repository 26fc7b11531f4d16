package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webhookjob/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	var cfg config.Config
	require.NoError(t, config.Load(&cfg))

	assert.Empty(t, cfg.BaseURL)
	assert.Empty(t, cfg.UserAgent)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 5*time.Second, cfg.RetryDelay)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("WEBHOOK_BASE_URL", "https://hooks.example.com")
	t.Setenv("WEBHOOK_USER_AGENT", "custom-agent/2.0")
	t.Setenv("WEBHOOK_TIMEOUT", "10s")
	t.Setenv("WEBHOOK_RETRY_DELAY", "250ms")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")

	var cfg config.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "https://hooks.example.com", cfg.BaseURL)
	assert.Equal(t, "custom-agent/2.0", cfg.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_NilPointer(t *testing.T) {
	err := config.Load(nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	var cfg config.Config
	err := config.Load(&cfg, "testdata/does_not_exist.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("WEBHOOK_TIMEOUT", "not-a-duration")

	var cfg config.Config
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	assert.Panics(t, func() {
		var cfg config.Config
		config.MustLoad(&cfg, "testdata/does_not_exist.env")
	})
}
