package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process-level settings for the webhook job. Everything is
// optional: the runner-supplied execution context can carry the base URL, and
// the invoker has sensible defaults for the rest.
type Config struct {
	// BaseURL is the address fallback when no address parameter is given.
	BaseURL string `env:"WEBHOOK_BASE_URL"`
	// UserAgent overrides the default User-Agent header.
	UserAgent string `env:"WEBHOOK_USER_AGENT"`
	// Timeout is the per-request HTTP client timeout.
	Timeout time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"30s"`
	// RetryDelay is the fixed wait before the single rate-limit retry.
	RetryDelay time.Duration `env:"WEBHOOK_RETRY_DELAY" envDefault:"5s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load parses the process environment into cfg. When envFiles are given they
// are loaded first and must exist; otherwise a default .env in the working
// directory is loaded when present.
func Load(cfg *Config, envFiles ...string) error {
	if cfg == nil {
		return ErrNilPointer
	}
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	} else {
		// The default .env file is optional.
		_ = godotenv.Load()
	}
	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Configuration errors
// should prevent startup rather than surface mid-invocation.
func MustLoad(cfg *Config, envFiles ...string) {
	if err := Load(cfg, envFiles...); err != nil {
		panic(fmt.Sprintf("failed to load webhook configuration: %v", err))
	}
}
