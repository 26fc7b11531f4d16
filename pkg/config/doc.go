// Package config loads webhook job settings from the process environment.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// optional .env files are loaded first, then the environment is parsed into
// the Config struct using field tags.
//
//	var cfg config.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// Sentinel errors (ErrParsingConfig, ErrLoadingEnvFile, ErrNilPointer) can
// be compared with errors.Is.
package config
