// Package config loads mailforge process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/mailforge/internal/preview"
	"github.com/dmitrymomot/mailforge/pkg/logger"
	"github.com/dmitrymomot/mailforge/pkg/mailer"
	"github.com/dmitrymomot/mailforge/pkg/mailer/resend"
)

// DefaultEnvFile is loaded when present. Values already set in the process
// environment take precedence.
const DefaultEnvFile = ".env"

// Config is the complete process configuration, read once at startup.
type Config struct {
	Resend  resend.Config
	Mailer  mailer.Config
	Log     logger.Config
	Sentry  logger.SentryConfig
	Preview preview.Config
}

// Load reads the optional env files (DefaultEnvFile when none are given)
// and parses the environment into Config.
// A missing provider credential is not an error here; the dispatch gateway
// reports it before the first send.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}

	return cfg, nil
}
