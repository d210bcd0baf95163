package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel is the lowest level stored as a Sentry log entry.
	MinLevel slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"WARN"`
}

// NewWithSentry creates a logger writing to stdout and, when a DSN is set,
// to Sentry. Error records become Sentry issues, so every failed dispatch
// is reported there with its dispatch_id.
// Without a DSN, or if the SDK fails to start, it behaves like New.
func NewWithSentry(cfg Config, scfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	var stdout slog.Handler = newHandler(os.Stdout, cfg)

	handler, err := sentryHandler(scfg)
	if err != nil {
		slog.New(stdout).Error("failed to initialize Sentry", slog.String("error", err.Error()))
	}
	if handler != nil {
		stdout = newMultiHandler(stdout, handler)
	}

	return slog.New(NewLogHandlerDecorator(stdout, extractors...))
}

// sentryHandler initializes the Sentry SDK. It returns a nil handler when
// Sentry is not configured.
func sentryHandler(scfg SentryConfig) (slog.Handler, error) {
	if scfg.DSN == "" {
		return nil, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         scfg.DSN,
		Environment: scfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		return nil, err
	}

	logLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if scfg.MinLevel >= slog.LevelError {
		logLevels = logLevels[1:]
	}

	return sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevels,
	}.NewSentryHandler(context.Background()), nil
}
