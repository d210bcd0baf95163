// Package logger provides structured logging for mailforge with context
// extraction and optional Sentry integration.
//
// Loggers are plain *slog.Logger values. A LogHandlerDecorator injects
// attributes pulled from the context on every call, which is how failed
// dispatches carry their dispatch_id:
//
//	log := logger.New(logger.Config{Level: "info"}, logger.DispatchIDExtractor)
//	ctx := logger.WithDispatchID(context.Background(), "c0ffee")
//	log.ErrorContext(ctx, "failed to send email")
//	// {"level":"ERROR","msg":"failed to send email","dispatch_id":"c0ffee"}
//
// LOG_FORMAT selects the handler: json (default), text, or dev for colored
// output during local development.
//
// NewWithSentry additionally forwards warnings and errors to Sentry and falls
// back to stdout only when SENTRY_DSN is empty or initialization fails.
// NewNope returns a logger that discards everything and is the default for
// library components that were not given a logger.
package logger
