package logger

import "log/slog"

// NewNope returns a logger that discards all output.
// Library components default to it when no logger is configured.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
