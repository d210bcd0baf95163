// Package noop provides a mailer.Transport that discards mail.
// Use it for dry runs and local development without a provider account.
package noop

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mailforge/pkg/logger"
	"github.com/dmitrymomot/mailforge/pkg/mailer"
)

var _ mailer.Transport = (*Transport)(nil)

// IDPrefix prefixes every synthetic message ID.
const IDPrefix = "noop_"

// Transport silently discards emails and returns synthetic message IDs.
type Transport struct {
	logger *slog.Logger
	sent   atomic.Int64
}

// New creates a no-op transport. A nil logger discards the debug output.
func New(log *slog.Logger) *Transport {
	if log == nil {
		log = logger.NewNope()
	}
	return &Transport{logger: log}
}

// Send implements mailer.Transport.
func (t *Transport) Send(ctx context.Context, env mailer.Envelope, doc mailer.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := IDPrefix + uuid.NewString()
	t.sent.Add(1)

	t.logger.DebugContext(ctx, "email discarded",
		slog.String("id", id),
		slog.String("template", doc.Kind()),
		slog.String("subject", env.Subject),
		slog.Any("to", env.To),
	)

	return id, nil
}

// Sent returns how many emails were discarded.
func (t *Transport) Sent() int64 {
	return t.sent.Load()
}
