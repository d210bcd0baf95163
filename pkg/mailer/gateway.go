package mailer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mailforge/pkg/logger"
)

// Gateway validates a document and envelope pair and relays it to a single
// Transport. It is stateless between calls and safe for concurrent use.
type Gateway struct {
	transport  Transport
	logger     *slog.Logger
	credential string
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithLogger sets the logger used to report provider failures.
func WithLogger(l *slog.Logger) GatewayOption {
	return func(g *Gateway) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGateway creates a gateway for the given transport.
// credential is the provider secret; an empty value makes every Send fail
// with ErrMissingCredential before the transport is touched.
func NewGateway(transport Transport, credential string, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		transport:  transport,
		credential: credential,
		logger:     logger.NewNope(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Send performs one dispatch attempt.
//
// Configuration and envelope errors are returned before any provider call.
// A provider error is logged once and returned unchanged; it is never
// retried or reinterpreted.
func (g *Gateway) Send(ctx context.Context, env Envelope, doc Document) (DeliveryResult, error) {
	if strings.TrimSpace(g.credential) == "" {
		return DeliveryResult{}, ErrMissingCredential
	}
	if err := env.Validate(); err != nil {
		return DeliveryResult{}, err
	}

	ctx = logger.WithDispatchID(ctx, uuid.NewString())

	id, err := g.transport.Send(ctx, env, doc)
	if err != nil {
		g.logger.ErrorContext(ctx, "failed to send email",
			slog.String("template", doc.Kind()),
			slog.String("subject", env.Subject),
			slog.Int("recipients", len(env.To)+len(env.CC)+len(env.BCC)),
			slog.String("error", err.Error()),
		)
		return DeliveryResult{}, err
	}

	return DeliveryResult{ID: id}, nil
}
