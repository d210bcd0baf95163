package mailer

import "context"

// Transport defines the single capability a delivery provider must implement.
// It submits one message and returns the provider-assigned message ID.
type Transport interface {
	// Send delivers the document using the envelope metadata.
	// The envelope is already validated. Implementations make exactly one
	// provider call and must not retry.
	Send(ctx context.Context, env Envelope, doc Document) (string, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, env Envelope, doc Document) (string, error)

// Send implements Transport.
func (f TransportFunc) Send(ctx context.Context, env Envelope, doc Document) (string, error) {
	return f(ctx, env, doc)
}
