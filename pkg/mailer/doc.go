// Package mailer renders transactional email templates and dispatches them
// through a delivery provider with a uniform error contract.
//
// # Architecture
//
// The package consists of four parts:
//
//   - Document: an immutable tree of content nodes plus a preview line
//   - Catalog: a static registry of Templates (default parameters + pure render function)
//   - Gateway: validates an Envelope and relays one send to a Transport
//   - Mailer: thin orchestration combining Catalog and Gateway
//
// # Rendering
//
// A Template maps resolved Params to a Document. Parameters the caller omits
// (or passes empty) are replaced by the template defaults; optional
// parameters without a default stay absent, and render functions add image
// nodes only for URLs that resolve:
//
//	catalog := mailer.MustCatalog(emails.TokenLaunchTemplate())
//	doc, err := catalog.Render("token_launch", mailer.Params{"name": "Jupiter"})
//
// Rendering is deterministic: identical input yields a structurally identical
// document. Document.HTML produces the email body through templ components
// with all text escaped; Document.Text produces the plain-text alternative.
//
// # Sending
//
// Gateway.Send performs exactly one provider call:
//
//	transport, err := resend.New(cfg)
//	if err != nil {
//		return err
//	}
//	gw := mailer.NewGateway(transport, cfg.APIKey, mailer.WithLogger(log))
//	result, err := gw.Send(ctx, mailer.Envelope{
//		To:      []string{"user@example.com"},
//		From:    "team@example.com",
//		Subject: doc.Preview(),
//		Tags:    []mailer.Tag{{Name: "category", Value: "token_launch"}},
//	}, doc)
//
// There is no queueing and no retry. Retry policy, if needed, belongs to the caller.
//
// # Custom Providers
//
// Implement Transport to add support for other email providers:
//
//	type MyTransport struct{}
//
//	func (t *MyTransport) Send(ctx context.Context, env mailer.Envelope, doc mailer.Document) (string, error) {
//		// Send email using your provider's API
//		return "message-id", nil
//	}
//
// # Errors
//
//   - ErrMissingCredential: provider credential not configured (checked first)
//   - ErrInvalidEnvelope: wraps ErrNoRecipient, ErrNoSender, ErrNoSubject,
//     ErrInvalidTag and ErrDuplicateTag
//   - ErrUnknownTemplate, ErrUnknownParameter: catalog lookup failures
//   - ErrRenderFailed: HTML output could not be written
//
// Provider errors are logged once by the Gateway and returned unchanged.
package mailer
