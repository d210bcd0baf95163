package resend

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/mailforge/pkg/mailer"
)

var _ mailer.Transport = (*Transport)(nil)

// Transport implements mailer.Transport using the Resend API.
type Transport struct {
	client *resend.Client
}

// New creates a new Resend transport.
// An empty API key is accepted here; mailer.Gateway rejects it before any call.
func New(cfg Config) (*Transport, error) {
	client := resend.NewClient(cfg.APIKey)

	if cfg.BaseURL != "" {
		base, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("resend: invalid base URL %q: %w", cfg.BaseURL, err)
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		client.BaseURL = base
	}

	return &Transport{client: client}, nil
}

// Send implements mailer.Transport. It makes exactly one API call.
func (t *Transport) Send(ctx context.Context, env mailer.Envelope, doc mailer.Document) (string, error) {
	html, err := doc.HTML(ctx)
	if err != nil {
		return "", err
	}

	req := &resend.SendEmailRequest{
		From:    env.From,
		To:      env.To,
		Subject: env.Subject,
		Html:    html,
		Text:    doc.Text(),
		ReplyTo: env.ReplyTo,
		Cc:      env.CC,
		Bcc:     env.BCC,
	}

	if len(env.Tags) > 0 {
		req.Tags = convertTags(env.Tags)
	}

	sent, err := t.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("resend: failed to send email: %w", err)
	}

	return sent.Id, nil
}

func convertTags(tags []mailer.Tag) []resend.Tag {
	result := make([]resend.Tag, len(tags))
	for i, tag := range tags {
		result[i] = resend.Tag{
			Name:  tag.Name,
			Value: tag.Value,
		}
	}
	return result
}
