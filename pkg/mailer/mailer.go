package mailer

import (
	"context"
)

// Mailer combines the template catalog with a dispatch gateway.
type Mailer struct {
	catalog *Catalog
	gateway *Gateway
	config  Config
}

// New creates a new Mailer.
func New(catalog *Catalog, gateway *Gateway, cfg Config) *Mailer {
	return &Mailer{
		catalog: catalog,
		gateway: gateway,
		config:  cfg,
	}
}

// SendParams contains parameters for sending a templated email.
type SendParams struct {
	Template string // Template kind (e.g., "token_launch")
	Params   Params // Template parameters; omitted ones use defaults

	To      []string // Recipients (at least one required)
	Subject string   // Override template subject
	From    string   // Override default sender
	ReplyTo string   // Reply-to address
	CC      []string // Carbon copy
	BCC     []string // Blind carbon copy
	Tags    []Tag    // Classification tags
}

// Render renders a template without sending it.
func (m *Mailer) Render(kind string, params Params) (Document, error) {
	return m.catalog.Render(kind, params)
}

// Send renders a template and dispatches it.
// Subject resolution: params.Subject > template subject > config fallback.
func (m *Mailer) Send(ctx context.Context, params SendParams) (DeliveryResult, error) {
	doc, err := m.catalog.Render(params.Template, params.Params)
	if err != nil {
		return DeliveryResult{}, err
	}

	subject := params.Subject
	if subject == "" {
		subject, err = m.catalog.Subject(params.Template, params.Params)
		if err != nil {
			return DeliveryResult{}, err
		}
	}
	if subject == "" {
		subject = m.config.FallbackSubject
	}

	from := params.From
	if from == "" {
		from = m.config.DefaultFrom
	}

	env := Envelope{
		To:      params.To,
		From:    from,
		Subject: subject,
		ReplyTo: params.ReplyTo,
		CC:      params.CC,
		BCC:     params.BCC,
		Tags:    params.Tags,
	}

	return m.gateway.Send(ctx, env, doc)
}
