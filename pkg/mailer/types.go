package mailer

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

// Tag is a provider classification tag attached to an email.
// Tags are data only: they never affect rendering or validation beyond
// their own well-formedness.
type Tag struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// Recipient formats a display name and address for the From, To, CC and BCC
// fields. Names are quoted and encoded as RFC 5322 requires; without a name
// the bare address is returned.
func Recipient(name, email string) string {
	if strings.TrimSpace(name) == "" {
		return email
	}
	return (&mail.Address{Name: name, Address: email}).String()
}

// Envelope carries delivery metadata, distinct from document content.
type Envelope struct {
	From    string   // Sender address (required)
	Subject string   // Subject line (required)
	ReplyTo string   // Reply-to address
	To      []string // Recipients (at least one required)
	CC      []string // Carbon copy recipients
	BCC     []string // Blind carbon copy recipients
	Tags    []Tag    // Classification tags, unique by name
}

// Validate checks the envelope preconditions for dispatch.
// Every failure matches ErrInvalidEnvelope and the specific cause.
// Duplicate tag names are rejected rather than deduplicated.
func (e Envelope) Validate() error {
	if len(e.To) == 0 {
		return errors.Join(ErrInvalidEnvelope, ErrNoRecipient)
	}
	for i, to := range e.To {
		if strings.TrimSpace(to) == "" {
			return errors.Join(ErrInvalidEnvelope, fmt.Errorf("%w: recipient #%d is blank", ErrNoRecipient, i+1))
		}
	}
	if strings.TrimSpace(e.From) == "" {
		return errors.Join(ErrInvalidEnvelope, ErrNoSender)
	}
	if strings.TrimSpace(e.Subject) == "" {
		return errors.Join(ErrInvalidEnvelope, ErrNoSubject)
	}

	seen := make(map[string]struct{}, len(e.Tags))
	for _, tag := range e.Tags {
		if strings.TrimSpace(tag.Name) == "" {
			return errors.Join(ErrInvalidEnvelope, ErrInvalidTag)
		}
		if _, ok := seen[tag.Name]; ok {
			return errors.Join(ErrInvalidEnvelope, fmt.Errorf("%w: %q", ErrDuplicateTag, tag.Name))
		}
		seen[tag.Name] = struct{}{}
	}

	return nil
}

// DeliveryResult is the outcome of a successful dispatch.
type DeliveryResult struct {
	ID string // Provider-assigned message identifier, unmodified
}
