package mailer

import "errors"

var (
	// ErrMissingCredential indicates the provider credential is not configured.
	// It is a fatal configuration error and is never retried.
	ErrMissingCredential = errors.New("mail provider credential is not configured")

	// ErrInvalidEnvelope wraps every envelope validation failure.
	ErrInvalidEnvelope = errors.New("invalid email envelope")

	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSender indicates no sender address was specified.
	ErrNoSender = errors.New("email must have a sender")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrInvalidTag indicates a tag without a name.
	ErrInvalidTag = errors.New("email tag must have a name")

	// ErrDuplicateTag indicates two tags share the same name.
	ErrDuplicateTag = errors.New("duplicate email tag name")

	// ErrUnknownTemplate indicates the template kind is not in the catalog.
	ErrUnknownTemplate = errors.New("unknown template kind")

	// ErrUnknownParameter indicates a parameter the template does not declare.
	ErrUnknownParameter = errors.New("unknown template parameter")

	// ErrDuplicateTemplate indicates a template kind registered twice.
	ErrDuplicateTemplate = errors.New("duplicate template kind")

	// ErrInvalidTemplate indicates a template definition without a kind or render function.
	ErrInvalidTemplate = errors.New("invalid template definition")

	// ErrRenderFailed indicates document output (HTML) could not be produced.
	ErrRenderFailed = errors.New("failed to render document")
)
