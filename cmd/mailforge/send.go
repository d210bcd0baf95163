package main

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailforge/pkg/mailer"
	"github.com/dmitrymomot/mailforge/pkg/mailer/noop"
	"github.com/dmitrymomot/mailforge/pkg/mailer/resend"
)

// dryRunCredential satisfies the gateway credential check for the noop transport.
const dryRunCredential = "dry-run"

type sendOptions struct {
	file     string
	template string
	subject  string
	from     string
	params   []string
	to       []string
	tags     []string
	dryRun   bool
}

func newSendCommand(catalog *mailer.Catalog, root *rootOptions) *cobra.Command {
	opts := &sendOptions{}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Render a template and send it through the configured provider",
		Long: "Render a template and send it once through Resend.\n" +
			"The email is described by a YAML job file and/or flags; flags win.\n" +
			"Failed sends are not retried.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(root)
			if err != nil {
				return err
			}

			params, err := opts.sendParams()
			if err != nil {
				return err
			}

			var (
				transport  mailer.Transport
				credential string
			)
			if opts.dryRun {
				transport, credential = noop.New(a.log), dryRunCredential
			} else {
				rt, err := resend.New(a.cfg.Resend)
				if err != nil {
					return err
				}
				transport, credential = rt, a.cfg.Resend.APIKey
			}

			gateway := mailer.NewGateway(transport, credential, mailer.WithLogger(a.log))
			result, err := mailer.New(catalog, gateway, a.cfg.Mailer).Send(cmd.Context(), params)
			if errors.Is(err, mailer.ErrMissingCredential) {
				return fmt.Errorf("%w: set RESEND_API_KEY (get one at https://resend.com/api-keys)", err)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Email sent successfully. ID: %s\n", result.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.file, "file", "", "YAML job file describing the email")
	f.StringVarP(&opts.template, "template", "t", "", "template kind")
	f.StringArrayVarP(&opts.params, "param", "p", nil, "template parameter as name=value (repeatable)")
	f.StringSliceVar(&opts.to, "to", nil, "recipient address (repeatable)")
	f.StringVar(&opts.from, "from", "", "sender address (default MAILER_FROM)")
	f.StringVar(&opts.subject, "subject", "", "subject (default derived from the template)")
	f.StringArrayVar(&opts.tags, "tag", nil, "tag as name=value (repeatable)")
	f.BoolVar(&opts.dryRun, "dry-run", false, "render and validate without contacting the provider")

	return cmd
}

// sendParams merges the job file with flag overrides.
func (o *sendOptions) sendParams() (mailer.SendParams, error) {
	var job sendJob
	if o.file != "" {
		var err error
		if job, err = readJob(o.file); err != nil {
			return mailer.SendParams{}, err
		}
	}

	params := job.sendParams()
	if o.template != "" {
		params.Template = o.template
	}
	if params.Template == "" {
		return mailer.SendParams{}, errors.New("template kind is required (--template or job file)")
	}

	overrides, err := parseKeyValues(o.params)
	if err != nil {
		return mailer.SendParams{}, err
	}
	if len(overrides) > 0 {
		merged := make(mailer.Params, len(params.Params)+len(overrides))
		maps.Copy(merged, params.Params)
		maps.Copy(merged, overrides)
		params.Params = merged
	}

	if len(o.to) > 0 {
		params.To = o.to
	}
	if o.from != "" {
		params.From = o.from
	}
	if o.subject != "" {
		params.Subject = o.subject
	}
	for _, tag := range o.tags {
		name, value, ok := strings.Cut(tag, "=")
		if !ok {
			return mailer.SendParams{}, fmt.Errorf("invalid tag %q, want name=value", tag)
		}
		params.Tags = append(params.Tags, mailer.Tag{Name: name, Value: value})
	}

	return params, nil
}
