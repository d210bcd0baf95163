package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailforge/pkg/mailer"
)

func newRenderCommand(catalog *mailer.Catalog) *cobra.Command {
	var (
		params []string
		format string
	)

	cmd := &cobra.Command{
		Use:   "render KIND",
		Short: "Render a template to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseKeyValues(params)
			if err != nil {
				return err
			}

			doc, err := catalog.Render(args[0], p)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "html":
				return doc.Component().Render(cmd.Context(), out)
			case "text":
				_, err := io.WriteString(out, doc.Text())
				return err
			default:
				return fmt.Errorf("unsupported format %q (want html or text)", format)
			}
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "template parameter as name=value (repeatable)")
	cmd.Flags().StringVarP(&format, "format", "f", "html", "output format: html or text")

	return cmd
}

// parseKeyValues converts name=value pairs to parameters.
func parseKeyValues(pairs []string) (mailer.Params, error) {
	params := make(mailer.Params, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid parameter %q, want name=value", pair)
		}
		params[strings.TrimSpace(name)] = value
	}
	return params, nil
}
