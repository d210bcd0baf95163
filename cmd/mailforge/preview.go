package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailforge/internal/preview"
	"github.com/dmitrymomot/mailforge/pkg/mailer"
)

func newPreviewCommand(catalog *mailer.Catalog, opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve rendered templates over HTTP until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}

			cfg := a.cfg.Preview
			if addr != "" {
				cfg.Addr = addr
			}

			return preview.New(catalog, cfg, preview.WithLogger(a.log)).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from PREVIEW_ADDR)")

	return cmd
}
