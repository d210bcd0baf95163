// Command mailforge renders, previews and sends transactional email templates.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailforge/internal/config"
	"github.com/dmitrymomot/mailforge/pkg/emails"
	"github.com/dmitrymomot/mailforge/pkg/logger"
	"github.com/dmitrymomot/mailforge/pkg/mailer"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCommand(emails.Catalog()).ExecuteContext(ctx)
	cancel()
	// No-op unless Sentry was initialized.
	sentry.Flush(2 * time.Second)

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	envFiles []string
}

func newRootCommand(catalog *mailer.Catalog) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "mailforge",
		Short:         "Render and send transactional email templates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "env file(s) to load (default .env)")

	root.AddCommand(
		newTemplatesCommand(catalog),
		newRenderCommand(catalog),
		newSendCommand(catalog, opts),
		newPreviewCommand(catalog, opts),
	)

	return root
}

// app holds the configuration-dependent collaborators shared by commands.
type app struct {
	log *slog.Logger
	cfg config.Config
}

func loadApp(opts *rootOptions) (*app, error) {
	cfg, err := config.Load(opts.envFiles...)
	if err != nil {
		return nil, err
	}
	log := logger.NewWithSentry(cfg.Log, cfg.Sentry, logger.DispatchIDExtractor)
	return &app{cfg: cfg, log: log}, nil
}
