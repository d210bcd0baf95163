package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailforge/pkg/mailer"
)

func newTemplatesCommand(catalog *mailer.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List template kinds with their parameters and defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, kind := range catalog.Kinds() {
				tmpl, err := catalog.Lookup(kind)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", kind, tmpl.Description)
				for _, field := range tmpl.Fields() {
					def, ok := tmpl.Defaults[field]
					if !ok {
						def = "(optional)"
					}
					fmt.Fprintf(w, "  %s\t%s\n", field, def)
				}
			}
			return w.Flush()
		},
	}
}
