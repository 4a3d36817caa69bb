package main

import (
	"github.com/spf13/cobra"

	"torc/internal/options"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Resolve and display the final configuration",
		Long: "show merges explicit command-line values, the configuration file,\n" +
			"profiles selected with --profile, and built-in defaults into the\n" +
			"final configuration and prints it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := ctx.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return renderResolved(cmd, resolved, ctx.schema, format)
		},
	}

	options.Bind(cmd.Flags(), ctx.schema)
	cmd.Flags().StringVar(&format, "format", "auto", "Output format: auto, table, plain, json, toml, yaml")
	return cmd
}
