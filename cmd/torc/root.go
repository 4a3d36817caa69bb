package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var noConfigFlag bool
	var logLevel string
	var logFormat string

	ctx := newCommandContext(&configFlag, &noConfigFlag, &logLevel, &logFormat)

	rootCmd := &cobra.Command{
		Use:           "torc",
		Short:         "Torrent tooling with profile-aware configuration",
		Long: "torc resolves its settings from the command line, an INI-style\n" +
			"configuration file, named profiles, and built-in defaults, in that\n" +
			"order of precedence.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&noConfigFlag, "noconfig", false, "Ignore the configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format: console or json")

	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
