package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	logFile    string
	envFile    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	edit := &editOptions{}

	cmd := &cobra.Command{
		Use:           "cssplay",
		Short:         "cssplay is a terminal playground for CSS gradients, borders and shadows",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, flags, edit)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to configuration file (default $XDG_CONFIG_HOME/cssplay/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Environment file loaded before the configuration")

	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newGradientCmd(flags))
	for _, editor := range effectEditors {
		cmd.AddCommand(newEffectCmd(flags, editor))
	}
	cmd.AddCommand(newPresetsCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
