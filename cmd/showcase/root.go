package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	catalogue string
	theme     string
	logFile   string
	logLevel  string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "showcase",
		Short:         "Showcase browses a terminal design system",
		Long:          `Showcase renders a catalogue of design-system components in an interactive page with theme switching, dismissible notices and a collapsible accordion.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowcase(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.catalogue, "catalogue", "", "Catalogue file (.yaml, .yml or .toml); defaults to the embedded catalogue")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "light", "Initial theme (light or dark)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append logs to this file while the page is open")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
