// Package cmd defines the exomap command tree.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stellarview/exomap/cmd/exomap/app"
	"github.com/stellarview/exomap/internal/cmd/output"
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd(a *app.App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "exomap",
		Short: "Transform NASA Exoplanet Archive extracts into visualization datasets",
		Long: `exomap converts a raw NASA Exoplanet Archive "Planetary Systems" CSV
extract into a cleaned, classified, and enriched JSON dataset plus a
statistics report.

The transformation is a four-stage pipeline: select the canonical
parameter set per planet, normalize and classify each record, merge
curated narrative content, and validate the final dataset.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			_, err := output.ParseFormat(a.Config().Output)
			return err
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.Config().Verbose, "verbose", "v", a.Config().Verbose, "verbose output (debug logging)")
	flags.BoolVarP(&a.Config().Quiet, "quiet", "q", a.Config().Quiet, "quiet output (warnings only)")
	flags.StringVarP(&a.Config().Output, "output", "o", a.Config().Output, "output format: table, json, yaml")
	flags.StringVar(&a.Config().LogLevel, "log-level", a.Config().LogLevel, "log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))

	return rootCmd
}
