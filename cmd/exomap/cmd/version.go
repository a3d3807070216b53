package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stellarview/exomap/cmd/exomap/app"
)

// newVersionCmd builds the version command.
func newVersionCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("exomap %s (commit %s, built %s)\n", a.Version(), a.Commit(), a.Date())
		},
	}
}
