// Package commands wires the konto library into a cobra CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/konto-dev/konto/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "konto",
		Short:   "Personal finance bookkeeping",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAccountCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newBalanceCommand())
	rootCmd.AddCommand(newHistoryCommand())
	rootCmd.AddCommand(newSetBalanceCommand())
	rootCmd.AddCommand(newBanksCommand())

	return rootCmd
}
