package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/konto-dev/konto/importer"
)

func newBanksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List supported bank CSV formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, id := range importer.BankIDs() {
				cfg, err := importer.Lookup(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, cfg.Name)
			}
			return nil
		},
	}
}
