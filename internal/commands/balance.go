package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/konto-dev/konto/date"
)

func newBalanceCommand() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "balance <account>",
		Short: "Show an account balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			cfg, err := loadConfig(dir)
			if err != nil {
				return err
			}
			l, err := loadLedger(dir, cfg)
			if err != nil {
				return err
			}

			balance, err := l.Balance(args[0])
			if asOf != "" {
				cutoff, perr := date.Parse(asOf)
				if perr != nil {
					return perr
				}
				balance, err = l.BalanceAsOf(args[0], cutoff)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), balance.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "only count transactions through this date (YYYY-MM-DD)")

	return cmd
}
