package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/konto-dev/konto/date"
)

func newHistoryCommand() *cobra.Command {
	var from string
	var to string

	cmd := &cobra.Command{
		Use:   "history <account>",
		Short: "Show day-by-day balances for an account",
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

			var start, end date.Date
			if from != "" {
				if start, err = date.Parse(from); err != nil {
					return err
				}
			}
			if to != "" {
				if end, err = date.Parse(to); err != nil {
					return err
				}
			}

			balances, err := l.DailyBalancesBetween(args[0], start, end)
			if err != nil {
				return err
			}
			for _, b := range balances {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", b.Date, b.Balance.StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first day of the range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last day of the range (YYYY-MM-DD)")

	return cmd
}
