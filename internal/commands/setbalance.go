package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newSetBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-balance <account> <amount>",
		Short: "Reconcile an account against its real current balance",
		Long: "Insert a backdated start-tracking transaction so the computed\n" +
			"balance of the account matches the given amount.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", args[1], err)
			}

			dir := "."
			cfg, err := loadConfig(dir)
			if err != nil {
				return err
			}
			l, err := loadLedger(dir, cfg)
			if err != nil {
				return err
			}

			tx, err := l.SetCurrentBalance(args[0], target)
			if err != nil {
				return err
			}
			if err := saveLedger(dir, cfg, l); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded start-tracking transaction of %s dated %s\n",
				tx.Amount.StringFixed(2), tx.Date)
			return nil
		},
	}
}
