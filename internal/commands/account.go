package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/konto-dev/konto/ledger"
)

func newAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage ledger accounts",
	}
	cmd.AddCommand(newAccountAddCommand())
	cmd.AddCommand(newAccountListCommand())
	return cmd
}

func newAccountAddCommand() *cobra.Command {
	var name string
	var accountType string
	var openDate string

	cmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Add an account to the ledger",
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

			account, err := l.AddAccount(ledger.AccountParams{
				ID:       args[0],
				Name:     name,
				Type:     accountType,
				OpenDate: openDate,
			})
			if err != nil {
				return err
			}
			if err := saveLedger(dir, cfg, l); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added account %s\n", account.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&accountType, "type", "", "account type")
	cmd.Flags().StringVar(&openDate, "open-date", "", "open date (YYYY-MM-DD)")

	return cmd
}

func newAccountListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List ledger accounts",
		Args:  cobra.NoArgs,
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

			for _, a := range l.Accounts() {
				line := a.ID
				if a.Name != "" {
					line += "\t" + a.Name
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
