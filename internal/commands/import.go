package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/konto-dev/konto/importer"
	"github.com/konto-dev/konto/internal/importlog"
)

func newImportCommand() *cobra.Command {
	var bank string
	var accountID string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a bank CSV export into an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], bank, accountID)
		},
	}

	cmd.Flags().StringVar(&bank, "bank", "", "bank format (see 'konto banks'); defaults to the account's configured bank")
	cmd.Flags().StringVar(&accountID, "account", "", "ledger account to attach the rows to (required)")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func runImport(cmd *cobra.Command, file, bank, accountID string) error {
	dir := "."
	cfg, err := loadConfig(dir)
	if err != nil {
		return err
	}
	if bank == "" {
		tracked, ok := cfg.Account(accountID)
		if !ok || tracked.Bank == "" {
			return fmt.Errorf("no --bank given and account %q has no configured bank", accountID)
		}
		bank = tracked.Bank
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}

	entries, err := importer.ConvertNamed(string(raw), bank)
	if err != nil {
		return err
	}

	l, err := loadLedger(dir, cfg)
	if err != nil {
		return err
	}
	added, err := l.AddImportedEntries(entries, accountID)
	if err != nil {
		return err
	}
	if err := saveLedger(dir, cfg, l); err != nil {
		return err
	}

	logEntry := importlog.Entry{
		Timestamp: time.Now(),
		File:      filepath.Base(file),
		Bank:      bank,
		Account:   accountID,
		Rows:      len(added),
		First:     entries[0].Date.String(),
		Last:      entries[len(entries)-1].Date.String(),
	}
	if err := importlog.Append(dir, []importlog.Entry{logEntry}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions into %s (%s through %s)\n",
		len(added), accountID, logEntry.First, logEntry.Last)
	return nil
}
