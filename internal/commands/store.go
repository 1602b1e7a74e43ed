package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/konto-dev/konto/internal/config"
	"github.com/konto-dev/konto/ledger"
)

// loadConfig reads konto.yaml from dir.
func loadConfig(dir string) (*config.Config, error) {
	return config.Load(filepath.Join(dir, config.FileName))
}

// loadLedger reads the dataset file named by cfg, or returns a fresh
// ledger when none exists yet.
func loadLedger(dir string, cfg *config.Config) (*ledger.Ledger, error) {
	path := filepath.Join(dir, cfg.Dataset)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ledger.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening dataset %s: %w", path, err)
	}
	defer f.Close()

	l, err := ledger.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	return l, nil
}

// saveLedger writes the dataset file named by cfg.
func saveLedger(dir string, cfg *config.Config, l *ledger.Ledger) error {
	path := filepath.Join(dir, cfg.Dataset)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dataset %s: %w", path, err)
	}
	defer f.Close()

	if err := l.Encode(f); err != nil {
		return fmt.Errorf("writing dataset %s: %w", path, err)
	}
	return f.Close()
}
