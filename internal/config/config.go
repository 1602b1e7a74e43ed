package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file.
const FileName = "konto.yaml"

// Config represents the top-level konto.yaml configuration.
type Config struct {
	Dataset  string           `yaml:"dataset"` // path of the JSON dataset file
	Accounts []TrackedAccount `yaml:"accounts,omitempty"`
}

// TrackedAccount maps a real bank account to a ledger account and the
// CSV format its exports come in.
type TrackedAccount struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name,omitempty"`
	Bank string `yaml:"bank,omitempty"` // importer bank ID, e.g. "bawagpsk"
}

// Load reads a konto.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config for a new project.
func Default() *Config {
	return &Config{Dataset: "dataset.json"}
}

// Account returns the tracked account with the given ledger ID.
func (c *Config) Account(id string) (TrackedAccount, bool) {
	for _, a := range c.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return TrackedAccount{}, false
}
