package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/allyledger/ally2ledger/internal/ledgercli"
)

// Config represents the top-level ally2ledger.yaml configuration.
type Config struct {
	Ledger   LedgerConfig      `yaml:"ledger"`
	Accounts map[string]string `yaml:"accounts,omitempty"`
	Log      LogConfig         `yaml:"log"`
}

// LedgerConfig controls how the external ledger binary is invoked.
type LedgerConfig struct {
	Bin        string `yaml:"bin"`
	DateFormat string `yaml:"date_format"` // strftime format, e.g. "%Y-%m-%d"
}

// LogConfig controls the conversion run log.
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads an ally2ledger.yaml file from disk.
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

// Default returns a Config with the stock ledger invocation and the run
// log disabled.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			Bin:        ledgercli.DefaultBin,
			DateFormat: ledgercli.DefaultDateFormat,
		},
		Log: LogConfig{
			Enabled: false,
			Path:    "ally2ledger-log.csv",
		},
	}
}

// ResolveAccount maps an account alias to its full ledger account name.
// Unknown names pass through unchanged.
func (c *Config) ResolveAccount(name string) string {
	if full, ok := c.Accounts[name]; ok {
		return full
	}
	return name
}
