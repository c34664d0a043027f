package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yndnr/akirakey/internal/infra/confloader"
)

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".akirakey", "config.yaml")
}

// Load builds the configuration from defaults, the config file, AKIRAKEY_*
// environment variables and the given flag overrides, in that order.
//
// An explicit path must exist. The default path is read only if present.
// Flag keys are dotted paths such as "generate.count".
func Load(path string, flags map[string]any) (*CLIConfig, error) {
	if path == "" {
		if p := DefaultConfigPath(); fileExists(p) {
			path = p
		}
	}

	cfg := Default()
	l := confloader.NewLoader(confloader.WithConfigFile(path))
	if err := l.Load(cfg); err != nil {
		return nil, err
	}

	if len(flags) > 0 {
		if err := l.LoadMap(flags); err != nil {
			return nil, err
		}
		if err := l.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("unmarshal flags: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MaxCount bounds generate.count for a single invocation.
const MaxCount = 1_000_000

// Validate checks value ranges and enumerations.
func (c *CLIConfig) Validate() error {
	if c.Generate.Count < 1 || c.Generate.Count > MaxCount {
		return fmt.Errorf("%w: generate.count must be between 1 and %d, got %d", ErrInvalidConfig, MaxCount, c.Generate.Count)
	}
	if c.Generate.Rate < 0 {
		return fmt.Errorf("%w: generate.rate must not be negative, got %v", ErrInvalidConfig, c.Generate.Rate)
	}
	switch c.Output.Format {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("%w: output.format must be table, json or yaml, got %q", ErrInvalidConfig, c.Output.Format)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
