package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"WRENCHBILL_APP_NAME" default:"WrenchBill"`
	}

	Data struct {
		// Dir holds the blob database. Empty means ~/.wrenchbill.
		Dir string `envconfig:"WRENCHBILL_DATA_DIR" default:""`
	}

	Export struct {
		Dir string `envconfig:"WRENCHBILL_EXPORT_DIR" default:"exports"`
	}
}

// DataDir resolves the data directory, defaulting to ~/.wrenchbill.
func (c *Config) DataDir() (string, error) {
	if c.Data.Dir != "" {
		return c.Data.Dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	return filepath.Join(home, ".wrenchbill"), nil
}

// DatabasePath is the blob database file inside the data directory.
func (c *Config) DatabasePath() (string, error) {
	dir, err := c.DataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "wrenchbill.db"), nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
