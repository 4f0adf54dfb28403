// Package config reads runtime settings from CARVIZ_* environment variables. Command-line
// flags are applied on top by the binaries.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/bebeshannu/datavis-a2/src/logging"
	"github.com/bebeshannu/datavis-a2/src/vehicles"
)

// Config holds the settings shared by the viewer and the CLI.
type Config struct {
	// DataPath is the table location, relative to DataURL when that is set.
	DataPath     string        `env:"CARVIZ_DATA"          envDefault:"data/cars.csv"`
	DataURL      string        `env:"CARVIZ_DATA_URL"`
	LogLevel     string        `env:"CARVIZ_LOG_LEVEL"     envDefault:"info"`
	FetchTimeout time.Duration `env:"CARVIZ_FETCH_TIMEOUT" envDefault:"30s"`
	Width        int           `env:"CARVIZ_WIDTH"         envDefault:"900"`
	Height       int           `env:"CARVIZ_HEIGHT"        envDefault:"520"`
}

// Load parses the environment into a Config with defaults applied.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	if c.DataPath == "" && c.DataURL == "" {
		return errors.New("no data location: set CARVIZ_DATA or CARVIZ_DATA_URL")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %s", c.FetchTimeout)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}

// Source returns where the dataset is read from.
func (c Config) Source() vehicles.Source {
	return vehicles.NewSource(c.DataURL, c.DataPath)
}
