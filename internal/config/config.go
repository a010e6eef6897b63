// Package config loads application configuration from an optional YAML
// file with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/frabecrazy/digital-footprint/internal/footprint"
)

// Store backends.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Device policy names accepted in configuration.
const (
	PolicyNameCombined = "combined"
	PolicyNameSplit    = "split"
)

// StoreConfig selects and locates the community record store.
type StoreConfig struct {
	// Backend is "csv" (default) or "sqlite".
	Backend string `yaml:"backend"`

	// Path is the CSV file or SQLite database location.
	Path string `yaml:"path"`
}

// LogConfig controls zerolog output.
type LogConfig struct {
	// Level is a zerolog level name: debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is "console" (default) or "json".
	Format string `yaml:"format"`
}

// Config is the full application configuration.
type Config struct {
	Store StoreConfig `yaml:"store"`
	Log   LogConfig   `yaml:"log"`

	// Listen is the HTTP API listen address.
	Listen string `yaml:"listen"`

	// Days overrides the annual day count used to annualize daily
	// measurements.
	Days float64 `yaml:"days"`

	// DevicePolicy is "combined" (default) or "split".
	DevicePolicy string `yaml:"device_policy"`
}

// Default returns the configuration used when no file or overrides are
// present.
func Default() Config {
	return Config{
		Store:        StoreConfig{Backend: BackendCSV, Path: "community.csv"},
		Log:          LogConfig{Level: "info", Format: "console"},
		Listen:       ":8080",
		Days:         footprint.DaysPerYear,
		DevicePolicy: PolicyNameCombined,
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is empty or the file does not exist, the file step is skipped),
// then FOOTPRINT_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// optional file
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FOOTPRINT_STORE_BACKEND"); v != "" {
		cfg.Store.Backend = v
	}
	if v := os.Getenv("FOOTPRINT_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("FOOTPRINT_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("FOOTPRINT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FOOTPRINT_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("FOOTPRINT_DEVICE_POLICY"); v != "" {
		cfg.DevicePolicy = v
	}
	if v := os.Getenv("FOOTPRINT_DAYS"); v != "" {
		if days, err := strconv.ParseFloat(v, 64); err == nil && days > 0 {
			cfg.Days = days
		}
	}
}

func (c Config) validate() error {
	switch c.Store.Backend {
	case BackendCSV, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown store backend %q", c.Store.Backend)
	}
	switch c.DevicePolicy {
	case PolicyNameCombined, PolicyNameSplit:
	default:
		return fmt.Errorf("config: unknown device policy %q", c.DevicePolicy)
	}
	if c.Days <= 0 {
		return fmt.Errorf("config: days must be positive, got %v", c.Days)
	}
	return nil
}

// Policy maps the configured policy name to the calculator policy.
func (c Config) Policy() footprint.DevicePolicy {
	if c.DevicePolicy == PolicyNameSplit {
		return footprint.PolicySplitLifespan
	}
	return footprint.PolicyCombined
}
