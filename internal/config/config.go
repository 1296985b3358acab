// Package config loads and saves bakecost settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/theirongolddev/bakecost/internal/model"
)

// Config holds all bakecost configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds storage and behavior preferences.
type GeneralConfig struct {
	DBPath        string  `toml:"db_path,omitempty" env:"BAKECOST_DB"`
	DefaultMargin float64 `toml:"default_margin"    env:"BAKECOST_DEFAULT_MARGIN"`
	LogLevel      string  `toml:"log_level,omitempty" env:"BAKECOST_LOG_LEVEL"`
}

// AppearanceConfig holds theme and display settings.
type AppearanceConfig struct {
	Theme    string `toml:"theme"    env:"BAKECOST_THEME"`
	Currency string `toml:"currency" env:"BAKECOST_CURRENCY"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultMargin: 30,
			LogLevel:      "warn",
		},
		Appearance: AppearanceConfig{
			Theme:    "flexoki-dark",
			Currency: "$",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bakecost")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bakecost")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory holding the database.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "bakecost")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "bakecost")
}

// DBPath returns the configured database path, or the default one under
// DataDir.
func (c Config) DBPath() string {
	if p := strings.TrimSpace(c.General.DBPath); p != "" {
		return p
	}
	return filepath.Join(DataDir(), "bakecost.db")
}

// Validate checks values that would break costing or rendering.
func (c Config) Validate() error {
	if !model.ValidMargin(c.General.DefaultMargin) {
		return fmt.Errorf("general.default_margin: %w", &model.InvalidMarginError{Margin: c.General.DefaultMargin})
	}
	return nil
}

// Load reads the config file, returning defaults if it doesn't exist, and
// then applies BAKECOST_* environment overrides.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return cfg, fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return f.Close()
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
