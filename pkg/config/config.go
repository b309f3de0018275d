// Package config loads server configuration from an optional YAML file.
// Resolution order is flags over environment over file over defaults; the
// flag and environment layers live in the command wiring.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the calc server settings.
type Config struct {
	Host    string        `yaml:"host"`
	Port    int           `yaml:"port"`
	History HistoryConfig `yaml:"history"`
	Web     WebConfig     `yaml:"web"`
}

// HistoryConfig controls the calculation log.
type HistoryConfig struct {
	// Limit caps retained entries; oldest are evicted first.
	Limit int `yaml:"limit"`
	// DB is a SQLite database path. Empty keeps history in memory.
	DB string `yaml:"db"`
}

// WebConfig controls the embedded web UI.
type WebConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Host:    "0.0.0.0",
		Port:    8787,
		History: HistoryConfig{Limit: 100},
		Web:     WebConfig{Enabled: true},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.History.Limit < 1 {
		return fmt.Errorf("invalid history limit %d", c.History.Limit)
	}
	return nil
}
