package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings
type Config struct {
	Addr           string `yaml:"addr"`            // listen address
	MaxConnections int    `yaml:"max_connections"` // concurrent connection handlers
	ReadTimeout    int    `yaml:"read_timeout"`    // seconds per request read, 0 = none
	LogLevel       string `yaml:"log_level"`       // debug, info, warn, error
}

// Default returns the settings used when no config file is given
func Default() Config {
	return Config{
		Addr:           ":7878",
		MaxConnections: 64,
		ReadTimeout:    0,
		LogLevel:       "info",
	}
}

// Load reads a YAML config file over the defaults; keys the file leaves
// out (or zeroes) keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	defaults := Default()
	if cfg.Addr == "" {
		cfg.Addr = defaults.Addr
	}
	if cfg.MaxConnections <= 0 {
		cfg.MaxConnections = defaults.MaxConnections
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}

	return cfg, nil
}

// SlogLevel maps LogLevel onto a slog level; unknown names mean info
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
