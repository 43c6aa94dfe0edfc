// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/framekit/framekit/adapters/duckdb"
)

// Config is the root configuration structure.
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// SourceConfig locates the data tree layouts derive their paths under.
type SourceConfig struct {
	// Root is the directory all folder layouts are rooted in.
	Root string `yaml:"root"`
}

// DatabaseConfig configures the embedded engine.
type DatabaseConfig struct {
	// Settings are applied to every connection the layouts open.
	Settings duckdb.Settings `yaml:",inline"`

	// Suffix is the database file suffix (default: .ddb).
	Suffix string `yaml:"suffix"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "console"
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	applyEnvOverrides(&cfg)
	setDefaults(&cfg)
	return &cfg
}

// applyEnvOverrides applies FRAMEKIT_* environment variables to the config.
// Environment variables always override file-based configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FRAMEKIT_SOURCE_ROOT"); v != "" {
		cfg.Source.Root = v
	}
	if v := os.Getenv("FRAMEKIT_DB_MEMORY_LIMIT"); v != "" {
		cfg.Database.Settings.MemoryLimit = v
	}
	if v := os.Getenv("FRAMEKIT_DB_THREADS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Database.Settings.Threads = n
		}
	}
	if v := os.Getenv("FRAMEKIT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("FRAMEKIT_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

func setDefaults(cfg *Config) {
	if cfg.Source.Root == "" {
		cfg.Source.Root = "."
	}
	if cfg.Database.Suffix == "" {
		cfg.Database.Suffix = ".ddb"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

func validate(cfg *Config) error {
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q", cfg.Logging.Level)
	}
	switch cfg.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging format %q", cfg.Logging.Format)
	}
	if !strings.HasPrefix(cfg.Database.Suffix, ".") {
		return fmt.Errorf("database suffix %q must start with a dot", cfg.Database.Suffix)
	}
	if cfg.Database.Settings.Threads < 0 {
		return fmt.Errorf("database threads must not be negative")
	}
	return nil
}
