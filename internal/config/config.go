// Package config loads authorship settings from a YAML or TOML file and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	authorship "github.com/samuel/go-authorship"
	"github.com/samuel/go-authorship/internal/logging"
)

// Config contains all authorship settings.
type Config struct {
	// Weights scale each signature feature when scoring. Exactly five values.
	Weights []float64 `yaml:"weights" toml:"weights"`

	// KnownDir is a directory of texts by known authors. When set, signatures
	// are computed from it on every run.
	KnownDir string `yaml:"known_dir" toml:"known_dir"`

	// Database is the path of a sqlite file holding precomputed signatures.
	// Used when KnownDir is empty.
	Database string `yaml:"database" toml:"database"`

	// Workers bounds concurrent signature computation. 0 means one per CPU.
	Workers int `yaml:"workers" toml:"workers"`

	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	// Level is a logrus level name: "debug", "info", "warn" or "error".
	Level string `yaml:"level" toml:"level"`

	// Format is "text" (default) or "json".
	Format string `yaml:"format" toml:"format"`
}

// Default returns a Config with the default weights and no known authors,
// which selects the built-in reference catalog.
func Default() *Config {
	w := authorship.DefaultWeights()
	return &Config{
		Weights: w[:],
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatText,
		},
	}
}

// Load builds the configuration from defaults, then the file at path (or
// the user config file authorship/config.yaml when path is empty and that
// file exists), then environment variables.
func Load(path string) (*Config, error) {
	config := Default()

	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			candidate := filepath.Join(dir, "authorship", "config.yaml")
			if _, statErr := os.Stat(candidate); statErr == nil {
				path = candidate
			}
		}
	}
	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFromFile loads configuration from a YAML file, or a TOML file when
// path ends in ".toml". Unset fields keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, config)
	} else {
		err = yaml.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return config, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := c.ParsedWeights(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}

	validLevels := map[string]bool{"": true, "trace": true, "debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (valid: trace, debug, info, warn, error)", c.Logging.Level)
	}
	validFormats := map[string]bool{"": true, logging.FormatText: true, logging.FormatJSON: true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("invalid log format: %s (valid: text, json)", c.Logging.Format)
	}
	return nil
}

// ParsedWeights returns the configured weights as a fixed-size vector.
func (c *Config) ParsedWeights() (authorship.Weights, error) {
	return authorship.ParseWeights(c.Weights)
}

// applyEnvOverrides applies AUTHORSHIP_* environment variables to config.
func applyEnvOverrides(config *Config) error {
	if v := os.Getenv("AUTHORSHIP_WEIGHTS"); v != "" {
		weights, err := parseFloatList(v)
		if err != nil {
			return fmt.Errorf("AUTHORSHIP_WEIGHTS: %w", err)
		}
		config.Weights = weights
	}

	config.KnownDir = GetStringEnv("AUTHORSHIP_KNOWN_DIR", config.KnownDir)
	config.Database = GetStringEnv("AUTHORSHIP_DATABASE", config.Database)
	config.Workers = GetIntEnv("AUTHORSHIP_WORKERS", config.Workers)
	config.Logging.Level = GetStringEnv("AUTHORSHIP_LOG_LEVEL", config.Logging.Level)
	config.Logging.Format = GetStringEnv("AUTHORSHIP_LOG_FORMAT", config.Logging.Format)
	return nil
}

// parseFloatList parses a comma-separated list such as "11, 33, 50, 0.4, 4".
func parseFloatList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		values = append(values, f)
	}
	return values, nil
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
