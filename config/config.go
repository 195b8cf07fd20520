// Package config loads CLI settings from an optional YAML file with
// CROWD_* environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/crowd/crowd"
	"github.com/katalvlaran/crowd/report"
)

// ErrInvalidConfig wraps every load or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the analysis bounds plus application settings.
type Config struct {
	crowd.Config `yaml:",inline"`

	// Workers is the census parallelism; 0 means GOMAXPROCS.
	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log_level"`
	Format   string `yaml:"format"`
}

// Default returns the analysis defaults, one worker per CPU, info logging
// and JSON output.
func Default() *Config {
	return &Config{
		Config:   crowd.DefaultConfig(),
		LogLevel: "info",
		Format:   string(report.FormatJSON),
	}
}

// Load reads path (skipped when empty), applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{"CROWD_MIN_K", &c.MinK},
		{"CROWD_MAX_K", &c.MaxK},
		{"CROWD_MIN_M", &c.MinM},
		{"CROWD_MAX_M", &c.MaxM},
		{"CROWD_MAX_H", &c.MaxH},
		{"CROWD_WORKERS", &c.Workers},
	}
	for _, e := range ints {
		raw := envOrDefault(e.key, "")
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, e.key, raw)
		}
		*e.dst = n
	}
	c.NodeKey = envOrDefault("CROWD_NODE_KEY", c.NodeKey)
	c.LogLevel = envOrDefault("CROWD_LOG_LEVEL", c.LogLevel)
	c.Format = envOrDefault("CROWD_FORMAT", c.Format)

	return nil
}

// Validate checks the analysis bounds, worker count, log level and format.
func (c *Config) Validate() error {
	if err := c.Config.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers=%d < 0", ErrInvalidConfig, c.Workers)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// OutputFormat returns the parsed output format, falling back to JSON.
func (c *Config) OutputFormat() report.Format {
	f, err := report.ParseFormat(c.Format)
	if err != nil {
		return report.FormatJSON
	}
	return f
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
