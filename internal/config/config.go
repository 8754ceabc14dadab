// Package config loads settings shared by the urncode40 binaries.
package config

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/Neumenon/urncode40/batch"
)

// EnvPath names the environment variable consulted when no config path is
// given explicitly.
const EnvPath = "URNCODE40_CONFIG"

// Config holds the tunable settings.
type Config struct {
	PreserveTrailingPadding bool   `json:"preserve_trailing_padding"`
	LogLevel                string `json:"log_level"`
	LogFormat               string `json:"log_format"`
	Format                  string `json:"format"`
	MaxLineBytes            int    `json:"max_line_bytes"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:     "info",
		LogFormat:    "text",
		Format:       "plain",
		MaxLineBytes: batch.DefaultMaxLine,
	}
}

// Load reads path over the defaults. An empty path falls back to $URNCODE40_CONFIG;
// if that is unset too the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that every setting has a usable value.
func (c Config) Validate() error {
	if _, ok := batch.ParseFormat(c.Format); !ok {
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log_format %q", c.LogFormat)
	}
	if c.MaxLineBytes <= 0 {
		return errors.New("config: max_line_bytes must be positive")
	}
	return nil
}
