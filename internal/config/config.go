// Package config holds run defaults, optionally overridden from a TOML file
// and command-line flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the tunable settings shared by the transcribe and batch
// commands.
type Config struct {
	Model           string   `toml:"model"`
	Formats         []string `toml:"formats"`
	Workers         int      `toml:"workers"`
	MaxLineLength   int      `toml:"max_line_length"`
	KeepTraditional bool     `toml:"keep_traditional"`
	Language        string   `toml:"language"`
}

var validFormats = map[string]bool{
	"txt":  true,
	"srt":  true,
	"json": true,
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Model:         "base",
		Formats:       []string{"txt", "srt"},
		Workers:       1,
		MaxLineLength: 40,
	}
}

// Load reads a TOML config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings no run could use. Format names are lowercased
// in place so later dispatch can match them exactly.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if c.MaxLineLength < 1 {
		return fmt.Errorf("max_line_length must be >= 1, got %d", c.MaxLineLength)
	}
	if len(c.Formats) == 0 {
		return fmt.Errorf("at least one output format is required")
	}
	for i, f := range c.Formats {
		f = strings.ToLower(f)
		if !validFormats[f] {
			return fmt.Errorf("unknown output format %q (want txt, srt, json)", f)
		}
		c.Formats[i] = f
	}
	return nil
}
