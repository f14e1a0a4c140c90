// Package config loads the optional YAML configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds settings read from the configuration file.
type Config struct {
	// Exclude contains regex patterns excluded from scans.
	Exclude []string `yaml:"exclude"`
	// FollowSymlinks enables symlink-following by default.
	FollowSymlinks bool `yaml:"follow_symlinks"`
}

// Default returns the configuration used when no file exists. Nothing is
// excluded by default; hidden entries are always scanned.
func Default() *Config {
	return &Config{Exclude: []string{}}
}

// Load reads the configuration from path. A missing file is not an error and
// yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if cfg.Exclude == nil {
		cfg.Exclude = []string{}
	}

	return &cfg, nil
}
