// Package config provides configuration management for the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/brentdalling/gcenv/internal/script"
)

// Config holds the CLI configuration.
type Config struct {
	OutputPath  string `yaml:"output_path"`
	Interpreter string `yaml:"interpreter"`
	NoClipboard bool   `yaml:"no_clipboard"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutputPath:  script.DefaultPath,
		Interpreter: script.DefaultInterpreter,
	}
}

// LoadConfig loads the config file from GetConfigPath over the defaults.
// A missing file leaves the defaults in place.
func LoadConfig() (*Config, error) {
	return LoadFile(GetConfigPath())
}

// LoadFile loads configuration from path over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Empty values in the file fall back to defaults
	if cfg.OutputPath == "" {
		cfg.OutputPath = script.DefaultPath
	}
	if cfg.Interpreter == "" {
		cfg.Interpreter = script.DefaultInterpreter
	}
	return cfg, nil
}

// GetConfigPath returns the path to the config file in the user's home directory.
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".gcenvconfig")
}
