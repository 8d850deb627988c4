// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/talia-cli/talia/internal/domain"
)

// Config is the user-editable application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
}

// StorageConfig controls where the task file lives.
type StorageConfig struct {
	// Path overrides the default task file location (~/.talia/tasks.json).
	Path string `toml:"path"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Defaults to info.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
	}
}

// Loader loads configuration from a TOML file in the user config directory.
type Loader struct {
	confDir string
}

// NewLoader creates a Loader reading from $XDG_CONFIG_HOME/talia, falling
// back to ~/.config/talia.
func NewLoader() *Loader {
	return &Loader{confDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(dir string) *Loader {
	return &Loader{confDir: dir}
}

// defaultConfigDir returns the user config directory for talia.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "talia")
}

// Load returns the configuration, falling back to defaults when no config
// file exists. A present but unreadable or malformed file is an error.
func (l *Loader) Load() (*Config, error) {
	cfg := Default()
	if l.confDir == "" {
		return cfg, nil
	}

	path := filepath.Join(l.confDir, domain.ConfigFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}
