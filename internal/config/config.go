// Package config loads client configuration from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the client settings.
type Config struct {
	// ServerURL is the remote collection endpoint.
	ServerURL string `yaml:"server_url"`

	// DBPath is the local BoltDB file.
	DBPath string `yaml:"db_path"`

	// SyncInterval between scheduled sync cycles, e.g. "30s".
	SyncInterval Duration `yaml:"sync_interval"`

	// PullLimit caps how many remote items one pull fetches.
	PullLimit int `yaml:"pull_limit"`
}

// Duration wraps time.Duration so YAML values like "30s" parse.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Default returns the built-in configuration.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		ServerURL:    "http://localhost:8080/api/v1/quotes",
		DBPath:       filepath.Join(home, ".quotesync", "quotesync.db"),
		SyncInterval: Duration(30 * time.Second),
		PullLimit:    10,
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults; a missing or unreadable file is an error so a typo does not
// silently fall back.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.ServerURL == "" {
		return cfg, fmt.Errorf("server_url must not be empty")
	}
	if cfg.DBPath == "" {
		return cfg, fmt.Errorf("db_path must not be empty")
	}
	if cfg.PullLimit <= 0 {
		cfg.PullLimit = Default().PullLimit
	}
	if cfg.SyncInterval <= 0 {
		cfg.SyncInterval = Default().SyncInterval
	}
	return cfg, nil
}
