// Package config loads CLI configuration from file and environment.
//
// Precedence, lowest to highest: config file, CHIRP_* environment
// variables, command-line flags (applied by the CLI layer).
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid/v5"
	"gopkg.in/yaml.v3"
)

// Config holds the driver settings. Identity is the opaque caller
// token handed to the core on every call; the core never mints one, so
// the driver does it here.
type Config struct {
	// DSN is the PostgreSQL connection string, or "memory" for a
	// non-persistent in-process backend.
	DSN string `yaml:"dsn"`
	// Identity is the caller token. Generated once and persisted on
	// first run if nothing supplies it.
	Identity string `yaml:"identity"`
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "chirp", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "chirp", "config.yaml")
}

// Load reads the config file (if present) and applies environment
// overrides. It never writes.
func Load(path string) (*Config, error) {
	cfg := &Config{DSN: "memory"}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
		// first run
	default:
		return nil, err
	}

	if v := os.Getenv("CHIRP_DSN"); v != "" {
		cfg.DSN = v
	}
	if v := os.Getenv("CHIRP_IDENTITY"); v != "" {
		cfg.Identity = v
	}
	return cfg, nil
}

// EnsureIdentity mints a fresh identity token if cfg has none and
// persists it so subsequent runs act as the same caller.
func EnsureIdentity(path string, cfg *Config) error {
	if cfg.Identity != "" {
		return nil
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return err
	}
	cfg.Identity = uid.String()
	return Save(path, cfg)
}

// Save writes the config file, creating its directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
