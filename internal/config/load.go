package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// EnvConfig names a config file to read when --config is not given.
const EnvConfig = "MEGAQUAD_CONFIG"

// Load builds the effective config. Built-in defaults are overlaid by the
// located config file and then by command-line flags; the result is validated.
func Load() (*Config, error) {
	cfg := Default()

	if path := locate(); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		cfg.source = path
	}

	if err := applyFlags(cfg); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Source returns the file the config was read from, or "" when only
// defaults and flags apply.
func (c *Config) Source() string {
	return c.source
}

// locate picks the config file. An explicit --config or $MEGAQUAD_CONFIG
// wins even if it does not exist, so a typo fails loudly instead of
// falling back to another file.
func locate() string {
	if p := ConfigPath(); p != "" {
		return p
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	for _, p := range searchPaths() {
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return p
		}
	}
	return ""
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	return []string{
		"megaquad.yaml",
		"config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}
}

// ConfigDir returns the per-user config directory for this OS.
func ConfigDir() string {
	const app = "megaquad"
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Megaquad")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Megaquad")
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, app)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", app)
}

// loadFromFile overlays the YAML at path onto cfg. Keys that match no
// setting are rejected; an empty file leaves cfg unchanged.
func loadFromFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
