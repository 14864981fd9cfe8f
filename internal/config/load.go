package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/orbitview/internal/preset"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise surface as a broken window
// or a silently ignored setting.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	}
	if _, err := preset.Lookup(c.Camera.Preset); err != nil {
		return fmt.Errorf("%w: camera.preset: %w", ErrInvalid, err)
	}
	if err := checkOneOf("camera.resize_policy", c.Camera.ResizePolicy, "fixed-fov", "preserve-size"); err != nil {
		return err
	}
	if err := checkOneOf("camera.zoom_mode", c.Camera.ZoomMode, "pull-in", "push-out"); err != nil {
		return err
	}
	if err := checkOneOf("light.zoom_mode", c.Light.ZoomMode, "pull-in", "push-out"); err != nil {
		return err
	}
	if c.Shadow.Bias < 0 {
		return fmt.Errorf("%w: shadow.bias %g is negative", ErrInvalid, c.Shadow.Bias)
	}
	return nil
}

// checkOneOf accepts an empty value or one of the allowed names.
func checkOneOf(field, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q, want one of %v", ErrInvalid, field, value, allowed)
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "OrbitView")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "OrbitView")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "orbitview")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "orbitview")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
