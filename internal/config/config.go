package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vectoriser/internal/errors"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It defines the window, the image picker dialog and logging.
type Config struct {
	Window struct {
		Title  string  `yaml:"title"`  // Window title
		Width  float32 `yaml:"width"`  // Initial window width
		Height float32 `yaml:"height"` // Initial window height
		AppID  string  `yaml:"app_id"` // Unique app ID for preferences storage
	} `yaml:"window"`
	Dialog struct {
		FilterName string   `yaml:"filter_name"` // Label of the file type filter
		Extensions []string `yaml:"extensions"`  // Allowed extensions, without dots
		Title      string   `yaml:"title"`       // Dialog title
		StartDir   string   `yaml:"start_dir"`   // Directory the first dialog opens in
	} `yaml:"dialog"`
	Logging struct {
		Debug bool   `yaml:"debug"` // Enable debug records
		JSON  bool   `yaml:"json"`  // Emit JSON records
		File  string `yaml:"file"`  // Also append records to this file
	} `yaml:"logging"`
}

// DefaultPath returns $HOME/.config/vectoriser/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vectoriser", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewFileError("error reading config file", path, errors.FileAccessDenied, err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if tempCfg.Window.Title != "" {
		cfg.Window.Title = tempCfg.Window.Title
	}
	if tempCfg.Window.Width != 0 {
		cfg.Window.Width = tempCfg.Window.Width
	}
	if tempCfg.Window.Height != 0 {
		cfg.Window.Height = tempCfg.Window.Height
	}
	if tempCfg.Window.AppID != "" {
		cfg.Window.AppID = tempCfg.Window.AppID
	}

	if tempCfg.Dialog.FilterName != "" {
		cfg.Dialog.FilterName = tempCfg.Dialog.FilterName
	}
	if tempCfg.Dialog.Extensions != nil {
		cfg.Dialog.Extensions = normalizeExtensions(tempCfg.Dialog.Extensions)
	}
	if tempCfg.Dialog.Title != "" {
		cfg.Dialog.Title = tempCfg.Dialog.Title
	}
	cfg.Dialog.StartDir = tempCfg.Dialog.StartDir

	cfg.Logging = tempCfg.Logging

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid configuration in %s", path)
	}

	return cfg, nil
}

// New returns the default configuration.
func New() *Config {
	cfg := &Config{}

	cfg.Window.Title = "Vectoriser"
	cfg.Window.Width = 1024
	cfg.Window.Height = 768
	cfg.Window.AppID = "io.github.vectoriser"

	cfg.Dialog.FilterName = "Images"
	cfg.Dialog.Extensions = []string{"jpg", "jpeg", "png"}
	cfg.Dialog.Title = "Select an image"

	return cfg
}

// Validate checks the configuration for values the application cannot
// run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.NewConfigError("window size must be positive", "window", errors.InvalidConfig, nil)
	}
	if strings.TrimSpace(c.Dialog.FilterName) == "" {
		return errors.NewConfigError("filter name cannot be empty", "dialog.filter_name", errors.InvalidConfig, nil)
	}
	if strings.TrimSpace(c.Dialog.Title) == "" {
		return errors.NewConfigError("dialog title cannot be empty", "dialog.title", errors.InvalidConfig, nil)
	}
	if len(c.Dialog.Extensions) == 0 {
		return errors.NewConfigError("at least one extension is required", "dialog.extensions", errors.InvalidConfig, nil)
	}
	for _, ext := range c.Dialog.Extensions {
		if ext == "" || strings.ContainsAny(ext, `/\*?[]{}`) {
			return errors.NewConfigError(fmt.Sprintf("invalid extension %q", ext), "dialog.extensions", errors.InvalidConfig, nil)
		}
	}
	return nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.NewFileError("error creating config directory", filepath.Dir(path), errors.FileAccessDenied, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.NewFileError("error writing config file", path, errors.FileAccessDenied, err)
	}
	return nil
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		out = append(out, strings.TrimPrefix(strings.TrimSpace(ext), "."))
	}
	return out
}
