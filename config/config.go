// Package config loads the window, theme and language settings. Defaults are
// embedded in the binary (assets/countdown.yaml) and may be overridden by a
// user file under the OS config directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the location of the embedded defaults.
const DefaultPath = "assets/countdown.yaml"

// ContentReader defines the interface for reading content from the embedded file system.
type ContentReader interface {
	ReadFile(name string) ([]byte, error)
}

type Config struct {
	App      AppConfig   `yaml:"app"`
	Theme    ThemeConfig `yaml:"theme"`
	Language string      `yaml:"language"`
}

type AppConfig struct {
	Name         string `yaml:"name"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
}

type ThemeConfig struct {
	DarkMode     bool    `yaml:"dark_mode"`
	FontSize     float32 `yaml:"font_size"`
	TimeFontSize float32 `yaml:"time_font_size"`
}

// Default returns the built-in configuration used when nothing else is
// available.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:         "Countdown Timer",
			WindowWidth:  420,
			WindowHeight: 260,
		},
		Theme: ThemeConfig{
			FontSize:     14,
			TimeFontSize: 60,
		},
	}
}

// Load reads the embedded defaults from reader and overlays the file at
// userPath, if any. A missing or broken user file is not an error; the
// embedded configuration is used instead.
func Load(reader ContentReader, userPath string) (*Config, error) {
	cfg := Default()

	data, err := reader.ReadFile(DefaultPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", DefaultPath, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", DefaultPath, err)
	}

	if userPath != "" {
		overlay, err := readOverlay(cfg, userPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			log.Printf("Ignoring user config: %v", err)
		default:
			log.Printf("Loaded user config from %s", userPath)
			cfg = overlay
		}
	}

	cfg.sanitize()
	return cfg, nil
}

func readOverlay(base *Config, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	overlay := *base
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &overlay, nil
}

func (c *Config) sanitize() {
	def := Default()
	if c.App.Name == "" {
		c.App.Name = def.App.Name
	}
	if c.App.WindowWidth <= 0 {
		c.App.WindowWidth = def.App.WindowWidth
	}
	if c.App.WindowHeight <= 0 {
		c.App.WindowHeight = def.App.WindowHeight
	}
	if c.Theme.FontSize <= 0 {
		c.Theme.FontSize = def.Theme.FontSize
	}
	if c.Theme.TimeFontSize <= 0 {
		c.Theme.TimeFontSize = def.Theme.TimeFontSize
	}
}

// UserConfigPath returns where a user override file is looked for.
func UserConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "countdown", "config.yaml"), nil
}
