// Package config loads the ascfmt user configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/kamilmatejuk/ascfmt/internal/color"
	"github.com/kamilmatejuk/ascfmt/internal/header"
)

// Config is the user configuration.
type Config struct {
	Header HeaderConfig `yaml:"header"`
	Color  string       `yaml:"color"`
}

// HeaderConfig overrides the values written for missing header keys.
type HeaderConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Shell  string `yaml:"shell"`
	Term   string `yaml:"term"`
}

type LoadResult struct {
	Config   Config
	Path     string
	Warnings []string
}

// DefaultConfig returns the configuration used when no file exists. Shell
// and term stay empty so that $SHELL and $TERM apply.
func DefaultConfig() Config {
	return Config{
		Header: HeaderConfig{
			Width:  header.DefaultWidth,
			Height: header.DefaultHeight,
		},
		Color: string(color.Auto),
	}
}

// DefaultPath is $XDG_CONFIG_HOME/ascfmt/config.yaml, falling back to
// ~/.config/ascfmt/config.yaml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "ascfmt", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ascfmt", "config.yaml")
}

func Load() (*LoadResult, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads the file at path. A missing file yields the defaults.
func LoadFrom(path string) (*LoadResult, error) {
	result := &LoadResult{Config: DefaultConfig()}
	if path == "" {
		return result, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return result, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	result.Path = path

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	result.Warnings = unknownKeys(raw)

	// absent fields keep their defaults
	if err := yaml.Unmarshal(data, &result.Config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := validate(&result.Config); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return result, nil
}

var knownKeys = map[string]map[string]bool{
	"header": {"width": true, "height": true, "shell": true, "term": true},
	"color":  nil,
}

func unknownKeys(raw map[string]any) []string {
	var warnings []string
	for key, value := range raw {
		nested, known := knownKeys[key]
		if !known {
			warnings = append(warnings, fmt.Sprintf("unknown config key: %q", key))
			continue
		}
		section, ok := value.(map[string]any)
		if nested == nil || !ok {
			continue
		}
		for sub := range section {
			if !nested[sub] {
				warnings = append(warnings, fmt.Sprintf("unknown config key: %q", key+"."+sub))
			}
		}
	}
	sort.Strings(warnings)
	return warnings
}

func validate(cfg *Config) error {
	if cfg.Header.Width <= 0 {
		return fmt.Errorf("header.width must be positive, got %d", cfg.Header.Width)
	}
	if cfg.Header.Height <= 0 {
		return fmt.Errorf("header.height must be positive, got %d", cfg.Header.Height)
	}
	if _, err := color.ParseMode(cfg.Color); err != nil {
		return err
	}
	return nil
}

// HeaderDefaults applies the configured overrides to the environment
// defaults.
func (c Config) HeaderDefaults() header.Defaults {
	d := header.NewDefaults()
	d.Width = c.Header.Width
	d.Height = c.Header.Height
	if c.Header.Shell != "" {
		d.Shell = c.Header.Shell
	}
	if c.Header.Term != "" {
		d.Term = c.Header.Term
	}
	return d
}

// ColorMode returns the configured color mode. Load has already
// validated it.
func (c Config) ColorMode() color.Mode {
	m, err := color.ParseMode(c.Color)
	if err != nil {
		return color.Auto
	}
	return m
}
