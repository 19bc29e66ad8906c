// Package config loads the optional sunder.yaml used by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/sunder/pkg/theme"
)

// FileName is the name of the configuration file looked up in a directory.
const FileName = "sunder.yaml"

// Widget kinds the CLI can draw.
const (
	KindLabel  = "label"
	KindButton = "button"
)

// Config represents the optional sunder.yaml configuration.
type Config struct {
	Title  string       `yaml:"title,omitempty"`
	Theme  string       `yaml:"theme,omitempty"`
	Width  int          `yaml:"width,omitempty"`
	Height int          `yaml:"height,omitempty"`
	Widget WidgetConfig `yaml:"widget"`
}

// WidgetConfig describes the widget to draw.
type WidgetConfig struct {
	Kind     string  `yaml:"kind,omitempty"`
	Text     string  `yaml:"text,omitempty"`
	MaxWidth float64 `yaml:"max_width,omitempty"`
	Pressed  bool    `yaml:"pressed,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root      string
	ThemePath string
	Title     string
	Width     int
	Height    int
	Widget    WidgetConfig
	Theme     *theme.Theme
}

// LoadOptional reads path if present. A missing file yields an empty Config.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return &cfg, nil
}

// Resolve loads the configuration file at path (if present), loads the
// theme it names and fills in defaults. Relative theme paths are resolved
// against the directory of the configuration file.
func Resolve(path string) (*Resolved, error) {
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}
	root := filepath.Dir(path)

	r := &Resolved{
		Root:   root,
		Title:  strings.TrimSpace(cfg.Title),
		Width:  cfg.Width,
		Height: cfg.Height,
		Widget: cfg.Widget,
	}
	if r.Title == "" {
		r.Title = defaultTitle(root)
	}
	if r.Width == 0 {
		r.Width = 320
	}
	if r.Height == 0 {
		r.Height = 120
	}
	if r.Width < 0 || r.Height < 0 {
		return nil, fmt.Errorf("invalid size %dx%d", r.Width, r.Height)
	}
	if r.Widget.Kind == "" {
		r.Widget.Kind = KindLabel
	}
	if r.Widget.Text == "" {
		r.Widget.Text = "Hello, world!"
	}
	switch r.Widget.Kind {
	case KindLabel, KindButton:
	default:
		return nil, fmt.Errorf("unknown widget kind %q (use %s or %s)", r.Widget.Kind, KindLabel, KindButton)
	}
	if r.Widget.MaxWidth < 0 {
		return nil, fmt.Errorf("widget max_width must not be negative")
	}

	if t := strings.TrimSpace(cfg.Theme); t != "" {
		if !filepath.IsAbs(t) {
			t = filepath.Join(root, t)
		}
		r.ThemePath = t
		if r.Theme, err = theme.Load(t); err != nil {
			return nil, err
		}
	} else {
		r.Theme = theme.Default()
	}
	return r, nil
}

// defaultTitle names the page after the module in dir, if there is one.
func defaultTitle(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "sunder"
	}
	modPath := modfile.ModulePath(data)
	if modPath == "" {
		return "sunder"
	}
	if prefix, _, ok := module.SplitPathVersion(modPath); ok {
		modPath = prefix
	}
	parts := strings.Split(modPath, "/")
	return parts[len(parts)-1]
}
