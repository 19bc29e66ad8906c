package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Format is a theme file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// ErrUnsupportedVersion is returned for theme files written for another
// major schema version.
var ErrUnsupportedVersion = errors.New("unsupported theme version")

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("unknown theme format for %q (want .yaml, .yml or .toml)", path)
}

// Load reads a theme file. Fields the file leaves out keep their Default values.
func Load(path string) (*Theme, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	t, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if t.Font.Path != "" && !filepath.IsAbs(t.Font.Path) {
		t.Font.Path = filepath.Join(filepath.Dir(path), t.Font.Path)
	}
	return t, nil
}

// Decode parses theme data on top of Default and validates the result.
func Decode(data []byte, format Format) (*Theme, error) {
	t := Default()
	t.Version = ""
	var err error
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(t); errors.Is(err, io.EOF) {
			err = nil
		}
	case FormatTOML:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(t)
	default:
		err = fmt.Errorf("unknown theme format %d", format)
	}
	if err != nil {
		return nil, err
	}
	if t.Version == "" {
		t.Version = CurrentVersion
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Encode writes the theme in the given format.
func (t *Theme) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(t)
	case FormatTOML:
		return toml.Marshal(t)
	}
	return nil, fmt.Errorf("unknown theme format %d", format)
}

// Validate checks the schema version and numeric ranges.
func (t *Theme) Validate() error {
	if !semver.IsValid(t.Version) {
		return fmt.Errorf("invalid theme version %q", t.Version)
	}
	if semver.Major(t.Version) != semver.Major(CurrentVersion) {
		return fmt.Errorf("%w: %s", ErrUnsupportedVersion, t.Version)
	}
	if !(t.Font.Size > 0) || math.IsInf(t.Font.Size, 0) {
		return fmt.Errorf("font size must be positive, got %v", t.Font.Size)
	}
	for name, p := range map[string]WidgetProperties{
		"label":          t.Label,
		"button":         t.Button,
		"button_pressed": t.ButtonPressed,
	} {
		for _, v := range []float64{p.Padding, p.Radius, p.BorderWidth} {
			if !(v >= 0) || math.IsInf(v, 0) {
				return fmt.Errorf("%s: padding, radius and border_width must be finite and not negative", name)
			}
		}
	}
	return nil
}
