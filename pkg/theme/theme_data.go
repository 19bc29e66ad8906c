// Package theme holds the read-only style information backends consult
// while measuring and drawing widgets.
package theme

import "github.com/go-drift/sunder/pkg/graphics"

// CurrentVersion is the theme schema version written by this package.
const CurrentVersion = "v1.0.0"

// Theme is the style object shared by every widget drawn through a backend.
type Theme struct {
	// Version is the schema version of a theme file (semver, major v1).
	Version string `yaml:"version,omitempty" toml:"version,omitempty"`
	// Font selects the face used for all widget text.
	Font FontTheme `yaml:"font" toml:"font"`
	// Background is the surface clear color.
	Background graphics.Color `yaml:"background" toml:"background"`
	// Label styles text labels.
	Label WidgetProperties `yaml:"label" toml:"label"`
	// Button styles push buttons at rest.
	Button WidgetProperties `yaml:"button" toml:"button"`
	// ButtonPressed styles push buttons while pressed.
	ButtonPressed WidgetProperties `yaml:"button_pressed" toml:"button_pressed"`
}

// FontTheme selects a font file and size.
type FontTheme struct {
	// Path is a TrueType/OpenType file. Empty selects the bundled Go Regular face.
	Path string `yaml:"path,omitempty" toml:"path,omitempty"`
	// Size is the font size in points.
	Size float64 `yaml:"size" toml:"size"`
}

// WidgetProperties is the box and text styling for one widget class.
type WidgetProperties struct {
	Foreground  graphics.Color `yaml:"foreground" toml:"foreground"`
	Background  graphics.Color `yaml:"background" toml:"background"`
	Border      graphics.Color `yaml:"border" toml:"border"`
	BorderWidth float64        `yaml:"border_width" toml:"border_width"`
	Radius      float64        `yaml:"radius" toml:"radius"`
	// Padding is the space between the box edge and its content, on every side.
	Padding float64 `yaml:"padding" toml:"padding"`
}

// Default returns the default light theme.
func Default() *Theme {
	return &Theme{
		Version:    CurrentVersion,
		Font:       FontTheme{Size: 16},
		Background: graphics.ColorWhite,
		Label: WidgetProperties{
			Foreground: graphics.RGB(0x1C, 0x1B, 0x1F),
		},
		Button: WidgetProperties{
			Foreground:  graphics.ColorWhite,
			Background:  graphics.RGB(0x67, 0x50, 0xA4),
			Border:      graphics.RGB(0x4F, 0x37, 0x8B),
			BorderWidth: 1,
			Radius:      8,
			Padding:     12,
		},
		ButtonPressed: WidgetProperties{
			Foreground:  graphics.ColorWhite,
			Background:  graphics.RGB(0x4F, 0x37, 0x8B),
			Border:      graphics.RGB(0x38, 0x1E, 0x72),
			BorderWidth: 1,
			Radius:      8,
			Padding:     12,
		},
	}
}

// DefaultDark returns the default dark theme.
func DefaultDark() *Theme {
	t := Default()
	t.Background = graphics.RGB(0x1C, 0x1B, 0x1F)
	t.Label.Foreground = graphics.RGB(0xE6, 0xE1, 0xE5)
	t.Button.Foreground = graphics.RGB(0x38, 0x1E, 0x72)
	t.Button.Background = graphics.RGB(0xD0, 0xBC, 0xFF)
	t.Button.Border = graphics.RGB(0xE8, 0xDE, 0xF8)
	t.ButtonPressed.Foreground = graphics.RGB(0x38, 0x1E, 0x72)
	t.ButtonPressed.Background = graphics.RGB(0xB6, 0x9D, 0xF8)
	t.ButtonPressed.Border = graphics.RGB(0xE8, 0xDE, 0xF8)
	return t
}

// Clone returns an independent copy of the theme.
func (t *Theme) Clone() *Theme {
	c := *t
	return &c
}

// ButtonProperties returns the button styling for the given pressed state.
func (t *Theme) ButtonProperties(pressed bool) WidgetProperties {
	if pressed {
		return t.ButtonPressed
	}
	return t.Button
}
