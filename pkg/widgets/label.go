package widgets

import "github.com/go-drift/sunder/pkg/sunder"

// Label displays a string with the theme font.
type Label struct {
	sunder.Static

	// Text is the string to display. Line breaks start new lines.
	Text string
	// MaxWidth wraps lines wider than this many pixels. Zero disables wrapping.
	MaxWidth float64
}

// LabelState is the immediate state of a Label, which has none.
type LabelState = struct{}

var _ sunder.Widget[LabelState] = (*Label)(nil)

// Canvas binds the label to the canvas backend.
func (l *Label) Canvas() LabelCanvas {
	return LabelCanvas{label: l}
}

// HTML binds the label to the HTML backend.
func (l *Label) HTML() LabelHTML {
	return LabelHTML{label: l}
}
