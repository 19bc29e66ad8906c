package canvas

import (
	"math"
	"strings"

	"github.com/gogpu/gg/text"

	"github.com/go-drift/sunder/pkg/graphics"
	"github.com/go-drift/sunder/pkg/sunder"
)

// TextLine is one laid-out line of a TextLayout.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout is text measured and broken into lines with a particular face.
// It is immutable once built.
type TextLayout struct {
	// Text is the source string the layout was built from.
	Text string
	// MaxWidth is the wrapping width, 0 for none.
	MaxWidth float64
	// Face is the font face used for measurement and drawing.
	Face text.Face

	Lines      []TextLine
	Width      float64
	Height     float64
	Ascent     float64
	LineHeight float64
}

// Size returns the layout extent rounded up to whole pixels.
func (l *TextLayout) Size() graphics.Size {
	return graphics.SizeFromFloat(math.Ceil(l.Width), math.Ceil(l.Height))
}

// NewTextLayout shapes s with the theme face. A positive maxWidth wraps
// lines at word boundaries, breaking long words if needed; zero disables
// wrapping. Hard line breaks always start a new line.
func (b *Backend) NewTextLayout(s string, maxWidth float64) (*TextLayout, error) {
	if maxWidth < 0 || math.IsNaN(maxWidth) || math.IsInf(maxWidth, 0) {
		return nil, &Error{Op: "layout", Err: ErrInvalidWidth}
	}
	face, err := b.Face()
	if err != nil {
		return nil, err
	}

	var lines []TextLine
	if maxWidth > 0 {
		for _, r := range text.WrapText(s, face, maxWidth, text.WrapWordChar) {
			lines = append(lines, TextLine{Text: r.Text, Width: face.Advance(r.Text)})
		}
	} else {
		for _, para := range splitLines(s) {
			lines = append(lines, TextLine{Text: para, Width: face.Advance(para)})
		}
	}

	metrics := face.Metrics()
	layout := &TextLayout{
		Text:       s,
		MaxWidth:   maxWidth,
		Face:       face,
		Lines:      lines,
		Ascent:     metrics.Ascent,
		LineHeight: metrics.LineHeight(),
	}
	for _, line := range lines {
		layout.Width = math.Max(layout.Width, line.Width)
	}
	if s != "" {
		layout.Height = layout.LineHeight * float64(len(lines))
	}

	b.stats.Layouts++
	sunder.Logger().Debug("text layout built", "len", len(s), "lines", len(lines), "max_width", maxWidth)
	return layout, nil
}

// DrawText draws layout with its top-left corner at (x, y) in color c.
// Each non-empty line is one DrawString call on the surface.
func (b *Backend) DrawText(layout *TextLayout, x, y float64, c graphics.Color) error {
	if b.surface == nil {
		return &Error{Op: "draw text", Err: ErrNoSurface}
	}
	b.surface.SetFont(layout.Face)
	b.setColor(c)
	for i, line := range layout.Lines {
		if line.Text == "" {
			continue
		}
		b.surface.DrawString(line.Text, x, y+layout.Ascent+float64(i)*layout.LineHeight)
		b.stats.TextDraws++
	}
	return nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}
