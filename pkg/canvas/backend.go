package canvas

import (
	"errors"
	"math"

	"github.com/gogpu/gg/text"

	"github.com/go-drift/sunder/pkg/graphics"
	"github.com/go-drift/sunder/pkg/sunder"
	"github.com/go-drift/sunder/pkg/theme"
)

// Stats counts the work a Backend has done.
type Stats struct {
	// Layouts is the number of text layouts built.
	Layouts int
	// TextDraws is the number of DrawString calls issued.
	TextDraws int
	// Boxes is the number of themed boxes drawn.
	Boxes int
}

// Backend draws widgets onto a Surface using a theme.
type Backend struct {
	surface Surface
	theme   *theme.Theme
	face    text.Face
	stats   Stats
}

var _ sunder.Backend = (*Backend)(nil)

// New returns a backend over surface. A nil theme selects theme.Default().
func New(surface Surface, th *theme.Theme) *Backend {
	if th == nil {
		th = theme.Default()
	}
	return &Backend{surface: surface, theme: th}
}

// Kind implements sunder.Backend.
func (b *Backend) Kind() string { return "canvas" }

// Surface returns the underlying drawing surface.
func (b *Backend) Surface() Surface { return b.surface }

// Theme returns the theme widgets are styled with.
func (b *Backend) Theme() *theme.Theme { return b.theme }

// Stats returns counters for the work done so far.
func (b *Backend) Stats() Stats { return b.stats }

// Face returns the theme font face, loading it on first use.
func (b *Backend) Face() (text.Face, error) {
	if b.face != nil {
		return b.face, nil
	}
	face, err := b.theme.Face()
	if err != nil {
		return nil, &Error{Op: "font", Err: errors.Join(ErrNoFont, err)}
	}
	b.face = face
	return face, nil
}

// DrawBox fills rect with the box styling of props and strokes its border.
func (b *Backend) DrawBox(props theme.WidgetProperties, rect graphics.Rectangle) error {
	if b.surface == nil {
		return &Error{Op: "draw box", Err: ErrNoSurface}
	}
	x, y := float64(rect.X), float64(rect.Y)
	w, h := float64(rect.Width), float64(rect.Height)
	radius := math.Min(props.Radius, math.Min(w, h)/2)

	if !props.Background.IsTransparent() {
		b.setColor(props.Background)
		b.surface.DrawRoundedRectangle(x, y, w, h, radius)
		if err := fill(b.surface); err != nil {
			return &Error{Op: "draw box", Err: err}
		}
	}
	if props.BorderWidth > 0 && !props.Border.IsTransparent() {
		inset := props.BorderWidth / 2
		b.setColor(props.Border)
		b.surface.SetLineWidth(props.BorderWidth)
		b.surface.DrawRoundedRectangle(x+inset, y+inset, w-props.BorderWidth, h-props.BorderWidth, math.Max(radius-inset, 0))
		if err := stroke(b.surface); err != nil {
			return &Error{Op: "draw box", Err: err}
		}
	}
	b.stats.Boxes++
	return nil
}

func (b *Backend) setColor(c graphics.Color) {
	r, g, bl, a := c.RGBAF()
	b.surface.SetRGBA(r, g, bl, a)
}
