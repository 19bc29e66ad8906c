package widgets

import (
	"math"

	"github.com/go-drift/sunder/pkg/canvas"
	"github.com/go-drift/sunder/pkg/graphics"
	"github.com/go-drift/sunder/pkg/sunder"
)

// ButtonCanvas is a PushButton drawn with the canvas backend.
type ButtonCanvas struct {
	button *PushButton
}

var _ sunder.RenderedWidget[ButtonState, ButtonCanvasCache, *canvas.Backend, struct{}] = ButtonCanvas{}

// ButtonCanvasCache is the cache of a ButtonCanvas.
type ButtonCanvasCache struct {
	Label LabelCanvasCache
}

// HandleEvent implements sunder.Widget.
func (v ButtonCanvas) HandleEvent(state *ButtonState, ev sunder.Event) bool {
	return v.button.HandleEvent(state, ev)
}

// Rectangle returns the label size plus the theme button padding on each side.
func (v ButtonCanvas) Rectangle(cache *ButtonCanvasCache, b *canvas.Backend) (graphics.Size, error) {
	size, err := v.button.Label.Canvas().Rectangle(&cache.Label, b)
	if err != nil {
		return graphics.Size{}, err
	}
	pad := padding(b.Theme().Button.Padding)
	return size.Grow(pad, pad), nil
}

// Render draws the box with the pressed or idle styling and the label inset
// by the padding.
func (v ButtonCanvas) Render(state *ButtonState, cache *ButtonCanvasCache, b *canvas.Backend) (struct{}, error) {
	size, err := v.Rectangle(cache, b)
	if err != nil {
		return struct{}{}, err
	}
	props := b.Theme().ButtonProperties(state.Pressed)
	if err := b.DrawBox(props, graphics.RectangleFromSize(size)); err != nil {
		return struct{}{}, err
	}

	pad := float64(padding(b.Theme().Button.Padding))
	surface := b.Surface()
	surface.Push()
	defer surface.Pop()
	surface.Translate(pad, pad)
	return struct{}{}, v.button.Label.Canvas().draw(&cache.Label, b, props.Foreground)
}

func padding(p float64) uint32 {
	switch {
	case p <= 0 || math.IsNaN(p):
		return 0
	case p >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(math.Ceil(p))
}
