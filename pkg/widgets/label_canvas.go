package widgets

import (
	"github.com/gogpu/gg/text"

	"github.com/go-drift/sunder/pkg/canvas"
	"github.com/go-drift/sunder/pkg/graphics"
	"github.com/go-drift/sunder/pkg/sunder"
)

// LabelCanvas is a Label drawn with the canvas backend.
type LabelCanvas struct {
	label *Label
}

var _ sunder.RenderedWidget[LabelState, LabelCanvasCache, *canvas.Backend, struct{}] = LabelCanvas{}

// LabelCanvasCache holds the text layout of a label. The zero value is empty.
type LabelCanvasCache struct {
	key    canvasLabelKey
	layout *canvas.TextLayout

	// Builds counts how many times the layout was constructed.
	Builds int
}

type canvasLabelKey struct {
	text     string
	maxWidth float64
	face     text.Face
}

// Layout returns the cached layout, or nil if the cache is empty.
func (c *LabelCanvasCache) Layout() *canvas.TextLayout {
	return c.layout
}

// populate rebuilds the layout if the label or the backend font changed.
// A failed rebuild leaves the previous layout in place.
func (c *LabelCanvasCache) populate(l *Label, b *canvas.Backend) error {
	face, err := b.Face()
	if err != nil {
		return err
	}
	key := canvasLabelKey{text: l.Text, maxWidth: l.MaxWidth, face: face}
	if c.layout != nil && c.key == key {
		return nil
	}
	layout, err := b.NewTextLayout(l.Text, l.MaxWidth)
	if err != nil {
		return err
	}
	c.key, c.layout = key, layout
	c.Builds++
	return nil
}

// HandleEvent implements sunder.Widget.
func (v LabelCanvas) HandleEvent(state *LabelState, ev sunder.Event) bool {
	return v.label.HandleEvent(state, ev)
}

// Rectangle implements sunder.RenderedWidget.
func (v LabelCanvas) Rectangle(cache *LabelCanvasCache, b *canvas.Backend) (graphics.Size, error) {
	if err := cache.populate(v.label, b); err != nil {
		return graphics.Size{}, err
	}
	return cache.layout.Size(), nil
}

// Render draws the label with its top-left corner at the origin.
func (v LabelCanvas) Render(_ *LabelState, cache *LabelCanvasCache, b *canvas.Backend) (struct{}, error) {
	return struct{}{}, v.draw(cache, b, b.Theme().Label.Foreground)
}

func (v LabelCanvas) draw(cache *LabelCanvasCache, b *canvas.Backend, c graphics.Color) error {
	if err := cache.populate(v.label, b); err != nil {
		return err
	}
	return b.DrawText(cache.layout, 0, 0, c)
}
