package surface

import (
	"io"
	"sync"

	"github.com/gogpu/gg"

	"github.com/go-drift/sunder/pkg/canvas"
	"github.com/go-drift/sunder/pkg/engine"
	"github.com/go-drift/sunder/pkg/graphics"
	"github.com/go-drift/sunder/pkg/theme"
)

// Offscreen is an engine.System that draws into a gg image.
type Offscreen struct {
	engine.Signal

	mu      sync.Mutex
	dc      *gg.Context
	theme   *theme.Theme
	backend *canvas.Backend
	frames  uint64
}

var _ engine.System[*canvas.Backend, struct{}] = (*Offscreen)(nil)

// NewOffscreen returns a width×height surface. A nil theme selects theme.Default().
func NewOffscreen(width, height int, th *theme.Theme) *Offscreen {
	if th == nil {
		th = theme.Default()
	}
	dc := gg.NewContext(width, height)
	return &Offscreen{
		Signal:  engine.NewSignal(),
		dc:      dc,
		theme:   th,
		backend: canvas.New(dc, th),
	}
}

// Draw clears the image to the theme background and runs fn with the
// canvas backend.
func (o *Offscreen) Draw(fn func(*canvas.Backend, engine.DrawParameters) (struct{}, error)) (struct{}, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.dc == nil {
		return struct{}{}, ErrClosed
	}
	o.frames++
	o.dc.ClearWithColor(gg.RGBA2(o.theme.Background.RGBAF()))
	o.dc.Push()
	defer o.dc.Pop()
	return fn(o.backend, engine.DrawParameters{
		Frame: o.frames,
		Size:  graphics.Size{Width: uint32(o.dc.Width()), Height: uint32(o.dc.Height())},
	})
}

// SetTheme replaces the theme and requests a redraw. Caches keyed on the
// previous font are rebuilt on the next frame.
func (o *Offscreen) SetTheme(th *theme.Theme) {
	o.mu.Lock()
	o.theme = th
	if o.dc != nil {
		o.backend = canvas.New(o.dc, th)
	}
	o.mu.Unlock()
	o.RequestRedraw()
}

// Theme returns the current theme.
func (o *Offscreen) Theme() *theme.Theme {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.theme
}

// Resize changes the image size and requests a redraw.
func (o *Offscreen) Resize(width, height int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.dc == nil {
		return ErrClosed
	}
	if err := o.dc.Resize(width, height); err != nil {
		return err
	}
	o.RequestRedraw()
	return nil
}

// Backend returns the canvas backend frames are drawn with.
func (o *Offscreen) Backend() *canvas.Backend {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.backend
}

// Context returns the gg context. It must not be used while a frame is drawn.
func (o *Offscreen) Context() *gg.Context {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.dc
}

// SavePNG writes the last frame to path.
func (o *Offscreen) SavePNG(path string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.dc == nil {
		return ErrClosed
	}
	return o.dc.SavePNG(path)
}

// EncodePNG writes the last frame to w.
func (o *Offscreen) EncodePNG(w io.Writer) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.dc == nil {
		return ErrClosed
	}
	return o.dc.EncodePNG(w)
}

// Close releases the image. Further draws fail with ErrClosed.
func (o *Offscreen) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.dc == nil {
		return nil
	}
	err := o.dc.Close()
	o.dc = nil
	return err
}
