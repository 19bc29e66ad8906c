package cmd

import (
	"context"

	"golang.org/x/net/html"

	"github.com/go-drift/sunder/cmd/sunder/internal/config"
	"github.com/go-drift/sunder/pkg/canvas"
	"github.com/go-drift/sunder/pkg/dom"
	"github.com/go-drift/sunder/pkg/engine"
	"github.com/go-drift/sunder/pkg/graphics"
	"github.com/go-drift/sunder/pkg/sunder"
	"github.com/go-drift/sunder/pkg/widgets"
)

// mount is the part of engine.Mount the commands use, independent of the
// widget's state and cache types.
type mount[O any] interface {
	DrawFrame() (O, error)
	HandleEvent(ev sunder.Event) bool
	Bounds() graphics.Size
	Stats() engine.Stats
	Run(ctx context.Context) error
}

func newCanvasMount(sys engine.System[*canvas.Backend, struct{}], w config.WidgetConfig, opts ...engine.Option) mount[struct{}] {
	label := &widgets.Label{Text: w.Text, MaxWidth: w.MaxWidth}
	if w.Kind == config.KindButton {
		button := &widgets.PushButton{Label: *label}
		return engine.NewMount[widgets.ButtonState, widgets.ButtonCanvasCache, *canvas.Backend, struct{}](sys, button.Canvas(), opts...)
	}
	return engine.NewMount[widgets.LabelState, widgets.LabelCanvasCache, *canvas.Backend, struct{}](sys, label.Canvas(), opts...)
}

func newHTMLMount(sys engine.System[*dom.Backend, *html.Node], w config.WidgetConfig, opts ...engine.Option) mount[*html.Node] {
	label := &widgets.Label{Text: w.Text, MaxWidth: w.MaxWidth}
	if w.Kind == config.KindButton {
		button := &widgets.PushButton{Label: *label}
		return engine.NewMount[widgets.ButtonState, widgets.ButtonHTMLCache, *dom.Backend, *html.Node](sys, button.HTML(), opts...)
	}
	return engine.NewMount[widgets.LabelState, widgets.LabelHTMLCache, *dom.Backend, *html.Node](sys, label.HTML(), opts...)
}

// drawOnce draws a frame and, if pressed is set, presses the widget in
// the middle and draws again so the output shows the pressed state.
func drawOnce[O any](m mount[O], pressed bool) error {
	if _, err := m.DrawFrame(); err != nil {
		return err
	}
	if !pressed {
		return nil
	}
	size := m.Bounds()
	center := graphics.Offset{X: float64(size.Width) / 2, Y: float64(size.Height) / 2}
	if !m.HandleEvent(sunder.PointerDown{At: center}) {
		return nil
	}
	_, err := m.DrawFrame()
	return err
}
