package widgets

import (
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/go-drift/sunder/pkg/dom"
	"github.com/go-drift/sunder/pkg/graphics"
	"github.com/go-drift/sunder/pkg/sunder"
)

// ButtonHTML is a PushButton rendered as an HTML button element.
type ButtonHTML struct {
	button *PushButton
}

var _ sunder.RenderedWidget[ButtonState, ButtonHTMLCache, *dom.Backend, *html.Node] = ButtonHTML{}

// ButtonHTMLCache is the cache of a ButtonHTML.
type ButtonHTMLCache struct {
	Label LabelHTMLCache
}

// HandleEvent implements sunder.Widget.
func (v ButtonHTML) HandleEvent(state *ButtonState, ev sunder.Event) bool {
	return v.button.HandleEvent(state, ev)
}

// Rectangle returns the label size plus the theme button padding on each side.
func (v ButtonHTML) Rectangle(cache *ButtonHTMLCache, b *dom.Backend) (graphics.Size, error) {
	size, err := v.button.Label.HTML().Rectangle(&cache.Label, b)
	if err != nil {
		return graphics.Size{}, err
	}
	pad := padding(b.Theme().Button.Padding)
	return size.Grow(pad, pad), nil
}

// Render returns a <button> holding the label span. The data-pressed
// attribute selects the pressed styling from dom.Stylesheet.
func (v ButtonHTML) Render(state *ButtonState, cache *ButtonHTMLCache, b *dom.Backend) (*html.Node, error) {
	label, err := v.button.Label.HTML().Render(&LabelState{}, &cache.Label, b)
	if err != nil {
		return nil, err
	}
	button := b.Element(atom.Button, dom.ClassButton,
		html.Attribute{Key: "type", Val: "button"},
		html.Attribute{Key: "data-pressed", Val: strconv.FormatBool(state.Pressed)},
	)
	button.AppendChild(label)
	return button, nil
}
