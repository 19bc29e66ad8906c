package widgets

import (
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/go-drift/sunder/pkg/dom"
	"github.com/go-drift/sunder/pkg/graphics"
	"github.com/go-drift/sunder/pkg/sunder"
	"github.com/go-drift/sunder/pkg/theme"
)

// LabelHTML is a Label rendered as an HTML span.
type LabelHTML struct {
	label *Label
}

var _ sunder.RenderedWidget[LabelState, LabelHTMLCache, *dom.Backend, *html.Node] = LabelHTML{}

// LabelHTMLCache holds the estimated size of a label. The zero value is empty.
type LabelHTMLCache struct {
	key   htmlLabelKey
	size  graphics.Size
	valid bool

	// Builds counts how many times the size was measured.
	Builds int
}

type htmlLabelKey struct {
	text     string
	maxWidth float64
	theme    *theme.Theme
}

func (c *LabelHTMLCache) populate(l *Label, b *dom.Backend) error {
	key := htmlLabelKey{text: l.Text, maxWidth: l.MaxWidth, theme: b.Theme()}
	if c.valid && c.key == key {
		return nil
	}
	size, err := b.Measure(l.Text, l.MaxWidth)
	if err != nil {
		return err
	}
	c.key, c.size, c.valid = key, size, true
	c.Builds++
	return nil
}

// HandleEvent implements sunder.Widget.
func (v LabelHTML) HandleEvent(state *LabelState, ev sunder.Event) bool {
	return v.label.HandleEvent(state, ev)
}

// Rectangle implements sunder.RenderedWidget.
func (v LabelHTML) Rectangle(cache *LabelHTMLCache, b *dom.Backend) (graphics.Size, error) {
	if err := cache.populate(v.label, b); err != nil {
		return graphics.Size{}, err
	}
	return cache.size, nil
}

// Render returns <span class="sunder-label">text</span>.
func (v LabelHTML) Render(_ *LabelState, cache *LabelHTMLCache, b *dom.Backend) (*html.Node, error) {
	if err := cache.populate(v.label, b); err != nil {
		return nil, err
	}
	var attrs []html.Attribute
	if v.label.MaxWidth > 0 {
		attrs = append(attrs, html.Attribute{
			Key: "style",
			Val: "max-width: " + strconv.FormatFloat(v.label.MaxWidth, 'f', -1, 64) + "px",
		})
	}
	span := b.Element(atom.Span, dom.ClassLabel, attrs...)
	span.AppendChild(b.Text(v.label.Text))
	return span, nil
}
