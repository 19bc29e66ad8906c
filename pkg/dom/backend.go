// Package dom is the HTML backend. Widgets render into golang.org/x/net/html
// node trees; a successful render produces the *html.Node for the widget.
//
// Browsers lay out HTML themselves, so sizes reported through this backend
// are estimates made with the theme font. They match what the canvas
// backend reports for the same theme.
package dom

import (
	"math"

	"github.com/gogpu/gg/text"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/go-drift/sunder/pkg/graphics"
	"github.com/go-drift/sunder/pkg/sunder"
	"github.com/go-drift/sunder/pkg/theme"
)

// Stats counts the work a Backend has done.
type Stats struct {
	Measures int
	Elements int
}

// Backend creates HTML nodes for widgets.
type Backend struct {
	theme *theme.Theme
	face  text.Face
	stats Stats
}

var _ sunder.Backend = (*Backend)(nil)

// New returns an HTML backend. A nil theme selects theme.Default().
func New(th *theme.Theme) *Backend {
	if th == nil {
		th = theme.Default()
	}
	return &Backend{theme: th}
}

// Kind implements sunder.Backend.
func (b *Backend) Kind() string { return "html" }

// Theme returns the theme used for measurement.
func (b *Backend) Theme() *theme.Theme { return b.theme }

// Stats returns counters for the work done so far.
func (b *Backend) Stats() Stats { return b.stats }

// Element returns a new element with the given class and extra attributes.
func (b *Backend) Element(tag atom.Atom, class string, attrs ...html.Attribute) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: tag, Data: tag.String()}
	if class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	}
	n.Attr = append(n.Attr, attrs...)
	b.stats.Elements++
	return n
}

// Text returns a text node. Escaping happens when the tree is rendered.
func (b *Backend) Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Measure estimates the size s occupies with the theme font, wrapping at
// maxWidth when it is positive.
func (b *Backend) Measure(s string, maxWidth float64) (graphics.Size, error) {
	if maxWidth < 0 || math.IsNaN(maxWidth) || math.IsInf(maxWidth, 0) {
		return graphics.Size{}, errMsg("invalid max width")
	}
	if b.face == nil {
		face, err := b.theme.Face()
		if err != nil {
			return graphics.Size{}, &Error{msg: "no font face", err: err}
		}
		b.face = face
	}
	b.stats.Measures++
	if s == "" {
		return graphics.Size{}, nil
	}

	var lines []string
	if maxWidth > 0 {
		for _, r := range text.WrapText(s, b.face, maxWidth, text.WrapWordChar) {
			lines = append(lines, r.Text)
		}
	} else {
		lines = splitLines(s)
	}
	var width float64
	for _, l := range lines {
		width = math.Max(width, b.face.Advance(l))
	}
	height := b.face.Metrics().LineHeight() * float64(len(lines))
	return graphics.SizeFromFloat(math.Ceil(width), math.Ceil(height)), nil
}
