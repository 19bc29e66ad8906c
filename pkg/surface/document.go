package surface

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/go-drift/sunder/pkg/dom"
	"github.com/go-drift/sunder/pkg/engine"
	"github.com/go-drift/sunder/pkg/graphics"
	"github.com/go-drift/sunder/pkg/theme"
)

// RootID is the id of the element widgets are rendered into.
const RootID = "sunder-root"

var errAttached = errors.New("surface: rendered node already has a parent")

// Document is an engine.System that renders into a standalone HTML page.
type Document struct {
	engine.Signal

	mu      sync.Mutex
	doc     *html.Node
	style   *html.Node
	root    *html.Node
	theme   *theme.Theme
	backend *dom.Backend
	size    graphics.Size
	frames  uint64
}

var _ engine.System[*dom.Backend, *html.Node] = (*Document)(nil)

// NewDocument returns an empty page titled title. A nil theme selects
// theme.Default().
func NewDocument(title string, th *theme.Theme) *Document {
	if th == nil {
		th = theme.Default()
	}
	d := &Document{Signal: engine.NewSignal()}

	d.doc = &html.Node{Type: html.DocumentNode}
	d.doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	htmlEl := element(atom.Html)
	head := element(atom.Head)
	meta := element(atom.Meta)
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	titleEl := element(atom.Title)
	titleEl.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	d.style = element(atom.Style)
	body := element(atom.Body)
	d.root = element(atom.Div)
	d.root.Attr = []html.Attribute{{Key: "id", Val: RootID}}

	head.AppendChild(meta)
	head.AppendChild(titleEl)
	head.AppendChild(d.style)
	body.AppendChild(d.root)
	htmlEl.AppendChild(head)
	htmlEl.AppendChild(body)
	d.doc.AppendChild(htmlEl)

	d.setThemeLocked(th)
	return d
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

// Draw runs fn and, if it succeeds, replaces the content of the root
// element with the returned node. A failed frame leaves the page unchanged.
func (d *Document) Draw(fn func(*dom.Backend, engine.DrawParameters) (*html.Node, error)) (*html.Node, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frames++
	n, err := fn(d.backend, engine.DrawParameters{Frame: d.frames, Size: d.size})
	if err != nil {
		return nil, err
	}
	if n != nil && n.Parent != nil {
		return nil, errAttached
	}
	for c := d.root.FirstChild; c != nil; c = d.root.FirstChild {
		d.root.RemoveChild(c)
	}
	if n != nil {
		d.root.AppendChild(n)
	}
	return n, nil
}

// SetSize records the viewport size passed to widgets in DrawParameters.
func (d *Document) SetSize(size graphics.Size) {
	d.mu.Lock()
	d.size = size
	d.mu.Unlock()
	d.RequestRedraw()
}

// SetTheme replaces the theme and its stylesheet and requests a redraw.
func (d *Document) SetTheme(th *theme.Theme) {
	d.mu.Lock()
	d.setThemeLocked(th)
	d.mu.Unlock()
	d.RequestRedraw()
}

func (d *Document) setThemeLocked(th *theme.Theme) {
	d.theme = th
	d.backend = dom.New(th)
	for c := d.style.FirstChild; c != nil; c = d.style.FirstChild {
		d.style.RemoveChild(c)
	}
	d.style.AppendChild(&html.Node{Type: html.TextNode, Data: dom.Stylesheet(th)})
}

// Theme returns the current theme.
func (d *Document) Theme() *theme.Theme {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.theme
}

// Backend returns the HTML backend frames are rendered with.
func (d *Document) Backend() *dom.Backend {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.backend
}

// WriteTo serializes the page.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	if err := html.Render(bw, d.doc); err != nil {
		return cw.n, err
	}
	err := bw.Flush()
	return cw.n, err
}

// String returns the serialized page.
func (d *Document) String() string {
	var sb strings.Builder
	_, _ = d.WriteTo(&sb)
	return sb.String()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
