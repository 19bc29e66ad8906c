// Package widgets provides the concrete widgets: a text Label and a
// PushButton.
//
// # Descriptions, State and Caches
//
// A widget value such as [Label] is a description: plain data owned by the
// application and changed freely between frames. Interaction state lives in a
// separate value ([ButtonState]) and derived backend data lives in a cache
// ([LabelCanvasCache], [ButtonHTMLCache], ...). All three zero values are
// ready to use:
//
//	label := &widgets.Label{Text: "Hello, world!"}
//	view := label.Canvas()
//	var cache widgets.LabelCanvasCache
//	size, err := view.Rectangle(&cache, backend)
//
// Caches compare the description they were built from with the live one on
// every call and rebuild only when something changed.
//
// # Backends
//
// Each widget has one view per backend. Canvas() binds it to *canvas.Backend
// and draws with gg; HTML() binds it to *dom.Backend and produces an
// *html.Node. The views implement sunder.RenderedWidget and can be mounted
// with engine.NewMount.
package widgets
