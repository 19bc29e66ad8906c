package sunder

import "github.com/go-drift/sunder/pkg/graphics"

// Widget is the backend-independent half of a widget.
//
// S is the immediate state type. Its zero value must be a usable default,
// because state is created fresh whenever a widget joins a composition.
type Widget[S any] interface {
	// HandleEvent updates state in response to ev and reports whether the
	// change needs a redraw. It must not touch any backend.
	HandleEvent(state *S, ev Event) bool
}

// RenderedWidget is a Widget that can draw itself into backend B.
//
// C is the backend-specific cache type; its zero value is the empty cache.
// O is the value a successful render produces for B.
type RenderedWidget[S, C any, B Backend, O any] interface {
	Widget[S]

	// Rectangle returns the size the widget occupies when drawn at (0, 0),
	// refreshing cache if it is stale. Calling it again with an unchanged
	// description returns the same size without rebuilding the cache.
	Rectangle(cache *C, backend B) (graphics.Size, error)

	// Render draws the widget using state and cache, refreshing cache if it
	// is stale.
	Render(state *S, cache *C, backend B) (O, error)
}

// Static can be embedded by widgets that ignore every event.
type Static struct{}

// HandleEvent never changes anything.
func (Static) HandleEvent(*struct{}, Event) bool { return false }
