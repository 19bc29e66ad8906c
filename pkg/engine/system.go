// Package engine drives the redraw loop for one widget tree.
//
// A [Mount] owns a widget together with its immediate state and cache. Its
// [Mount.Run] loop draws the widget through a [System], surfaces any failure
// and then waits for the system to ask for the next frame. Input events
// arrive through [Mount.HandleEvent], usually from another goroutine; the
// mount serializes them with rendering.
package engine

import (
	"github.com/go-drift/sunder/pkg/graphics"
	"github.com/go-drift/sunder/pkg/sunder"
)

// DrawParameters describes the frame being drawn.
type DrawParameters struct {
	// Frame counts draws on the system, starting at 1.
	Frame uint64
	// Size is the size of the target surface, if it has one.
	Size graphics.Size
}

// System is the host a widget tree is drawn into.
type System[B sunder.Backend, O any] interface {
	// Draw runs fn with a backend valid for the duration of the call and
	// returns what fn returned, or an error if the backend was unavailable.
	Draw(fn func(backend B, params DrawParameters) (O, error)) (O, error)

	// RedrawRequested delivers a value whenever the host wants a new frame.
	RedrawRequested() <-chan struct{}
}

// RedrawRequester is implemented by systems that accept redraw requests from
// their widgets, for example after an event changed immediate state.
type RedrawRequester interface {
	RequestRedraw()
}

// Signal is a coalescing redraw signal: any number of requests made before
// the receiver wakes up produce one wake-up.
type Signal chan struct{}

// NewSignal returns a ready Signal.
func NewSignal() Signal {
	return make(Signal, 1)
}

// RequestRedraw implements RedrawRequester without blocking.
func (s Signal) RequestRedraw() {
	select {
	case s <- struct{}{}:
	default:
	}
}

// RedrawRequested returns the receive side of the signal.
func (s Signal) RedrawRequested() <-chan struct{} {
	return s
}
