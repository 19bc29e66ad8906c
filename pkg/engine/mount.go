package engine

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-drift/sunder/pkg/errors"
	"github.com/go-drift/sunder/pkg/graphics"
	"github.com/go-drift/sunder/pkg/sunder"
)

// ErrRenderPanic is returned for a frame whose widget panicked.
var ErrRenderPanic = stderrors.New("widget panicked during render")

// ErrorPolicy selects what Run does with a failed frame.
type ErrorPolicy int

const (
	// ReportErrors hands failures to the errors package handler and keeps
	// the loop running.
	ReportErrors ErrorPolicy = iota
	// AbortOnError reports the failure and returns it from Run.
	AbortOnError
)

type options struct {
	policy ErrorPolicy
	logger *slog.Logger
}

// Option configures a Mount.
type Option func(*options)

// WithErrorPolicy sets how Run treats render failures. The default is ReportErrors.
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithLogger sets the logger for frame diagnostics. The default is sunder.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Mount binds a widget, its immediate state and its cache to a System.
//
// Rendering and event handling are serialized by an internal mutex, so
// HandleEvent and Update may be called from any goroutine while Run is active.
type Mount[S, C any, B sunder.Backend, O any] struct {
	mu     sync.Mutex
	widget sunder.RenderedWidget[S, C, B, O]
	state  S
	cache  C
	bounds graphics.Size
	drawn  bool

	system System[B, O]
	opts   options
	stats  Stats
}

// NewMount creates a mount with default immediate state and an empty cache.
func NewMount[S, C any, B sunder.Backend, O any](system System[B, O], widget sunder.RenderedWidget[S, C, B, O], opts ...Option) *Mount[S, C, B, O] {
	m := &Mount[S, C, B, O]{widget: widget, system: system}
	for _, opt := range opts {
		opt(&m.opts)
	}
	if m.opts.logger == nil {
		m.opts.logger = sunder.Logger()
	}
	return m
}

// Run draws the widget, then waits for a redraw request and draws again,
// until ctx is done. Failed frames are reported; under AbortOnError the
// first failure is also returned.
func (m *Mount[S, C, B, O]) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := m.DrawFrame(); err != nil && m.opts.policy == AbortOnError {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.system.RedrawRequested():
		}
	}
}

// DrawFrame measures and renders the widget once. Failures are reported
// to the errors package handler and returned unchanged.
func (m *Mount[S, C, B, O]) DrawFrame() (O, error) {
	start := time.Now()
	scope := errors.Scope{Op: "engine.Mount.DrawFrame", Widget: fmt.Sprintf("%T", m.widget)}
	out, err := m.system.Draw(func(backend B, params DrawParameters) (out O, err error) {
		scope.Backend = backend.Kind()
		m.mu.Lock()
		defer m.mu.Unlock()
		defer scope.Recover(func(*errors.PanicError) { err = ErrRenderPanic })

		size, err := m.widget.Rectangle(&m.cache, backend)
		if err != nil {
			return out, err
		}
		m.bounds = size
		m.drawn = true
		return m.widget.Render(&m.state, &m.cache, backend)
	})

	m.mu.Lock()
	m.stats.Frames++
	if err != nil {
		m.stats.Errors++
	}
	m.mu.Unlock()

	if err != nil {
		scope.Report(errors.KindRender, err)
		return out, err
	}
	m.opts.logger.Debug("frame drawn", "backend", scope.Backend, "elapsed", time.Since(start))
	return out, nil
}

// Measure refreshes the cache against backend and returns the widget size
// without rendering. The result becomes the bounds used for hit testing.
func (m *Mount[S, C, B, O]) Measure(backend B) (graphics.Size, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	size, err := m.widget.Rectangle(&m.cache, backend)
	if err != nil {
		return graphics.Size{}, err
	}
	m.bounds = size
	m.drawn = true
	return size, nil
}

// HandleEvent delivers ev to the widget and requests a redraw if the widget
// says one is needed.
//
// A PointerDown outside the bounds measured by the last frame, or before
// any frame was drawn, is not delivered. Moves and releases are always
// delivered so a widget can leave a pressed state.
func (m *Mount[S, C, B, O]) HandleEvent(ev sunder.Event) bool {
	m.mu.Lock()
	m.stats.Events++
	if _, down := ev.(sunder.PointerDown); down {
		if !m.drawn || !graphics.RectangleFromSize(m.bounds).Contains(ev.Position()) {
			m.mu.Unlock()
			return false
		}
	}
	changed := m.handleLocked(ev)
	m.mu.Unlock()

	if changed {
		m.requestRedraw()
	}
	return changed
}

func (m *Mount[S, C, B, O]) handleLocked(ev sunder.Event) (changed bool) {
	defer errors.Scope{Op: "engine.Mount.HandleEvent", Widget: fmt.Sprintf("%T", m.widget)}.Recover(func(*errors.PanicError) { changed = false })
	return m.widget.HandleEvent(&m.state, ev)
}

// Update runs fn while holding the mount lock, then requests a redraw.
// Use it to change the widget description while Run is active. A panic in
// fn propagates to the caller with the lock released and no redraw requested.
func (m *Mount[S, C, B, O]) Update(fn func()) {
	func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		fn()
	}()
	m.requestRedraw()
}

func (m *Mount[S, C, B, O]) requestRedraw() {
	r, ok := m.system.(RedrawRequester)
	if !ok {
		return
	}
	m.mu.Lock()
	m.stats.Redraws++
	m.mu.Unlock()
	r.RequestRedraw()
}

// State returns a copy of the current immediate state.
func (m *Mount[S, C, B, O]) State() S {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Bounds returns the size measured by the last successful frame.
func (m *Mount[S, C, B, O]) Bounds() graphics.Size {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bounds
}

// Stats returns a snapshot of the mount counters.
func (m *Mount[S, C, B, O]) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}
