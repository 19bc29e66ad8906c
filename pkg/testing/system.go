package testing

import (
	"sync"

	"github.com/go-drift/sunder/pkg/engine"
	"github.com/go-drift/sunder/pkg/graphics"
	"github.com/go-drift/sunder/pkg/sunder"
)

// System is an in-memory engine.System for tests.
type System[B sunder.Backend, O any] struct {
	engine.Signal

	mu          sync.Mutex
	backend     B
	size        graphics.Size
	frames      uint64
	unavailable error
	outputs     []O
	drawn       chan struct{}
}

var _ engine.System[sunder.Backend, int] = (*System[sunder.Backend, int])(nil)

// NewSystem returns a system that hands backend to every draw.
func NewSystem[B sunder.Backend, O any](backend B, size graphics.Size) *System[B, O] {
	return &System[B, O]{
		Signal:  engine.NewSignal(),
		backend: backend,
		size:    size,
		drawn:   make(chan struct{}, 64),
	}
}

// Draw implements engine.System.
func (s *System[B, O]) Draw(fn func(B, engine.DrawParameters) (O, error)) (O, error) {
	s.mu.Lock()
	if s.unavailable != nil {
		err := s.unavailable
		s.mu.Unlock()
		var zero O
		return zero, err
	}
	s.frames++
	params := engine.DrawParameters{Frame: s.frames, Size: s.size}
	s.mu.Unlock()

	out, err := fn(s.backend, params)

	s.mu.Lock()
	if err == nil {
		s.outputs = append(s.outputs, out)
	}
	s.mu.Unlock()
	select {
	case s.drawn <- struct{}{}:
	default:
	}
	return out, err
}

// SetUnavailable makes subsequent draws fail with err. A nil err restores
// the backend.
func (s *System[B, O]) SetUnavailable(err error) {
	s.mu.Lock()
	s.unavailable = err
	s.mu.Unlock()
}

// Frames returns the number of draws that reached the widget.
func (s *System[B, O]) Frames() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Outputs returns the outputs of successful frames in order.
func (s *System[B, O]) Outputs() []O {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]O(nil), s.outputs...)
}

// Drawn receives a value after each draw that reached the widget.
func (s *System[B, O]) Drawn() <-chan struct{} {
	return s.drawn
}
