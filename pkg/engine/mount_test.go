package engine_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-drift/sunder/pkg/engine"
	"github.com/go-drift/sunder/pkg/graphics"
	"github.com/go-drift/sunder/pkg/sunder"
	sundertest "github.com/go-drift/sunder/pkg/testing"
)

type tally struct{}

func (tally) Kind() string { return "tally" }

type gadgetState struct {
	pressed bool
	downs   int
}

type gadgetCache struct {
	measured int
}

// gadget is a minimal pressable widget whose failures can be switched on.
type gadget struct {
	size     graphics.Size
	err      error
	panicked bool
}

func (p *gadget) HandleEvent(s *gadgetState, ev sunder.Event) bool {
	if _, ok := ev.(sunder.PointerDown); !ok {
		return false
	}
	s.downs++
	if s.pressed {
		return false
	}
	s.pressed = true
	return true
}

func (p *gadget) Rectangle(c *gadgetCache, _ tally) (graphics.Size, error) {
	if p.err != nil {
		return graphics.Size{}, p.err
	}
	c.measured++
	return p.size, nil
}

func (p *gadget) Render(s *gadgetState, c *gadgetCache, _ tally) (string, error) {
	if p.panicked {
		panic("boom")
	}
	return fmt.Sprintf("pressed=%v measured=%d", s.pressed, c.measured), nil
}

func newGadgetMount(w *gadget, opts ...engine.Option) (*engine.Mount[gadgetState, gadgetCache, tally, string], *sundertest.System[tally, string]) {
	sys := sundertest.NewSystem[tally, string](tally{}, graphics.Size{Width: 100, Height: 100})
	return engine.NewMount[gadgetState, gadgetCache, tally, string](sys, w, opts...), sys
}

func waitDrawn(t *testing.T, sys *sundertest.System[tally, string]) {
	t.Helper()
	select {
	case <-sys.Drawn():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a frame")
	}
}

func TestMount_DrawFrame(t *testing.T) {
	m, sys := newGadgetMount(&gadget{size: graphics.Size{Width: 10, Height: 20}})

	out, err := m.DrawFrame()
	if err != nil {
		t.Fatalf("DrawFrame: %v", err)
	}
	if out != "pressed=false measured=1" {
		t.Errorf("output = %q", out)
	}
	if got := m.Bounds(); got != (graphics.Size{Width: 10, Height: 20}) {
		t.Errorf("Bounds() = %v", got)
	}
	if sys.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", sys.Frames())
	}
	if st := m.Stats(); st.Frames != 1 || st.Errors != 0 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestMount_HandleEventRequestsRedraw(t *testing.T) {
	m, sys := newGadgetMount(&gadget{size: graphics.Size{Width: 10, Height: 10}})
	if _, err := m.DrawFrame(); err != nil {
		t.Fatalf("DrawFrame: %v", err)
	}

	if !m.HandleEvent(sunder.PointerDown{At: graphics.Offset{X: 5, Y: 5}}) {
		t.Fatal("first press should change state")
	}
	select {
	case <-sys.RedrawRequested():
	default:
		t.Fatal("expected a redraw request")
	}
	if !m.State().pressed {
		t.Error("state not updated")
	}

	if m.HandleEvent(sunder.PointerDown{At: graphics.Offset{X: 5, Y: 5}}) {
		t.Error("second press should not need a redraw")
	}
	select {
	case <-sys.RedrawRequested():
		t.Error("unexpected redraw request")
	default:
	}
	if st := m.Stats(); st.Events != 2 || st.Redraws != 1 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestMount_PointerDownOutsideBounds(t *testing.T) {
	m, _ := newGadgetMount(&gadget{size: graphics.Size{Width: 10, Height: 10}})

	if m.HandleEvent(sunder.PointerDown{At: graphics.Offset{X: 1, Y: 1}}) {
		t.Error("press before the first frame should be dropped")
	}
	if _, err := m.DrawFrame(); err != nil {
		t.Fatalf("DrawFrame: %v", err)
	}
	if m.HandleEvent(sunder.PointerDown{At: graphics.Offset{X: 10, Y: 5}}) {
		t.Error("press on the right edge should be dropped")
	}
	if got := m.State().downs; got != 0 {
		t.Errorf("widget saw %d presses, want 0", got)
	}
}

func TestMount_RunReportsAndContinues(t *testing.T) {
	rec := sundertest.RecordErrors(t)
	failure := stderrors.New("measure failed")
	m, sys := newGadgetMount(&gadget{err: failure})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	waitDrawn(t, sys)
	sys.RequestRedraw()
	waitDrawn(t, sys)
	cancel()

	select {
	case err := <-done:
		if !stderrors.Is(err, context.Canceled) {
			t.Errorf("Run() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	errs := rec.Errors()
	if len(errs) < 2 {
		t.Fatalf("reported %d errors, want at least 2", len(errs))
	}
	if !stderrors.Is(errs[0], failure) {
		t.Errorf("reported %v, want wrapped %v", errs[0], failure)
	}
	if errs[0].Backend != "tally" {
		t.Errorf("Backend = %q, want tally", errs[0].Backend)
	}
}

func TestMount_RunAbortOnError(t *testing.T) {
	rec := sundertest.RecordErrors(t)
	failure := stderrors.New("measure failed")
	m, _ := newGadgetMount(&gadget{err: failure}, engine.WithErrorPolicy(engine.AbortOnError))

	err := m.Run(context.Background())
	if !stderrors.Is(err, failure) {
		t.Fatalf("Run() = %v, want %v", err, failure)
	}
	if len(rec.Errors()) != 1 {
		t.Errorf("reported %d errors, want 1", len(rec.Errors()))
	}
}

func TestMount_RenderPanic(t *testing.T) {
	rec := sundertest.RecordErrors(t)
	m, _ := newGadgetMount(&gadget{size: graphics.Size{Width: 1, Height: 1}, panicked: true})

	_, err := m.DrawFrame()
	if !stderrors.Is(err, engine.ErrRenderPanic) {
		t.Fatalf("DrawFrame() = %v, want ErrRenderPanic", err)
	}
	panics := rec.Panics()
	if len(panics) != 1 {
		t.Fatalf("reported %d panics, want 1", len(panics))
	}
	if p := panics[0]; p.Op != "engine.Mount.DrawFrame" || p.Widget != "*engine_test.gadget" || p.Backend != "tally" {
		t.Errorf("panic reported as %s backend=%s widget=%s", p.Op, p.Backend, p.Widget)
	}
	if st := m.Stats(); st.Errors != 1 {
		t.Errorf("Errors = %d, want 1", st.Errors)
	}
}

func TestMount_SystemUnavailable(t *testing.T) {
	rec := sundertest.RecordErrors(t)
	m, sys := newGadgetMount(&gadget{size: graphics.Size{Width: 1, Height: 1}})
	gone := stderrors.New("surface lost")
	sys.SetUnavailable(gone)

	if _, err := m.DrawFrame(); !stderrors.Is(err, gone) {
		t.Fatalf("DrawFrame() = %v, want %v", err, gone)
	}
	if len(rec.Errors()) != 1 {
		t.Errorf("reported %d errors, want 1", len(rec.Errors()))
	}

	sys.SetUnavailable(nil)
	if _, err := m.DrawFrame(); err != nil {
		t.Fatalf("DrawFrame after restore: %v", err)
	}
}

func TestMount_Update(t *testing.T) {
	w := &gadget{size: graphics.Size{Width: 1, Height: 1}}
	m, sys := newGadgetMount(w)

	m.Update(func() { w.size = graphics.Size{Width: 3, Height: 4} })
	select {
	case <-sys.RedrawRequested():
	default:
		t.Fatal("Update should request a redraw")
	}
	if _, err := m.DrawFrame(); err != nil {
		t.Fatalf("DrawFrame: %v", err)
	}
	if got := m.Bounds(); got != (graphics.Size{Width: 3, Height: 4}) {
		t.Errorf("Bounds() = %v", got)
	}
}

func TestMount_UpdatePanicReleasesLock(t *testing.T) {
	w := &gadget{size: graphics.Size{Width: 1, Height: 1}}
	m, sys := newGadgetMount(w)

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Errorf("recovered %v, want boom", r)
			}
		}()
		m.Update(func() { panic("boom") })
	}()

	done := make(chan engine.Stats, 1)
	go func() { done <- m.Stats() }()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("mount still locked after Update panicked")
	}
	select {
	case <-sys.RedrawRequested():
		t.Error("a panicked Update should not request a redraw")
	default:
	}
	if _, err := m.DrawFrame(); err != nil {
		t.Fatalf("DrawFrame after panicked Update: %v", err)
	}
}

func TestSignal_Coalesces(t *testing.T) {
	s := engine.NewSignal()
	for range 3 {
		s.RequestRedraw()
	}
	<-s.RedrawRequested()
	select {
	case <-s.RedrawRequested():
		t.Error("requests were not coalesced")
	default:
	}
}

func TestMount_Measure(t *testing.T) {
	w := &gadget{size: graphics.Size{Width: 8, Height: 8}}
	m, _ := newGadgetMount(w)

	size, err := m.Measure(tally{})
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if size != w.size {
		t.Errorf("Measure() = %v, want %v", size, w.size)
	}
	if !m.HandleEvent(sunder.PointerDown{At: graphics.Offset{X: 1, Y: 1}}) {
		t.Error("press inside measured bounds should be delivered")
	}
}
