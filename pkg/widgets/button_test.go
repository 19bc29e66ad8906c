package widgets_test

import (
	"math"
	"testing"

	"github.com/gogpu/gg/recording"
	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/sunder/pkg/canvas"
	"github.com/go-drift/sunder/pkg/graphics"
	"github.com/go-drift/sunder/pkg/sunder"
	sundertest "github.com/go-drift/sunder/pkg/testing"
	"github.com/go-drift/sunder/pkg/theme"
	"github.com/go-drift/sunder/pkg/widgets"
)

func TestPushButton_HandleEvent(t *testing.T) {
	at := graphics.Offset{X: 3, Y: 3}
	steps := []struct {
		name        string
		ev          sunder.Event
		wantRedraw  bool
		wantPressed bool
	}{
		{"move while released", sunder.PointerMove{At: at}, false, false},
		{"release while released", sunder.PointerUp{At: at}, false, false},
		{"press", sunder.PointerDown{At: at}, true, true},
		{"press again", sunder.PointerDown{At: at}, false, true},
		{"move while pressed", sunder.PointerMove{At: at}, false, true},
		{"release", sunder.PointerUp{At: at}, true, false},
	}

	button := &widgets.PushButton{Label: widgets.Label{Text: "OK"}}
	var state widgets.ButtonState
	for _, step := range steps {
		if got := button.HandleEvent(&state, step.ev); got != step.wantRedraw {
			t.Errorf("%s: HandleEvent() = %v, want %v", step.name, got, step.wantRedraw)
		}
		if state.Pressed != step.wantPressed {
			t.Errorf("%s: Pressed = %v, want %v", step.name, state.Pressed, step.wantPressed)
		}
	}
}

func TestButtonCanvas_Size(t *testing.T) {
	th := theme.Default()
	rec := recording.NewRecorder(400, 200)
	backend := canvas.New(rec, th)
	button := &widgets.PushButton{Label: widgets.Label{Text: "Submit"}}
	var cache widgets.ButtonCanvasCache

	size, err := button.Canvas().Rectangle(&cache, backend)
	if err != nil {
		t.Fatalf("Rectangle: %v", err)
	}
	label := naturalSize(t, "Submit")
	pad := uint32(math.Ceil(th.Button.Padding))
	want := graphics.Size{Width: label.Width + 2*pad, Height: label.Height + 2*pad}
	if size != want {
		t.Errorf("Rectangle() = %v, want %v (label %v, padding %d)", size, want, label, pad)
	}
	if cache.Label.Builds != 1 {
		t.Errorf("label Builds = %d, want 1", cache.Label.Builds)
	}

	if _, err := button.Canvas().Render(&widgets.ButtonState{}, &cache, backend); err != nil {
		t.Fatalf("Render: %v", err)
	}
	texts := sundertest.TextOps(rec.FinishRecording())
	if len(texts) != 1 {
		t.Fatalf("text draws = %+v", texts)
	}
	left := texts[0].X
	right := float64(size.Width) - left - float64(label.Width)
	if left != right {
		t.Errorf("label inset left=%v right=%v, want equal", left, right)
	}
}

func TestButtonCanvas_SizeSaturates(t *testing.T) {
	th := theme.Default()
	th.Button.Padding = math.Inf(1)
	backend := canvas.New(nil, th)
	button := &widgets.PushButton{Label: widgets.Label{Text: "Huge"}}
	var cache widgets.ButtonCanvasCache

	size, err := button.Canvas().Rectangle(&cache, backend)
	if err != nil {
		t.Fatalf("Rectangle: %v", err)
	}
	if want := (graphics.Size{Width: math.MaxUint32, Height: math.MaxUint32}); size != want {
		t.Errorf("Rectangle() = %v, want %v", size, want)
	}
}

func TestButtonCanvas_Render(t *testing.T) {
	th := theme.Default()
	button := &widgets.PushButton{Label: widgets.Label{Text: "Go"}}

	for _, pressed := range []bool{false, true} {
		rec := recording.NewRecorder(200, 100)
		backend := canvas.New(rec, th)
		var cache widgets.ButtonCanvasCache
		state := widgets.ButtonState{Pressed: pressed}

		if _, err := button.Canvas().Render(&state, &cache, backend); err != nil {
			t.Fatalf("pressed=%v: Render: %v", pressed, err)
		}
		recorded := rec.FinishRecording()
		ops := sundertest.DisplayList(recorded)

		fills := sundertest.Filter(ops, "SetFillStyle")
		if len(fills) == 0 {
			t.Fatalf("pressed=%v: no fill style recorded", pressed)
		}
		want := colorParams(th.ButtonProperties(pressed).Background)
		if diff := cmp.Diff(want, fills[0].Params); diff != "" {
			t.Errorf("pressed=%v: box fill mismatch (-want +got):\n%s", pressed, diff)
		}

		texts := sundertest.TextOps(recorded)
		if len(texts) != 1 || texts[0].Text != "Go" {
			t.Fatalf("pressed=%v: text draws = %+v", pressed, texts)
		}
		pad := math.Ceil(th.Button.Padding)
		if texts[0].X != pad || texts[0].Y != pad+cache.Label.Layout().Ascent {
			t.Errorf("pressed=%v: label at (%v, %v), want inset by %v", pressed, texts[0].X, texts[0].Y, pad)
		}
		if got := sundertest.Count[recording.SaveCommand](recorded); got != 1 {
			t.Errorf("pressed=%v: %d saves, want 1", pressed, got)
		}
		if got := sundertest.Count[recording.RestoreCommand](recorded); got != 1 {
			t.Errorf("pressed=%v: %d restores, want 1", pressed, got)
		}
		if backend.Stats().Boxes != 1 {
			t.Errorf("pressed=%v: Boxes = %d, want 1", pressed, backend.Stats().Boxes)
		}
	}
}

func TestButtonCanvas_CacheSharedAcrossFrames(t *testing.T) {
	backend := canvas.New(recording.NewRecorder(200, 100), nil)
	button := &widgets.PushButton{Label: widgets.Label{Text: "Again"}}
	view := button.Canvas()
	var cache widgets.ButtonCanvasCache
	var state widgets.ButtonState

	for range 3 {
		if _, err := view.Render(&state, &cache, backend); err != nil {
			t.Fatalf("Render: %v", err)
		}
		view.HandleEvent(&state, sunder.PointerDown{})
	}
	if cache.Label.Builds != 1 {
		t.Errorf("label Builds = %d, want 1", cache.Label.Builds)
	}
}

func colorParams(c graphics.Color) map[string]any {
	r, g, b, a := c.RGBAF()
	round := func(v float64) float64 { return math.Round(v*100) / 100 }
	return map[string]any{"r": round(r), "g": round(g), "b": round(b), "a": round(a)}
}
