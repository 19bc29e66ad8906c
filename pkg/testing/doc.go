// Package testing provides helpers for testing widgets and mounts.
//
// # Quick Start
//
// Record what a canvas widget draws and inspect the text it produced:
//
//	rec := recording.NewRecorder(200, 100)
//	backend := canvas.New(rec, theme.Default())
//	label := &widgets.Label{Text: "Hello"}
//	view := label.Canvas()
//	var cache widgets.LabelCanvasCache
//	if _, err := view.Rectangle(&cache, backend); err != nil {
//	    t.Fatal(err)
//	}
//	view.Render(&widgets.LabelState{}, &cache, backend)
//	texts := sundertest.Texts(rec.FinishRecording())
//
// # Driving a Mount
//
// [System] is an in-memory engine.System with a fixed backend. It records
// every frame and accepts redraw requests, so a test can run a
// [engine.Mount] without a window or document:
//
//	sys := sundertest.NewSystem[*canvas.Backend, struct{}](backend, graphics.Size{Width: 200, Height: 100})
//	mount := engine.NewMount(sys, label.Canvas())
//
// [ErrorRecorder] captures what the errors package reports.
package testing
