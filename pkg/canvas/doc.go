// Package canvas is the vector-graphics backend, drawing through a
// github.com/gogpu/gg context.
//
// A Backend borrows a [Surface] and a theme for the duration of one render
// pass. Any *gg.Context works as a Surface, and so does a
// *recording.Recorder, which captures the drawing commands instead of
// rasterizing them. Successful renders produce struct{}; failures are
// *Error values.
package canvas
