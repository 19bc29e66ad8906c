package sunder

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards every record. Enabled reports
// false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the diagnostic logger shared by sunder packages.
// By default nothing is logged. Pass nil to restore that.
//
// Levels used:
//   - [slog.LevelDebug]: cache rebuilds, frame timings
//   - [slog.LevelInfo]: surface and theme lifecycle
//   - [slog.LevelWarn]: recoverable problems such as a theme reload failure
//
// Errors that must reach the user go through package errors instead.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current diagnostic logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
