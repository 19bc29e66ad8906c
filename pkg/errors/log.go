package errors

import (
	"context"
	"log/slog"

	"github.com/go-drift/sunder/pkg/sunder"
)

// LogHandler is an ErrorHandler that writes structured records to a slog.Logger.
type LogHandler struct {
	// Logger receives the records. Nil means sunder.Logger() when it logs
	// errors, and slog.Default() otherwise.
	Logger *slog.Logger
	// Verbose adds stack traces to the records.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	if l := sunder.Logger(); l.Enabled(context.Background(), slog.LevelError) {
		return l
	}
	return slog.Default()
}

// HandleError logs an Error at error level.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	attrs := []slog.Attr{
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
	}
	if err.Backend != "" {
		attrs = append(attrs, slog.String("backend", err.Backend))
	}
	if err.Widget != "" {
		attrs = append(attrs, slog.String("widget", err.Widget))
	}
	attrs = append(attrs, slog.Any("err", err.Err))
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	h.logger().LogAttrs(context.Background(), slog.LevelError, "sunder error", attrs...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []slog.Attr{
		slog.String("op", err.Op),
		slog.Any("value", err.Value),
	}
	if err.Backend != "" {
		attrs = append(attrs, slog.String("backend", err.Backend))
	}
	if err.Widget != "" {
		attrs = append(attrs, slog.String("widget", err.Widget))
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	h.logger().LogAttrs(context.Background(), slog.LevelError, "sunder panic", attrs...)
}
