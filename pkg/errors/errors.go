// Package errors provides structured error reporting for sunder.
//
// Rendering code never wraps backend errors on the way back to its caller.
// The types here describe a failure once it reaches a place that must surface
// it, such as the redraw loop, which hands it to the global ErrorHandler.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInit indicates a backend or surface that was not ready.
	KindInit
	// KindConfig indicates an invalid theme or configuration file.
	KindConfig
	// KindLayout indicates a measurement failure.
	KindLayout
	// KindRender indicates a rendering error.
	KindRender
	// KindEvent indicates an event delivery failure.
	KindEvent
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindConfig:
		return "config"
	case KindLayout:
		return "layout"
	case KindRender:
		return "render"
	case KindEvent:
		return "event"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error is a reported failure.
type Error struct {
	// Op is the operation that failed (e.g., "engine.Mount.Run").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Backend is the Kind of the backend involved, if any.
	Backend string
	// Widget is the type name of the widget involved, if any.
	Widget string
	// Err is the underlying error, exactly as the backend returned it.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	switch {
	case e.Backend != "" && e.Widget != "":
		return fmt.Sprintf("%s [%s] backend=%s widget=%s: %v", e.Op, e.Kind, e.Backend, e.Widget, e.Err)
	case e.Backend != "":
		return fmt.Sprintf("%s [%s] backend=%s: %v", e.Op, e.Kind, e.Backend, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.Mount.HandleEvent").
	Op string
	// Backend is the Kind of the backend involved, if any.
	Backend string
	// Widget is the type name of the widget involved, if any.
	Widget string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" && e.Widget != "" {
		return fmt.Sprintf("panic in %s widget=%s: %v", e.Op, e.Widget, e.Value)
	}
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by sunder.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
