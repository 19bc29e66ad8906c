package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

type installed struct{ h ErrorHandler }

var current atomic.Pointer[installed]

// SetHandler installs the handler that receives reported failures.
// Pass nil to restore the default, a zero LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		current.Store(nil)
		return
	}
	current.Store(&installed{h})
}

// Handler returns the installed handler.
func Handler() ErrorHandler {
	if in := current.Load(); in != nil {
		return in.h
	}
	return &LogHandler{}
}

// Report stamps err and hands it to the installed handler. A nil err is ignored.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic stamps err and hands it to the installed handler. A nil err is ignored.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Scope names the place a failure is reported from. Every report made
// through a Scope carries its backend and widget.
type Scope struct {
	Op      string
	Backend string
	Widget  string
}

// Report reports err with the given kind and returns the reported Error.
// A nil err reports nothing and returns nil.
func (s Scope) Report(kind ErrorKind, err error) *Error {
	if err == nil {
		return nil
	}
	e := &Error{
		Op:      s.Op,
		Kind:    kind,
		Backend: s.Backend,
		Widget:  s.Widget,
		Err:     err,
	}
	Report(e)
	return e
}

// Recover must be deferred directly. It stops a panic, reports it, and then
// passes the report to onPanic when onPanic is non-nil.
//
//	defer errors.Scope{Op: "theme.Watch"}.Recover(nil)
func (s Scope) Recover(onPanic func(*PanicError)) {
	r := recover()
	if r == nil {
		return
	}
	e := &PanicError{
		Op:         s.Op,
		Backend:    s.Backend,
		Widget:     s.Widget,
		Value:      r,
		StackTrace: CaptureStack(),
	}
	ReportPanic(e)
	if onPanic != nil {
		onPanic(e)
	}
}

// CaptureStack formats the stack of its caller's caller, one
// "function\n\tfile:line" entry per frame.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var f runtime.Frame
		f, more = frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
	}
	return sb.String()
}
