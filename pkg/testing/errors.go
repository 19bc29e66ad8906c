package testing

import (
	"sync"

	"github.com/go-drift/sunder/pkg/errors"
)

// ErrorRecorder is an errors.ErrorHandler that keeps everything reported to it.
type ErrorRecorder struct {
	mu     sync.Mutex
	errs   []*errors.Error
	panics []*errors.PanicError
}

// RecordErrors installs a new ErrorRecorder as the errors package handler
// and restores the default handler when the test ends.
func RecordErrors(t interface{ Cleanup(func()) }) *ErrorRecorder {
	r := &ErrorRecorder{}
	errors.SetHandler(r)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return r
}

func (r *ErrorRecorder) HandleError(err *errors.Error) {
	r.mu.Lock()
	r.errs = append(r.errs, err)
	r.mu.Unlock()
}

func (r *ErrorRecorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	r.panics = append(r.panics, err)
	r.mu.Unlock()
}

// Errors returns the reported errors in order.
func (r *ErrorRecorder) Errors() []*errors.Error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.Error(nil), r.errs...)
}

// Panics returns the reported panics in order.
func (r *ErrorRecorder) Panics() []*errors.PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.PanicError(nil), r.panics...)
}
