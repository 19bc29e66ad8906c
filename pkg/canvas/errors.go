package canvas

import "errors"

var (
	// ErrNoSurface is returned when a backend has nothing to draw into.
	ErrNoSurface = errors.New("no drawing surface")
	// ErrNoFont is returned when the theme font cannot be loaded.
	ErrNoFont = errors.New("no font face")
	// ErrInvalidWidth is returned for negative or non-finite layout widths.
	ErrInvalidWidth = errors.New("invalid max width")
	// ErrUnsupported is returned when the surface lacks an operation.
	ErrUnsupported = errors.New("operation not supported by surface")
)

// Error is the error type of the canvas backend.
type Error struct {
	// Op is the backend operation that failed ("layout", "draw box").
	Op  string
	Err error
}

func (e *Error) Error() string {
	return "canvas: " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
