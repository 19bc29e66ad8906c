package sunder

// Backend is a rendering target.
//
// The error type of a backend is whatever concrete error its operations
// return; the output type is the O parameter of [RenderedWidget]. Concrete
// backends add their own drawing and context accessors outside this contract.
type Backend interface {
	// Kind names the backend in diagnostics ("canvas", "html").
	Kind() string
}
