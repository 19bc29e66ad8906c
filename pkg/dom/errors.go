package dom

// Error is the error type of the HTML backend.
type Error struct {
	msg string
	err error
}

func errMsg(msg string) *Error {
	return &Error{msg: msg}
}

func (e *Error) Error() string {
	if e.err != nil {
		return "html: " + e.msg + ": " + e.err.Error()
	}
	return "html: " + e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}
