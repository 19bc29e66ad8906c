package engine

// Stats counts what a Mount has done.
type Stats struct {
	// Frames is the number of frames attempted.
	Frames uint64 `json:"frames"`
	// Errors is the number of frames that failed.
	Errors uint64 `json:"errors"`
	// Events is the number of events received.
	Events uint64 `json:"events"`
	// Redraws is the number of redraw requests made on behalf of the widget.
	Redraws uint64 `json:"redraws"`
}
