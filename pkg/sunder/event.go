package sunder

import "github.com/go-drift/sunder/pkg/graphics"

// Event is an input event delivered to [Widget.HandleEvent].
//
// The set of events grows over time. Widgets must ignore variants they do
// not recognize rather than treat them as errors.
type Event interface {
	// Position is the pointer location relative to the top-left corner of
	// the receiving widget.
	Position() graphics.Offset

	isEvent()
}

// PointerMove reports where the pointer is.
type PointerMove struct {
	At graphics.Offset
}

// PointerDown reports that the primary pointer button went down.
type PointerDown struct {
	At graphics.Offset
}

// PointerUp reports that the primary pointer button was released.
type PointerUp struct {
	At graphics.Offset
}

func (e PointerMove) Position() graphics.Offset { return e.At }
func (e PointerDown) Position() graphics.Offset { return e.At }
func (e PointerUp) Position() graphics.Offset   { return e.At }

func (PointerMove) isEvent() {}
func (PointerDown) isEvent() {}
func (PointerUp) isEvent()   {}

// Translate returns ev with its position shifted by (-dx, -dy), which is how
// a parent forwards an event to a child drawn at (dx, dy).
func Translate(ev Event, dx, dy float64) Event {
	at := ev.Position()
	at.X -= dx
	at.Y -= dy
	switch ev.(type) {
	case PointerDown:
		return PointerDown{At: at}
	case PointerUp:
		return PointerUp{At: at}
	case PointerMove:
		return PointerMove{At: at}
	}
	return ev
}
