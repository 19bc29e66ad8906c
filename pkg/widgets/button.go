package widgets

import "github.com/go-drift/sunder/pkg/sunder"

// PushButton is a label drawn in a themed box that shows whether it is
// held down.
type PushButton struct {
	Label Label
}

// ButtonState is the immediate state of a PushButton.
type ButtonState struct {
	Pressed bool
}

var _ sunder.Widget[ButtonState] = (*PushButton)(nil)

// HandleEvent presses the button on PointerDown and releases it on
// PointerUp. It reports true only when Pressed changed, so pressing a
// button that is already down needs no redraw.
func (b *PushButton) HandleEvent(state *ButtonState, ev sunder.Event) bool {
	switch ev.(type) {
	case sunder.PointerDown:
		if state.Pressed {
			return false
		}
		state.Pressed = true
		return true
	case sunder.PointerUp:
		if !state.Pressed {
			return false
		}
		state.Pressed = false
		return true
	default:
		return false
	}
}

// Canvas binds the button to the canvas backend.
func (b *PushButton) Canvas() ButtonCanvas {
	return ButtonCanvas{button: b}
}

// HTML binds the button to the HTML backend.
func (b *PushButton) HTML() ButtonHTML {
	return ButtonHTML{button: b}
}
