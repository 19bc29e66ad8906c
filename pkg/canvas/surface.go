package canvas

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
)

// Surface is the subset of the gg drawing API the backend uses.
type Surface interface {
	Push()
	Pop()
	Translate(x, y float64)
	SetRGBA(r, g, b, a float64)
	SetLineWidth(width float64)
	SetFont(face text.Face)
	DrawRoundedRectangle(x, y, w, h, r float64)
	DrawString(s string, x, y float64)
}

var (
	_ Surface = (*gg.Context)(nil)
	_ Surface = (*recording.Recorder)(nil)
)

// gg.Context reports path errors from Fill and Stroke; the recorder cannot fail.
type (
	fallibleFiller   interface{ Fill() error }
	infallibleFiller interface{ Fill() }
	fallibleStroker  interface{ Stroke() error }
	infallibleStroke interface{ Stroke() }
)

func fill(s Surface) error {
	switch f := s.(type) {
	case fallibleFiller:
		return f.Fill()
	case infallibleFiller:
		f.Fill()
		return nil
	}
	return ErrUnsupported
}

func stroke(s Surface) error {
	switch f := s.(type) {
	case fallibleStroker:
		return f.Stroke()
	case infallibleStroke:
		f.Stroke()
		return nil
	}
	return ErrUnsupported
}
