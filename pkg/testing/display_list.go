package testing

import (
	"math"

	"github.com/gogpu/gg/recording"
)

// DisplayOp is a readable form of one recorded drawing command.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// DisplayList converts a recording into DisplayOps. Text, rectangles and
// solid colors are expanded into params; other commands carry only their name.
func DisplayList(rec *recording.Recording) []DisplayOp {
	pool := rec.Resources()
	ops := make([]DisplayOp, 0, len(rec.Commands()))
	for _, cmd := range rec.Commands() {
		op := DisplayOp{Op: cmd.Type().String()}
		switch c := cmd.(type) {
		case recording.DrawTextCommand:
			op.Params = map[string]any{"text": c.Text, "x": round2(c.X), "y": round2(c.Y)}
		case recording.SetFillStyleCommand:
			op.Params = brushParams(pool.GetBrush(c.Brush))
		case recording.SetStrokeStyleCommand:
			op.Params = brushParams(pool.GetBrush(c.Brush))
		case recording.SetLineWidthCommand:
			op.Params = map[string]any{"width": round2(c.Width)}
		}
		ops = append(ops, op)
	}
	return ops
}

// Filter returns the ops named op.
func Filter(ops []DisplayOp, op string) []DisplayOp {
	var out []DisplayOp
	for _, o := range ops {
		if o.Op == op {
			out = append(out, o)
		}
	}
	return out
}

// Count returns how many commands of type T rec holds.
func Count[T recording.Command](rec *recording.Recording) int {
	n := 0
	for _, cmd := range rec.Commands() {
		if _, ok := cmd.(T); ok {
			n++
		}
	}
	return n
}

// TextOps returns the text drawing commands of rec in order.
func TextOps(rec *recording.Recording) []recording.DrawTextCommand {
	var out []recording.DrawTextCommand
	for _, cmd := range rec.Commands() {
		if c, ok := cmd.(recording.DrawTextCommand); ok {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns the strings drawn by rec in order.
func Texts(rec *recording.Recording) []string {
	var out []string
	for _, c := range TextOps(rec) {
		out = append(out, c.Text)
	}
	return out
}

func brushParams(b recording.Brush) map[string]any {
	solid, ok := b.(recording.SolidBrush)
	if !ok {
		return nil
	}
	c := solid.Color
	return map[string]any{"r": round2(c.R), "g": round2(c.G), "b": round2(c.B), "a": round2(c.A)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
