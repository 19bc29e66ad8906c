package graphics

import "math"

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a two dimensional extent in whole pixels.
type Size struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// SizeFromFloat converts fractional dimensions to a Size. Values are
// truncated toward zero; negative and NaN inputs become 0 and values past
// the uint32 range saturate.
func SizeFromFloat(width, height float64) Size {
	return Size{Width: toPixels(width), Height: toPixels(height)}
}

// IsEmpty reports whether either dimension is zero.
func (s Size) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

// Grow returns the size enlarged by dx on the left and right and dy on the
// top and bottom. Dimensions saturate at math.MaxUint32.
func (s Size) Grow(dx, dy uint32) Size {
	return Size{Width: grow(s.Width, dx), Height: grow(s.Height, dy)}
}

func grow(v, d uint32) uint32 {
	sum := uint64(v) + 2*uint64(d)
	if sum > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(sum)
}

// Rectangle is an axis-aligned rectangle anchored at its top-left corner.
type Rectangle struct {
	X      int32
	Y      int32
	Width  uint32
	Height uint32
}

// RectangleFromSize returns a rectangle of the given size at the origin.
func RectangleFromSize(size Size) Rectangle {
	return Rectangle{Width: size.Width, Height: size.Height}
}

// Size returns the size of the rectangle.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether the point lies inside the rectangle. The right
// and bottom edges are exclusive.
func (r Rectangle) Contains(p Offset) bool {
	left, top := float64(r.X), float64(r.Y)
	return p.X >= left && p.Y >= top &&
		p.X < left+float64(r.Width) && p.Y < top+float64(r.Height)
}

func toPixels(v float64) uint32 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
