// Package shapes holds small geometric value types used by serialization
// round-trip tests and examples.
package shapes

// Rect is a rectangle with readable dimensions.
type Rect struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect returns a rectangle with the given dimensions.
func NewRect(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// Area returns width multiplied by height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}
