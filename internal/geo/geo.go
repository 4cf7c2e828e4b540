// Package geo provides the integer geometry value types shared by the
// layout tree, the animation engine, and the renderer.
package geo

// Point is a position in workspace coordinates.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in workspace coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether the rectangle has no drawable area.
// Degenerate rectangles are tolerated throughout the layout pass but
// must never be applied to a real window.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Inset shrinks the rectangle by n on every side. The result may be
// degenerate; callers check Empty before using it.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X:      r.X + n,
		Y:      r.Y + n,
		Width:  r.Width - 2*n,
		Height: r.Height - 2*n,
	}
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}
