// Package core provides fundamental types and utilities for the platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Box is an axis-aligned bounding box in continuous world coordinates.
// Simulation entities use it for collision; the renderer projects it to Rect.
type Box struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewBox creates a new box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps reports whether the interiors of two boxes intersect.
// Touching edges do not count as overlap.
func (b Box) Overlaps(other Box) bool {
	return b.X < other.Right() && other.X < b.Right() &&
		b.Y < other.Bottom() && other.Y < b.Bottom()
}

// Scale projects the box onto a cell grid using independent x/y factors.
// Any box with positive size covers at least one cell.
func (b Box) Scale(sx, sy float64) Rect {
	x0, y0 := floor(b.X*sx), floor(b.Y*sy)
	x1, y1 := ceil(b.Right()*sx), ceil(b.Bottom()*sy)
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
}

func floor(v float64) int {
	i := int(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return i
}

func ceil(v float64) int {
	i := int(v)
	if v > 0 && float64(i) != v {
		i++
	}
	return i
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
