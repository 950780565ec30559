// Package entity defines domain entities for the popup lifecycle.
package entity

import "fmt"

// Point is a position in screen coordinates.
type Point struct {
	X, Y int
}

// Size is a width/height pair in screen units.
type Size struct {
	Width, Height int
}

// Rect represents a window's screen position and size.
type Rect struct {
	X, Y          int // Top-left corner on screen
	Width, Height int
}

// Contains reports whether p lies inside r.
// The far edges are exclusive, so a rect of width 10 starting at 0 holds x=0..9.
func (r Rect) Contains(p Point) bool {
	if r.IsEmpty() {
		return false
	}
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// IsEmpty reports whether the rect covers no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Size returns the rect dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// AtLeast returns s grown so that neither dimension is below floor.
func (s Size) AtLeast(floor Size) Size {
	if s.Width < floor.Width {
		s.Width = floor.Width
	}
	if s.Height < floor.Height {
		s.Height = floor.Height
	}
	return s
}
