// Package geom holds the small set of 2D primitives shared by the squeeze
// timeline, the house transform, and the crack generator.
package geom

// Point represents a 2D point in pixel space (origin top-left, y down)
type Point struct {
	X, Y float64
}

// Polygon is an ordered vertex list. The last vertex implicitly connects
// back to the first.
type Polygon []Point

// Segment is a single stroked line produced by the crack generator
type Segment struct {
	A, B  Point
	Width float64 // Stroke weight in pixels
	Depth int     // Recursion level that emitted the segment (0 = trunk)
}

// Rect is an axis-aligned rectangle
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Empty reports whether the rectangle has no drawable area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Clamp pulls p onto the nearest point inside r.
func (r Rect) Clamp(p Point) Point {
	return Point{
		X: Clamp(p.X, r.X, r.X+r.W),
		Y: Clamp(p.Y, r.Y, r.Y+r.H),
	}
}

// Center returns the middle of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
