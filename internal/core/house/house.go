// Package house describes the house as a set of shapes in coordinates
// relative to the visible area, and turns them into jittered pixel polygons
// every frame.
package house

import (
	"image/color"

	"chosenoffset.com/crushhouse/internal/core/geom"
)

// Part is one filled shape of the house. The set of implementations is closed:
// only Rect and Triangle exist.
type Part interface {
	// Name identifies the part in logs and tests.
	Name() string
	// Fill returns the part's fill color.
	Fill() color.RGBA
	// anchors returns the undistorted vertices scaled to a w×h area.
	anchors(w, h float64) geom.Polygon
}

// Rect is an axis-aligned rectangle in relative coordinates
type Rect struct {
	Label      string
	X, Y, W, H float64 // Origin and size as fractions of the visible area
	Color      color.RGBA
}

// Name returns the part label.
func (r Rect) Name() string { return r.Label }

// Fill returns the part's fill color.
func (r Rect) Fill() color.RGBA { return r.Color }

// anchors yields TL, TR, BR, BL.
func (r Rect) anchors(w, h float64) geom.Polygon {
	x, y := r.X*w, r.Y*h
	ex, ey := x+r.W*w, y+r.H*h
	return geom.Polygon{
		{X: x, Y: y},
		{X: ex, Y: y},
		{X: ex, Y: ey},
		{X: x, Y: ey},
	}
}

// Triangle is three relative vertices, kept in the given order
type Triangle struct {
	Label  string
	Points [3]geom.Point
	Color  color.RGBA
}

// Name returns the part label.
func (t Triangle) Name() string { return t.Label }

// Fill returns the part's fill color.
func (t Triangle) Fill() color.RGBA { return t.Color }

func (t Triangle) anchors(w, h float64) geom.Polygon {
	out := make(geom.Polygon, 3)
	for i, p := range t.Points {
		out[i] = geom.Point{X: p.X * w, Y: p.Y * h}
	}
	return out
}

// Palette holds the house colors
var Palette = struct {
	Body   color.RGBA
	Roof   color.RGBA
	Door   color.RGBA
	Window color.RGBA
}{
	Body:   color.RGBA{200, 180, 150, 255}, // Sandstone
	Roof:   color.RGBA{150, 100, 50, 255},  // Brown shingles
	Door:   color.RGBA{120, 80, 40, 255},   // Dark wood
	Window: color.RGBA{200, 230, 255, 255}, // Pale glass
}

// DefaultParts builds a fresh house. Parts are drawn in slice order, so the
// body must come before the door and windows that sit on top of it.
func DefaultParts() []Part {
	return []Part{
		Rect{Label: "body", X: 0.2, Y: 0.3, W: 0.6, H: 0.5, Color: Palette.Body},
		Triangle{Label: "roof", Points: [3]geom.Point{{X: 0.2, Y: 0.3}, {X: 0.5, Y: 0.1}, {X: 0.8, Y: 0.3}}, Color: Palette.Roof},
		Rect{Label: "door", X: 0.425, Y: 0.55, W: 0.15, H: 0.25, Color: Palette.Door},
		Rect{Label: "left window", X: 0.3, Y: 0.4, W: 0.1, H: 0.1, Color: Palette.Window},
		Rect{Label: "right window", X: 0.6, Y: 0.4, W: 0.1, H: 0.1, Color: Palette.Window},
	}
}
