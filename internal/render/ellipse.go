package render

import (
	"math"

	"chosenoffset.com/crushhouse/internal/core/geom"
)

// EllipsePolygon approximates an ellipse with a closed polygon. The vertex
// count grows with the radius so small specks stay cheap.
func EllipsePolygon(cx, cy, rx, ry float64) geom.Polygon {
	segments := int(math.Ceil(math.Max(rx, ry) * 1.5))
	if segments < 8 {
		segments = 8
	}
	if segments > 96 {
		segments = 96
	}

	poly := make(geom.Polygon, segments)
	for i := range poly {
		a := 2 * math.Pi * float64(i) / float64(segments)
		poly[i] = geom.Point{X: cx + math.Cos(a)*rx, Y: cy + math.Sin(a)*ry}
	}
	return poly
}
