package geom

// Lerp maps t in [0,1] onto [a,b]. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Translate returns a copy of poly shifted by (dx, dy).
func Translate(poly Polygon, dx, dy float64) Polygon {
	out := make(Polygon, len(poly))
	for i, p := range poly {
		out[i] = Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}
