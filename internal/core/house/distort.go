package house

import (
	"chosenoffset.com/crushhouse/internal/core/geom"
	"chosenoffset.com/crushhouse/internal/dice"
)

// Distorter maps parts into pixel space and shakes them. Jitter is drawn
// fresh on every call and never stored.
type Distorter struct {
	MaxJitter float64 // Jitter range in pixels at full squeeze
	roller    *dice.Roller
}

// NewDistorter creates a Distorter drawing its jitter from roller.
func NewDistorter(maxJitter float64, roller *dice.Roller) *Distorter {
	return &Distorter{MaxJitter: maxJitter, roller: roller}
}

// Offset draws one jitter component. The range is lerp(0, MaxJitter, factor)
// and the draw is scaled by factor again, so the result always lies within
// ±MaxJitter×factor (and reaches ±MaxJitter only at full squeeze).
func (d *Distorter) Offset(factor float64) float64 {
	magnitude := geom.Lerp(0, d.MaxJitter, factor)
	return d.roller.Spread(magnitude) * factor
}

// Transform scales p into a w×h area whose origin is (0,0) and jitters every
// vertex independently. Rectangles yield TL, TR, BR, BL; triangles keep
// their vertex order. A degenerate area yields nil.
func (d *Distorter) Transform(p Part, w, h, factor float64) geom.Polygon {
	if w <= 0 || h <= 0 {
		return nil
	}

	poly := p.anchors(w, h)
	for i := range poly {
		poly[i].X += d.Offset(factor)
		poly[i].Y += d.Offset(factor)
	}
	return poly
}

// TransformAll runs Transform over parts. The result is index-aligned with
// parts; a degenerate area yields nil.
func (d *Distorter) TransformAll(parts []Part, w, h, factor float64) []geom.Polygon {
	if w <= 0 || h <= 0 {
		return nil
	}

	out := make([]geom.Polygon, len(parts))
	for i, p := range parts {
		out[i] = d.Transform(p, w, h, factor)
	}
	return out
}
