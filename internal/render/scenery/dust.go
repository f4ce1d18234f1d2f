// Package scenery draws the decorative layers around the house: the ground
// with its grass, and the dust shaken loose under heavy squeeze.
package scenery

import (
	"image/color"
	"math"

	"chosenoffset.com/crushhouse/internal/core/geom"
	"chosenoffset.com/crushhouse/internal/dice"
	"chosenoffset.com/crushhouse/internal/render"
)

// DustColor is a translucent light gray
var DustColor = color.NRGBA{200, 200, 200, 80}

// DustParams controls when and how much dust appears
type DustParams struct {
	Threshold float64 // Dust is drawn only when factor > Threshold
	Count     float64 // Specks at full squeeze
	SizeMin   float64 // Speck diameter range
	SizeMax   float64
}

// DefaultDustParams returns the reference dust settings.
func DefaultDustParams() DustParams {
	return DustParams{Threshold: 0.4, Count: 50, SizeMin: 1, SizeMax: 3}
}

// DustCount returns floor(factor × Count) once the factor is strictly above
// the threshold, and 0 otherwise.
func DustCount(factor float64, p DustParams) int {
	if factor <= p.Threshold {
		return 0
	}
	return int(math.Floor(factor * p.Count))
}

// DrawDust scatters specks at random positions inside area. Positions are
// resampled every frame.
func DrawDust(dst render.Surface, area geom.Rect, factor float64, p DustParams, r *dice.Roller) int {
	n := DustCount(factor, p)
	for i := 0; i < n; i++ {
		size := r.Range(p.SizeMin, p.SizeMax)
		x := area.X + r.Range(0, area.W)
		y := area.Y + r.Range(0, area.H)
		dst.FillEllipse(x, y, size/2, size/2, DustColor)
	}
	return n
}
