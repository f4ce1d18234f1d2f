package scenery

import (
	"image/color"
	"math"

	"chosenoffset.com/crushhouse/internal/core/geom"
	"chosenoffset.com/crushhouse/internal/dice"
	"chosenoffset.com/crushhouse/internal/render"
	"chosenoffset.com/crushhouse/internal/render/lighting"
)

// GroundLevel is where the house body ends, as a fraction of the area height
const GroundLevel = 0.8

var (
	groundColor = color.RGBA{78, 112, 52, 255}
	bladeColor  = color.RGBA{96, 150, 60, 255}
)

// Blade is a single grass blade in area-relative units
type Blade struct {
	X      float64 // Root position across the area
	Height float64 // Fraction of the area height
	Lean   float64 // Resting tilt in radians
	Offset float64 // Sway phase offset
}

// Field is the set of blades for one run. It is regenerated on reset.
type Field struct {
	Blades []Blade
}

// NewField grows count blades spread across the ground.
func NewField(count int, r *dice.Roller) *Field {
	blades := make([]Blade, count)
	for i := range blades {
		blades[i] = Blade{
			X:      r.Float(),
			Height: r.Range(0.03, 0.08),
			Lean:   r.Spread(0.25),
			Offset: r.Range(0, 2*math.Pi),
		}
	}
	return &Field{Blades: blades}
}

// Draw fills the ground strip below the house and strokes each blade. The
// blades sway with the cycle phase, harder as the squeeze rises.
func (f *Field) Draw(dst render.Surface, area geom.Rect, phase, factor, shade float64) {
	groundY := area.Y + area.H*GroundLevel
	dst.FillRect(area.X, groundY, area.W, area.Y+area.H-groundY, lighting.Shade(groundColor, shade))

	sway := 0.15 + 0.35*factor
	stroke := math.Max(1, area.W*0.004)
	bc := lighting.Shade(bladeColor, shade)

	for _, b := range f.Blades {
		x := area.X + b.X*area.W
		length := b.Height * area.H
		tilt := b.Lean + sway*math.Sin(phase*4+b.Offset)
		tipX := x + math.Sin(tilt)*length
		tipY := groundY - math.Cos(tilt)*length
		dst.StrokeLine(x, groundY, tipX, tipY, stroke, bc)
	}
}
