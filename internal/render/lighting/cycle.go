package lighting

import (
	"math"

	"chosenoffset.com/crushhouse/internal/core/geom"
)

// Cycle is the day/night phase. Its advance per frame grows with the
// squeeze factor, so the harder the house is squeezed the faster day turns
// to night.
type Cycle struct {
	Phase        float64 // Radians, monotonically increasing until Reset
	BaseRate     float64 // Advance per frame at factor 0
	Acceleration float64 // Extra multiples of BaseRate at factor 1
}

// NewCycle creates a cycle at phase 0.
func NewCycle(baseRate, acceleration float64) *Cycle {
	return &Cycle{BaseRate: baseRate, Acceleration: acceleration}
}

// Rate returns baseRate + factor × baseRate × acceleration.
func (c *Cycle) Rate(factor float64) float64 {
	return c.BaseRate + factor*c.BaseRate*c.Acceleration
}

// Advance moves the phase forward by one frame and returns the new phase.
func (c *Cycle) Advance(factor float64) float64 {
	c.Phase += c.Rate(factor)
	return c.Phase
}

// Reset returns the phase to 0.
func (c *Cycle) Reset() {
	c.Phase = 0
}

// Orbit places the sun and moon on opposite ends of a circle centered on
// area. The sun is at the top when sin(phase) = 1.
type Orbit struct {
	Sun, Moon  geom.Point
	BodyRadius float64
}

// OrbitFor computes the celestial positions for a phase inside area.
func OrbitFor(area geom.Rect, phase float64) Orbit {
	c := area.Center()
	r := area.W * 0.42

	return Orbit{
		Sun:        geom.Point{X: c.X + math.Cos(phase)*r, Y: c.Y - math.Sin(phase)*r},
		Moon:       geom.Point{X: c.X - math.Cos(phase)*r, Y: c.Y + math.Sin(phase)*r},
		BodyRadius: math.Max(2, area.W*0.05),
	}
}
