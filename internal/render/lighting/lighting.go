// Package lighting resolves the sky color behind the house and the ambient
// light level that shades it. Two resolvers exist: one keyed on the pointer's
// screen quadrant, and one driven by a day/night cycle whose speed rises with
// the squeeze factor.
package lighting

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"chosenoffset.com/crushhouse/internal/core/geom"
)

// Palette holds the four sky colors shared by both resolvers
var Palette = struct {
	Day      color.RGBA
	Sunset   color.RGBA
	Sunrise  color.RGBA
	Midnight color.RGBA
}{
	Day:      color.RGBA{118, 202, 232, 255},
	Sunset:   color.RGBA{191, 72, 29, 255},
	Sunrise:  color.RGBA{143, 179, 161, 255},
	Midnight: color.RGBA{19, 38, 82, 255},
}

// Inputs is everything a resolver may look at for one frame
type Inputs struct {
	Pointer      geom.Point // Pointer position in screen pixels
	ViewW, ViewH float64    // Viewport size
	Phase        float64    // Day/night cycle angle in radians
}

// Resolver picks the sky color for a frame.
type Resolver interface {
	Resolve(in Inputs) color.RGBA
	// Ambient returns the light level in [0, 1] used to shade the house.
	Ambient(in Inputs) float64
}

// QuadrantResolver maps each quarter of the viewport to a fixed color:
// top-left day, top-right sunset, bottom-left sunrise, bottom-right midnight.
type QuadrantResolver struct {
	Colors [4]color.RGBA // TL, TR, BL, BR
}

// NewQuadrantResolver creates a resolver with the default palette.
func NewQuadrantResolver() *QuadrantResolver {
	return &QuadrantResolver{
		Colors: [4]color.RGBA{Palette.Day, Palette.Sunset, Palette.Sunrise, Palette.Midnight},
	}
}

// Quadrant returns 0..3 for TL, TR, BL, BR. Points on the center lines
// belong to the right/bottom quadrants.
func Quadrant(p geom.Point, viewW, viewH float64) int {
	q := 0
	if p.X >= viewW/2 {
		q++
	}
	if p.Y >= viewH/2 {
		q += 2
	}
	return q
}

// Resolve returns the color of the pointer's quadrant.
func (r *QuadrantResolver) Resolve(in Inputs) color.RGBA {
	return r.Colors[Quadrant(in.Pointer, in.ViewW, in.ViewH)]
}

// Ambient is always full light; the quadrant sky does not dim the house.
func (r *QuadrantResolver) Ambient(Inputs) float64 {
	return 1
}

// CycleResolver blends the palette by sun height, sin(phase): midnight at
// the bottom of the orbit, sunset/sunrise near the horizon, day at the top.
type CycleResolver struct {
	AmbientMin float64 // Light level at midnight
	AmbientMax float64 // Light level at noon
}

// NewCycleResolver creates a resolver with moonlit nights.
func NewCycleResolver() *CycleResolver {
	return &CycleResolver{AmbientMin: 0.38, AmbientMax: 1}
}

// SunHeight returns sin(phase): 1 at noon, -1 at midnight.
func SunHeight(phase float64) float64 {
	return math.Sin(phase)
}

// Resolve returns the sky color for the cycle phase.
func (r *CycleResolver) Resolve(in Inputs) color.RGBA {
	h := SunHeight(in.Phase)

	// Rising half of the orbit passes through sunrise, setting half through sunset
	horizon := Palette.Sunset
	if math.Cos(in.Phase) > 0 {
		horizon = Palette.Sunrise
	}

	if h >= 0 {
		return blend(horizon, Palette.Day, math.Sqrt(h))
	}
	return blend(horizon, Palette.Midnight, math.Sqrt(-h))
}

// Ambient follows the sun height between AmbientMin and AmbientMax.
func (r *CycleResolver) Ambient(in Inputs) float64 {
	mid := (r.AmbientMin + r.AmbientMax) / 2
	amp := (r.AmbientMax - r.AmbientMin) / 2
	return mid + amp*SunHeight(in.Phase)
}

// blend interpolates a→b in Lab space, which keeps the dusk transition from
// going muddy the way a straight RGB mix does.
func blend(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	r, g, bl := ca.BlendLab(cb, geom.Clamp(t, 0, 1)).Clamped().RGB255()
	return color.RGBA{r, g, bl, 255}
}

// Shade scales the RGB channels of c by the ambient light level.
func Shade(c color.RGBA, ambient float64) color.RGBA {
	a := geom.Clamp(ambient, 0, 1)
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * a)),
		G: uint8(math.Round(float64(c.G) * a)),
		B: uint8(math.Round(float64(c.B) * a)),
		A: c.A,
	}
}
