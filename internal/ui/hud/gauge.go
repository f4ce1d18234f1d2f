// Package hud draws the overlay around the squeezed area: the pressure gauge
// in the left margin and the white flash that marks a reset.
package hud

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"chosenoffset.com/crushhouse/internal/core/geom"
	"chosenoffset.com/crushhouse/internal/render"
)

// Gauge colors
var (
	gaugeLow    = color.RGBA{50, 180, 50, 255}
	gaugeHigh   = color.RGBA{200, 50, 50, 255}
	gaugeBack   = color.RGBA{25, 25, 30, 220}
	gaugeBorder = color.RGBA{70, 70, 80, 255}
	needleColor = color.RGBA{240, 240, 240, 255}
)

// GaugeConfig defines the gauge layout
type GaugeConfig struct {
	Width    float64 // Bar width in pixels
	Padding  float64 // Distance from the window edge
	Height   float64 // Fraction of the window height used by the bar
	Ease     float32 // Seconds the needle takes to catch up
	Retarget float64 // Minimum factor change that starts a new tween
}

// DefaultGaugeConfig returns a sensible default layout
func DefaultGaugeConfig() GaugeConfig {
	return GaugeConfig{
		Width:    16,
		Padding:  12,
		Height:   0.6,
		Ease:     0.35,
		Retarget: 0.005,
	}
}

// Gauge shows the squeeze factor as a vertical pressure bar. The fill tracks
// the factor exactly; the needle follows it with easing.
type Gauge struct {
	Visible bool

	config GaugeConfig
	needle float64
	target float64
	tween  *gween.Tween
}

// NewGauge creates a visible gauge reading zero.
func NewGauge(config GaugeConfig) *Gauge {
	return &Gauge{Visible: true, config: config}
}

// Needle returns the eased reading.
func (g *Gauge) Needle() float64 {
	return g.needle
}

// Toggle flips visibility.
func (g *Gauge) Toggle() {
	g.Visible = !g.Visible
}

// Snap drops the needle straight back to zero.
func (g *Gauge) Snap() {
	g.needle = 0
	g.target = 0
	g.tween = nil
}

// Update advances the needle by dt seconds toward factor.
func (g *Gauge) Update(factor float64, dt float32) {
	factor = geom.Clamp(factor, 0, 1)
	if math.Abs(factor-g.target) >= g.config.Retarget {
		g.tween = gween.New(float32(g.needle), float32(factor), g.config.Ease, ease.OutCubic)
		g.target = factor
	}
	if g.tween == nil {
		return
	}

	val, done := g.tween.Update(dt)
	g.needle = float64(val)
	if done {
		g.tween = nil
	}
}

// Bounds returns the bar rectangle for a viewport.
func (g *Gauge) Bounds(viewW, viewH float64) geom.Rect {
	h := viewH * g.config.Height
	return geom.Rect{
		X: g.config.Padding,
		Y: (viewH - h) / 2,
		W: g.config.Width,
		H: h,
	}
}

// Draw renders the bar, its fill, the needle, and the label.
func (g *Gauge) Draw(dst render.Surface, viewW, viewH, factor float64) {
	if !g.Visible {
		return
	}

	b := g.Bounds(viewW, viewH)
	if b.Empty() {
		return
	}
	factor = geom.Clamp(factor, 0, 1)

	dst.FillRect(b.X-1, b.Y-1, b.W+2, b.H+2, gaugeBorder)
	dst.FillRect(b.X, b.Y, b.W, b.H, gaugeBack)

	fill := b.H * factor
	if fill > 0 {
		dst.FillRect(b.X, b.Y+b.H-fill, b.W, fill, Color(factor))
	}

	ny := b.Y + b.H - b.H*geom.Clamp(g.needle, 0, 1)
	dst.StrokeLine(b.X-4, ny, b.X+b.W+4, ny, 2, needleColor)

	dst.DrawText("PRESSURE", int(b.X), int(b.Y)-18)
	dst.DrawText(fmt.Sprintf("%3.0f%%", factor*100), int(b.X), int(b.Y+b.H)+4)
}

// Color returns the fill color for a factor, green at 0 through red at 1.
func Color(factor float64) color.RGBA {
	lo, _ := colorful.MakeColor(gaugeLow)
	hi, _ := colorful.MakeColor(gaugeHigh)
	r, g, b := lo.BlendHcl(hi, geom.Clamp(factor, 0, 1)).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}
