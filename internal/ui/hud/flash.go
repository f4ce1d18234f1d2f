package hud

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"chosenoffset.com/crushhouse/internal/core/geom"
	"chosenoffset.com/crushhouse/internal/render"
)

// Flash is a white overlay that fades out after a reset.
type Flash struct {
	Duration float32 // Fade time in seconds
	Peak     uint8   // Starting alpha

	alpha float64
	tween *gween.Tween
}

// NewFlash creates an idle flash.
func NewFlash() *Flash {
	return &Flash{Duration: 0.4, Peak: 120}
}

// Trigger restarts the fade from full strength.
func (f *Flash) Trigger() {
	f.alpha = 1
	f.tween = gween.New(1, 0, f.Duration, ease.OutQuad)
}

// Active reports whether the overlay is still visible.
func (f *Flash) Active() bool {
	return f.alpha > 0
}

// Update advances the fade by dt seconds.
func (f *Flash) Update(dt float32) {
	if f.tween == nil {
		return
	}
	val, done := f.tween.Update(dt)
	f.alpha = float64(val)
	if done {
		f.alpha = 0
		f.tween = nil
	}
}

// Draw covers area with the fading overlay.
func (f *Flash) Draw(dst render.Surface, area geom.Rect) {
	if !f.Active() || area.Empty() {
		return
	}
	a := uint8(geom.Clamp(f.alpha, 0, 1) * float64(f.Peak))
	dst.FillRect(area.X, area.Y, area.W, area.H, color.NRGBA{255, 255, 255, a})
}
