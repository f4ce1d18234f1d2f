package game

import (
	"image/color"

	"chosenoffset.com/crushhouse/internal/core/crack"
	"chosenoffset.com/crushhouse/internal/core/geom"
	"chosenoffset.com/crushhouse/internal/render"
	"chosenoffset.com/crushhouse/internal/render/lighting"
	"chosenoffset.com/crushhouse/internal/render/scenery"
	"chosenoffset.com/crushhouse/internal/simulation"
)

var (
	sunColor  = color.RGBA{255, 214, 90, 255}
	moonColor = color.RGBA{228, 230, 240, 255}

	// PointerColor is the translucent white of the cursor stand-in
	PointerColor = color.NRGBA{255, 255, 255, 80}
)

// PointerRadius is half the pointer indicator's 15 px diameter
const PointerRadius = 7.5

// Draw composes one frame. Nothing inside the visible square is drawn once
// the square has collapsed; the gauge and messages live outside it.
func (g *Game) Draw(screen render.Surface) {
	screen.Clear(color.Black)

	factor := g.Factor()
	area := g.Area()
	interior := !area.Empty()

	if interior {
		g.drawScene(screen, area, factor)
	}

	g.gauge.Draw(screen, float64(g.ScreenWidth), float64(g.ScreenHeight), factor)

	if interior {
		p := area.Clamp(g.pointer)
		screen.FillEllipse(p.X, p.Y, PointerRadius, PointerRadius, PointerColor)
	}

	g.drawMessages(screen)
}

func (g *Game) drawScene(screen render.Surface, area geom.Rect, factor float64) {
	in := lighting.Inputs{
		Pointer: g.pointer,
		ViewW:   float64(g.ScreenWidth),
		ViewH:   float64(g.ScreenHeight),
		Phase:   g.Scene.Cycle.Phase,
	}
	ambient := g.resolver.Ambient(in)

	screen.FillRect(area.X, area.Y, area.W, area.H, g.resolver.Resolve(in))

	if g.config.Sky.Mode == simulation.SkyCycle && g.config.Sky.Celestial {
		g.drawCelestial(screen, area)
	}

	if g.config.Sky.Grass && g.Scene.Grass != nil {
		g.Scene.Grass.Draw(screen, area, g.Scene.Cycle.Phase, factor, ambient)
	}

	polys := g.distorter.TransformAll(g.Scene.Parts, area.W, area.H, factor)
	for i, poly := range polys {
		fill := lighting.Shade(g.Scene.Parts[i].Fill(), ambient)
		screen.FillPolygon(geom.Translate(poly, area.X, area.Y), fill)
	}

	origin := geom.Point{X: area.X, Y: area.Y}
	for _, c := range g.Scene.Population.Cracks() {
		tree := g.generator.Expand(c, area.W, area.H, factor, g.roller)
		crack.Draw(screen, tree, origin, crack.StrokeColor)
	}

	scenery.DrawDust(screen, area, factor, g.dust, g.roller)

	g.flash.Draw(screen, area)
}

// drawCelestial places the sun and moon on opposite ends of the orbit.
func (g *Game) drawCelestial(screen render.Surface, area geom.Rect) {
	orbit := lighting.OrbitFor(area, g.Scene.Cycle.Phase)
	r := orbit.BodyRadius
	screen.FillEllipse(orbit.Sun.X, orbit.Sun.Y, r, r, sunColor)
	screen.FillEllipse(orbit.Moon.X, orbit.Moon.Y, r*0.8, r*0.8, moonColor)
}

// drawMessages draws the fading status lines along the bottom edge.
func (g *Game) drawMessages(screen render.Surface) {
	y := g.ScreenHeight - 20
	for i := len(g.Messages) - 1; i >= 0; i-- {
		screen.DrawText(g.Messages[i].Text, 10, y)
		y -= 16
	}
}
