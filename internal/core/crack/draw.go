package crack

import (
	"image/color"

	"chosenoffset.com/crushhouse/internal/core/geom"
	"chosenoffset.com/crushhouse/internal/render"
)

// StrokeColor is the translucent black used for every crack segment
var StrokeColor = color.NRGBA{0, 0, 0, 30}

// Draw strokes every segment of t, offset by origin.
func Draw(dst render.Surface, t Tree, origin geom.Point, clr color.Color) {
	for _, s := range t.Segments {
		dst.StrokeLine(origin.X+s.A.X, origin.Y+s.A.Y, origin.X+s.B.X, origin.Y+s.B.Y, s.Width, clr)
	}
}
