// Package raster implements render.Surface on an in-memory image using
// fogleman/gg, so frames can be produced without a window.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"chosenoffset.com/crushhouse/internal/core/geom"
)

// Surface draws into a gg context
type Surface struct {
	dc *gg.Context
}

// New creates a width×height raster surface.
func New(width, height int) *Surface {
	return &Surface{dc: gg.NewContext(width, height)}
}

// Size returns the raster dimensions.
func (s *Surface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

// Clear fills the whole raster with clr.
func (s *Surface) Clear(clr color.Color) {
	s.dc.SetColor(clr)
	s.dc.Clear()
}

// FillRect draws a solid rectangle.
func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	s.dc.SetColor(clr)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

// FillPolygon fills a closed polygon.
func (s *Surface) FillPolygon(points geom.Polygon, clr color.Color) {
	if len(points) < 3 {
		return
	}
	s.dc.SetColor(clr)
	s.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.ClosePath()
	s.dc.Fill()
}

// FillEllipse fills an axis-aligned ellipse.
func (s *Surface) FillEllipse(cx, cy, rx, ry float64, clr color.Color) {
	s.dc.SetColor(clr)
	s.dc.DrawEllipse(cx, cy, rx, ry)
	s.dc.Fill()
}

// StrokeLine draws a segment with the given stroke weight.
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	s.dc.SetColor(clr)
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(x0, y0, x1, y1)
	s.dc.Stroke()
}

// DrawText draws white text with its top-left corner at (x, y), matching
// the window backend's debug font placement.
func (s *Surface) DrawText(text string, x, y int) {
	s.dc.SetColor(color.White)
	s.dc.DrawStringAnchored(text, float64(x), float64(y), 0, 1)
}

// Image returns the rendered pixels.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// WritePNG encodes the raster as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG writes the raster to path.
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
