// Package ebiten implements the render interfaces on top of Ebitengine.
package ebiten

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/crushhouse/internal/core/geom"
	"chosenoffset.com/crushhouse/internal/render"
)

// EbitenSurface wraps an ebiten.Image to implement render.Surface.
type EbitenSurface struct {
	img   *ebiten.Image
	white *ebiten.Image // 1x1 source texture for filled polygons
}

// WrapEbitenImage wraps an existing ebiten.Image as a render.Surface.
func WrapEbitenImage(img *ebiten.Image) *EbitenSurface {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &EbitenSurface{img: img, white: white}
}

// Size returns the width and height of the image.
func (s *EbitenSurface) Size() (width, height int) {
	return s.img.Bounds().Dx(), s.img.Bounds().Dy()
}

// Clear fills the entire image with the given color.
func (s *EbitenSurface) Clear(clr color.Color) {
	s.img.Fill(clr)
}

// FillRect draws a solid rectangle.
func (s *EbitenSurface) FillRect(x, y, w, h float64, clr color.Color) {
	vector.FillRect(s.img, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// FillPolygon fills a closed polygon. Polygons with fewer than three vertices
// are ignored.
func (s *EbitenSurface) FillPolygon(points geom.Polygon, clr color.Color) {
	if len(points) < 3 {
		return
	}

	path := vector.Path{}
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for i := 1; i < len(points); i++ {
		path.LineTo(float32(points[i].X), float32(points[i].Y))
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)

	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	for i := range vertices {
		vertices[i].SrcX = 0
		vertices[i].SrcY = 0
		vertices[i].ColorR = float32(c.R) / 255
		vertices[i].ColorG = float32(c.G) / 255
		vertices[i].ColorB = float32(c.B) / 255
		vertices[i].ColorA = float32(c.A) / 255
	}

	opts := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	}
	s.img.DrawTriangles(vertices, indices, s.white, opts)
}

// FillEllipse fills an axis-aligned ellipse.
func (s *EbitenSurface) FillEllipse(cx, cy, rx, ry float64, clr color.Color) {
	s.FillPolygon(render.EllipsePolygon(cx, cy, rx, ry), clr)
}

// StrokeLine draws a line segment with the given stroke weight.
func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// DrawText draws text using the debug font. The debug font is always white.
func (s *EbitenSurface) DrawText(str string, x, y int) {
	ebitenutil.DebugPrintAt(s.img, str, x, y)
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// CursorPosition returns the current cursor position.
func (m *EbitenInputManager) CursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// IsMouseButtonJustPressed returns whether the button went down this tick.
func (m *EbitenInputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(mouseButtonToEbiten(button))
}

// IsKeyJustPressed returns whether the specified key was just pressed this tick.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	return inpututil.IsKeyJustPressed(keyToEbitenKey(key))
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyEscape:
		return ebiten.KeyEscape
	case render.KeyM:
		return ebiten.KeyM
	case render.KeyG:
		return ebiten.KeyG
	default:
		return ebiten.KeyEscape
	}
}

// mouseButtonToEbiten converts a render.MouseButton to an ebiten.MouseButton.
func mouseButtonToEbiten(button render.MouseButton) ebiten.MouseButton {
	switch button {
	case render.MouseButtonLeft:
		return ebiten.MouseButtonLeft
	case render.MouseButtonRight:
		return ebiten.MouseButtonRight
	case render.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// SetCursorVisible shows or hides the system cursor.
func (e *EbitenEngine) SetCursorVisible(visible bool) {
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
}

// RunGame runs the frame loop with the provided game. A game ending with
// render.ErrTerminated is treated as a clean exit.
func (e *EbitenEngine) RunGame(game render.Game) error {
	err := ebiten.RunGame(&gameAdapter{game: game})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game    render.Game
	surface *EbitenSurface
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrTerminated) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	if a.surface == nil {
		a.surface = WrapEbitenImage(screen)
	}
	a.surface.img = screen
	a.game.Draw(a.surface)
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
