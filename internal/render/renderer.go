package render

import (
	"errors"
	"image/color"

	"chosenoffset.com/crushhouse/internal/core/geom"
)

// Surface is the drawing target for one frame. It abstracts the underlying
// graphics engine so the scene can be drawn to a window, to an offscreen
// raster, or into a recorder for tests.
//
// Coordinates are pixels with the origin at the top-left and y pointing down.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// Clear fills the whole surface with clr.
	Clear(clr color.Color)

	// Shape operations
	FillRect(x, y, w, h float64, clr color.Color)
	FillPolygon(points geom.Polygon, clr color.Color)
	FillEllipse(cx, cy, rx, ry float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)

	// DrawText draws debug text with its top-left corner at (x, y).
	DrawText(text string, x, y int)
}

// InputManager handles input from the user (pointer and keyboard).
type InputManager interface {
	CursorPosition() (x, y int)
	IsMouseButtonJustPressed(button MouseButton) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the animation listens to
const (
	KeyEscape Key = iota
	KeyM          // Mute toggle
	KeyG          // Gauge toggle
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update advances the animation state. It is called every tick
	// (typically 60 times per second).
	Update() error

	// Draw draws the current frame.
	Draw(screen Surface)

	// Layout accepts the outside size (e.g., window size) and returns the
	// logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the frame loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// SetCursorVisible shows or hides the system cursor.
	SetCursorVisible(visible bool)

	// RunGame runs the frame loop with the provided game.
	// This is a blocking call that runs until the window closes.
	RunGame(game Game) error
}

// ErrTerminated is returned from Game.Update to end the frame loop cleanly.
var ErrTerminated = errors.New("render: terminated")
