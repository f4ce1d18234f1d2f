package game

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"chosenoffset.com/crushhouse/internal/render"
)

// Manager sits between the engine and the Game. It ends the frame loop when
// its context is cancelled and logs a summary when the loop stops.
type Manager struct {
	ctx    context.Context
	Game   *Game
	logger *log.Logger
	done   bool
}

// NewManager creates a manager that runs game until ctx is done.
func NewManager(ctx context.Context, game *Game, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{ctx: ctx, Game: game, logger: logger}
}

// Update checks for cancellation, then advances the game.
func (m *Manager) Update() error {
	if m.done {
		return render.ErrTerminated
	}

	select {
	case <-m.ctx.Done():
		m.stop("interrupted")
		return render.ErrTerminated
	default:
	}

	err := m.Game.Update()
	if errors.Is(err, render.ErrTerminated) {
		m.stop("escape pressed")
	}
	return err
}

// Draw draws the game.
func (m *Manager) Draw(screen render.Surface) {
	m.Game.Draw(screen)
}

// Layout forwards the window size to the game.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.Game.Layout(outsideWidth, outsideHeight)
}

func (m *Manager) stop(reason string) {
	m.done = true
	m.logger.Info("stopping",
		"reason", reason,
		"run", m.Game.RunID(),
		"frames", m.Game.FrameCount,
		"factor", m.Game.Factor(),
		"cracks", m.Game.Scene.Population.Len())
}
