package cli

import (
	"context"

	"chosenoffset.com/crushhouse/internal/audio"
	"chosenoffset.com/crushhouse/internal/dice"
	"chosenoffset.com/crushhouse/internal/game"
	"chosenoffset.com/crushhouse/internal/render/ebiten"
	"chosenoffset.com/crushhouse/internal/simulation"
)

// runWindow opens the window and blocks until it closes or ctx is done.
func (c *CLI) runWindow(ctx context.Context, cfg *simulation.Config, mute bool) error {
	c.Logger.Debug("config loaded",
		"duration", cfg.ExpandDuration(),
		"sky", cfg.Sky.Mode,
		"seed", cfg.Seed)

	var sounds game.Sounds
	if cfg.Audio.Enabled && !mute {
		m := audio.NewManager(cfg.Audio.Volume, cfg.Seed)
		if err := m.Initialize(); err != nil {
			c.Logger.Warn("audio unavailable, running silent", "err", err)
		} else {
			defer m.Cleanup()
			sounds = m
		}
	}

	engine := ebiten.NewEngine()
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)
	engine.SetCursorVisible(false)

	g := game.New(game.Options{
		Config: cfg,
		Input:  ebiten.NewInputManager(),
		Roller: dice.NewSeeded(cfg.Seed),
		Logger: c.Logger,
		Sounds: sounds,
	})

	return engine.RunGame(game.NewManager(ctx, g, c.Logger))
}
