package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"chosenoffset.com/crushhouse/internal/core/crack"
	"chosenoffset.com/crushhouse/internal/core/geom"
	"chosenoffset.com/crushhouse/internal/core/house"
	"chosenoffset.com/crushhouse/internal/core/squeeze"
	"chosenoffset.com/crushhouse/internal/dice"
	"chosenoffset.com/crushhouse/internal/render"
	"chosenoffset.com/crushhouse/internal/render/lighting"
	"chosenoffset.com/crushhouse/internal/render/scenery"
	"chosenoffset.com/crushhouse/internal/simulation"
	"chosenoffset.com/crushhouse/internal/ui/hud"
)

// frameTime is the assumed tick length; ebiten calls Update at 60 Hz.
const frameTime = 1.0 / 60.0

// grassBlades is how many blades a run plants
const grassBlades = 90

// Options wires a Game to its collaborators. Only Config is required.
type Options struct {
	Config *simulation.Config
	Input  render.InputManager
	Clock  squeeze.Clock
	Roller *dice.Roller
	Logger *log.Logger
	Sounds Sounds
}

// Game holds the scene state plus the long-lived collaborators that draw it.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	Scene Scene

	config    *simulation.Config
	input     render.InputManager
	clock     squeeze.Clock
	roller    *dice.Roller
	logger    *log.Logger
	sounds    Sounds
	distorter *house.Distorter
	generator *crack.Generator
	resolver  lighting.Resolver
	dust      scenery.DustParams
	gauge     *hud.Gauge
	flash     *hud.Flash

	pointer  geom.Point
	runID    uuid.UUID
	Messages []Message

	FrameCount int
}

// New creates a game and starts its first run.
func New(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = simulation.DefaultConfig()
	}
	clock := opts.Clock
	if clock == nil {
		clock = squeeze.SystemClock{}
	}
	roller := opts.Roller
	if roller == nil {
		roller = dice.NewSeeded(uint64(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	var resolver lighting.Resolver = lighting.NewQuadrantResolver()
	if cfg.Sky.Mode == simulation.SkyCycle {
		resolver = lighting.NewCycleResolver()
	}

	params := cfg.CrackParams()
	g := &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		config:       cfg,
		input:        opts.Input,
		clock:        clock,
		roller:       roller,
		logger:       logger,
		sounds:       opts.Sounds,
		distorter:    house.NewDistorter(cfg.Distortion.MaxJitter, roller),
		generator:    crack.NewGenerator(params),
		resolver:     resolver,
		dust:         cfg.DustParams(),
		gauge:        hud.NewGauge(hud.DefaultGaugeConfig()),
		flash:        hud.NewFlash(),
	}
	g.gauge.Visible = cfg.HUD.Gauge

	g.Scene = Scene{
		Timeline:   squeeze.NewTimeline(clock, cfg.ExpandDuration()),
		Population: crack.NewPopulation(params),
		Cycle:      lighting.NewCycle(cfg.Sky.BaseRate, cfg.Sky.Acceleration),
	}
	g.pointer = geom.Point{X: float64(g.ScreenWidth) / 2, Y: float64(g.ScreenHeight) / 2}
	g.start()
	return g
}

// Reset starts a new run: the timeline restarts, every crack is cleared,
// the cycle returns to phase 0, and the house and grass are rebuilt.
func (g *Game) Reset() {
	g.Scene.Timeline.Reset()
	g.Scene.Population.Reset()
	g.Scene.Cycle.Reset()
	g.start()
	g.flash.Trigger()
}

// start fills in the parts of the scene that are rebuilt for every run.
func (g *Game) start() {
	g.Scene.Parts = house.DefaultParts()
	g.Scene.Grass = scenery.NewField(grassBlades, g.roller)
	g.gauge.Snap()
	if g.sounds != nil {
		g.sounds.SetPressure(0)
	}

	g.runID = uuid.New()
	g.logger.Info("run started",
		"run", g.runID,
		"duration", g.Scene.Timeline.Duration(),
		"sky", g.config.Sky.Mode)
}

// RunID identifies the current run in the logs.
func (g *Game) RunID() uuid.UUID {
	return g.runID
}

// Factor returns the current squeeze factor.
func (g *Game) Factor() float64 {
	return g.Scene.Timeline.Factor()
}

// Area returns the visible square for the cached viewport.
func (g *Game) Area() geom.Rect {
	return squeeze.VisibleArea(float64(g.ScreenWidth), float64(g.ScreenHeight), g.Factor())
}

// Gauge exposes the pressure gauge.
func (g *Game) Gauge() *hud.Gauge {
	return g.gauge
}

// Update handles input and advances every piece of per-frame state.
func (g *Game) Update() error {
	g.FrameCount++
	g.updateMessages(frameTime)

	if g.input != nil {
		if g.input.IsKeyJustPressed(render.KeyEscape) {
			return render.ErrTerminated
		}

		x, y := g.input.CursorPosition()
		g.pointer = geom.Point{X: float64(x), Y: float64(y)}

		if g.input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
			g.Reset()
		}

		if g.input.IsKeyJustPressed(render.KeyM) && g.sounds != nil {
			if g.sounds.ToggleMute() {
				g.ShowMessage("Sound muted")
			} else {
				g.ShowMessage("Sound on")
			}
		}

		if g.input.IsKeyJustPressed(render.KeyG) {
			g.gauge.Toggle()
		}
	}

	factor := g.Factor()

	if g.config.Sky.Mode == simulation.SkyCycle {
		g.Scene.Cycle.Advance(factor)
	}

	if !g.Area().Empty() {
		if c, ok := g.Scene.Population.Step(factor, g.roller); ok {
			g.logger.Debug("crack spawned",
				"run", g.runID,
				"count", g.Scene.Population.Len(),
				"branches", c.Branches)
			if g.sounds != nil {
				g.sounds.Snap(factor)
			}
		}
	}

	g.gauge.Update(factor, frameTime)
	g.flash.Update(frameTime)
	if g.sounds != nil {
		g.sounds.SetPressure(factor)
	}
	return nil
}

// Layout caches the viewport. It never touches the animation state.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ScreenWidth = outsideWidth
	g.ScreenHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// ShowMessage displays a message on screen for a few seconds.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 2.0,
		MaxTime:  2.0,
	})
	if len(g.Messages) > 3 {
		g.Messages = g.Messages[1:]
	}
}

// updateMessages updates message timers and removes expired messages.
func (g *Game) updateMessages(dt float64) {
	active := g.Messages[:0]
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}
