package game

import (
	"context"
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"chosenoffset.com/crushhouse/internal/core/geom"
	"chosenoffset.com/crushhouse/internal/core/squeeze"
	"chosenoffset.com/crushhouse/internal/dice"
	"chosenoffset.com/crushhouse/internal/render"
	"chosenoffset.com/crushhouse/internal/render/lighting"
	"chosenoffset.com/crushhouse/internal/render/scenery"
	"chosenoffset.com/crushhouse/internal/simulation"
)

// fakeInput replays a fixed pointer and one-shot presses.
type fakeInput struct {
	x, y  int
	click bool
	keys  map[render.Key]bool
}

func (f *fakeInput) CursorPosition() (int, int) { return f.x, f.y }

func (f *fakeInput) IsMouseButtonJustPressed(b render.MouseButton) bool {
	if b == render.MouseButtonLeft && f.click {
		f.click = false
		return true
	}
	return false
}

func (f *fakeInput) IsKeyJustPressed(k render.Key) bool {
	if f.keys[k] {
		delete(f.keys, k)
		return true
	}
	return false
}

func (f *fakeInput) press(k render.Key) {
	if f.keys == nil {
		f.keys = make(map[render.Key]bool)
	}
	f.keys[k] = true
}

// fakeSounds counts calls.
type fakeSounds struct {
	pressure float64
	snaps    int
	muted    bool
}

func (s *fakeSounds) SetPressure(f float64) { s.pressure = f }
func (s *fakeSounds) Snap(float64)          { s.snaps++ }
func (s *fakeSounds) ToggleMute() bool {
	s.muted = !s.muted
	return s.muted
}

type harness struct {
	game   *Game
	clock  *squeeze.ManualClock
	input  *fakeInput
	sounds *fakeSounds
}

func newHarness(t *testing.T, configure func(*simulation.Config)) *harness {
	t.Helper()

	cfg := simulation.DefaultConfig()
	if configure != nil {
		configure(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	h := &harness{
		clock:  squeeze.NewManualClock(time.Unix(1_700_000_000, 0)),
		input:  &fakeInput{x: 400, y: 300},
		sounds: &fakeSounds{},
	}
	h.game = New(Options{
		Config: cfg,
		Input:  h.input,
		Clock:  h.clock,
		Roller: dice.NewSeeded(42),
		Logger: log.New(io.Discard),
		Sounds: h.sounds,
	})
	h.game.Layout(800, 600)
	return h
}

// at moves the clock to elapsed seconds after the run started.
func (h *harness) at(elapsed time.Duration) {
	h.clock.Set(time.Unix(1_700_000_000, 0).Add(elapsed))
}

func (h *harness) frames(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := h.game.Update(); err != nil {
			t.Fatalf("Update() frame %d: %v", i, err)
		}
	}
}

func (h *harness) draw() *render.Recorder {
	rec := render.NewRecorder(800, 600)
	h.game.Draw(rec)
	return rec
}

func dustSpecks(rec *render.Recorder) int {
	return len(rec.Filter(func(op render.Op) bool {
		return op.Kind == render.OpEllipse && op.Color == scenery.DustColor
	}))
}

func TestScenarioStart(t *testing.T) {
	h := newHarness(t, nil)

	if f := h.game.Factor(); f != 0 {
		t.Fatalf("factor at t=0 = %v, want 0", f)
	}
	want := geom.Rect{X: 100, Y: 0, W: 600, H: 600}
	if a := h.game.Area(); a != want {
		t.Errorf("area at t=0 = %+v, want %+v", a, want)
	}
	if c := h.game.Scene.Population.Cap(0); c != 0 {
		t.Errorf("cap at t=0 = %d, want 0", c)
	}

	h.frames(t, 600)
	if n := h.game.Scene.Population.Len(); n != 0 {
		t.Errorf("%d cracks spawned at factor 0", n)
	}

	rec := h.draw()
	if got := rec.Count(render.OpPolygon); got != 5 {
		t.Errorf("house polygons = %d, want 5", got)
	}
	if got := dustSpecks(rec); got != 0 {
		t.Errorf("dust at factor 0: %d specks", got)
	}
}

func TestScenarioHalfway(t *testing.T) {
	h := newHarness(t, nil)
	h.at(90 * time.Second)

	if f := h.game.Factor(); f != 0.5 {
		t.Fatalf("factor at t=90s = %v, want 0.5", f)
	}
	if c := h.game.Scene.Population.Cap(0.5); c != 10 {
		t.Errorf("cap at 0.5 = %d, want 10", c)
	}

	h.frames(t, 5000)
	if n := h.game.Scene.Population.Len(); n != 10 {
		t.Errorf("cracks after 5000 frames at 0.5 = %d, want the cap of 10", n)
	}
	if h.sounds.snaps != 10 {
		t.Errorf("snaps = %d, want one per crack", h.sounds.snaps)
	}

	rec := h.draw()
	if got := dustSpecks(rec); got != 25 {
		t.Errorf("dust at 0.5 = %d specks, want 25", got)
	}
}

func TestScenarioCollapsed(t *testing.T) {
	for _, elapsed := range []time.Duration{180 * time.Second, time.Hour} {
		h := newHarness(t, nil)
		h.at(elapsed)

		if f := h.game.Factor(); f != 1 {
			t.Fatalf("factor at %v = %v, want 1", elapsed, f)
		}
		if !h.game.Area().Empty() {
			t.Errorf("area at %v = %+v, want empty", elapsed, h.game.Area())
		}
		if c := h.game.Scene.Population.Cap(1); c != 20 {
			t.Errorf("cap at 1 = %d, want 20", c)
		}

		h.frames(t, 10)
		rec := h.draw()
		if got := rec.Count(render.OpPolygon); got != 0 {
			t.Errorf("interior drawn with an empty area: %d polygons", got)
		}
		if got := rec.Count(render.OpEllipse); got != 0 {
			t.Errorf("%d ellipses drawn with an empty area", got)
		}
		if rec.Ops()[0].Kind != render.OpClear {
			t.Error("frame does not start with a clear")
		}
		if got := rec.Count(render.OpText); got == 0 {
			t.Error("gauge missing once the area collapsed")
		}
	}
}

func TestCrackCountNeverExceedsCap(t *testing.T) {
	h := newHarness(t, nil)
	step := time.Second / 60

	for i := 0; i <= 180*60; i++ {
		h.at(time.Duration(i) * step)
		h.frames(t, 1)

		f := h.game.Factor()
		if n, c := h.game.Scene.Population.Len(), h.game.Scene.Population.Cap(f); n > c {
			t.Fatalf("frame %d: %d cracks exceed cap %d at factor %v", i, n, c, f)
		}
	}
}

func TestDustBoundary(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"exactly 0.4", 72 * time.Second, 0},
		{"just above 0.4", 72018 * time.Millisecond, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil)
			h.at(tt.elapsed)
			if got := dustSpecks(h.draw()); got != tt.want {
				t.Errorf("factor %v: %d specks, want %d", h.game.Factor(), got, tt.want)
			}
		})
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	h := newHarness(t, func(c *simulation.Config) { c.Sky.Mode = simulation.SkyCycle })
	firstRun := h.game.RunID()

	h.at(150 * time.Second)
	h.frames(t, 3000)
	if h.game.Scene.Population.Len() == 0 {
		t.Fatal("no cracks spawned before reset")
	}
	if h.game.Scene.Cycle.Phase == 0 {
		t.Fatal("cycle did not advance before reset")
	}
	oldParts := h.game.Scene.Parts

	h.input.click = true
	h.frames(t, 1)

	if f := h.game.Factor(); f != 0 {
		t.Errorf("factor after reset = %v, want 0", f)
	}
	if n := h.game.Scene.Population.Len(); n != 0 {
		t.Errorf("cracks after reset = %d, want 0", n)
	}
	// The click frame itself advances the cycle once at factor 0.
	if p := h.game.Scene.Cycle.Phase; math.Abs(p-0.01) > 1e-12 {
		t.Errorf("phase after reset frame = %v, want 0.01", p)
	}
	if &h.game.Scene.Parts[0] == &oldParts[0] {
		t.Error("house parts were not recreated")
	}
	if h.game.RunID() == firstRun {
		t.Error("run ID unchanged after reset")
	}

	h.game.Reset()
	h.game.Reset()
	if h.game.Factor() != 0 || h.game.Scene.Population.Len() != 0 || h.game.Scene.Cycle.Phase != 0 {
		t.Error("repeated reset is not idempotent")
	}
	if h.game.Gauge().Needle() != 0 {
		t.Errorf("gauge needle after reset = %v, want 0", h.game.Gauge().Needle())
	}
}

func TestCycleRates(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"no squeeze", 0, 0.01},
		{"full squeeze", 180 * time.Second, 0.06},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, func(c *simulation.Config) { c.Sky.Mode = simulation.SkyCycle })
			h.at(tt.elapsed)

			before := h.game.Scene.Cycle.Phase
			h.frames(t, 1)
			if d := h.game.Scene.Cycle.Phase - before; math.Abs(d-tt.want) > 1e-12 {
				t.Errorf("phase advanced %v, want %v", d, tt.want)
			}
		})
	}
}

func TestQuadrantModeLeavesPhaseAlone(t *testing.T) {
	h := newHarness(t, nil)
	h.frames(t, 100)
	if p := h.game.Scene.Cycle.Phase; p != 0 {
		t.Errorf("phase = %v in quadrant mode, want 0", p)
	}
}

func TestDrawOrder(t *testing.T) {
	h := newHarness(t, nil)
	h.input.x, h.input.y = 700, 100 // top-right quadrant
	h.frames(t, 1)

	ops := h.draw().Ops()
	if ops[0].Kind != render.OpClear {
		t.Fatalf("first op = %v, want clear", ops[0].Kind)
	}

	sky := ops[1]
	if sky.Kind != render.OpRect || sky.Color != lighting.Palette.Sunset {
		t.Errorf("second op = %v %v, want the sunset sky rect", sky.Kind, sky.Color)
	}
	if sky.Rect != h.game.Area() {
		t.Errorf("sky rect = %+v, want the visible area %+v", sky.Rect, h.game.Area())
	}

	firstPolygon, lastPolygon, pointer := -1, -1, -1
	for i, op := range ops {
		switch {
		case op.Kind == render.OpPolygon:
			if firstPolygon < 0 {
				firstPolygon = i
			}
			lastPolygon = i
		case op.Kind == render.OpEllipse && op.Color == PointerColor:
			pointer = i
		}
	}
	if firstPolygon < 2 || lastPolygon-firstPolygon != 4 {
		t.Errorf("house polygons at %d..%d, want five consecutive after the sky", firstPolygon, lastPolygon)
	}
	if pointer < lastPolygon {
		t.Errorf("pointer drawn at %d before the house at %d", pointer, lastPolygon)
	}
}

func TestPointerClampedToArea(t *testing.T) {
	h := newHarness(t, nil)
	h.at(90 * time.Second)
	h.input.x, h.input.y = -50, 900
	h.frames(t, 1)

	area := h.game.Area()
	var found bool
	for _, op := range h.draw().Ops() {
		if op.Kind != render.OpEllipse || op.Color != PointerColor {
			continue
		}
		found = true
		c := op.Rect.Center()
		if c.X != area.X || c.Y != area.Y+area.H {
			t.Errorf("pointer at %v, want clamped to bottom-left %v,%v", c, area.X, area.Y+area.H)
		}
		if op.Rect.W != 15 {
			t.Errorf("pointer diameter = %v, want 15", op.Rect.W)
		}
	}
	if !found {
		t.Fatal("pointer indicator not drawn")
	}
}

func TestLayoutKeepsAnimationState(t *testing.T) {
	h := newHarness(t, nil)
	h.at(120 * time.Second)
	h.frames(t, 2000)

	factor := h.game.Factor()
	cracks := h.game.Scene.Population.Len()
	run := h.game.RunID()

	w, hgt := h.game.Layout(1024, 400)
	if w != 1024 || hgt != 400 {
		t.Errorf("Layout returned %dx%d", w, hgt)
	}
	if h.game.Factor() != factor || h.game.Scene.Population.Len() != cracks || h.game.RunID() != run {
		t.Error("Layout changed animation state")
	}
	want := squeeze.VisibleArea(1024, 400, factor)
	if h.game.Area() != want {
		t.Errorf("area after resize = %+v, want %+v", h.game.Area(), want)
	}
}

func TestKeys(t *testing.T) {
	h := newHarness(t, nil)

	h.input.press(render.KeyM)
	h.frames(t, 1)
	if !h.sounds.muted {
		t.Error("M did not mute")
	}
	if len(h.game.Messages) != 1 || h.game.Messages[0].Text != "Sound muted" {
		t.Errorf("messages = %+v", h.game.Messages)
	}

	h.input.press(render.KeyG)
	h.frames(t, 1)
	if h.game.Gauge().Visible {
		t.Error("G did not hide the gauge")
	}

	h.frames(t, 150)
	if len(h.game.Messages) != 0 {
		t.Error("message did not expire")
	}

	h.input.press(render.KeyEscape)
	if err := h.game.Update(); !errors.Is(err, render.ErrTerminated) {
		t.Errorf("Escape: Update() = %v, want ErrTerminated", err)
	}
}

func TestPressureFollowsFactor(t *testing.T) {
	h := newHarness(t, nil)
	h.at(45 * time.Second)
	h.frames(t, 1)
	if h.sounds.pressure != 0.25 {
		t.Errorf("pressure = %v, want 0.25", h.sounds.pressure)
	}
}

func TestManagerStopsOnCancel(t *testing.T) {
	h := newHarness(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	m := NewManager(ctx, h.game, log.New(io.Discard))

	if err := m.Update(); err != nil {
		t.Fatalf("Update() before cancel: %v", err)
	}
	cancel()
	if err := m.Update(); !errors.Is(err, render.ErrTerminated) {
		t.Errorf("Update() after cancel = %v, want ErrTerminated", err)
	}
	if err := m.Update(); !errors.Is(err, render.ErrTerminated) {
		t.Errorf("Update() after stop = %v, want ErrTerminated", err)
	}

	if w, hgt := m.Layout(640, 480); w != 640 || hgt != 480 {
		t.Errorf("Layout() = %dx%d", w, hgt)
	}
}
