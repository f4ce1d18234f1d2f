package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"chosenoffset.com/crushhouse/internal/core/squeeze"
	"chosenoffset.com/crushhouse/internal/dice"
	"chosenoffset.com/crushhouse/internal/game"
	"chosenoffset.com/crushhouse/internal/render"
	"chosenoffset.com/crushhouse/internal/render/raster"
	"chosenoffset.com/crushhouse/internal/simulation"
)

// snapshotFPS is the simulated tick rate
const snapshotFPS = 60

type snapshotOptions struct {
	at       time.Duration
	out      string
	width    int
	height   int
	pointerX int
	pointerY int
}

func (c *CLI) snapshotCommand(scene *sceneFlags) *cobra.Command {
	opts := &snapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a single frame to a PNG without opening a window",
		Long: `Snapshot runs the animation headless at 60 frames per second of simulated
time, then draws the frame reached at --at into a PNG file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := scene.load(cmd)
			if err != nil {
				return err
			}
			return c.runSnapshot(cmd.Context(), cfg, opts)
		},
	}

	cmd.Flags().DurationVar(&opts.at, "at", 90*time.Second, "simulated time of the frame")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "frame.png", "output PNG path")
	cmd.Flags().IntVar(&opts.width, "width", 800, "frame width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 600, "frame height in pixels")
	cmd.Flags().IntVar(&opts.pointerX, "pointer-x", -1, "pointer x (-1 centers it)")
	cmd.Flags().IntVar(&opts.pointerY, "pointer-y", -1, "pointer y (-1 centers it)")
	return cmd
}

func (c *CLI) runSnapshot(ctx context.Context, cfg *simulation.Config, opts *snapshotOptions) error {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("snapshot size must be positive, got %dx%d", opts.width, opts.height)
	}
	if opts.at < 0 {
		return fmt.Errorf("snapshot time must not be negative, got %v", opts.at)
	}

	prog := newProgress(c.Logger)
	surface, g, err := simulate(ctx, cfg, opts)
	if err != nil {
		return err
	}
	if err := surface.SavePNG(opts.out); err != nil {
		return err
	}

	prog.done("wrote snapshot",
		"path", opts.out,
		"run", g.RunID(),
		"factor", fmt.Sprintf("%.3f", g.Factor()),
		"cracks", g.Scene.Population.Len())
	return nil
}

// simulate steps a fresh game to opts.at on a manual clock and draws the
// final frame into a raster surface.
func simulate(ctx context.Context, cfg *simulation.Config, opts *snapshotOptions) (*raster.Surface, *game.Game, error) {
	origin := time.Unix(0, 0)
	clock := squeeze.NewManualClock(origin)

	px, py := opts.pointerX, opts.pointerY
	if px < 0 {
		px = opts.width / 2
	}
	if py < 0 {
		py = opts.height / 2
	}

	g := game.New(game.Options{
		Config: cfg,
		Input:  &fixedPointer{x: px, y: py},
		Clock:  clock,
		Roller: dice.NewSeeded(cfg.Seed),
		Logger: loggerFromContext(ctx),
	})
	g.Layout(opts.width, opts.height)

	// Nothing inside the square changes once it has collapsed, so frames stop
	// one tick past full squeeze.
	span := opts.at
	if limit := cfg.ExpandDuration() + time.Second/snapshotFPS; span > limit {
		span = limit
	}

	// Frame times are spread evenly so the last frame lands exactly on span
	frames := int(span.Seconds() * snapshotFPS)
	for i := 0; i < frames; i++ {
		if i%snapshotFPS == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
		}
		step := float64(i+1) / float64(frames)
		clock.Set(origin.Add(time.Duration(float64(span) * step)))
		if err := g.Update(); err != nil {
			return nil, nil, fmt.Errorf("frame %d: %w", i, err)
		}
	}
	clock.Set(origin.Add(opts.at))

	surface := raster.New(opts.width, opts.height)
	g.Draw(surface)
	return surface, g, nil
}

// fixedPointer is an input source that never clicks or types.
type fixedPointer struct {
	x, y int
}

func (p *fixedPointer) CursorPosition() (int, int)                       { return p.x, p.y }
func (p *fixedPointer) IsMouseButtonJustPressed(render.MouseButton) bool { return false }
func (p *fixedPointer) IsKeyJustPressed(render.Key) bool                 { return false }
