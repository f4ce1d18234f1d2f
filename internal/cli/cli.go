// Package cli implements the crushhouse command-line interface.
//
// The root command opens the animation window. The snapshot command runs the
// same simulation headless against a manual clock and writes one frame as a
// PNG. Both accept --verbose (-v) for debug logging.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"chosenoffset.com/crushhouse/internal/simulation"
)

const appName = "crushhouse"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev" // set with -ldflags "-X ...cli.version=v1.0.0"
	commit  = "none"
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	opts := &sceneFlags{}
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "A house crushed by a closing border",
		Long:         `crushhouse draws a house inside a square that shrinks over a few minutes. The house shakes, cracks, and sheds dust as the squeeze rises. Click to start over.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return c.runWindow(cmd.Context(), cfg, opts.mute)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\n", appName, version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	opts.register(root)
	root.Flags().BoolVar(&opts.mute, "mute", false, "start without sound")

	root.AddCommand(c.snapshotCommand(opts))
	return root
}

// sceneFlags are the config overrides shared by every command.
type sceneFlags struct {
	config   string
	variant  string
	duration time.Duration
	seed     uint64
	mute     bool
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&f.config, "config", "c", "crushhouse.toml", "TOML config file (missing file means defaults)")
	cmd.PersistentFlags().StringVar(&f.variant, "variant", "", `sky variant: "quadrant" or "cycle"`)
	cmd.PersistentFlags().DurationVar(&f.duration, "duration", 0, "time to full squeeze (e.g. 3m)")
	cmd.PersistentFlags().Uint64Var(&f.seed, "seed", 0, "random seed (0 picks one)")
}

// load reads the config file and applies any flags the user set.
func (f *sceneFlags) load(cmd *cobra.Command) (*simulation.Config, error) {
	cfg, err := simulation.LoadConfig(f.config)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("variant") {
		cfg.Sky.Mode = f.variant
	}
	if flags.Changed("duration") {
		cfg.Timeline.ExpandSeconds = f.duration.Seconds()
	}
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
