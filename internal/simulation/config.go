// Package simulation provides configuration for the squeeze animation rules.
// Values are fixed at load time: defaults first, then an optional TOML file
// layered on top, then command-line overrides.
package simulation

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"chosenoffset.com/crushhouse/internal/core/crack"
	"chosenoffset.com/crushhouse/internal/dice"
	"chosenoffset.com/crushhouse/internal/render/scenery"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// MaxBranchBudget caps the trunk budget a branches expression may roll. A
// trunk with budget b expands to at most 1 + b + b(b-1) + ... + b! segments,
// and every stored crack is re-expanded each frame.
const MaxBranchBudget = 3

// Sky modes
const (
	SkyQuadrant = "quadrant" // Color picked from the pointer's screen quadrant
	SkyCycle    = "cycle"    // Day/night cycle that speeds up under pressure
)

// Config holds all animation rules
type Config struct {
	Timeline   TimelineConfig   `toml:"timeline"`
	Distortion DistortionConfig `toml:"distortion"`
	Cracks     CrackConfig      `toml:"cracks"`
	Dust       DustConfig       `toml:"dust"`
	Sky        SkyConfig        `toml:"sky"`
	HUD        HUDConfig        `toml:"hud"`
	Audio      AudioConfig      `toml:"audio"`
	Window     WindowConfig     `toml:"window"`

	// Seed for the random source. Zero means "pick one at startup".
	Seed uint64 `toml:"seed"`
}

// TimelineConfig defines how long the squeeze takes
type TimelineConfig struct {
	ExpandSeconds float64 `toml:"expand_seconds"` // Time to full squeeze (e.g., 180)
}

// DistortionConfig defines the per-frame shake of the house
type DistortionConfig struct {
	MaxJitter float64 `toml:"max_jitter"` // Pixels at full squeeze
}

// CrackConfig defines crack spawning and branching
type CrackConfig struct {
	SpawnProbability  float64 `toml:"spawn_probability"`  // Per-frame chance at full squeeze
	PopulationCap     float64 `toml:"population_cap"`     // Max cracks at full squeeze
	Branches          string  `toml:"branches"`           // Dice expression for the trunk budget (e.g., "1d3")
	BranchLengthRatio float64 `toml:"branch_length_ratio"` // Child length relative to parent
	BranchSpreadDeg   float64 `toml:"branch_spread_deg"`   // Max child deviation in degrees
	IntensityDecay    float64 `toml:"intensity_decay"`     // Child intensity relative to parent
	BranchThreshold   float64 `toml:"branch_threshold"`    // Intensity at or below which branching stops
	StrokeMin         float64 `toml:"stroke_min"`          // Stroke weight at intensity 0
	StrokeMax         float64 `toml:"stroke_max"`          // Stroke weight at intensity 1
}

// DustConfig defines the falling dust specks
type DustConfig struct {
	Threshold float64 `toml:"threshold"` // Dust appears strictly above this factor
	Count     float64 `toml:"count"`     // Specks at full squeeze
	SizeMin   float64 `toml:"size_min"`  // Speck diameter range in pixels
	SizeMax   float64 `toml:"size_max"`
}

// SkyConfig defines the background color behavior
type SkyConfig struct {
	Mode         string  `toml:"mode"`         // "quadrant" or "cycle"
	BaseRate     float64 `toml:"base_rate"`    // Cycle phase advance per frame with no squeeze
	Acceleration float64 `toml:"acceleration"` // Extra multiples of BaseRate at full squeeze
	Celestial    bool    `toml:"celestial"`    // Draw the sun and moon
	Grass        bool    `toml:"grass"`        // Draw ground and grass
}

// HUDConfig defines the overlay
type HUDConfig struct {
	Gauge bool `toml:"gauge"` // Show the pressure gauge
}

// AudioConfig defines the procedural sound
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0..1
}

// WindowConfig defines the initial window
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// DefaultConfig returns the reference settings
func DefaultConfig() *Config {
	return &Config{
		Timeline: TimelineConfig{
			ExpandSeconds: 180,
		},
		Distortion: DistortionConfig{
			MaxJitter: 20,
		},
		Cracks: defaultCracks(),
		Dust:   defaultDust(),
		Sky: SkyConfig{
			Mode:         SkyQuadrant,
			BaseRate:     0.01,
			Acceleration: 5,
			Celestial:    true,
			Grass:        true,
		},
		HUD: HUDConfig{
			Gauge: true,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "crushhouse",
		},
	}
}

// defaultCracks mirrors crack.DefaultParams so the tuning lives in one place.
func defaultCracks() CrackConfig {
	p := crack.DefaultParams()
	return CrackConfig{
		SpawnProbability:  p.SpawnProbability,
		PopulationCap:     p.PopulationCap,
		Branches:          p.Branches.String(),
		BranchLengthRatio: p.BranchLengthRatio,
		BranchSpreadDeg:   p.BranchSpread * 180 / math.Pi,
		IntensityDecay:    p.IntensityDecay,
		BranchThreshold:   p.BranchThreshold,
		StrokeMin:         p.StrokeMin,
		StrokeMax:         p.StrokeMax,
	}
}

func defaultDust() DustConfig {
	p := scenery.DefaultDustParams()
	return DustConfig{
		Threshold: p.Threshold,
		Count:     p.Count,
		SizeMin:   p.SizeMin,
		SizeMax:   p.SizeMax,
	}
}

// LoadConfig loads the config from a TOML file on top of the defaults
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig() // Start with defaults
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	switch {
	case c.Timeline.ExpandSeconds <= 0:
		return fmt.Errorf("%w: timeline.expand_seconds must be positive, got %v", ErrInvalidConfig, c.Timeline.ExpandSeconds)
	case c.Distortion.MaxJitter < 0:
		return fmt.Errorf("%w: distortion.max_jitter must not be negative", ErrInvalidConfig)
	case c.Cracks.SpawnProbability < 0 || c.Cracks.SpawnProbability > 1:
		return fmt.Errorf("%w: cracks.spawn_probability must be in [0, 1]", ErrInvalidConfig)
	case c.Cracks.PopulationCap < 0:
		return fmt.Errorf("%w: cracks.population_cap must not be negative", ErrInvalidConfig)
	case c.Cracks.IntensityDecay <= 0 || c.Cracks.IntensityDecay >= 1:
		return fmt.Errorf("%w: cracks.intensity_decay must be in (0, 1)", ErrInvalidConfig)
	case c.Cracks.BranchThreshold <= 0:
		return fmt.Errorf("%w: cracks.branch_threshold must be positive", ErrInvalidConfig)
	case c.Dust.SizeMin > c.Dust.SizeMax:
		return fmt.Errorf("%w: dust.size_min exceeds dust.size_max", ErrInvalidConfig)
	case c.Sky.Mode != SkyQuadrant && c.Sky.Mode != SkyCycle:
		return fmt.Errorf("%w: sky.mode must be %q or %q, got %q", ErrInvalidConfig, SkyQuadrant, SkyCycle, c.Sky.Mode)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be in [0, 1]", ErrInvalidConfig)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive", ErrInvalidConfig)
	}

	expr, err := dice.Parse(c.Cracks.Branches)
	if err != nil {
		return fmt.Errorf("%w: cracks.branches: %v", ErrInvalidConfig, err)
	}
	if expr.Min() < 0 {
		return fmt.Errorf("%w: cracks.branches can roll negative budgets", ErrInvalidConfig)
	}
	if expr.Max() > MaxBranchBudget {
		return fmt.Errorf("%w: cracks.branches can roll %d, above the cap of %d", ErrInvalidConfig, expr.Max(), MaxBranchBudget)
	}
	return nil
}

// ExpandDuration returns the timeline duration.
func (c *Config) ExpandDuration() time.Duration {
	return time.Duration(c.Timeline.ExpandSeconds * float64(time.Second))
}

// CrackParams converts the crack section for the crack package. The config
// must have passed Validate.
func (c *Config) CrackParams() crack.Params {
	p := crack.DefaultParams()
	p.SpawnProbability = c.Cracks.SpawnProbability
	p.PopulationCap = c.Cracks.PopulationCap
	p.BranchLengthRatio = c.Cracks.BranchLengthRatio
	p.BranchSpread = c.Cracks.BranchSpreadDeg * math.Pi / 180
	p.IntensityDecay = c.Cracks.IntensityDecay
	p.BranchThreshold = c.Cracks.BranchThreshold
	p.StrokeMin = c.Cracks.StrokeMin
	p.StrokeMax = c.Cracks.StrokeMax
	if expr, err := dice.Parse(c.Cracks.Branches); err == nil {
		p.Branches = expr
	}
	return p
}

// DustParams converts the dust section for the scenery package.
func (c *Config) DustParams() scenery.DustParams {
	return scenery.DustParams{
		Threshold: c.Dust.Threshold,
		Count:     c.Dust.Count,
		SizeMin:   c.Dust.SizeMin,
		SizeMax:   c.Dust.SizeMax,
	}
}
