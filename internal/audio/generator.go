package audio

import (
	"math"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
)

// RumbleGenerator produces an endless low groan whose loudness follows the
// squeeze factor. The gain is written from the frame loop and read from the
// speaker goroutine, so it is stored atomically.
type RumbleGenerator struct {
	sr    beep.SampleRate
	pos   int
	gain  atomic.Uint64 // math.Float64bits of the target gain
	level float64       // Smoothed gain actually applied
	noise float64       // One-pole low-passed noise
	rng   *rand.Rand
}

// NewRumbleGenerator creates a silent rumble generator.
func NewRumbleGenerator(sr beep.SampleRate, seed uint64) *RumbleGenerator {
	return &RumbleGenerator{
		sr:  sr,
		rng: rand.New(rand.NewPCG(seed, seed+1)),
	}
}

// SetGain sets the target loudness in [0, 1].
func (g *RumbleGenerator) SetGain(v float64) {
	v = math.Max(0, math.Min(1, v))
	g.gain.Store(math.Float64bits(v))
}

// Gain returns the target loudness.
func (g *RumbleGenerator) Gain() float64 {
	return math.Float64frombits(g.gain.Load())
}

func (g *RumbleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	target := g.Gain()
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Ramp toward the target to avoid clicks when the gain jumps on reset
		g.level += (target - g.level) * 0.001

		// Two detuned low sines beat against each other
		tone := 0.5*math.Sin(2*math.Pi*38*t) + 0.3*math.Sin(2*math.Pi*41.5*t)

		// Brown-ish noise for the grinding texture
		g.noise += (g.rng.Float64()*2 - 1 - g.noise) * 0.02
		sample := g.level * 0.35 * (tone + 2*g.noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *RumbleGenerator) Err() error {
	return nil
}

// SnapGenerator produces the short crack of a new fracture: a noise burst
// over a falling tone with a fast exponential decay.
type SnapGenerator struct {
	sr       beep.SampleRate
	pos      int
	strength float64
	rng      *rand.Rand
}

// SnapDuration is how long a single snap lasts
const SnapDuration = 180 * time.Millisecond

// NewSnapGenerator creates a snap generator. Strength scales the peak level.
func NewSnapGenerator(sr beep.SampleRate, strength float64, seed uint64) *SnapGenerator {
	return &SnapGenerator{
		sr:       sr,
		strength: math.Max(0, math.Min(1, strength)),
		rng:      rand.New(rand.NewPCG(seed, seed^0x5eed)),
	}
}

func (g *SnapGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 30)
		noise := g.rng.Float64()*2 - 1
		freq := 900 * math.Exp(-t*12)
		tone := math.Sin(2 * math.Pi * freq * t)

		sample := g.strength * envelope * (0.45*noise + 0.25*tone)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SnapGenerator) Err() error {
	return nil
}
