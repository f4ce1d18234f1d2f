// Package squeeze maps elapsed time onto the normalized squeeze factor that
// drives every other part of the animation, and derives the shrinking
// visible area from it.
package squeeze

import (
	"math"
	"sync"
	"time"

	"chosenoffset.com/crushhouse/internal/core/geom"
)

// Clock supplies the current instant. Implementations must be monotonic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process clock. time.Now carries a monotonic reading,
// so differences between two results are immune to wall-clock changes.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a clock that only moves when told to. It drives headless
// rendering and tests.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock creates a ManualClock positioned at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current instant.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward (or backward for negative d).
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Set positions the clock at t.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Factor converts elapsed time into a squeeze factor in [0, 1].
// Negative elapsed time (clock skew) reads as 0; anything at or past the
// duration reads as exactly 1.
func Factor(elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return elapsed.Seconds() / duration.Seconds()
}

// Timeline tracks when the current squeeze run started
type Timeline struct {
	clock    Clock
	start    time.Time
	duration time.Duration
}

// NewTimeline creates a timeline that starts now and reaches full squeeze
// after duration.
func NewTimeline(clock Clock, duration time.Duration) *Timeline {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Timeline{
		clock:    clock,
		start:    clock.Now(),
		duration: duration,
	}
}

// Elapsed returns the time since the last reset, never negative.
func (t *Timeline) Elapsed() time.Duration {
	elapsed := t.clock.Now().Sub(t.start)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Factor returns the current squeeze factor.
func (t *Timeline) Factor() float64 {
	return Factor(t.Elapsed(), t.duration)
}

// Duration returns the configured expansion duration.
func (t *Timeline) Duration() time.Duration {
	return t.duration
}

// Reset restarts the run from the current instant.
func (t *Timeline) Reset() {
	t.start = t.clock.Now()
}

// VisibleArea returns the centered square left uncovered by the border.
// The border grows from 0 to half the smaller viewport dimension as factor
// goes 0 to 1, so the square shrinks symmetrically from all four edges.
// The size is clamped at 0; callers should check Rect.Empty.
func VisibleArea(viewW, viewH, factor float64) geom.Rect {
	side := math.Min(viewW, viewH)
	if side <= 0 {
		return geom.Rect{X: viewW / 2, Y: viewH / 2}
	}

	size := math.Max(0, side-2*BorderWidth(viewW, viewH, factor))

	return geom.Rect{
		X: (viewW - size) / 2,
		Y: (viewH - size) / 2,
		W: size,
		H: size,
	}
}

// BorderWidth returns how far the border has advanced from each edge.
func BorderWidth(viewW, viewH, factor float64) float64 {
	return geom.Clamp(factor, 0, 1) * math.Min(viewW, viewH) / 2
}
