// Package audio plays the procedural soundtrack: a rumble that grows with the
// squeeze and a snap for every new crack.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Manager owns the speaker and the streams mixed into it. Every method is
// safe to call before Initialize or after Cleanup; they do nothing then.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	rumble      *RumbleGenerator
	rumbleCtrl  *beep.Ctrl
	initialized bool
	muted       bool
	level       float64
	seed        uint64
}

// NewManager creates a manager with the master volume in [0, 1].
func NewManager(volume float64, seed uint64) *Manager {
	mixer := &beep.Mixer{}
	return &Manager{
		mixer:  mixer,
		volume: newVolume(mixer, volume),
		rumble: NewRumbleGenerator(sampleRate, seed),
		level:  volume,
		seed:   seed,
	}
}

// newVolume maps a linear level to beep's log2 volume. Zero is silent.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(vol, 1)), Silent: false}
}

// Initialize opens the audio device and starts the rumble.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	m.rumbleCtrl = &beep.Ctrl{Streamer: m.rumble, Paused: false}
	m.mixer.Add(m.rumbleCtrl)
	speaker.Play(m.volume)
	m.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	if m.rumbleCtrl != nil {
		m.rumbleCtrl.Paused = true
	}
	m.mixer.Clear()
	speaker.Unlock()

	speaker.Clear()
	m.initialized = false
}

// SetPressure drives the rumble loudness from the squeeze factor.
func (m *Manager) SetPressure(factor float64) {
	m.rumble.SetGain(factor)
}

// Pressure returns the last rumble target.
func (m *Manager) Pressure() float64 {
	return m.rumble.Gain()
}

// Snap plays one crack sound. Strength in [0, 1] scales its loudness.
func (m *Manager) Snap(strength float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}

	m.seed++
	streamer := beep.Take(sampleRate.N(SnapDuration), NewSnapGenerator(sampleRate, strength, m.seed))

	speaker.Lock()
	m.mixer.Add(streamer)
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new value.
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.muted = !m.muted
	silent := m.muted || m.level <= 0
	if m.initialized {
		speaker.Lock()
		m.volume.Silent = silent
		speaker.Unlock()
	} else {
		m.volume.Silent = silent
	}
	return m.muted
}

// Muted reports whether output is muted.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}
