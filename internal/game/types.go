package game

import (
	"chosenoffset.com/crushhouse/internal/core/crack"
	"chosenoffset.com/crushhouse/internal/core/house"
	"chosenoffset.com/crushhouse/internal/core/squeeze"
	"chosenoffset.com/crushhouse/internal/render/lighting"
	"chosenoffset.com/crushhouse/internal/render/scenery"
)

// Scene is everything a reset throws away. It is owned by Game and only
// touched from the frame loop.
type Scene struct {
	Timeline   *squeeze.Timeline
	Population *crack.Population
	Cycle      *lighting.Cycle
	Parts      []house.Part
	Grass      *scenery.Field
}

// Sounds is the audio side of the animation. A nil Sounds plays nothing.
type Sounds interface {
	SetPressure(factor float64)
	Snap(strength float64)
	ToggleMute() bool
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}
