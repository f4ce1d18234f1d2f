// Package crack grows the branching cracks that spread across the house as
// it is squeezed.
//
// Population decides when a new crack seed appears; Generator expands a seed
// into a tree of line segments. Generation is pure apart from the random
// source, and Draw is the only function that touches a rendering surface.
package crack

import (
	"math"

	"chosenoffset.com/crushhouse/internal/dice"
)

// Crack is a seed stored in coordinates relative to the visible area.
// Cracks are never mutated after creation.
type Crack struct {
	X, Y     float64 // Start position as fractions of the visible area
	Length   float64 // Trunk length as a fraction of the visible-area width
	Angle    float64 // Radians, in [0, π)
	Branches int     // Branch budget of the trunk
}

// Range is a half-open interval [Min, Max)
type Range struct {
	Min, Max float64
}

// Params tunes crack spawning and growth
type Params struct {
	// Spawning
	SpawnProbability float64 // Per-frame spawn chance at full squeeze
	PopulationCap    float64 // Crack count allowed at full squeeze
	StartX           Range   // Relative start x
	StartY           Range   // Relative start y
	Length           Range   // Relative trunk length
	Branches         dice.Expr

	// Growth
	BranchLengthRatio float64 // Child length relative to parent
	BranchSpread      float64 // Max angle deviation of a child, radians
	IntensityDecay    float64 // Child intensity relative to parent
	BranchThreshold   float64 // Intensity at or below which a segment is a leaf
	StrokeMin         float64 // Stroke weight at intensity 0
	StrokeMax         float64 // Stroke weight at intensity 1
}

// DefaultParams returns the reference tuning.
func DefaultParams() Params {
	return Params{
		SpawnProbability:  0.05,
		PopulationCap:     20,
		StartX:            Range{0.2, 0.8},
		StartY:            Range{0.2, 0.7},
		Length:            Range{0.05, 0.2},
		Branches:          dice.MustParse("1d3"),
		BranchLengthRatio: 0.6,
		BranchSpread:      math.Pi / 3,
		IntensityDecay:    0.8,
		BranchThreshold:   0.5,
		StrokeMin:         0.5,
		StrokeMax:         2,
	}
}
