package crack

import (
	"math"

	"chosenoffset.com/crushhouse/internal/dice"
)

// Population is the append-only set of crack seeds for the current run
type Population struct {
	params Params
	cracks []Crack
}

// NewPopulation creates an empty population.
func NewPopulation(params Params) *Population {
	return &Population{params: params}
}

// Cap returns how many cracks may exist at the given squeeze factor.
func (p *Population) Cap(factor float64) int {
	if factor <= 0 {
		return 0
	}
	return int(math.Floor(p.params.PopulationCap * factor))
}

// Step runs the per-frame spawn check. One uniform sample is drawn; a crack
// is appended only when the sample falls under SpawnProbability×factor and
// the population is below Cap(factor). The new crack is returned with ok set.
func (p *Population) Step(factor float64, r *dice.Roller) (c Crack, ok bool) {
	sample := r.Float()
	if sample >= p.params.SpawnProbability*factor || len(p.cracks) >= p.Cap(factor) {
		return Crack{}, false
	}

	c = Crack{
		X:        r.Range(p.params.StartX.Min, p.params.StartX.Max),
		Y:        r.Range(p.params.StartY.Min, p.params.StartY.Max),
		Length:   r.Range(p.params.Length.Min, p.params.Length.Max),
		Angle:    r.Range(0, math.Pi),
		Branches: r.Roll(p.params.Branches),
	}
	p.cracks = append(p.cracks, c)
	return c, true
}

// Cracks returns a copy of the seeds in insertion order.
func (p *Population) Cracks() []Crack {
	out := make([]Crack, len(p.cracks))
	copy(out, p.cracks)
	return out
}

// Len returns the number of seeds.
func (p *Population) Len() int {
	return len(p.cracks)
}

// Reset drops every seed.
func (p *Population) Reset() {
	p.cracks = nil
}
