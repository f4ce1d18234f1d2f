package crack

import (
	"math"

	"chosenoffset.com/crushhouse/internal/core/geom"
	"chosenoffset.com/crushhouse/internal/dice"
)

// Tree is the expanded form of one crack
type Tree struct {
	Segments []geom.Segment
	Calls    int // Number of growth calls, one per segment
	MaxDepth int // Deepest recursion level reached (trunk = 0)
}

// Generator expands crack seeds into segment trees
type Generator struct {
	params Params
}

// NewGenerator creates a Generator with the given tuning.
func NewGenerator(params Params) *Generator {
	return &Generator{params: params}
}

// Generate grows a crack from (sx, sy) in pixels.
//
// Each call emits one segment. It branches only while budget > 0 and
// intensity is above the threshold; a branching call spawns exactly budget
// children from its end point, each shorter, deviated by a random angle,
// with budget-1 and decayed intensity. Budget strictly decreases, so the
// recursion always terminates.
func (g *Generator) Generate(sx, sy, length, angle float64, budget int, intensity float64, r *dice.Roller) Tree {
	var t Tree
	g.grow(&t, sx, sy, length, angle, budget, intensity, 0, r)
	return t
}

// Expand grows c inside a w×h area whose origin is (0,0).
func (g *Generator) Expand(c Crack, w, h, intensity float64, r *dice.Roller) Tree {
	return g.Generate(c.X*w, c.Y*h, c.Length*w, c.Angle, c.Branches, intensity, r)
}

func (g *Generator) grow(t *Tree, sx, sy, length, angle float64, budget int, intensity float64, depth int, r *dice.Roller) {
	t.Calls++
	if depth > t.MaxDepth {
		t.MaxDepth = depth
	}

	ex := sx + math.Cos(angle)*length
	ey := sy + math.Sin(angle)*length
	t.Segments = append(t.Segments, geom.Segment{
		A:     geom.Point{X: sx, Y: sy},
		B:     geom.Point{X: ex, Y: ey},
		Width: geom.Lerp(g.params.StrokeMin, g.params.StrokeMax, intensity),
		Depth: depth,
	})

	if budget <= 0 || intensity <= g.params.BranchThreshold {
		return
	}

	childLength := length * g.params.BranchLengthRatio
	for i := 0; i < budget; i++ {
		childAngle := angle + r.Spread(g.params.BranchSpread)
		g.grow(t, ex, ey, childLength, childAngle, budget-1, intensity*g.params.IntensityDecay, depth+1, r)
	}
}
