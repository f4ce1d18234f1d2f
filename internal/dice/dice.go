// Package dice provides the seedable random source that is threaded through
// every piece of the animation that needs entropy: vertex jitter, crack
// spawning and branching, dust placement, and grass generation.
//
// A Roller wraps a single *rand.Rand so a whole run can be replayed from one
// seed. Integer draws can also be expressed in dice notation ("1d3", "2d6+1")
// so configuration files can describe discrete distributions.
package dice

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
)

// Roller draws uniform samples from a configurable random source
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a new Roller with the given random source
func NewRoller(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// NewSeeded creates a Roller whose sequence is fully determined by seed.
func NewSeeded(seed uint64) *Roller {
	return NewRoller(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Float returns a uniform sample in [0, 1).
func (r *Roller) Float() float64 {
	return r.rng.Float64()
}

// Range returns a uniform sample in [lo, hi). When hi < lo the bounds are
// used as given, so the sample lies in (hi, lo].
func (r *Roller) Range(lo, hi float64) float64 {
	return lo + r.rng.Float64()*(hi-lo)
}

// Spread returns a uniform sample in [-mag, +mag).
func (r *Roller) Spread(mag float64) float64 {
	return r.Range(-mag, mag)
}

// Intn returns a uniform integer in [0, n). n must be positive.
func (r *Roller) Intn(n int) int {
	return r.rng.IntN(n)
}

// Expr is a parsed dice expression of the form NdM, NdM+K, NdM-K or a
// plain integer constant.
type Expr struct {
	Count    int // Number of dice (0 for a constant)
	Sides    int // Faces per die
	Modifier int // Flat value added to the sum
	source   string
}

// diceRegex matches dice notation like "1d3", "2d6+1", "3d4-2"
var diceRegex = regexp.MustCompile(`^(\d+)d(\d+)(?:([+-])(\d+))?$`)

// Parse validates a dice expression once so it can be rolled every frame
// without re-parsing.
func Parse(expression string) (Expr, error) {
	expr := strings.ReplaceAll(strings.TrimSpace(strings.ToLower(expression)), " ", "")
	if expr == "" {
		return Expr{}, fmt.Errorf("empty expression")
	}

	// Check if it's a constant
	if num, err := strconv.Atoi(expr); err == nil {
		return Expr{Modifier: num, source: expression}, nil
	}

	matches := diceRegex.FindStringSubmatch(expr)
	if matches == nil {
		return Expr{}, fmt.Errorf("invalid dice expression: %s", expression)
	}

	count, _ := strconv.Atoi(matches[1])
	sides, _ := strconv.Atoi(matches[2])
	if count <= 0 || sides <= 0 {
		return Expr{}, fmt.Errorf("dice count and sides must be positive: %s", expression)
	}

	mod := 0
	if matches[4] != "" {
		mod, _ = strconv.Atoi(matches[4])
		if matches[3] == "-" {
			mod = -mod
		}
	}

	return Expr{Count: count, Sides: sides, Modifier: mod, source: expression}, nil
}

// MustParse is like Parse but panics on a malformed expression. It is meant
// for package-level defaults.
func MustParse(expression string) Expr {
	e, err := Parse(expression)
	if err != nil {
		panic(err)
	}
	return e
}

// Min returns the smallest value the expression can produce.
func (e Expr) Min() int {
	return e.Count + e.Modifier
}

// Max returns the largest value the expression can produce.
func (e Expr) Max() int {
	return e.Count*e.Sides + e.Modifier
}

// String returns the expression as it was written.
func (e Expr) String() string {
	return e.source
}

// Roll evaluates the expression. Each die is uniform in [1, Sides].
func (r *Roller) Roll(e Expr) int {
	total := e.Modifier
	for i := 0; i < e.Count; i++ {
		total += r.Intn(e.Sides) + 1
	}
	return total
}
