package problemgen

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/abhisek/simplify/internal/fraction"
)

// Multipliers scale an irreducible base to make a reducible exercise.
var Multipliers = []int{2, 3, 4, 5, 6, 10}

// IrreducibleShare is the fraction of exercises that are already in lowest
// terms, so learners practice declining a reduction.
const IrreducibleShare = 0.25

// RandomGenerator picks a base numerator in 1..9 and a different base
// denominator in 2..10. One time in four it returns the base in lowest
// terms; otherwise it scales the base by one of Multipliers.
type RandomGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandom returns a generator seeded from the runtime's random source.
func NewRandom() *RandomGenerator {
	return NewRandomWithSeed(rand.Uint64(), rand.Uint64())
}

// NewRandomWithSeed returns a deterministic generator.
func NewRandomWithSeed(seed1, seed2 uint64) *RandomGenerator {
	return &RandomGenerator{rnd: rand.New(rand.NewPCG(seed1, seed2))}
}

func (g *RandomGenerator) Generate(_ context.Context) (fraction.Fraction, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	num := g.rnd.IntN(9) + 1
	den := g.rnd.IntN(9) + 2
	for den == num {
		den = g.rnd.IntN(9) + 2
	}
	mult := Multipliers[g.rnd.IntN(len(Multipliers))]

	if g.rnd.Float64() < IrreducibleShare {
		return fraction.New(num, den).Lowest(), nil
	}
	return fraction.New(num*mult, den*mult), nil
}
