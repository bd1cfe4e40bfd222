package seed

import (
	"math/rand"
	"time"
)

// rngFromSeed mirrors tsp.rngFromSeed: wraps a plain int64 seed in a
// *rand.Rand without requiring callers to import math/rand themselves.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// deriveRNG returns the Generator's configured *rand.Rand, or a
// clock-seeded one if none was injected — matching the reference's
// qsrand(currentDateTime) fallback when no caller-supplied seed exists.
func deriveRNG(g *Generator) *rand.Rand {
	if g.rng != nil {
		return g.rng
	}
	return rngFromSeed(time.Now().Unix())
}
