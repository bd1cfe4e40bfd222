package seed

import (
	"math/rand"

	"github.com/mireles-dev/tensorstreets/geom"
	"github.com/mireles-dev/tensorstreets/tensor"
)

// Generator produces seed points within a Region. Without an injected RNG,
// each Uniform/DensityConstrained call draws from a fresh clock-seeded RNG;
// GeneratorOption lets callers pin a deterministic source for tests.
type Generator struct {
	region geom.Region
	rng    *rand.Rand
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithSeed derives a deterministic RNG from an int64 seed.
func WithSeed(s int64) GeneratorOption {
	return func(g *Generator) {
		g.rng = rngFromSeed(s)
	}
}

// WithRand injects an already-constructed RNG, e.g. one shared across
// several generators for a single reproducible run.
func WithRand(r *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		g.rng = r
	}
}

// NewGenerator builds a Generator over region.
func NewGenerator(region geom.Region, opts ...GeneratorOption) *Generator {
	g := &Generator{region: region}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Grid produces seeds on a regular grid with separation dSep: one seed at
// (dSep/2 + j*dSep, dSep/2 + i*dSep) for every (i, j) that fits within the
// region, i ranging over the height axis and j over the width axis.
func (g *Generator) Grid(dSep float64) []tensor.Vec2 {
	nv := int(g.region.Height() / dSep)
	nu := int(g.region.Width() / dSep)

	seeds := make([]tensor.Vec2, 0, nv*nu)
	for i := 0; i < nv; i++ {
		for j := 0; j < nu; j++ {
			seeds = append(seeds, tensor.Vec2{
				X: g.region.BottomLeft.X + dSep/2 + float64(j)*dSep,
				Y: g.region.BottomLeft.Y + dSep/2 + float64(i)*dSep,
			})
		}
	}
	return seeds
}

// Uniform draws n seeds uniformly at random from the region with no
// rejection.
func (g *Generator) Uniform(n int) []tensor.Vec2 {
	rng := deriveRNG(g)
	seeds := make([]tensor.Vec2, n)
	for k := 0; k < n; k++ {
		seeds[k] = g.uniformPoint(rng)
	}
	return seeds
}

// DensityConstrained draws up to n seeds, each accepted only if it lies at
// least dSep away (Euclidean) from every previously accepted seed,
// including any passed in via existing. Each attempt tries up to 10
// uniform samples before giving up on that seed, matching the reference's
// fixed attempt budget; a seed that exhausts its budget is simply skipped,
// not reported as an error.
func (g *Generator) DensityConstrained(n int, dSep float64, existing []tensor.Vec2) []tensor.Vec2 {
	const maxAttempts = 10
	rng := deriveRNG(g)

	accepted := make([]tensor.Vec2, len(existing), len(existing)+n)
	copy(accepted, existing)

	for k := 0; k < n; k++ {
		for attempt := 0; attempt < maxAttempts; attempt++ {
			candidate := g.uniformPoint(rng)
			if respectsSeparation(candidate, accepted, dSep) {
				accepted = append(accepted, candidate)
				break
			}
		}
	}
	return accepted[len(existing):]
}

func (g *Generator) uniformPoint(rng *rand.Rand) tensor.Vec2 {
	return tensor.Vec2{
		X: g.region.BottomLeft.X + rng.Float64()*g.region.Width(),
		Y: g.region.BottomLeft.Y + rng.Float64()*g.region.Height(),
	}
}

func respectsSeparation(p tensor.Vec2, existing []tensor.Vec2, dSep float64) bool {
	for _, e := range existing {
		if p.Sub(e).Length() < dSep {
			return false
		}
	}
	return true
}
