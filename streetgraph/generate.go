package streetgraph

import (
	"context"

	"github.com/mireles-dev/tensorstreets/seed"
	"github.com/mireles-dev/tensorstreets/tensor"
)

const (
	hyperstreamlineSeedCount = 500
	densityConstrainedCount  = 100
)

// Generate clears the graph, populates a seed list per the Graph's
// configured SeedStrategy (WithSeedStrategy, default SeedGrid), and grows
// roads from every seed per method, alternating the major/minor
// eigenvector direction between successive seeds so principal and
// secondary families interleave. It returns ErrFieldEmpty if the tensor
// field has not been filled and eigen-decomposed.
//
// Seeds pushed during growth (re-seeding after a length-capped road) are
// appended to the same list Generate is walking, so they are themselves
// processed before Generate returns — growth genuinely drives coverage,
// not just the initial seed batch.
//
// Generate checks ctx before processing each seed and returns ctx.Err()
// if it was canceled, leaving whatever roads already finished grown in
// place — there is no rollback, matching the core's synchronous,
// non-transactional generation model.
func (g *Graph) Generate(ctx context.Context, method Method) error {
	return g.run(ctx, method, g.seedStrategy)
}

// GenerateMajorHyperstreamlines is a coarse preview mode: one road per
// seed, major-direction growth only, no T-junction detection and no
// length cap. It always draws ~500 uniformly-random seeds regardless of
// the Graph's configured SeedStrategy, mirroring the historical
// quick-preview path the full Generate superseded.
func (g *Graph) GenerateMajorHyperstreamlines(ctx context.Context) error {
	return g.run(ctx, MethodHyperstreamlines, SeedUniform)
}

// run is the shared body behind Generate and GenerateMajorHyperstreamlines.
func (g *Graph) run(ctx context.Context, method Method, seedStrategy SeedStrategy) error {
	if method != MethodHyperstreamlines && method != MethodSingleDirection && method != MethodTwoDirections {
		return ErrUnknownMethod
	}

	g.mu.Lock()
	if !g.field.Filled() || !g.field.EigenCached() {
		g.mu.Unlock()
		return ErrFieldEmpty
	}
	g.clearLocked()

	seeds, err := g.makeSeeds(seedStrategy)
	if err != nil {
		g.mu.Unlock()
		return err
	}
	g.seeds = seeds
	g.mu.Unlock()

	useMajor := true
	for k := 0; ; k++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		g.mu.Lock()
		if k >= len(g.seeds) {
			g.mu.Unlock()
			break
		}
		position := g.seeds[k]
		g.generateOneSeedLocked(method, position, useMajor)
		g.mu.Unlock()
		useMajor = !useMajor
	}
	return nil
}

// makeSeeds builds the initial seed list for strategy. Must be called
// with g.mu held.
func (g *Graph) makeSeeds(strategy SeedStrategy) ([]tensor.Vec2, error) {
	var opts []seed.GeneratorOption
	if g.rng != nil {
		opts = append(opts, seed.WithRand(g.rng))
	}
	gen := seed.NewGenerator(g.region, opts...)

	switch strategy {
	case SeedGrid:
		return gen.Grid(g.dSep), nil
	case SeedUniform:
		return gen.Uniform(hyperstreamlineSeedCount), nil
	case SeedDensityConstrained:
		return gen.DensityConstrained(densityConstrainedCount, g.dSep, nil), nil
	default:
		return nil, ErrUnknownSeedStrategy
	}
}

// generateOneSeedLocked allocates a start node and either one or two
// roads per method, and grows each. Must be called with g.mu held.
func (g *Graph) generateOneSeedLocked(method Method, position tensor.Vec2, useMajor bool) {
	startNode := g.newNodeLocked(position)

	switch method {
	case MethodHyperstreamlines:
		road := g.newRoadLocked(Principal, startNode)
		g.growLocked(road, startNode, useMajor, false, false)
	case MethodSingleDirection:
		road := g.newRoadLocked(Principal, startNode)
		g.growLocked(road, startNode, useMajor, false, true)
	case MethodTwoDirections:
		roadA := g.newRoadLocked(Principal, startNode)
		roadB := g.newRoadLocked(Principal, startNode)
		g.growAndConnectLocked(roadA, startNode, useMajor, false, true)
		g.growAndConnectLocked(roadB, startNode, useMajor, true, true)
	}
}
