// Package seed generates the starting points for street-graph growth: an
// evenly-spaced grid, uniform-random samples, or random samples constrained
// to a minimum separation distance from every prior seed.
//
// The reference implementation (StreetGraph.cpp's createGridSeedList /
// createRandomSeedList / createDensityConstrainedSeedList) reseeds
// math.Rand from the wall clock every call; this package instead accepts
// an injected *rand.Rand (or a seed to derive one), the way
// tsp.rngFromSeed/deriveRNG and builder.WithSeed/WithRand do, so tests can
// pin down deterministic output while production callers can still seed
// from a coarse clock reading if they choose to.
package seed
