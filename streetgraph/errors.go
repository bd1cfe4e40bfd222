package streetgraph

import "errors"

// Sentinel errors for the streetgraph package.
var (
	// ErrFieldEmpty indicates Generate was called against a tensor field
	// that has not been filled, or whose eigen cache is stale.
	ErrFieldEmpty = errors.New("streetgraph: tensor field is empty or eigen cache is stale")

	// ErrUnknownMethod indicates Generate was called with a Method value
	// outside the defined set.
	ErrUnknownMethod = errors.New("streetgraph: unrecognized generation method")

	// ErrUnknownSeedStrategy indicates Generate was called with a
	// SeedStrategy value outside the defined set.
	ErrUnknownSeedStrategy = errors.New("streetgraph: unrecognized seed strategy")

	// ErrGrowthRunaway names the GrowthRunaway error kind. It is never
	// returned by any function; a road that hits the iteration safety cap
	// instead finalizes with Road.Truncated set to true and Generate
	// continues with the rest of the seed list. It exists so callers can
	// refer to the condition by a stable identifier (logging, metrics)
	// without reaching for a magic string.
	ErrGrowthRunaway = errors.New("streetgraph: road truncated by iteration safety cap")
)
