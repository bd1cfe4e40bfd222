package config

import "errors"

// ErrInvalidSeedMethod indicates a Config's SeedMethod field is outside
// the defined {0, 1, 2} range.
var ErrInvalidSeedMethod = errors.New("config: seed method must be 0 (grid), 1 (random), or 2 (density-constrained)")

// ErrInvalidRegion indicates a Config's region bounds do not describe a
// positive-area rectangle.
var ErrInvalidRegion = errors.New("config: top-right must be strictly greater than bottom-left on both axes")

// ErrInvalidFieldSize indicates a Config's field width/height is not
// positive.
var ErrInvalidFieldSize = errors.New("config: field width and height must be positive")
