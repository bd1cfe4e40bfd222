package raster

import "errors"

// Sentinel errors for the raster package.
var (
	// ErrReadFailed indicates the raster file could not be opened or decoded.
	ErrReadFailed = errors.New("raster: file could not be read")

	// ErrSizeMismatch indicates an operation received a raster whose
	// dimensions do not match what the caller expected (e.g. a water-map
	// raster sized differently than the tensor field it must mask).
	ErrSizeMismatch = errors.New("raster: dimensions do not match")
)
