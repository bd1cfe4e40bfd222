package field

import "errors"

// Sentinel errors for the field package.
var (
	// ErrFieldNotFilled indicates an operation that requires at least one
	// fill to have run (e.g. ComputeEigen) was called on an empty field.
	ErrFieldNotFilled = errors.New("field: tensor field is not filled")

	// ErrEigenNotComputed indicates MajorEigenVector/MinorEigenVector was
	// called while the eigen cache is stale — after construction or after
	// any fill that ran since the last ComputeEigen.
	ErrEigenNotComputed = errors.New("field: eigen cache is stale")

	// ErrIndexOutOfRange indicates a cell accessor was called with (i, j)
	// outside the field's bounds.
	ErrIndexOutOfRange = errors.New("field: index out of range")
)
