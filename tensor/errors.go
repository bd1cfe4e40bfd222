package tensor

import "errors"

// Sentinel errors for the tensor package.
var (
	// ErrNotSymmetricTraceless indicates Eigen was asked to decompose a
	// Tensor that fails IsSymmetricTraceless. The caller receives the
	// degenerate (zero) EigenCell alongside this error so partial,
	// best-effort output can still be used by a non-aborting caller.
	ErrNotSymmetricTraceless = errors.New("tensor: not symmetric/traceless")
)
