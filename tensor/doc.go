// Package tensor defines the 2×2 symmetric traceless tensor used to encode
// local road-orientation preference, plus its eigen-decomposition.
//
// A Tensor is canonical when Tensor.IsSymmetricTraceless reports true:
// B == C (symmetric) and A + D == 0 (traceless), both under a fuzzy
// absolute-epsilon comparison (Epsilon). Every canonical tensor therefore
// reduces to two free scalars (A, B) with eigenvalues ±√(A²+B²).
//
// Eigen decomposition is closed-form (no iterative solver): this is not an
// approximation for speed, it is the only correct answer for a 2×2
// symmetric traceless matrix, and it lets two explicit degenerate cases
// (the null tensor and the canonical identity-like tensor) be special-cased
// without ever routing NaN through a general-purpose eigensolver.
package tensor
