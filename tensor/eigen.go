package tensor

import "math"

// Eigen holds the eigen-decomposition of a single Tensor: a pair of
// orthonormal unit vectors (Major, Minor) with their signed eigenvalues
// (LambdaMajor, LambdaMinor), ordered so that |LambdaMajor| >= |LambdaMinor|.
// A degenerate tensor decomposes to the zero vector pair and zero
// eigenvalues — this is itself the marker for "no well-defined direction
// here", not an error condition once Decompose has returned nil.
type Eigen struct {
	Major, Minor             Vec2
	LambdaMajor, LambdaMinor float64
}

// IsDegenerate reports whether e carries no direction information (both
// eigenvectors are the zero vector).
func (e Eigen) IsDegenerate() bool {
	return e.Major == (Vec2{}) && e.Minor == (Vec2{})
}

// Decompose computes the eigen-decomposition of t.
//
// Preconditions: t must be symmetric and traceless (t.IsSymmetricTraceless).
// If it is not, Decompose returns the zero Eigen and ErrNotSymmetricTraceless
// — per spec §7 (TensorShapeViolation), callers that want to keep building
// partial output should treat the returned cell as degenerate rather than
// abort.
//
// If t is degenerate, Decompose returns the zero Eigen with a nil error —
// this is the NumericFallback path, not an error.
//
// Otherwise the eigenvalues are the closed-form ±√(A²+B²) and the
// eigenvectors are solved directly from (M - λI)v = 0 rather than via a
// general iterative solver, so the B==0 axis-aligned case (which includes
// the canonical identity-like tensor (1,0,0,-1)) never divides by zero or
// risks a library returning NaN.
func Decompose(t Tensor) (Eigen, error) {
	if !t.IsSymmetricTraceless() {
		return Eigen{}, ErrNotSymmetricTraceless
	}
	if t.IsDegenerate() {
		return Eigen{}, nil
	}

	r := math.Hypot(t.A, t.B) // λ_major = +r, λ_minor = -r

	var major, minor Vec2
	if IsFuzzyNull(t.B) {
		// Axis-aligned case: M = diag(A, -A). Whichever diagonal entry is
		// positive carries the major (larger algebraic) eigenvalue.
		// A==1,B==0,D==-1 (the reference's canonical identity-like tensor)
		// falls out of this same branch as major=(1,0), minor=(0,1).
		if t.A > 0 {
			major, minor = Vec2{X: 1, Y: 0}, Vec2{X: 0, Y: 1}
		} else {
			major, minor = Vec2{X: 0, Y: 1}, Vec2{X: 1, Y: 0}
		}
	} else {
		major = normalize(Vec2{X: t.B, Y: r - t.A})
		minor = normalize(Vec2{X: t.B, Y: -r - t.A})
	}

	return Eigen{Major: major, Minor: minor, LambdaMajor: r, LambdaMinor: -r}, nil
}

// normalize returns v scaled to unit length. Callers only ever pass
// non-zero vectors (guaranteed by Decompose's B!=0 branch), so no
// zero-length guard is needed here.
func normalize(v Vec2) Vec2 {
	l := v.Length()
	return Vec2{X: v.X / l, Y: v.Y / l}
}
