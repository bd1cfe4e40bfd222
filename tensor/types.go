package tensor

import "math"

// Epsilon is the absolute tolerance used by every fuzzy comparison in this
// package (and, by convention, throughout tensorstreets). It is not a
// relative/ULP tolerance: the reference implementation and spec both define
// fuzzy-zero/fuzzy-equal in terms of a single absolute bound.
const Epsilon = 1e-5

// Vec2 is a 2D vector or point in world coordinates. X is the horizontal
// axis, Y is the vertical axis with world-Y increasing upward. This single
// convention is used everywhere in tensorstreets (field rows, seeds, road
// segments, node positions) — see DESIGN.md for why the reference
// implementation's row/column swap is not reproduced.
type Vec2 struct {
	X, Y float64
}

// Add returns v+w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v-w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the Euclidean dot product v·w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Length returns the Euclidean norm ‖v‖.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Det2D returns the 2D cross-product (determinant) v×w = v.X*w.Y - v.Y*w.X.
func Det2D(v, w Vec2) float64 { return v.X*w.Y - v.Y*w.X }

// IsFuzzyNull reports whether a is within Epsilon of zero.
func IsFuzzyNull(a float64) bool { return math.Abs(a) < Epsilon }

// IsFuzzyEqual reports whether a and b are within Epsilon of each other.
func IsFuzzyEqual(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// Tensor is a 2×2 real matrix [[A,C],[B,D]]. Canonical tensors used
// throughout this module are symmetric (B==C) and traceless (A+D==0); see
// IsSymmetricTraceless.
type Tensor struct {
	A, B, C, D float64
}

// IsSymmetricTraceless reports whether t is, within Epsilon, both symmetric
// (B==C) and traceless (A+D==0). Uses the corrected fuzzy-null form for the
// trace check (|A+D| < Epsilon), not the reference's inequality bug — see
// DESIGN.md Open Question 4.
func (t Tensor) IsSymmetricTraceless() bool {
	return IsFuzzyEqual(t.B, t.C) && IsFuzzyNull(t.A+t.D)
}

// IsDegenerate reports whether all four components of t are fuzzy-zero.
// A degenerate tensor has no well-defined eigen-direction.
func (t Tensor) IsDegenerate() bool {
	return IsFuzzyNull(t.A) && IsFuzzyNull(t.B) && IsFuzzyNull(t.C) && IsFuzzyNull(t.D)
}

// Scale returns t scaled by s.
func (t Tensor) Scale(s float64) Tensor {
	return Tensor{A: t.A * s, B: t.B * s, C: t.C * s, D: t.D * s}
}

// Add returns the component-wise sum t+u (superposition of two basis
// contributions).
func (t Tensor) Add(u Tensor) Tensor {
	return Tensor{A: t.A + u.A, B: t.B + u.B, C: t.C + u.C, D: t.D + u.D}
}

// FromAngleLength builds the canonical symmetric traceless tensor for
// direction theta (radians) and magnitude l:
//
//	(l*cos2θ, l*sin2θ, l*sin2θ, -l*cos2θ)
//
// This is the single building block every basis field in package field
// reduces to (grid, rotating, radial, heightmap, water-boundary).
func FromAngleLength(theta, l float64) Tensor {
	cos2, sin2 := math.Cos(2*theta), math.Sin(2*theta)
	return Tensor{A: l * cos2, B: l * sin2, C: l * sin2, D: -l * cos2}
}
