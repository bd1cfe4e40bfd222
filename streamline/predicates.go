package streamline

import (
	"github.com/mireles-dev/tensorstreets/geom"
	"github.com/mireles-dev/tensorstreets/tensor"
)

// ResolveDirection flips v if it points backward relative to prevDir (the
// direction of the last step taken), or if reverseFirstStep is true and
// this is the very first step (prevDir is the zero vector). Letting a seed
// grow in either direction off a single reverseFirstStep flag is what
// allows one seed to produce two opposing roads.
func ResolveDirection(v, prevDir tensor.Vec2, isFirstStep, reverseFirstStep bool) tensor.Vec2 {
	if v.Dot(prevDir) < 0 || (isFirstStep && reverseFirstStep) {
		return v.Scale(-1)
	}
	return v
}

// Boundary reports whether p lies on or outside the region's boundary.
func Boundary(region geom.Region, p tensor.Vec2) bool {
	return p.X <= region.BottomLeft.X || p.X >= region.TopRight.X ||
		p.Y <= region.BottomLeft.Y || p.Y >= region.TopRight.Y
}

// Loop reports whether p is fuzzy-equal to the first point of segments.
func Loop(p tensor.Vec2, segments []tensor.Vec2) bool {
	if len(segments) == 0 {
		return false
	}
	first := segments[0]
	return tensor.IsFuzzyEqual(p.X, first.X) && tensor.IsFuzzyEqual(p.Y, first.Y)
}

// ExceedsLength reports whether the polyline's accumulated path length
// already exceeds dSep.
func ExceedsLength(segments []tensor.Vec2, dSep float64) bool {
	return PathLength(segments) > dSep
}

// PathLength sums the Euclidean length of consecutive segment pairs.
func PathLength(segments []tensor.Vec2) float64 {
	var length float64
	for i := 1; i < len(segments); i++ {
		length += segments[i].Sub(segments[i-1]).Length()
	}
	return length
}

// StraightLength returns the distance between a polyline's first and last
// point, independent of its actual path.
func StraightLength(segments []tensor.Vec2) float64 {
	if len(segments) == 0 {
		return 0
	}
	return segments[0].Sub(segments[len(segments)-1]).Length()
}
