package geom

import "github.com/mireles-dev/tensorstreets/tensor"

// Region is the rectangular world-coordinate area a tensor field and street
// graph are generated over.
type Region struct {
	BottomLeft, TopRight tensor.Vec2
}

// Width returns the region's extent along X.
func (r Region) Width() float64 {
	return r.TopRight.X - r.BottomLeft.X
}

// Height returns the region's extent along Y.
func (r Region) Height() float64 {
	return r.TopRight.Y - r.BottomLeft.Y
}

// Contains reports whether p lies strictly inside the region (on or
// outside either boundary returns false), matching the streamline tracer's
// Boundary stopping predicate.
func (r Region) Contains(p tensor.Vec2) bool {
	return p.X > r.BottomLeft.X && p.X < r.TopRight.X &&
		p.Y > r.BottomLeft.Y && p.Y < r.TopRight.Y
}

// GridIndex maps a world point to field grid indices (i = row, j = col)
// for a grid of the given height and width, rounding to nearest per the
// tracer's step evaluation.
func (r Region) GridIndex(p tensor.Vec2, height, width int) (i, j int) {
	i = roundIndex((p.Y-r.BottomLeft.Y)/r.Height()*float64(height-1), height)
	j = roundIndex((p.X-r.BottomLeft.X)/r.Width()*float64(width-1), width)
	return i, j
}

func roundIndex(v float64, extent int) int {
	idx := int(v + 0.5)
	if v < 0 {
		idx = int(v - 0.5)
	}
	if idx < 0 {
		return 0
	}
	if idx >= extent {
		return extent - 1
	}
	return idx
}
