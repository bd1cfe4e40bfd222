package streamline

import "github.com/mireles-dev/tensorstreets/tensor"

// Det2D is the 2D determinant (cross-product magnitude) of v and w.
func Det2D(v, w tensor.Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// DetPointLine gives the signed side of point m relative to the directed
// line through a and b: positive on one side, negative on the other, zero
// on the line.
func DetPointLine(a, b, m tensor.Vec2) float64 {
	return Det2D(b.Sub(a), m.Sub(a))
}

// SegmentIntersection computes where line AB crosses line CD, returning
// ok=false if the lines are parallel (denominator fuzzy-null) or the
// computed point falls outside either segment's span (checked via the
// dot-product sign from each endpoint, the same test the reference uses
// instead of clamping parametric t to [0,1]).
func SegmentIntersection(a, b, c, d tensor.Vec2) (point tensor.Vec2, ok bool) {
	denom := Det2D(b.Sub(a), d.Sub(c))
	if tensor.IsFuzzyNull(denom) {
		return tensor.Vec2{}, false
	}

	detAB := Det2D(a, b)
	detCD := Det2D(c, d)
	x := Det2D(tensor.Vec2{X: detAB, Y: detCD}, tensor.Vec2{X: a.X - b.X, Y: c.X - d.X}) / denom
	y := Det2D(tensor.Vec2{X: detAB, Y: detCD}, tensor.Vec2{X: a.Y - b.Y, Y: c.Y - d.Y}) / denom
	out := tensor.Vec2{X: x, Y: y}

	if out.Sub(a).Dot(b.Sub(a)) > 0 && out.Sub(b).Dot(a.Sub(b)) > 0 &&
		out.Sub(c).Dot(d.Sub(c)) > 0 && out.Sub(d).Dot(c.Sub(d)) > 0 {
		return out, true
	}
	return tensor.Vec2{}, false
}

// Meeting describes a detected T-junction: the segment of the other road's
// polyline the new road crossed, and the exact intersection point.
type Meeting struct {
	SegmentIndex int
	Point        tensor.Vec2
}

// FindMeeting scans otherSegments for the first segment whose side (as
// seen from roadEnd vs. nextPosition) flips sign, meaning the new road's
// next step would cross it. SegmentIndex is the index in otherSegments of
// the crossed segment's later endpoint, matching the reference's
// closestPointID convention; it ranges over 1..len-1, and len-1 means the
// crossing lies on the other road's last segment.
func FindMeeting(otherSegments []tensor.Vec2, roadEnd, nextPosition tensor.Vec2) (Meeting, bool) {
	for j := 1; j < len(otherSegments); j++ {
		sideOfLast := DetPointLine(otherSegments[j-1], otherSegments[j], roadEnd)
		sideOfNext := DetPointLine(otherSegments[j-1], otherSegments[j], nextPosition)
		if sideOfLast*sideOfNext < 0 {
			point, ok := SegmentIntersection(otherSegments[j-1], otherSegments[j], roadEnd, nextPosition)
			if ok {
				return Meeting{SegmentIndex: j, Point: point}, true
			}
		}
	}
	return Meeting{}, false
}
