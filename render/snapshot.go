package render

import (
	"image"

	"github.com/mireles-dev/tensorstreets/raster"
	"github.com/mireles-dev/tensorstreets/streetgraph"
	"github.com/mireles-dev/tensorstreets/tensor"
)

// Snapshot wraps a streetgraph.Snapshot with the extra state a host
// renderer needs: the target image size, the "draw nodes" toggle
// (forwarded from configuration, normative per spec §6), and an optional
// water-mask raster the host may composite as a background layer.
type Snapshot struct {
	Graph     streetgraph.Snapshot
	ImageSize image.Point
	DrawNodes bool
	WaterMask *raster.Raster
}

// Segment is one drawable road edge: two adjacent points on a Road's
// polyline, already mapped to image space.
type Segment struct {
	A, B image.Point
}

// RoadSegments returns every adjacent pair of points across every road's
// polyline, mapped to image space via ToImage.
func (s Snapshot) RoadSegments() []Segment {
	var segments []Segment
	for _, road := range s.Graph.Roads {
		for i := 1; i < len(road.Segments); i++ {
			a := s.toImagePoint(road.Segments[i-1])
			b := s.toImagePoint(road.Segments[i])
			segments = append(segments, Segment{A: a, B: b})
		}
	}
	return segments
}

// NodePoints returns every node position mapped to image space, or nil if
// DrawNodes is false.
func (s Snapshot) NodePoints() []image.Point {
	if !s.DrawNodes {
		return nil
	}
	points := make([]image.Point, 0, len(s.Graph.Nodes))
	for _, n := range s.Graph.Nodes {
		points = append(points, s.toImagePoint(n.Position))
	}
	return points
}

// SeedPoints returns every seed position mapped to image space.
func (s Snapshot) SeedPoints() []image.Point {
	points := make([]image.Point, 0, len(s.Graph.Seeds))
	for _, p := range s.Graph.Seeds {
		points = append(points, s.toImagePoint(p))
	}
	return points
}

func (s Snapshot) toImagePoint(p tensor.Vec2) image.Point {
	u, v := ToImage(p, s.Graph.Region, s.ImageSize)
	return image.Point{X: int(u), Y: int(v)}
}
