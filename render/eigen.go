package render

import (
	"github.com/mireles-dev/tensorstreets/field"
	"github.com/mireles-dev/tensorstreets/geom"
	"github.com/mireles-dev/tensorstreets/tensor"
)

// EigenSample is one grid cell's world position plus its major and minor
// eigenvector, read out for a debugging/visualization overlay — the
// read-only equivalent of walking the field and drawing both
// eigenvectors per cell.
type EigenSample struct {
	Position   tensor.Vec2
	Major      tensor.Vec2
	Minor      tensor.Vec2
	Degenerate bool
}

// SampleEigenVectors walks f's cached eigen grid at the given stride
// (every stride-th row and column) and returns one EigenSample per
// visited cell, with Position mapped from grid indices back to world
// coordinates over region. A stride of 1 samples every cell; a stride of
// N>1 is the normal case for a host that wants a sparse overlay, not one
// arrow per cell. Returns field.ErrEigenNotComputed if f's eigen cache is
// stale.
func SampleEigenVectors(f *field.Field, region geom.Region, stride int) ([]EigenSample, error) {
	if stride < 1 {
		stride = 1
	}
	if !f.EigenCached() {
		return nil, field.ErrEigenNotComputed
	}

	height, width := f.Height(), f.Width()
	var samples []EigenSample
	for i := 0; i < height; i += stride {
		for j := 0; j < width; j++ {
			if j%stride != 0 {
				continue
			}
			e, err := f.EigenAt(i, j)
			if err != nil {
				return nil, err
			}
			samples = append(samples, EigenSample{
				Position:   gridToWorld(region, i, j, height, width),
				Major:      e.Major,
				Minor:      e.Minor,
				Degenerate: e.IsDegenerate(),
			})
		}
	}
	return samples, nil
}

// gridToWorld is GridIndex's inverse: it maps a (row, col) cell back to
// the world point at its center.
func gridToWorld(region geom.Region, i, j, height, width int) tensor.Vec2 {
	x := region.BottomLeft.X + (float64(j)/float64(width-1))*region.Width()
	y := region.BottomLeft.Y + (float64(i)/float64(height-1))*region.Height()
	return tensor.Vec2{X: x, Y: y}
}
