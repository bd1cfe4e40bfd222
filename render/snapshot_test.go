package render_test

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mireles-dev/tensorstreets/field"
	"github.com/mireles-dev/tensorstreets/geom"
	"github.com/mireles-dev/tensorstreets/render"
	"github.com/mireles-dev/tensorstreets/streetgraph"
	"github.com/mireles-dev/tensorstreets/tensor"
)

func TestSnapshot_RoadSegmentsAndNodePoints(t *testing.T) {
	region := geom.Region{BottomLeft: tensor.Vec2{X: 0, Y: 0}, TopRight: tensor.Vec2{X: 10, Y: 10}}
	f := field.New(32, 32)
	f.FillGrid(0, 1, field.WithDecay(1e6))
	_, err := f.ComputeEigen()
	require.NoError(t, err)

	g := streetgraph.New(region, f, 2)
	require.NoError(t, g.Generate(context.Background(), streetgraph.MethodHyperstreamlines))

	snap := render.Snapshot{
		Graph:     g.Snapshot(),
		ImageSize: image.Point{X: 256, Y: 256},
		DrawNodes: true,
	}

	segments := snap.RoadSegments()
	require.NotEmpty(t, segments)

	nodes := snap.NodePoints()
	require.Len(t, nodes, len(snap.Graph.Nodes))

	seeds := snap.SeedPoints()
	require.Len(t, seeds, len(snap.Graph.Seeds))
}

func TestSnapshot_NodePointsEmptyWhenDrawNodesFalse(t *testing.T) {
	snap := render.Snapshot{DrawNodes: false}
	require.Nil(t, snap.NodePoints())
}
