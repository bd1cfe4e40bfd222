package streetgraph_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mireles-dev/tensorstreets/field"
	"github.com/mireles-dev/tensorstreets/geom"
	"github.com/mireles-dev/tensorstreets/streetgraph"
	"github.com/mireles-dev/tensorstreets/tensor"
)

func uniformRegion() geom.Region {
	return geom.Region{BottomLeft: tensor.Vec2{X: 0, Y: 0}, TopRight: tensor.Vec2{X: 10, Y: 10}}
}

func uniformField(t *testing.T) *field.Field {
	t.Helper()
	f := field.New(32, 32)
	// A very large decay drives the Gaussian weight w to zero on every cell,
	// so the inverse-Gaussian (1 - w) grid basis is uniform with magnitude 1.
	f.FillGrid(0, 1, field.WithDecay(1e6))
	_, err := f.ComputeEigen()
	require.NoError(t, err)
	return f
}

func TestGenerate_RequiresFilledField(t *testing.T) {
	f := field.New(8, 8)
	g := streetgraph.New(uniformRegion(), f, 1)
	err := g.Generate(context.Background(), streetgraph.MethodHyperstreamlines)
	require.ErrorIs(t, err, streetgraph.ErrFieldEmpty)
}

func TestGenerate_GridSeedsProduceRoads(t *testing.T) {
	f := uniformField(t)
	g := streetgraph.New(uniformRegion(), f, 2, streetgraph.WithRand(rand.New(rand.NewSource(1))))
	err := g.Generate(context.Background(), streetgraph.MethodHyperstreamlines)
	require.NoError(t, err)
	require.Positive(t, g.RoadCount())
	require.Positive(t, g.NodeCount())
}

func TestGenerate_TwoDirectionsGrowsTwoRoadsPerSeed(t *testing.T) {
	f := uniformField(t)
	g := streetgraph.New(uniformRegion(), f, 3, streetgraph.WithRand(rand.New(rand.NewSource(1))))
	err := g.Generate(context.Background(), streetgraph.MethodTwoDirections)
	require.NoError(t, err)

	// Snapshot().Seeds includes seeds pushed by re-seeding; every one of
	// them was processed and grew two roads.
	seedCount := len(g.Snapshot().Seeds)
	require.GreaterOrEqual(t, g.RoadCount(), seedCount*2)
}

func TestGenerate_RespectsContextCancellation(t *testing.T) {
	f := uniformField(t)
	g := streetgraph.New(uniformRegion(), f, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := g.Generate(ctx, streetgraph.MethodHyperstreamlines)
	require.ErrorIs(t, err, context.Canceled)
}

func TestClear_ResetsIDCountersAndState(t *testing.T) {
	f := uniformField(t)
	g := streetgraph.New(uniformRegion(), f, 2)
	require.NoError(t, g.Generate(context.Background(), streetgraph.MethodHyperstreamlines))
	require.Positive(t, g.RoadCount())

	g.Clear()
	require.Zero(t, g.RoadCount())
	require.Zero(t, g.NodeCount())
	require.Zero(t, g.SeedCount())
}

func TestGrow_StopsAtBoundary(t *testing.T) {
	f := uniformField(t)
	g := streetgraph.New(uniformRegion(), f, 100)
	start := &streetgraph.Node{ID: 1, Position: tensor.Vec2{X: 5, Y: 5}}
	road := &streetgraph.Road{ID: 1, NodeID1: 1}
	end := g.Grow(road, start, true, false, false)

	require.NotNil(t, end)
	require.True(t, end.Position.X <= 0 || end.Position.X >= 10 || end.Position.Y <= 0 || end.Position.Y >= 10 ||
		len(road.Segments) > 1)
}

func TestGrow_EnforceMaxLengthStopsEarlyAndReseeds(t *testing.T) {
	f := uniformField(t)
	region := uniformRegion()
	g := streetgraph.New(region, f, 0.5)
	start := &streetgraph.Node{ID: 1, Position: tensor.Vec2{X: 5, Y: 5}}
	road := &streetgraph.Road{ID: 1, NodeID1: 1}
	g.Grow(road, start, true, false, true)

	require.Less(t, streetgraph_PathLength(road.Segments), 5.0)
	require.Equal(t, 1, g.SeedCount())
}

func streetgraph_PathLength(segments []tensor.Vec2) float64 {
	var total float64
	for i := 1; i < len(segments); i++ {
		d := segments[i].Sub(segments[i-1])
		total += d.Length()
	}
	return total
}

func TestGenerate_TwoDirectionsCanProduceJunctionNodes(t *testing.T) {
	f := field.New(16, 16)
	f.FillRotating(field.WithDecay(0))
	_, err := f.ComputeEigen()
	require.NoError(t, err)

	g := streetgraph.New(uniformRegion(), f, 1, streetgraph.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, g.Generate(context.Background(), streetgraph.MethodTwoDirections))

	snap := g.Snapshot()
	require.NotEmpty(t, snap.Roads)
	for _, road := range snap.Roads {
		require.GreaterOrEqual(t, len(road.Segments), 1)
	}
}

func TestGenerateMajorHyperstreamlines_IgnoresConfiguredSeedStrategy(t *testing.T) {
	f := uniformField(t)
	g := streetgraph.New(uniformRegion(), f, 2,
		streetgraph.WithRand(rand.New(rand.NewSource(7))),
		streetgraph.WithSeedStrategy(streetgraph.SeedDensityConstrained))

	require.NoError(t, g.GenerateMajorHyperstreamlines(context.Background()))
	require.Positive(t, g.RoadCount())

	snap := g.Snapshot()
	require.Len(t, snap.Seeds, 500)
	for _, road := range snap.Roads {
		require.Equal(t, streetgraph.Principal, road.Type)
	}
}

func TestGenerate_SingleDirectionGrowsOneRoadPerSeedNoJunctions(t *testing.T) {
	f := uniformField(t)
	g := streetgraph.New(uniformRegion(), f, 2, streetgraph.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, g.Generate(context.Background(), streetgraph.MethodSingleDirection))

	snap := g.Snapshot()
	require.NotEmpty(t, snap.Roads)
	for _, node := range snap.Nodes {
		// MethodSingleDirection never runs T-junction detection: every node
		// is either a road's start (tagged by newRoadLocked) or its end
		// (tagged by linkLocked), never both via connectAtMeetingLocked's
		// three-road junction splice, so each carries exactly one road.
		require.Len(t, node.ConnectedRoadIDs, 1)
	}
}

func TestGenerate_RejectsUnknownMethod(t *testing.T) {
	f := uniformField(t)
	g := streetgraph.New(uniformRegion(), f, 2)
	err := g.Generate(context.Background(), streetgraph.Method(99))
	require.ErrorIs(t, err, streetgraph.ErrUnknownMethod)
}

func TestStats_ReflectsGeneratedGraph(t *testing.T) {
	f := uniformField(t)
	g := streetgraph.New(uniformRegion(), f, 2, streetgraph.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, g.Generate(context.Background(), streetgraph.MethodHyperstreamlines))

	stats := g.Stats()
	require.Equal(t, g.NodeCount(), stats.Nodes)
	require.Equal(t, g.RoadCount(), stats.Roads)
	require.Equal(t, g.SeedCount(), stats.Seeds)
	require.Positive(t, stats.TotalPathLength)
}

func TestWithSeedStrategy_AppliesToGenerate(t *testing.T) {
	f := uniformField(t)
	g := streetgraph.New(uniformRegion(), f, 2, streetgraph.WithSeedStrategy(streetgraph.SeedUniform))
	require.NoError(t, g.Generate(context.Background(), streetgraph.MethodHyperstreamlines))

	snap := g.Snapshot()
	require.Len(t, snap.Seeds, 500)
}
