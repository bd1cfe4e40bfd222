package streetgraph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mireles-dev/tensorstreets/field"
	"github.com/mireles-dev/tensorstreets/geom"
	"github.com/mireles-dev/tensorstreets/streamline"
	"github.com/mireles-dev/tensorstreets/tensor"
)

func newTestGraph(t *testing.T) *Graph {
	t.Helper()
	region := geom.Region{BottomLeft: tensor.Vec2{X: 0, Y: 0}, TopRight: tensor.Vec2{X: 10, Y: 10}}
	f := field.New(8, 8)
	f.FillGrid(0, 1, field.WithDecay(0))
	_, err := f.ComputeEigen()
	require.NoError(t, err)
	return New(region, f, 1)
}

// TestSplitMetRoadLocked_CutsRoadAtJunction exercises the decided
// "split the met road" resolution directly: a vertical barrier road is
// met in its interior by a horizontal growing road, and must be cut into
// two roads sharing a new junction node.
func TestSplitMetRoadLocked_CutsRoadAtJunction(t *testing.T) {
	g := newTestGraph(t)

	barrierStart := g.newNodeLocked(tensor.Vec2{X: 5, Y: 0})
	barrierEnd := g.newNodeLocked(tensor.Vec2{X: 5, Y: 10})
	barrier := g.newRoadLocked(Principal, barrierStart)
	barrier.Segments = []tensor.Vec2{{X: 5, Y: 0}, {X: 5, Y: 2}, {X: 5, Y: 8}, {X: 5, Y: 10}}
	barrier.NodeID2 = barrierEnd.ID
	barrierEnd.ConnectedRoadIDs = append(barrierEnd.ConnectedRoadIDs, barrier.ID)

	growingStart := g.newNodeLocked(tensor.Vec2{X: 0, Y: 5})
	growing := g.newRoadLocked(Principal, growingStart)
	growing.Segments = []tensor.Vec2{{X: 0, Y: 5}, {X: 4, Y: 5}}

	meeting := streamline.Meeting{SegmentIndex: 2, Point: tensor.Vec2{X: 5, Y: 5}}
	junction := g.connectAtMeetingLocked(growing, growingStart, barrier, meeting)

	require.Equal(t, tensor.Vec2{X: 5, Y: 5}, junction.Position)
	require.Equal(t, junction.ID, growing.NodeID2)
	require.Equal(t, junction.ID, barrier.NodeID2)
	require.Contains(t, junction.ConnectedRoadIDs, barrier.ID)
	require.Contains(t, junction.ConnectedRoadIDs, growing.ID)

	// The tail road must exist, start at the junction, and end where the
	// original barrier road ended.
	var tail *Road
	for id, r := range g.roads {
		if id != barrier.ID && id != growing.ID {
			tail = r
		}
	}
	require.NotNil(t, tail)
	require.Equal(t, junction.ID, tail.NodeID1)
	require.Equal(t, barrierEnd.ID, tail.NodeID2)
	require.Contains(t, junction.ConnectedRoadIDs, tail.ID)

	// The original barrier's end node must now point at the tail road,
	// not the truncated original.
	require.Contains(t, barrierEnd.ConnectedRoadIDs, tail.ID)
	require.NotContains(t, barrierEnd.ConnectedRoadIDs, barrier.ID)
}

func TestConnectAtMeetingLocked_JoinsExistingStartNode(t *testing.T) {
	g := newTestGraph(t)

	metStart := g.newNodeLocked(tensor.Vec2{X: 5, Y: 0})
	met := g.newRoadLocked(Principal, metStart)
	met.Segments = []tensor.Vec2{{X: 5, Y: 0}, {X: 5, Y: 10}}
	met.NodeID2 = g.newNodeLocked(tensor.Vec2{X: 5, Y: 10}).ID

	growingStart := g.newNodeLocked(tensor.Vec2{X: 0, Y: 0})
	growing := g.newRoadLocked(Principal, growingStart)
	growing.Segments = []tensor.Vec2{{X: 0, Y: 0}}

	meeting := streamline.Meeting{SegmentIndex: 0, Point: tensor.Vec2{X: 5, Y: 0}}
	joined := g.connectAtMeetingLocked(growing, growingStart, met, meeting)

	require.Equal(t, metStart.ID, joined.ID)
	require.Equal(t, metStart.ID, growing.NodeID2)
	require.Contains(t, metStart.ConnectedNodeIDs, growingStart.ID)
}
