package streetgraph

import (
	"github.com/mireles-dev/tensorstreets/geom"
	"github.com/mireles-dev/tensorstreets/tensor"
)

// Snapshot is a read-only, defensively-copied view over a Graph's nodes,
// roads, and seeds at one point in time. It stays valid indefinitely —
// nothing in it aliases the Graph's internal storage — but it will not
// reflect any mutation that happens after it was taken.
type Snapshot struct {
	Region geom.Region
	Nodes  map[int]Node
	Roads  map[int]Road
	Seeds  []tensor.Vec2
}

// Snapshot returns a defensive copy of the graph's current state.
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snapshotLocked()
}

// snapshotLocked is Snapshot's body; must be called with g.mu held (read
// or write lock both suffice since it only reads).
func (g *Graph) snapshotLocked() Snapshot {
	nodes := make(map[int]Node, len(g.nodes))
	for id, n := range g.nodes {
		nodes[id] = Node{
			ID:               n.ID,
			Position:         n.Position,
			ConnectedNodeIDs: append([]int(nil), n.ConnectedNodeIDs...),
			ConnectedRoadIDs: append([]int(nil), n.ConnectedRoadIDs...),
		}
	}

	roads := make(map[int]Road, len(g.roads))
	for id, r := range g.roads {
		roads[id] = Road{
			ID:             r.ID,
			Type:           r.Type,
			NodeID1:        r.NodeID1,
			NodeID2:        r.NodeID2,
			Segments:       append([]tensor.Vec2(nil), r.Segments...),
			PathLength:     r.PathLength,
			StraightLength: r.StraightLength,
			Truncated:      r.Truncated,
		}
	}

	return Snapshot{
		Region: g.region,
		Nodes:  nodes,
		Roads:  roads,
		Seeds:  append([]tensor.Vec2(nil), g.seeds...),
	}
}
