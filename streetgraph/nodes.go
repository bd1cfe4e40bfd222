package streetgraph

import "github.com/mireles-dev/tensorstreets/tensor"

// newNodeLocked allocates a fresh Node at pos. Must be called with g.mu
// held; ids are assigned from the lastNodeID counter, which increases
// monotonically until Clear resets it, so ids restart from 1 after a Clear.
func (g *Graph) newNodeLocked(pos tensor.Vec2) *Node {
	g.lastNodeID++
	n := &Node{ID: g.lastNodeID, Position: pos}
	g.nodes[n.ID] = n
	return n
}

// newRoadLocked allocates a fresh Road anchored at startNode. Must be
// called with g.mu held.
func (g *Graph) newRoadLocked(roadType RoadType, startNode *Node) *Road {
	g.lastRoadID++
	r := &Road{ID: g.lastRoadID, Type: roadType, NodeID1: startNode.ID}
	g.roads[r.ID] = r
	startNode.ConnectedRoadIDs = append(startNode.ConnectedRoadIDs, r.ID)
	return r
}

// linkLocked connects a freshly-created endNode back to startNode through
// road, setting road.NodeID2. Must be called with g.mu held.
func (g *Graph) linkLocked(startNode, endNode *Node, road *Road) {
	endNode.ConnectedNodeIDs = append(endNode.ConnectedNodeIDs, startNode.ID)
	endNode.ConnectedRoadIDs = append(endNode.ConnectedRoadIDs, road.ID)
	startNode.ConnectedNodeIDs = append(startNode.ConnectedNodeIDs, endNode.ID)
	road.NodeID2 = endNode.ID
}

// notifyObserversLocked sends a fresh Snapshot to every registered
// Observer. Must be called with g.mu held; snapshotLocked takes its own
// defensive copies so observers never see a graph that changes under them.
func (g *Graph) notifyObserversLocked() {
	if len(g.observers) == 0 {
		return
	}
	snap := g.snapshotLocked()
	for _, o := range g.observers {
		o.OnRoadFinalized(snap)
	}
}
