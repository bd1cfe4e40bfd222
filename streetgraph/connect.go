package streetgraph

import (
	"github.com/mireles-dev/tensorstreets/streamline"
	"github.com/mireles-dev/tensorstreets/tensor"
)

// connectAtMeetingLocked resolves a detected T-junction between road
// (growing from startNode) and metRoad. Must be called with g.mu held.
//
// If meeting.SegmentIndex is 0 the new road joins metRoad's start node, and
// if it is metRoad's last index (the crossing lies on metRoad's final
// segment) it joins metRoad's end node. Any other index counts as metRoad's
// interior: per the decided resolution to the reference's known-missing
// "split the met road" behavior, metRoad is cut into two roads at a new
// junction node rather than left as a single road with a node awkwardly
// grafted onto its middle.
func (g *Graph) connectAtMeetingLocked(road *Road, startNode *Node, metRoad *Road, meeting streamline.Meeting) *Node {
	switch meeting.SegmentIndex {
	case 0:
		return g.joinExistingNodeLocked(road, startNode, metRoad.NodeID1)
	case len(metRoad.Segments) - 1:
		return g.joinExistingNodeLocked(road, startNode, metRoad.NodeID2)
	default:
		return g.splitMetRoadLocked(road, startNode, metRoad, meeting)
	}
}

// joinExistingNodeLocked identifies road's end with an already-existing
// node (the met road's start or end point) rather than creating a new one.
func (g *Graph) joinExistingNodeLocked(road *Road, startNode *Node, existingNodeID int) *Node {
	existing := g.nodes[existingNodeID]
	existing.ConnectedNodeIDs = append(existing.ConnectedNodeIDs, startNode.ID)
	existing.ConnectedRoadIDs = append(existing.ConnectedRoadIDs, road.ID)
	startNode.ConnectedNodeIDs = append(startNode.ConnectedNodeIDs, existing.ID)
	road.NodeID2 = existing.ID
	return existing
}

// splitMetRoadLocked creates a junction node at meeting.Point, appends it
// to the growing road, and cuts metRoad into two roads at that point:
// metRoad itself is truncated to the segments before the junction (keeping
// its ID and NodeID1), and a new road carries the segments from the
// junction to metRoad's original end node.
func (g *Graph) splitMetRoadLocked(road *Road, startNode *Node, metRoad *Road, meeting streamline.Meeting) *Node {
	junction := g.newNodeLocked(meeting.Point)
	segIdx := meeting.SegmentIndex

	head := make([]tensor.Vec2, 0, segIdx+1)
	head = append(head, metRoad.Segments[:segIdx]...)
	head = append(head, junction.Position)

	tailSegments := make([]tensor.Vec2, 0, len(metRoad.Segments)-segIdx+1)
	tailSegments = append(tailSegments, junction.Position)
	tailSegments = append(tailSegments, metRoad.Segments[segIdx:]...)

	originalEndNodeID := metRoad.NodeID2

	metRoad.Segments = head
	metRoad.NodeID2 = junction.ID
	metRoad.PathLength = streamline.PathLength(head)
	metRoad.StraightLength = streamline.StraightLength(head)

	g.lastRoadID++
	tail := &Road{
		ID:             g.lastRoadID,
		Type:           metRoad.Type,
		NodeID1:        junction.ID,
		NodeID2:        originalEndNodeID,
		Segments:       tailSegments,
		PathLength:     streamline.PathLength(tailSegments),
		StraightLength: streamline.StraightLength(tailSegments),
	}
	g.roads[tail.ID] = tail

	if endNode, ok := g.nodes[originalEndNodeID]; ok {
		replaceRoadID(endNode.ConnectedRoadIDs, metRoad.ID, tail.ID)
	}

	junction.ConnectedRoadIDs = append(junction.ConnectedRoadIDs, metRoad.ID, tail.ID, road.ID)
	junction.ConnectedNodeIDs = append(junction.ConnectedNodeIDs, startNode.ID)
	startNode.ConnectedNodeIDs = append(startNode.ConnectedNodeIDs, junction.ID)

	road.Segments = append(road.Segments, junction.Position)
	road.NodeID2 = junction.ID
	road.PathLength = streamline.PathLength(road.Segments)
	road.StraightLength = streamline.StraightLength(road.Segments)

	return junction
}

// replaceRoadID swaps oldID for newID in-place within ids.
func replaceRoadID(ids []int, oldID, newID int) {
	for i, id := range ids {
		if id == oldID {
			ids[i] = newID
		}
	}
}
