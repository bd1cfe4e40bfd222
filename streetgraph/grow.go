package streetgraph

import (
	"sort"

	"github.com/mireles-dev/tensorstreets/streamline"
	"github.com/mireles-dev/tensorstreets/tensor"
)

const (
	stepDivisor   = 100
	maxIterations = 1000
)

// growOutcome summarizes what stopped a single grow loop, letting the
// Grow/GrowAndConnect wrappers decide how to finalize nodes without
// re-deriving it from road state.
type growOutcome struct {
	tooLong   bool
	truncated bool
	met       bool
	meetRoad  *Road
	meeting   streamline.Meeting
}

// growLoop runs the shared stepping logic for Grow and GrowAndConnect. It
// must be called with g.mu held. detectMeetings enables the T-junction
// scan against other roads; when false, meetRoad is always nil.
func (g *Graph) growLoop(road *Road, startNode *Node, useMajor, reverseFirstStep, enforceMaxLength, detectMeetings bool) growOutcome {
	step := g.region.Height() / stepDivisor
	current := startNode.Position

	var outcome growOutcome
	outcome.truncated = true

	for iter := 0; iter < maxIterations; iter++ {
		var prevDir tensor.Vec2
		if len(road.Segments) > 0 {
			prevDir = current.Sub(road.Segments[len(road.Segments)-1])
		}
		road.Segments = append(road.Segments, current)

		i, j := g.region.GridIndex(current, g.field.Height(), g.field.Width())
		var v tensor.Vec2
		if useMajor {
			v, _ = g.field.MajorEigenVector(i, j)
		} else {
			v, _ = g.field.MinorEigenVector(i, j)
		}
		v = streamline.ResolveDirection(v, prevDir, iter == 0, reverseFirstStep)
		next := current.Add(v.Scale(step))

		if enforceMaxLength {
			outcome.tooLong = streamline.ExceedsLength(road.Segments, g.dSep)
		}

		var foundMeeting bool
		if detectMeetings {
			if other, meeting, ok := g.findMeeting(road, startNode, next); ok {
				outcome.met = true
				outcome.meetRoad = other
				outcome.meeting = meeting
				foundMeeting = true
			}
		}

		degenerate, _ := g.field.IsDegenerateAt(i, j)
		stop := streamline.Boundary(g.region, next) ||
			degenerate ||
			streamline.Loop(next, road.Segments) ||
			outcome.tooLong ||
			foundMeeting

		current = next
		if stop {
			outcome.truncated = false
			break
		}
	}

	road.Truncated = outcome.truncated
	road.PathLength = streamline.PathLength(road.Segments)
	road.StraightLength = streamline.StraightLength(road.Segments)
	return outcome
}

// findMeeting scans every road other than road itself, and other than any
// road already connected to startNode, for a T-junction with the step from
// road's last segment to next. Roads are visited in ascending ID order so
// the result is deterministic regardless of map iteration order.
func (g *Graph) findMeeting(road *Road, startNode *Node, next tensor.Vec2) (*Road, streamline.Meeting, bool) {
	if len(road.Segments) == 0 {
		return nil, streamline.Meeting{}, false
	}
	roadEnd := road.Segments[len(road.Segments)-1]

	connected := make(map[int]bool, len(startNode.ConnectedRoadIDs))
	for _, id := range startNode.ConnectedRoadIDs {
		connected[id] = true
	}

	ids := make([]int, 0, len(g.roads))
	for id := range g.roads {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		if id == road.ID || connected[id] {
			continue
		}
		other := g.roads[id]
		if len(other.Segments) == 0 {
			continue
		}
		if m, ok := streamline.FindMeeting(other.Segments, roadEnd, next); ok {
			return other, m, true
		}
	}
	return nil, streamline.Meeting{}, false
}

// Grow builds one polyline from startNode outward along road's tensor
// direction (major if useMajor, else minor), with no T-junction detection.
func (g *Graph) Grow(road *Road, startNode *Node, useMajor, reverseFirstStep, enforceMaxLength bool) *Node {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.growLocked(road, startNode, useMajor, reverseFirstStep, enforceMaxLength)
}

// growLocked is Grow's body, callable from within a section that already
// holds g.mu (package Generate).
func (g *Graph) growLocked(road *Road, startNode *Node, useMajor, reverseFirstStep, enforceMaxLength bool) *Node {
	outcome := g.growLoop(road, startNode, useMajor, reverseFirstStep, enforceMaxLength, false)

	endNode := g.newNodeLocked(road.Segments[len(road.Segments)-1])
	g.linkLocked(startNode, endNode, road)

	if outcome.tooLong && !outcome.truncated {
		g.maybeReseedLocked(endNode.Position)
	}
	g.notifyObserversLocked()
	return endNode
}

// GrowAndConnect is Grow plus T-junction detection: if the growing road
// meets another road's interior, the met road is split at the
// intersection (see connect.go) instead of the new road dead-ending in
// open space.
func (g *Graph) GrowAndConnect(road *Road, startNode *Node, useMajor, reverseFirstStep, enforceMaxLength bool) *Node {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.growAndConnectLocked(road, startNode, useMajor, reverseFirstStep, enforceMaxLength)
}

// growAndConnectLocked is GrowAndConnect's body, callable from within a
// section that already holds g.mu (package Generate).
func (g *Graph) growAndConnectLocked(road *Road, startNode *Node, useMajor, reverseFirstStep, enforceMaxLength bool) *Node {
	outcome := g.growLoop(road, startNode, useMajor, reverseFirstStep, enforceMaxLength, true)

	if outcome.met {
		endNode := g.connectAtMeetingLocked(road, startNode, outcome.meetRoad, outcome.meeting)
		g.notifyObserversLocked()
		return endNode
	}

	endNode := g.newNodeLocked(road.Segments[len(road.Segments)-1])
	g.linkLocked(startNode, endNode, road)
	if outcome.tooLong && !outcome.truncated {
		g.maybeReseedLocked(endNode.Position)
	}
	g.notifyObserversLocked()
	return endNode
}

// maybeReseedLocked pushes pos as a new seed if it lies at least dSep/4
// away from every existing seed, driving coverage into sparsely-seeded
// regions after a length-capped road. Must be called with g.mu held.
func (g *Graph) maybeReseedLocked(pos tensor.Vec2) {
	const reseedFactor = 4
	minDist := g.dSep / reseedFactor
	for _, s := range g.seeds {
		if pos.Sub(s).Length() < minDist {
			return
		}
	}
	g.seeds = append(g.seeds, pos)
}
