package streetgraph

// NodeCount returns the number of nodes currently in the graph.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// RoadCount returns the number of roads currently in the graph.
func (g *Graph) RoadCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.roads)
}

// SeedCount returns the number of seeds used (and re-seeded) by the most
// recent Generate call.
func (g *Graph) SeedCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.seeds)
}

// Region returns the world-coordinate region this graph generates over.
func (g *Graph) Region() (bottomLeft, topRight [2]float64) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return [2]float64{g.region.BottomLeft.X, g.region.BottomLeft.Y},
		[2]float64{g.region.TopRight.X, g.region.TopRight.Y}
}

// Stats is a summary of a Graph's current state, cheap enough for a CLI
// or log line to print after every Generate call.
type Stats struct {
	Nodes           int
	Roads           int
	Seeds           int
	TruncatedRoads  int
	TotalPathLength float64
}

// Stats summarizes the graph's node/road/seed counts, how many roads hit
// the iteration safety cap, and the combined length of every road.
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{
		Nodes: len(g.nodes),
		Roads: len(g.roads),
		Seeds: len(g.seeds),
	}
	for _, r := range g.roads {
		if r.Truncated {
			s.TruncatedRoads++
		}
		s.TotalPathLength += r.PathLength
	}
	return s
}
