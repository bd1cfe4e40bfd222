// Package streamline provides the pure, stateless building blocks of
// hyperstreamline tracing: direction-ambiguity resolution, the stopping
// predicates that halt a trace, path-length measurement, and the 2D
// segment-intersection math used to detect T-junctions against another
// road's polyline.
//
// It deliberately holds no road/graph state of its own — growing a road
// needs visibility into every other road in the graph to detect meetings,
// so the stateful orchestration (package streetgraph's Grow/GrowAndConnect)
// owns the loop and calls into these helpers per step, the same way the
// reference core's free functions (det2D, detPointLine,
// computeIntersectionPoint, the *StoppingCondition methods) are called from
// StreetGraph's growRoad/growRoadAndConnect rather than encapsulated in
// their own type.
package streamline
