// Package streetgraph builds a planar street network by growing
// hyperstreamlines outward from seed points along a tensor field's
// eigenvector directions, detecting T-junctions against already-grown
// roads, and exposing the result as a read-only Snapshot.
//
// Ownership follows the arena+integer-id model: Graph holds nodes and
// roads in ID-keyed maps behind a single sync.RWMutex rather than handing
// out pointers a caller could mutate out-of-band, mirroring how the
// teacher's graph core owns Vertex/Edge behind muVert/muEdgeAdj. A
// Snapshot is a point-in-time clone that shares no storage with the Graph;
// it stays usable after later Clear/Generate calls but does not reflect them.
package streetgraph
