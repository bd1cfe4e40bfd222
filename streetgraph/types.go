package streetgraph

import (
	"math/rand"
	"sync"

	"github.com/mireles-dev/tensorstreets/field"
	"github.com/mireles-dev/tensorstreets/geom"
	"github.com/mireles-dev/tensorstreets/tensor"
)

// RoadType distinguishes the two road classes the reference core tags
// roads with. Nothing in generation branches on it today; it exists so a
// renderer can style principal vs. secondary roads differently.
type RoadType int

const (
	Principal RoadType = iota
	Secondary
)

// Node is a point where one or more roads meet: a seed-grown endpoint, a
// road's start, or a T-junction created by GrowAndConnect.
type Node struct {
	ID               int
	Position         tensor.Vec2
	ConnectedNodeIDs []int
	ConnectedRoadIDs []int
}

// Road is one grown polyline, anchored at NodeID1 (its seed end) and
// NodeID2 (wherever growth stopped or met another road).
type Road struct {
	ID             int
	Type           RoadType
	NodeID1        int
	NodeID2        int
	Segments       []tensor.Vec2
	PathLength     float64
	StraightLength float64

	// Truncated marks a road that was cut off by the iteration safety cap
	// rather than by a normal stopping predicate (the GrowthRunaway error
	// kind, non-fatal by spec: the road finalizes as-is and re-seeding is
	// suppressed).
	Truncated bool
}

// Method selects which of the three generation strategies Generate runs.
type Method int

const (
	// MethodHyperstreamlines grows exactly one road per seed with no
	// T-junction detection against other roads.
	MethodHyperstreamlines Method = iota
	// MethodSingleDirection grows one road per seed with max-length
	// re-seeding enabled but no T-junction detection, same as
	// MethodHyperstreamlines plus the length cap.
	MethodSingleDirection
	// MethodTwoDirections grows two roads per seed, in opposite
	// directions, both with T-junction detection.
	MethodTwoDirections
)

// SeedStrategy selects how Generate populates its seed list before
// growing roads.
type SeedStrategy int

const (
	SeedGrid SeedStrategy = iota
	SeedUniform
	SeedDensityConstrained
)

// Logger is the narrow logging surface Graph depends on, letting callers
// wire in any structured logger (slog, zerolog, zap) without this package
// importing one directly.
type Logger interface {
	Logf(format string, args ...interface{})
}

// noopLogger discards everything; it is the zero-value Logger so Graph
// never needs a nil check before logging.
type noopLogger struct{}

func (noopLogger) Logf(string, ...interface{}) {}

// Observer receives one notification per road as soon as it finishes
// growing, letting a host update a UI incrementally during Generate
// instead of waiting for the whole run to complete.
type Observer interface {
	OnRoadFinalized(Snapshot)
}

// Graph owns the nodes, roads, and seed list produced by Generate. Reads
// and writes are serialized by mu. Grow and GrowAndConnect return a pointer
// to the end Node they created, which is the Graph's own Node; otherwise
// nodes and roads are only exposed through a Snapshot's defensive copies.
type Graph struct {
	mu sync.RWMutex

	region geom.Region
	field  *field.Field
	dSep   float64

	nodes map[int]*Node
	roads map[int]*Road
	seeds []tensor.Vec2

	lastNodeID int
	lastRoadID int

	rng          *rand.Rand
	logger       Logger
	observers    []Observer
	seedStrategy SeedStrategy
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithLogger overrides the default no-op Logger.
func WithLogger(l Logger) GraphOption {
	return func(g *Graph) { g.logger = l }
}

// WithRand injects a deterministic RNG for seed generation.
func WithRand(r *rand.Rand) GraphOption {
	return func(g *Graph) { g.rng = r }
}

// WithObserver registers an Observer notified after each road finishes
// growing during Generate.
func WithObserver(o Observer) GraphOption {
	return func(g *Graph) { g.observers = append(g.observers, o) }
}

// WithSeedStrategy overrides the default SeedGrid strategy Generate uses
// to populate its initial seed list.
func WithSeedStrategy(s SeedStrategy) GraphOption {
	return func(g *Graph) { g.seedStrategy = s }
}

// New builds an empty Graph over region, growing roads through f with
// separation distance dSep.
func New(region geom.Region, f *field.Field, dSep float64, opts ...GraphOption) *Graph {
	g := &Graph{
		region:       region,
		field:        f,
		dSep:         dSep,
		nodes:        make(map[int]*Node),
		roads:        make(map[int]*Road),
		logger:       noopLogger{},
		seedStrategy: SeedGrid,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Clear empties nodes, roads, and seeds and resets the id counters to
// zero, so ids allocated after a Clear start again from 1.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clearLocked()
}

func (g *Graph) clearLocked() {
	g.nodes = make(map[int]*Node)
	g.roads = make(map[int]*Road)
	g.seeds = nil
	g.lastNodeID = 0
	g.lastRoadID = 0
}
