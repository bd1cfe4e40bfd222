// Package geom defines the world-coordinate region that a tensor field and
// street graph are generated over, and the grid<->world coordinate mapping
// shared by package seed, streamline, streetgraph, and render.
//
// World coordinates follow a single convention throughout this module: Y
// increases upward, and row 0 of any backing grid (tensor field, raster)
// is the bottom row of the region — matching neither of the reference
// implementation's two inconsistent conventions directly, but resolving
// the drift between them (see the project's design notes) in favor of the
// one that keeps seed.Grid, streamline tracing, and render's coordinate
// flip mutually consistent.
package geom
