// Package render turns a street-graph snapshot into the geometry a host
// renderer needs to draw it: image-space coordinate mapping, road/node/
// seed points ready to plot, and a subsampled per-cell eigenvector field
// for debugging overlays. It draws nothing itself — no raster output, no
// dependency on any graphics library — matching the core's read-only
// snapshot-emission design.
package render
