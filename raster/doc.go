// Package raster loads RGB heightmap/water-map images and applies the 3×3
// Sobel gradient kernels used by package field to derive tensor-field
// orientation from a raster input.
//
// Only the blue channel is ever read, matching the reference implementation
// (matthieuheitz/IPSM) which stores its synthetic heightmaps/watermaps as
// grayscale-in-blue PNGs. Decoding supports PNG and JPEG via the standard
// library and BMP/TIFF via golang.org/x/image, the same module
// seehuhn.de/go/raster and MeKo-Christian/watercolormap use for raster
// ingestion in this corpus.
package raster
