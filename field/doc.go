// Package field implements the tensor field: a dense H×W grid of
// symmetric-traceless tensors built by superposing basis fields (uniform
// grid direction, radial, rotating, or derived from a raster heightmap or
// water map), plus cached eigen-decomposition of every cell.
//
// Construction methods accumulate into existing cells exactly as the
// reference implementation's fillXBasisField methods do (TensorField.cpp);
// only the water mask replaces cells (zeroing them) rather than adding to
// them. Every fill invalidates the eigen cache, forcing a fresh ComputeEigen
// before MajorEigenVector/MinorEigenVector can be read again.
package field
