package field

import "github.com/mireles-dev/tensorstreets/tensor"

// ComputeEigen decomposes every cell, caching the resulting eigenvectors
// and eigenvalues, and returns the count of cells that decomposed as
// degenerate (eigenvalue-free). A cell that fails IsSymmetricTraceless is
// treated as degenerate for counting purposes, per the TensorShapeViolation
// handling: the affected cell is surfaced as degenerate rather than
// aborting the whole grid.
func (f *Field) ComputeEigen() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.filled {
		return 0, ErrFieldNotFilled
	}

	degenerate := 0
	for i := 0; i < f.height; i++ {
		for j := 0; j < f.width; j++ {
			e, err := tensor.Decompose(f.data[i][j])
			if err != nil {
				e = tensor.Eigen{}
			}
			if e.IsDegenerate() {
				degenerate++
			}
			f.eigen[i][j] = e
		}
	}
	f.eigenCached = true
	return degenerate, nil
}

// MajorEigenVector returns the cached major eigenvector at (i, j).
func (f *Field) MajorEigenVector(i, j int) (tensor.Vec2, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.eigenCached {
		return tensor.Vec2{}, ErrEigenNotComputed
	}
	if i < 0 || i >= f.height || j < 0 || j >= f.width {
		return tensor.Vec2{}, ErrIndexOutOfRange
	}
	return f.eigen[i][j].Major, nil
}

// MinorEigenVector returns the cached minor eigenvector at (i, j).
func (f *Field) MinorEigenVector(i, j int) (tensor.Vec2, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.eigenCached {
		return tensor.Vec2{}, ErrEigenNotComputed
	}
	if i < 0 || i >= f.height || j < 0 || j >= f.width {
		return tensor.Vec2{}, ErrIndexOutOfRange
	}
	return f.eigen[i][j].Minor, nil
}

// EigenAt returns the cached full decomposition at (i, j), used by package
// render's SampleEigenVectors.
func (f *Field) EigenAt(i, j int) (tensor.Eigen, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.eigenCached {
		return tensor.Eigen{}, ErrEigenNotComputed
	}
	if i < 0 || i >= f.height || j < 0 || j >= f.width {
		return tensor.Eigen{}, ErrIndexOutOfRange
	}
	return f.eigen[i][j], nil
}

// IsDegenerateAt reports whether the raw tensor at (i, j) is degenerate,
// independent of whether the eigen cache is current — package streetgraph's
// grow loop uses this during tracing, where recomputing the whole grid per step
// would be wasteful and the tensor data itself is read-only during growth.
func (f *Field) IsDegenerateAt(i, j int) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if i < 0 || i >= f.height || j < 0 || j >= f.width {
		return false, ErrIndexOutOfRange
	}
	return f.data[i][j].IsDegenerate(), nil
}
