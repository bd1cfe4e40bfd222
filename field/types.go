package field

import (
	"sync"

	"github.com/mireles-dev/tensorstreets/tensor"
)

// Field is a rectangular grid of tensors indexed [row][col]; row 0 is the
// bottom row of the region in world coordinates. It tracks two independent
// flags: filled (any fill method has run) and eigenCached (the eigen grid
// is consistent with the current data grid) — two separate concerns guarded
// by one lock, mirroring how the reference core keeps mData and the eigen
// arrays as sibling fields rather than deriving one from the other lazily.
type Field struct {
	mu sync.RWMutex

	height, width int
	data          [][]tensor.Tensor
	eigen         [][]tensor.Eigen

	filled      bool
	eigenCached bool

	// waterMaskPath records the last water-map raster applied, for
	// rendering only — it carries no semantic weight for generation.
	waterMaskPath string
}

// New allocates a zero-filled Field of the given dimensions.
func New(height, width int) *Field {
	return &Field{
		height: height,
		width:  width,
		data:   newTensorGrid(height, width),
		eigen:  newEigenGrid(height, width),
	}
}

func newTensorGrid(height, width int) [][]tensor.Tensor {
	g := make([][]tensor.Tensor, height)
	for i := range g {
		g[i] = make([]tensor.Tensor, width)
	}
	return g
}

func newEigenGrid(height, width int) [][]tensor.Eigen {
	g := make([][]tensor.Eigen, height)
	for i := range g {
		g[i] = make([]tensor.Eigen, width)
	}
	return g
}

// Height returns the number of rows.
func (f *Field) Height() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.height
}

// Width returns the number of columns.
func (f *Field) Width() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.width
}

// Filled reports whether any fill method has run since construction or the
// last resize.
func (f *Field) Filled() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.filled
}

// EigenCached reports whether the eigen grid is consistent with the
// current tensor data.
func (f *Field) EigenCached() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.eigenCached
}

// WaterMaskPath returns the path of the last water-map raster applied via
// ApplyWaterMask, or "" if none has been.
func (f *Field) WaterMaskPath() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.waterMaskPath
}

// At returns the tensor at (i, j).
func (f *Field) At(i, j int) (tensor.Tensor, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if i < 0 || i >= f.height || j < 0 || j >= f.width {
		return tensor.Tensor{}, ErrIndexOutOfRange
	}
	return f.data[i][j], nil
}

// resize replaces the grid with a fresh zero-filled one of the given
// dimensions, discarding any prior fills and invalidating the eigen cache.
// Used by the heightmap fillers, which must match the field to the raster.
func (f *Field) resize(height, width int) {
	f.height = height
	f.width = width
	f.data = newTensorGrid(height, width)
	f.eigen = newEigenGrid(height, width)
	f.filled = false
	f.eigenCached = false
}
