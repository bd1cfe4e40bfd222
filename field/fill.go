package field

import (
	"math"

	"github.com/mireles-dev/tensorstreets/raster"
	"github.com/mireles-dev/tensorstreets/tensor"
)

// FillGrid superposes a uniform-direction basis field of angle theta and
// magnitude l, weighted by the inverse Gaussian (1 - w) so the
// contribution grows stronger away from the basis's center.
func (f *Field) FillGrid(theta, l float64, opts ...BasisOption) {
	cfg := defaultBasisConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	base := tensor.FromAngleLength(theta, l)

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := 0; i < f.height; i++ {
		for j := 0; j < f.width; j++ {
			w := gaussianWeight(i, j, f.height, f.width, cfg)
			f.data[i][j] = f.data[i][j].Add(base.Scale(1 - w))
		}
	}
	f.markFilled()
}

// FillGridFromVector is FillGrid with theta and l derived from v.
func (f *Field) FillGridFromVector(v tensor.Vec2, opts ...BasisOption) {
	theta := math.Atan2(v.Y, v.X)
	f.FillGrid(theta, v.Length(), opts...)
}

// FillRotating superposes a basis field whose angle sweeps across the grid:
// theta(i,j) = pi*j/(W-1) + (pi/4)*i/(H-1), weighted by the Gaussian (not
// inverted, unlike FillGrid).
func (f *Field) FillRotating(opts ...BasisOption) {
	cfg := defaultBasisConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := 0; i < f.height; i++ {
		for j := 0; j < f.width; j++ {
			theta := rotatingAngle(i, j, f.height, f.width)
			w := gaussianWeight(i, j, f.height, f.width, cfg)
			f.data[i][j] = f.data[i][j].Add(tensor.FromAngleLength(theta, 1).Scale(w))
		}
	}
	f.markFilled()
}

func rotatingAngle(i, j, height, width int) float64 {
	return math.Pi*normalizedCoord(j, width) + (math.Pi/4)*normalizedCoord(i, height)
}

// FillRadial superposes the radial basis field (y²-x², -2xy, -2xy,
// -(y²-x²)) weighted by the Gaussian.
func (f *Field) FillRadial(opts ...BasisOption) {
	cfg := defaultBasisConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := 0; i < f.height; i++ {
		for j := 0; j < f.width; j++ {
			x := normalizedCoord(j, f.width) - cfg.centerX
			y := normalizedCoord(i, f.height) - cfg.centerY
			w := gaussianWeight(i, j, f.height, f.width, cfg)
			radial := tensor.Tensor{
				A: y*y - x*x,
				B: -2 * x * y,
				C: -2 * x * y,
				D: -(y*y - x*x),
			}
			f.data[i][j] = f.data[i][j].Add(radial.Scale(w))
		}
	}
	f.markFilled()
}

// FillHeightmap resizes the field to match the heightmap raster at path (if
// its dimensions differ from the field's current ones) and superposes a
// tensor derived from the per-pixel finite-difference gradient of its blue
// channel, weighted by the Gaussian the same way FillGrid/FillRotating/
// FillRadial are. Cells where both finite differences are zero receive the
// canonical identity-like default (1,0,0,-1), scaled by the same weight.
// Rows are written flipped
// (H-1-i) so image row 0 (top) lands at the top of the region in world
// coordinates.
func (f *Field) FillHeightmap(path string, opts ...BasisOption) error {
	r, err := raster.LoadBlueChannel(path)
	if err != nil {
		return err
	}

	cfg := defaultBasisConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if r.Height != f.height || r.Width != f.width {
		f.resize(r.Height, r.Width)
	}

	for i := 0; i < f.height-1; i++ {
		for j := 0; j < f.width-1; j++ {
			gx := r.At(i, j) - r.At(i, j+1)
			gy := r.At(i, j) - r.At(i+1, j)
			row := f.height - 1 - i
			w := gaussianWeight(row, j, f.height, f.width, cfg)
			f.data[row][j] = f.data[row][j].Add(gradientTensor(gx, gy, w))
		}
	}
	f.markFilled()
	return nil
}

// FillHeightmapSobel is FillHeightmap but derives the gradient from the
// Sobel X/Y convolution of the blue channel rather than raw finite
// differences.
func (f *Field) FillHeightmapSobel(path string, opts ...BasisOption) error {
	r, err := raster.LoadBlueChannel(path)
	if err != nil {
		return err
	}

	cfg := defaultBasisConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	gx := raster.GradientX(r)
	gy := raster.GradientY(r)

	f.mu.Lock()
	defer f.mu.Unlock()
	if r.Height != f.height || r.Width != f.width {
		f.resize(r.Height, r.Width)
	}

	for i := 0; i < f.height; i++ {
		for j := 0; j < f.width; j++ {
			row := f.height - 1 - i
			w := gaussianWeight(row, j, f.height, f.width, cfg)
			f.data[row][j] = f.data[row][j].Add(gradientTensor(gx[i][j], gy[i][j], w))
		}
	}
	f.markFilled()
	return nil
}

// FillWaterBoundary superposes a tensor derived from the Sobel gradient of
// the water-map blue channel at path, broadcasting each contribution into
// the 3x3 neighborhood around its source pixel to thicken coastlines.
func (f *Field) FillWaterBoundary(path string) error {
	r, err := raster.LoadBlueChannel(path)
	if err != nil {
		return err
	}
	if err := raster.CheckSize(r, f.Width(), f.Height()); err != nil {
		return err
	}

	gx := raster.GradientX(r)
	gy := raster.GradientY(r)

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := 0; i < f.height; i++ {
		for j := 0; j < f.width; j++ {
			if gx[i][j] == 0 && gy[i][j] == 0 {
				continue
			}
			contribution := gradientTensor(gx[i][j], gy[i][j], 1)
			row := f.height - 1 - i
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					nr, nc := row+dr, j+dc
					if nr < 0 || nr >= f.height || nc < 0 || nc >= f.width {
						continue
					}
					f.data[nr][nc] = f.data[nr][nc].Add(contribution)
				}
			}
		}
	}
	f.markFilled()
	return nil
}

// ApplyWaterMask zeroes every cell whose corresponding (y-flipped) pixel
// in the water-map raster at path has a non-zero blue channel. Unlike
// every other fill, this replaces rather than superposes.
func (f *Field) ApplyWaterMask(path string) error {
	r, err := raster.LoadBlueChannel(path)
	if err != nil {
		return err
	}
	if err := raster.CheckSize(r, f.Width(), f.Height()); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := 0; i < f.height; i++ {
		for j := 0; j < f.width; j++ {
			if r.At(i, j) > 0 {
				f.data[f.height-1-i][j] = tensor.Tensor{}
			}
		}
	}
	f.waterMaskPath = path
	f.markFilled()
	return nil
}

// gradientTensor builds the canonical tensor from a gradient (gx, gy),
// scaled by weight w: theta = atan2(-gy, gx) + pi/2, r = |g|*w; the
// canonical identity-like default, scaled by w, is used when the gradient
// is exactly zero.
func gradientTensor(gx, gy, w float64) tensor.Tensor {
	if gx == 0 && gy == 0 {
		return tensor.Tensor{A: 1, B: 0, C: 0, D: -1}.Scale(w)
	}
	theta := math.Atan2(-gy, gx) + math.Pi/2
	r := math.Hypot(gx, gy)
	return tensor.FromAngleLength(theta, r*w)
}

// markFilled must be called with f.mu held.
func (f *Field) markFilled() {
	f.filled = true
	f.eigenCached = false
}
