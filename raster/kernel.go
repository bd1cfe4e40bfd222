package raster

// sobelX and sobelY are the classical 3x3 Sobel gradient kernels, grounded
// on the reference implementation's applySobelX/applySobelY (TensorField.cpp),
// which convolves these same weights against the blue channel of a
// heightmap image to derive gradient direction for the height-field basis.
var (
	sobelX = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// GradientX convolves the blue channel with the Sobel X kernel, returning a
// same-sized grid of signed gradients. Border pixels (where the 3x3 window
// would run off the raster) are zero, matching the reference's treatment of
// edge pixels rather than clamping or wrapping the window.
func GradientX(r *Raster) [][]float64 {
	return convolve(r, sobelX)
}

// GradientY convolves the blue channel with the Sobel Y kernel. See
// GradientX for border behavior.
func GradientY(r *Raster) [][]float64 {
	return convolve(r, sobelY)
}

func convolve(r *Raster, kernel [3][3]float64) [][]float64 {
	out := make([][]float64, r.Height)
	for row := range out {
		out[row] = make([]float64, r.Width)
	}
	for row := 1; row < r.Height-1; row++ {
		for col := 1; col < r.Width-1; col++ {
			var sum float64
			for kr := -1; kr <= 1; kr++ {
				for kc := -1; kc <= 1; kc++ {
					sum += kernel[kr+1][kc+1] * r.At(row+kr, col+kc)
				}
			}
			out[row][col] = sum
		}
	}
	return out
}
