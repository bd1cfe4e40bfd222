package field

import "math"

// basisConfig holds the center and decay shared by the Grid, Rotating, and
// Radial basis fields. Defaults mirror the grid-from-vector basis's
// defaults in the absence of any reference-specified default for the other
// bases.
type basisConfig struct {
	centerX, centerY float64
	decay            float64
}

func defaultBasisConfig() basisConfig {
	return basisConfig{centerX: 0.2, centerY: 0.3, decay: 0.1}
}

// BasisOption configures a basis-field fill's center and spatial decay.
type BasisOption func(*basisConfig)

// WithCenter sets the basis field's center, in normalized [0,1]² region
// coordinates.
func WithCenter(x, y float64) BasisOption {
	return func(c *basisConfig) {
		c.centerX, c.centerY = x, y
	}
}

// WithDecay sets the Gaussian decay rate used to localize the basis
// field's contribution around its center.
func WithDecay(decay float64) BasisOption {
	return func(c *basisConfig) {
		c.decay = decay
	}
}

// gaussianWeight computes w(x, y, decay) = exp(-decay * (x^2 + y^2)) for a
// cell's position normalized relative to cfg's center.
func gaussianWeight(i, j, height, width int, cfg basisConfig) float64 {
	x := normalizedCoord(j, width) - cfg.centerX
	y := normalizedCoord(i, height) - cfg.centerY
	return math.Exp(-cfg.decay * (x*x + y*y))
}

func normalizedCoord(index, extent int) float64 {
	if extent <= 1 {
		return 0
	}
	return float64(index) / float64(extent-1)
}
