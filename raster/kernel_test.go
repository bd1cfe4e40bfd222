package raster_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mireles-dev/tensorstreets/raster"
)

func TestGradientX_FlatRegionIsZero(t *testing.T) {
	r := raster.NewRaster(5, 5)
	for row := range r.Blue {
		for col := range r.Blue[row] {
			r.Blue[row][col] = 100
		}
	}
	gx := raster.GradientX(r)
	for row := 1; row < 4; row++ {
		for col := 1; col < 4; col++ {
			require.Equal(t, 0.0, gx[row][col])
		}
	}
}

func TestGradientX_DetectsVerticalEdge(t *testing.T) {
	r := raster.NewRaster(5, 5)
	for row := range r.Blue {
		for col := 0; col < 5; col++ {
			if col >= 3 {
				r.Blue[row][col] = 255
			}
		}
	}
	gx := raster.GradientX(r)
	require.Greater(t, gx[2][2], 0.0)
}

func TestGradientX_BordersAreZero(t *testing.T) {
	r := raster.NewRaster(4, 4)
	for row := range r.Blue {
		for col := range r.Blue[row] {
			r.Blue[row][col] = 255
		}
	}
	gx := raster.GradientX(r)
	for col := 0; col < 4; col++ {
		require.Equal(t, 0.0, gx[0][col])
		require.Equal(t, 0.0, gx[3][col])
	}
}

func TestCheckSize(t *testing.T) {
	r := raster.NewRaster(10, 20)
	require.NoError(t, raster.CheckSize(r, 20, 10))
	require.ErrorIs(t, raster.CheckSize(r, 5, 5), raster.ErrSizeMismatch)
}
