package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mireles-dev/tensorstreets/geom"
	"github.com/mireles-dev/tensorstreets/tensor"
)

func region() geom.Region {
	return geom.Region{
		BottomLeft: tensor.Vec2{X: 0, Y: 0},
		TopRight:   tensor.Vec2{X: 100, Y: 50},
	}
}

func TestWidthHeight(t *testing.T) {
	r := region()
	require.Equal(t, 100.0, r.Width())
	require.Equal(t, 50.0, r.Height())
}

func TestContains(t *testing.T) {
	r := region()
	require.True(t, r.Contains(tensor.Vec2{X: 50, Y: 25}))
	require.False(t, r.Contains(tensor.Vec2{X: 0, Y: 25}))
	require.False(t, r.Contains(tensor.Vec2{X: 100, Y: 25}))
	require.False(t, r.Contains(tensor.Vec2{X: 150, Y: 25}))
}

func TestGridIndex_MapsCorners(t *testing.T) {
	r := region()
	i, j := r.GridIndex(tensor.Vec2{X: 0, Y: 0}, 10, 20)
	require.Equal(t, 0, i)
	require.Equal(t, 0, j)

	i, j = r.GridIndex(tensor.Vec2{X: 100, Y: 50}, 10, 20)
	require.Equal(t, 9, i)
	require.Equal(t, 19, j)
}
