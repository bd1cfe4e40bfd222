package seed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mireles-dev/tensorstreets/geom"
	"github.com/mireles-dev/tensorstreets/seed"
	"github.com/mireles-dev/tensorstreets/tensor"
)

func testRegion() geom.Region {
	return geom.Region{
		BottomLeft: tensor.Vec2{X: 0, Y: 0},
		TopRight:   tensor.Vec2{X: 100, Y: 100},
	}
}

func TestGrid_PlacesOnExpectedLattice(t *testing.T) {
	g := seed.NewGenerator(testRegion())
	seeds := g.Grid(50)
	require.Len(t, seeds, 4)
	require.Contains(t, seeds, tensor.Vec2{X: 25, Y: 25})
	require.Contains(t, seeds, tensor.Vec2{X: 75, Y: 75})
}

func TestUniform_StaysWithinRegion(t *testing.T) {
	g := seed.NewGenerator(testRegion(), seed.WithSeed(42))
	seeds := g.Uniform(50)
	require.Len(t, seeds, 50)
	for _, s := range seeds {
		require.True(t, testRegion().Contains(s) || s.X == 0 || s.Y == 0)
	}
}

func TestUniform_DeterministicWithSameSeed(t *testing.T) {
	a := seed.NewGenerator(testRegion(), seed.WithSeed(7)).Uniform(10)
	b := seed.NewGenerator(testRegion(), seed.WithSeed(7)).Uniform(10)
	require.Equal(t, a, b)
}

func TestDensityConstrained_RespectsMinimumSeparation(t *testing.T) {
	g := seed.NewGenerator(testRegion(), seed.WithSeed(3))
	seeds := g.DensityConstrained(30, 10, nil)
	for i := range seeds {
		for j := range seeds {
			if i == j {
				continue
			}
			require.GreaterOrEqual(t, seeds[i].Sub(seeds[j]).Length(), 10.0)
		}
	}
}

func TestDensityConstrained_RespectsExistingSeeds(t *testing.T) {
	existing := []tensor.Vec2{{X: 50, Y: 50}}
	g := seed.NewGenerator(testRegion(), seed.WithSeed(9))
	seeds := g.DensityConstrained(20, 10, existing)
	for _, s := range seeds {
		require.GreaterOrEqual(t, s.Sub(existing[0]).Length(), 10.0)
	}
}
