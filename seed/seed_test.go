package seed_test

import (
	"testing"

	"github.com/katalvlaran/hyperrewrite/rng"
	"github.com/katalvlaran/hyperrewrite/seed"
	"github.com/stretchr/testify/require"
)

func TestLineScenarioS4(t *testing.T) {
	res, err := seed.Line(4)
	require.NoError(t, err)
	require.Len(t, res.Edges, 3)
	require.Equal(t, 4, res.Next)
}

func TestPointsRange(t *testing.T) {
	_, err := seed.Points(0)
	require.Error(t, err)
	_, err = seed.Points(10001)
	require.Error(t, err)
	res, err := seed.Points(5)
	require.NoError(t, err)
	require.Len(t, res.Edges, 5)
	for i, e := range res.Edges {
		require.Equal(t, seed.Edge{i}, e)
	}
}

func TestGridConnectsNeighborsOnly(t *testing.T) {
	res, err := seed.Grid([]int{2, 2}, seed.WithRand(rng.FromSeed(1)))
	require.NoError(t, err)
	require.Equal(t, 4, res.Next)
	require.Len(t, res.Edges, 4) // 2x2 grid has 4 axis-adjacent pairs
}

func TestCompleteSmall(t *testing.T) {
	res, err := seed.Complete(4, 1, false)
	require.NoError(t, err)
	require.Len(t, res.Edges, 6) // C(4,2)
}

func TestCompleteSubdivision(t *testing.T) {
	res, err := seed.Complete(3, 2, false)
	require.NoError(t, err)
	require.Len(t, res.Edges, 6) // 3 pairs * 2 sub-edges each
	require.Equal(t, 6, res.Next) // 3 original + 3 midpoints
}

func TestSphereRange(t *testing.T) {
	_, err := seed.Sphere(4)
	require.Error(t, err)
	res, err := seed.Sphere(20)
	require.NoError(t, err)
	require.NotEmpty(t, res.Edges)
}

func TestRandomDegreeBound(t *testing.T) {
	res, err := seed.Random(20, 3, 2, seed.WithRand(rng.FromSeed(7)))
	require.NoError(t, err)
	degree := make(map[int]int)
	for _, e := range res.Edges {
		degree[e[0]]++
		degree[e[1]]++
	}
	for v, d := range degree {
		require.LessOrEqualf(t, d, 2, "vertex %d exceeded degree bound", v)
	}
}

func TestRandomRangeValidation(t *testing.T) {
	_, err := seed.Random(1, 3, 2)
	require.Error(t, err)
	_, err = seed.Random(20, 0, 2)
	require.Error(t, err)
	_, err = seed.Random(20, 3, 0)
	require.Error(t, err)
}
