package query_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/hv"
	"github.com/katalvlaran/hyperrewrite/query"
	"github.com/katalvlaran/hyperrewrite/rng"
)

func TestPhaseDistanceZeroForIdenticalBC(t *testing.T) {
	store := dagstore.NewStore()
	a, err := store.AddToken([]int{0, 1}, []int{0, 1})
	require.NoError(t, err)
	b, err := store.AddToken([]int{2, 3}, []int{0, 1})
	require.NoError(t, err)

	v := hv.Random(rng.FromSeed(1))
	store.SetBC(a.ID(), v)
	store.SetBC(b.ID(), v)

	d, err := query.PhaseDistance(store, a.ID(), b.ID())
	require.NoError(t, err)
	require.Equal(t, 0, d)
}

func TestPhaseDistancePositiveForDifferentBC(t *testing.T) {
	store := dagstore.NewStore()
	a, err := store.AddToken([]int{0, 1}, []int{0, 1})
	require.NoError(t, err)
	b, err := store.AddToken([]int{2, 3}, []int{0, 1})
	require.NoError(t, err)

	r := rng.FromSeed(2)
	store.SetBC(a.ID(), hv.Random(r))
	store.SetBC(b.ID(), hv.Random(r))

	d, err := query.PhaseDistance(store, a.ID(), b.ID())
	require.NoError(t, err)
	require.Greater(t, d, 0)
}
