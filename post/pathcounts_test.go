package post_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/post"
)

// TestPathCountsSingleParentEvent covers the base case: a seed token
// has pathcnt 1, and an event with one parent token inherits it, and
// the resulting child token sums its single parent event.
func TestPathCountsSingleParentEvent(t *testing.T) {
	store := dagstore.NewStore()
	seed, err := store.AddToken([]int{0, 1}, []int{0, 1})
	require.NoError(t, err)
	require.Equal(t, 1, seed.PathCount())

	snapshot := store.Len()
	ev, err := store.AddEvent(0, 0, seed)
	require.NoError(t, err)
	child, err := store.AddToken([]int{0, 2}, []int{0, 1}, ev)
	require.NoError(t, err)

	post.PathCounts(store, snapshot)

	ev2, err := store.EventByID(ev.ID())
	require.NoError(t, err)
	require.Equal(t, 1, ev2.PathCount())

	child2, err := store.TokenByID(child.ID())
	require.NoError(t, err)
	require.Equal(t, 1, child2.PathCount())
}

// TestPathCountsSpacelikeParentsSumMax covers the multi-parent case: two
// seed tokens (spacelike-separated, no shared history) consumed by one
// event merge into a single equivalence class, so the event's pathcnt
// is the max of its parents', not their sum.
func TestPathCountsSpacelikeParentsSumMax(t *testing.T) {
	store := dagstore.NewStore()
	a, err := store.AddToken([]int{0, 1}, []int{0, 1})
	require.NoError(t, err)
	b, err := store.AddToken([]int{2, 3}, []int{0, 1})
	require.NoError(t, err)

	snapshot := store.Len()
	ev, err := store.AddEvent(0, 0, a, b)
	require.NoError(t, err)

	post.PathCounts(store, snapshot)

	ev2, err := store.EventByID(ev.ID())
	require.NoError(t, err)
	// a and b are spacelike-separated (disjoint past-cones), so they
	// fall in one equivalence class: max(1, 1) == 1.
	require.Equal(t, 1, ev2.PathCount())
}
