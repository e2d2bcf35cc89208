package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/match"
	"github.com/katalvlaran/hyperrewrite/rulelang"
)

func TestAdmitOrdinaryRejectsAlreadyConsumedByBranch(t *testing.T) {
	store := dagstore.NewStore()
	tok, err := store.AddToken([]int{0, 1}, []int{0, 1})
	require.NoError(t, err)
	store.SetBranch(tok.ID(), 1)

	ev, err := store.AddEvent(0, 0, tok)
	require.NoError(t, err)
	store.SetBranch(ev.ID(), 1)

	m := match.Match{Rule: 0, Hit: []dagstore.ID{tok.ID()}}
	require.False(t, admitOrdinary(store, m, 1, dagstore.SepSpacelike))
}

func TestAdmitOrdinaryAllVsAnyAccessibility(t *testing.T) {
	store := dagstore.NewStore()
	a, err := store.AddToken([]int{0, 1}, []int{0, 1})
	require.NoError(t, err)
	b, err := store.AddToken([]int{2, 3}, []int{0, 1})
	require.NoError(t, err)
	store.SetBranch(a.ID(), 1)
	// b has no branch bit set.

	m := match.Match{Rule: 0, Hit: []dagstore.ID{a.ID(), b.ID()}}

	// Branchlike disallowed: requires ALL hit tokens accessible to b.
	require.False(t, admitOrdinary(store, m, 1, dagstore.SepSpacelike))

	// Branchlike allowed: requires ANY hit token accessible to b.
	require.True(t, admitOrdinary(store, m, 1, dagstore.SepSpacelike|dagstore.SepBranchlike))
}

func TestAdmitCompletionRequiresTwoDistinctOriginsAndOverlap(t *testing.T) {
	store := dagstore.NewStore()
	a, err := store.AddToken([]int{0, 1}, []int{0, 1})
	require.NoError(t, err)
	c, err := store.AddToken([]int{2, 3}, []int{0, 1})
	require.NoError(t, err)
	store.SetBranch(a.ID(), 0b01)
	store.SetBranch(c.ID(), 0b11)

	m := match.Match{Rule: 0, Hit: []dagstore.ID{a.ID(), c.ID()}}
	require.True(t, admitCompletion(store, m, 0))

	// Disjoint masks: no overlap, must reject.
	d, err := store.AddToken([]int{4, 5}, []int{0, 1})
	require.NoError(t, err)
	store.SetBranch(d.ID(), 0b100)
	m2 := match.Match{Rule: 0, Hit: []dagstore.ID{a.ID(), d.ID()}}
	require.False(t, admitCompletion(store, m2, 0))
}

func TestAdmitShortCircuitsForFullMultiway(t *testing.T) {
	store := dagstore.NewStore()
	_, err := store.AddToken([]int{0, 1}, []int{0, 1})
	require.NoError(t, err)
	m := match.Match{Rule: 0, Hit: []dagstore.ID{0}}
	require.True(t, admit(store, rulelang.Rule{}, m, 0, dagstore.SepSpacelike, true))
}
