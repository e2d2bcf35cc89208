package dagstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperrewrite/dagstore"
)

// seedTokens adds n independent seed tokens to s and returns them.
func seedTokens(t *testing.T, s *dagstore.Store, n int) []dagstore.Token {
	t.Helper()
	out := make([]dagstore.Token, n)
	for i := 0; i < n; i++ {
		tok, err := s.AddToken([]int{i, i + 1}, []int{0, 1})
		require.NoError(t, err)
		out[i] = tok
	}
	return out
}

func TestIDsAreMonotonicAndDense(t *testing.T) {
	s := dagstore.NewStore()
	toks := seedTokens(t, s, 3)
	ev, err := s.AddEvent(0, 0, toks[0], toks[1])
	require.NoError(t, err)

	assert.Less(t, int(toks[0].ID()), int(toks[1].ID()))
	assert.Less(t, int(toks[1].ID()), int(toks[2].ID()))
	assert.Less(t, int(toks[2].ID()), int(ev.ID()))
	assert.Equal(t, s.Len(), int(ev.ID())+1)
}

func TestAdjacencyIsSymmetric(t *testing.T) {
	s := dagstore.NewStore()
	toks := seedTokens(t, s, 2)
	ev, err := s.AddEvent(0, 0, toks[0], toks[1])
	require.NoError(t, err)
	out, err := s.AddToken([]int{9, 9}, []int{0, 1}, ev)
	require.NoError(t, err)

	for _, p := range ev.Parent() {
		found := false
		for _, c := range p.Child() {
			if c.ID() == ev.ID() {
				found = true
			}
		}
		assert.True(t, found, "parent token must list event as child")
	}
	found := false
	for _, p := range out.Parent() {
		if p.ID() == ev.ID() {
			found = true
		}
	}
	assert.True(t, found, "output token must list producing event as parent")
}

func TestPastConeIsClosedUnderAncestry(t *testing.T) {
	s := dagstore.NewStore()
	toks := seedTokens(t, s, 2)
	ev, err := s.AddEvent(0, 0, toks[0], toks[1])
	require.NoError(t, err)
	out, err := s.AddToken([]int{9, 9}, []int{0, 1}, ev)
	require.NoError(t, err)

	past := out.Past()
	assert.True(t, past.Has(int(toks[0].ID())))
	assert.True(t, past.Has(int(toks[1].ID())))
	assert.True(t, past.Has(int(ev.ID())))
	assert.True(t, past.Has(int(out.ID())))
}

func TestSeparationSelfIsNeverBranchlike(t *testing.T) {
	s := dagstore.NewStore()
	toks := seedTokens(t, s, 1)
	sep := s.Separation(toks[0], toks[0])
	assert.Equal(t, dagstore.SepSame, sep)
	assert.NotEqual(t, dagstore.SepBranchlike, sep)
}

func TestSeparationIsSymmetric(t *testing.T) {
	s := dagstore.NewStore()
	toks := seedTokens(t, s, 3)
	ev, err := s.AddEvent(0, 0, toks[0], toks[1])
	require.NoError(t, err)
	a, err := s.AddToken([]int{1, 1}, []int{0, 1}, ev)
	require.NoError(t, err)
	b, err := s.AddToken([]int{2, 2}, []int{0, 1}, ev)
	require.NoError(t, err)

	assert.Equal(t, s.Separation(a, b), s.Separation(b, a))
	assert.Equal(t, dagstore.SepBranchlike, s.Separation(a, b))

	assert.Equal(t, dagstore.SepSpacelike, s.Separation(toks[0], toks[2]))
	assert.Equal(t, dagstore.SepSpacelike, s.Separation(toks[2], toks[0]))
}

func TestSeparationTimelikeAcrossGenerations(t *testing.T) {
	s := dagstore.NewStore()
	toks := seedTokens(t, s, 2)
	ev, err := s.AddEvent(0, 0, toks[0], toks[1])
	require.NoError(t, err)
	out, err := s.AddToken([]int{9, 9}, []int{0, 1}, ev)
	require.NoError(t, err)

	assert.Equal(t, dagstore.SepTimelike, s.Separation(toks[0], out))
	assert.Equal(t, dagstore.SepTimelike, s.Separation(out, toks[0]))
}

func TestDeleteEventOrphansExclusiveChildren(t *testing.T) {
	s := dagstore.NewStore()
	toks := seedTokens(t, s, 2)
	ev, err := s.AddEvent(0, 0, toks[0], toks[1])
	require.NoError(t, err)
	out, err := s.AddToken([]int{9, 9}, []int{0, 1}, ev)
	require.NoError(t, err)

	require.NoError(t, s.DeleteEvent(ev))
	assert.True(t, ev.Deleted())
	assert.True(t, out.Deleted(), "token with no remaining parent must be orphaned away")
}

func TestDeleteEventRecomputesPastForSurvivingChild(t *testing.T) {
	s := dagstore.NewStore()
	toks := seedTokens(t, s, 3)
	ev1, err := s.AddEvent(0, 0, toks[0])
	require.NoError(t, err)
	ev2, err := s.AddEvent(1, 0, toks[1])
	require.NoError(t, err)
	out, err := s.AddToken([]int{9, 9}, []int{0, 1}, ev1, ev2)
	require.NoError(t, err)

	require.NoError(t, s.DeleteEvent(ev1))
	assert.False(t, out.Deleted(), "token with one remaining parent survives")
	assert.False(t, out.Past().Has(int(ev1.ID())))
	assert.False(t, out.Past().Has(int(toks[0].ID())))
	assert.True(t, out.Past().Has(int(ev2.ID())))
	assert.True(t, out.Past().Has(int(toks[1].ID())))
}

func TestDeleteTokenCascadesToConsumingEvent(t *testing.T) {
	s := dagstore.NewStore()
	toks := seedTokens(t, s, 2)
	ev, err := s.AddEvent(0, 0, toks[0], toks[1])
	require.NoError(t, err)
	out, err := s.AddToken([]int{9, 9}, []int{0, 1}, ev)
	require.NoError(t, err)

	require.NoError(t, s.DeleteToken(toks[0]))
	assert.True(t, toks[0].Deleted())
	assert.True(t, ev.Deleted(), "event consuming a deleted token must be removed")
	assert.True(t, out.Deleted(), "cascade reaches the event's own children")
}

func TestMergePreservesPast(t *testing.T) {
	s := dagstore.NewStore()
	toks := seedTokens(t, s, 2)

	p1 := toks[0].Past().Clone()
	p2 := toks[1].Past().Clone()
	want := p1.Clone()
	want.Union(p2)
	want.Remove(int(toks[1].ID()))

	require.NoError(t, s.Merge(toks[0], toks[1]))
	assert.True(t, toks[1].Deleted())
	assert.False(t, toks[0].Deleted())
	assert.True(t, toks[0].Past().Equal(want))
}

func TestMergeRedirectsChildren(t *testing.T) {
	s := dagstore.NewStore()
	toks := seedTokens(t, s, 3)
	evA, err := s.AddEvent(0, 0, toks[0])
	require.NoError(t, err)
	evB, err := s.AddEvent(1, 0, toks[1])
	require.NoError(t, err)

	require.NoError(t, s.Merge(toks[0], toks[1]))

	children := toks[0].Child()
	ids := map[dagstore.ID]bool{}
	for _, c := range children {
		ids[c.ID()] = true
	}
	assert.True(t, ids[evA.ID()])
	assert.True(t, ids[evB.ID()])
}

func TestLeavesTracksFrontier(t *testing.T) {
	s := dagstore.NewStore()
	toks := seedTokens(t, s, 2)
	assert.Len(t, s.Leaves(), 2)

	ev, err := s.AddEvent(0, 0, toks[0], toks[1])
	require.NoError(t, err)
	_, err = s.AddToken([]int{9, 9}, []int{0, 1}, ev)
	require.NoError(t, err)

	assert.Len(t, s.Leaves(), 1)
}
