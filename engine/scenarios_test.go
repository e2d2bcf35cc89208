package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperrewrite/engine"
	"github.com/katalvlaran/hyperrewrite/query"
	"github.com/katalvlaran/hyperrewrite/rng"
	"github.com/katalvlaran/hyperrewrite/schedule"
)

// TestScenarioS1UnaryGrowth exercises the unary-growth scenario: each
// event replaces one edge with two, so after 100 events the leaf count
// is exactly 101 and every event has one parent token and two children.
func TestScenarioS1UnaryGrowth(t *testing.T) {
	h, outcome, err := engine.Run(context.Background(),
		engine.WithScript("(1,2);(1,2)->(1,3),(3,2)"),
		engine.WithBudgets(100, 0, 0),
		engine.WithEvolution(1),
		engine.WithRand(rng.FromSeed(1)),
	)
	require.NoError(t, err)
	require.Equal(t, schedule.ReasonMaxEvents, outcome.Reason)
	require.Equal(t, 100, outcome.Events)

	snap := h.Snapshot()
	require.Equal(t, 101, snap.Leaves)
	require.Equal(t, 100, snap.Events)

	for _, ev := range h.Events() {
		require.Len(t, ev.Parent(), 1)
		require.Len(t, ev.Child(), 2)
	}
}

// TestScenarioS2BinarySplit exercises the ternary-split scenario: a
// single 3-ary edge splits into two 3-ary edges sharing a freshly
// coined vertex one greater than the previous maximum.
func TestScenarioS2BinarySplit(t *testing.T) {
	h, outcome, err := engine.Run(context.Background(),
		engine.WithScript("(1,2,3);(1,2,3)->(1,4,2),(2,4,3)"),
		engine.WithBudgets(1, 0, 0),
		engine.WithEvolution(1),
		engine.WithRand(rng.FromSeed(2)),
	)
	require.NoError(t, err)
	require.Equal(t, schedule.ReasonMaxEvents, outcome.Reason)
	require.Equal(t, 1, outcome.Events)

	leaves := h.Leaves()
	require.Len(t, leaves, 2)
	for _, tok := range leaves {
		require.Contains(t, tok.Edge(), 3)
	}

	h50, outcome50, err := engine.Run(context.Background(),
		engine.WithScript("(1,2,3);(1,2,3)->(1,4,2),(2,4,3)"),
		engine.WithBudgets(50, 0, 0),
		engine.WithEvolution(1),
		engine.WithRand(rng.FromSeed(2)),
	)
	require.NoError(t, err)
	require.Equal(t, schedule.ReasonMaxEvents, outcome50.Reason)
	require.Equal(t, 1+50, h50.Snapshot().Leaves)
}

// TestScenarioS3TwoWayRuleEndToEnd runs a two-way rule compiled into a
// forward/reverse pair through the full engine and confirms the run
// keeps rewriting until it reaches its event budget.
func TestScenarioS3TwoWayRuleEndToEnd(t *testing.T) {
	h, outcome, err := engine.Run(context.Background(),
		engine.WithScript("(1,2);(1,2)==(2,1)"),
		engine.WithBudgets(4, 0, 0),
		engine.WithRand(rng.FromSeed(3)),
	)
	require.NoError(t, err)
	require.Equal(t, schedule.ReasonMaxEvents, outcome.Reason)
	require.GreaterOrEqual(t, h.Snapshot().Events, 4)
}

// TestScenarioS4SeedCommandBeforeRewrite checks that line(4) deposits
// 3 directed edges over 4 vertices before the first rewrite consumes
// any of them.
func TestScenarioS4SeedCommandBeforeRewrite(t *testing.T) {
	h, _, err := engine.Run(context.Background(),
		engine.WithScript("line(4);(1,2)->(1,3),(3,2)"),
		engine.WithBudgets(1, 0, 0),
		engine.WithRand(rng.FromSeed(4)),
	)
	require.NoError(t, err)

	maxVertex := -1
	for _, tok := range h.Tokens() {
		for _, v := range tok.Edge() {
			if v > maxVertex {
				maxVertex = v
			}
		}
	}
	require.GreaterOrEqual(t, maxVertex, 3)
	require.GreaterOrEqual(t, len(h.Tokens()), 3)
}

// TestScenarioS5BranchlikeDeduplicationCoinsFewerVertices checks
// invariant 7's direction end-to-end: deduplicating branchlike
// duplicate children never coins more fresh vertices than leaving
// them distinct.
func TestScenarioS5BranchlikeDeduplicationCoinsFewerVertices(t *testing.T) {
	runWith := func(dedup bool) *engine.Handle {
		h, _, err := engine.Run(context.Background(),
			engine.WithScript("(1,2),(1,3);(1,2)->(1,4),(4,2)"),
			engine.WithBudgets(2, 0, 0),
			engine.WithEvolution(2),
			engine.WithFlags(false, dedup, false, true, false),
			engine.WithRand(rng.FromSeed(5)),
		)
		require.NoError(t, err)
		return h
	}

	withDedup := runWith(true)
	withoutDedup := runWith(false)

	fresh := func(h *engine.Handle) map[int]struct{} {
		seen := map[int]struct{}{}
		for _, tok := range h.Tokens() {
			for _, v := range tok.Edge() {
				seen[v] = struct{}{}
			}
		}
		return seen
	}

	require.LessOrEqual(t, len(fresh(withDedup)), len(fresh(withoutDedup)))
}

// TestScenarioS6OllivierRicciSignOnLineAndRandomSeeds checks the
// curvature-sign scenario: a path graph's interior edges are
// approximately flat, and a random-scattered seed's curvature stays
// strictly between -1.5 and 1.5.
func TestScenarioS6OllivierRicciSignOnLineAndRandomSeeds(t *testing.T) {
	hLine, _, err := engine.Run(context.Background(),
		engine.WithScript("line(9)"),
	)
	require.NoError(t, err)

	curv, err := query.OllivierRicci(hLine.Store(), 4, 5, 1)
	require.NoError(t, err)
	require.InDelta(t, 0, curv, 0.5)

	hRandom, _, err := engine.Run(context.Background(),
		engine.WithScript("random(11,3,3)"),
		engine.WithRand(rng.FromSeed(6)),
	)
	require.NoError(t, err)

	leaves := hRandom.Leaves()
	require.NotEmpty(t, leaves)
	edge := leaves[0].Edge()
	require.Len(t, edge, 2)

	curvRandom, err := query.OllivierRicci(hRandom.Store(), edge[0], edge[1], 1)
	require.NoError(t, err)
	require.Greater(t, curvRandom, -1.5)
	require.Less(t, curvRandom, 1.5)
}
