package schedule_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperrewrite/rng"
	"github.com/katalvlaran/hyperrewrite/schedule"
)

func TestOrderOptionsRoundTrip(t *testing.T) {
	for _, order := range []schedule.Order{schedule.OrderWolfram, schedule.OrderWolframReverse, schedule.OrderRandom} {
		opts, err := schedule.NewOptions(schedule.WithOrder(order))
		require.NoError(t, err)
		require.Equal(t, order, opts.Order)
	}
}

func TestOrderRandomProducesAValidRun(t *testing.T) {
	script := compileText(t, "(1,2)==(2,1)")
	store, idx := seededStore(t, [][]int{{0, 1}, {2, 3}, {4, 5}})

	opts, err := schedule.NewOptions(
		schedule.WithOrder(schedule.OrderRandom),
		schedule.WithBudgets(3, 0, 0),
		schedule.WithRand(rng.FromSeed(42)),
	)
	require.NoError(t, err)

	outcome, err := schedule.NewScheduler().Run(context.Background(), store, idx, script.Rules, opts)
	require.NoError(t, err)
	require.Equal(t, schedule.ReasonMaxEvents, outcome.Reason)
}

func TestRuleIndexTiebreakDoesNotChangeValidity(t *testing.T) {
	script := compileText(t, "(1,2)->(1,3),(3,2)")
	store, idx := seededStore(t, [][]int{{0, 1}})

	opts, err := schedule.NewOptions(
		schedule.WithRuleIndexTiebreak(true),
		schedule.WithBudgets(5, 0, 0),
		schedule.WithRand(rng.FromSeed(1)),
	)
	require.NoError(t, err)
	require.True(t, opts.RuleIndexTie)

	outcome, err := schedule.NewScheduler().Run(context.Background(), store, idx, script.Rules, opts)
	require.NoError(t, err)
	require.Equal(t, schedule.ReasonMaxEvents, outcome.Reason)
}
