package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperrewrite/engine"
)

func TestNewOptionsRequiresScript(t *testing.T) {
	_, err := engine.NewOptions()
	require.ErrorIs(t, err, engine.ErrEmptyScript)
}

func TestNewOptionsValidatesEvolutionRange(t *testing.T) {
	_, err := engine.NewOptions(
		engine.WithScript("(1,2)->(1,3),(3,2)"),
		engine.WithEvolution(99),
	)
	require.Error(t, err)
}

func TestNewOptionsAssignsRunID(t *testing.T) {
	o, err := engine.NewOptions(engine.WithScript("(1,2)->(1,3),(3,2)"))
	require.NoError(t, err)
	require.NotEqual(t, "00000000-0000-0000-0000-000000000000", o.RunID.String())
}

func TestWithBudgetsAndFlagsRoundTrip(t *testing.T) {
	o, err := engine.NewOptions(
		engine.WithScript("(1,2)->(1,3),(3,2)"),
		engine.WithBudgets(10, 20, 30),
		engine.WithFlags(true, true, false, false, false),
	)
	require.NoError(t, err)
	require.Equal(t, 10, o.MaxEvents)
	require.Equal(t, 20, o.MaxSteps)
	require.Equal(t, 30, o.MaxTokens)
	require.True(t, o.NoDuplicates)
	require.True(t, o.Deduplicate)
	require.False(t, o.PathCounts)
}
