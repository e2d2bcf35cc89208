package rulelang_test

import (
	"testing"

	"github.com/katalvlaran/hyperrewrite/rng"
	"github.com/katalvlaran/hyperrewrite/rulelang"
	"github.com/stretchr/testify/require"
)

func compileText(t *testing.T, src string) *rulelang.Script {
	t.Helper()
	stmts, err := rulelang.Parse(src)
	require.NoError(t, err)
	script, err := rulelang.Compile(stmts, nil, rng.FromSeed(1))
	require.NoError(t, err)
	return script
}

// TestTwoWayRuleScenarioS3 exercises spec.md §8 scenario S3.
func TestTwoWayRuleScenarioS3(t *testing.T) {
	script := compileText(t, "(1,2)==(2,1)")
	require.Len(t, script.Rules, 2)

	fwd, rev := script.Rules[0], script.Rules[1]
	require.Equal(t, 2, fwd.Energy)
	require.Equal(t, 2, rev.Energy)
	require.Empty(t, fwd.Neg)
	require.Empty(t, rev.Neg)

	require.Equal(t, rulelang.Pattern{0, 1}, fwd.LHS[0])
	require.Equal(t, rulelang.Pattern{1, 0}, fwd.RHS[0])
	require.Equal(t, rulelang.Pattern{0, 1}, rev.LHS[0])
	require.Equal(t, rulelang.Pattern{1, 0}, rev.RHS[0])
}

func TestUnaryGrowthRuleScenarioS1(t *testing.T) {
	script := compileText(t, "(1,2)->(1,3),(3,2)")
	require.Len(t, script.Rules, 1)
	r := script.Rules[0]
	require.Equal(t, 2, r.NumVars)
	require.Equal(t, rulelang.Pattern{0, 1}, r.LHS[0])
	require.Equal(t, rulelang.Pattern{0, 2}, r.RHS[0])
	require.Equal(t, rulelang.Pattern{2, 1}, r.RHS[1])
	require.Equal(t, 3, r.Energy)
}

func TestLineCommandScenarioS4(t *testing.T) {
	script := compileText(t, "line(4);(1,2)->(1,3),(3,2)")
	require.Len(t, script.Commands, 1)
	require.Len(t, script.Rules, 1)
	require.Equal(t, "line", script.Commands[0].Name)
	require.Equal(t, []int{4}, script.Commands[0].Args)
}

func TestNegativePatternCompiles(t *testing.T) {
	script := compileText(t, "(1,2)\\(2,3)->(1,3)")
	require.Len(t, script.Rules, 1)
	require.Len(t, script.Rules[0].Neg, 1)
}

func TestRuleOptionParsing(t *testing.T) {
	script := compileText(t, "(1,2)->(2,1)/5c")
	r := script.Rules[0]
	require.Equal(t, 5, r.Opt)
	require.True(t, r.Completion)
}

func TestBareInitialEdgesWithSubtraction(t *testing.T) {
	script := compileText(t, "(a,b),(b,c)\\(a,c)")
	require.Len(t, script.Commands, 1)
	cmd := script.Commands[0]
	require.Equal(t, [][]int{{0, 1}, {1, 2}}, cmd.Edges)
	require.Equal(t, [][]int{{0, 2}}, cmd.NegEdges)
}

func TestSerializeRoundTripUpToRenaming(t *testing.T) {
	script := compileText(t, "(x,y)->(y,x)")
	text := rulelang.Serialize(script)
	reStmts, err := rulelang.Parse(text)
	require.NoError(t, err)
	reScript, err := rulelang.Compile(reStmts, nil, rng.FromSeed(1))
	require.NoError(t, err)
	require.Equal(t, script.Rules[0].LHS, reScript.Rules[0].LHS)
	require.Equal(t, script.Rules[0].RHS, reScript.Rules[0].RHS)
}
