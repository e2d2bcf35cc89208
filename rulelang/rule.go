package rulelang

import "github.com/katalvlaran/hyperrewrite/hv"

// Pattern is a hyperedge pattern: each element is a small non-negative
// integer naming a rule-local variable (spec.md §3's Rule.lhs/rhs
// definition). LHS variables are numbered 0..NumVars-1 in order of
// first occurrence; RHS (and, incidentally, Neg) may introduce fresh
// variables at indices >= NumVars.
type Pattern []int

// Rule is the fully compiled form of a RuleStmt: canonical patterns
// plus every statistic spec.md §3/§4.3 says is "derived... set once at
// compile time".
type Rule struct {
	LHS []Pattern
	RHS []Pattern
	Neg []Pattern

	// NumVars is the number of distinct variables bound by LHS alone;
	// any variable index >= NumVars was introduced by RHS (or Neg).
	NumVars int

	// LHSDup[j] / RHSDup[j] mark whether the j-th LHS/RHS pattern is
	// textually duplicated on the opposite side, used by no-duplicates
	// mode (spec.md §4.7).
	LHSDup []bool
	RHSDup []bool

	Energy   int
	Mass     int
	Momentum int
	Spin     int

	// BC is the rule's random basis hypervector, drawn once at compile
	// time from the injected RNG.
	BC hv.Vector

	// Opt is the rule's per-rule interaction-mask override, composed
	// with the scheduler's global interactions mask via bitwise OR
	// (never overwriting it), per spec.md §9's Open Question
	// resolution. Zero means no override.
	Opt int

	// Completion marks a rule compiled with the trailing "/...c..."
	// option: its LHS match is admissible only when it stitches
	// together tokens from at least two different tracked branches
	// (spec.md §4.6, §4.7).
	Completion bool
}
