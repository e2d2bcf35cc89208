package match

import (
	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/rulelang"
)

// Match is one admissible instantiation of a rule's LHS: the tokens it
// would consume (Hit, in LHS pattern order) and the variable -> vertex
// assignment (Map) that produced them.
type Match struct {
	Rule int
	Hit  []dagstore.ID
	Map  []int
}

// Options configures a single call to Match.
type Options struct {
	// Interactions is the global separation mask (spec.md §4.6); bit 1
	// = spacelike, bit 2 = timelike, bit 4 = branchlike.
	Interactions dagstore.Separation
}

// effectiveMask composes the global interactions mask with a rule's
// own override by bitwise OR, never overwriting it, per SPEC_FULL.md's
// resolution of spec.md §9's Open Question.
func effectiveMask(global dagstore.Separation, rule rulelang.Rule) dagstore.Separation {
	return global | dagstore.Separation(rule.Opt)
}
