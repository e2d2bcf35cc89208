package schedule

import (
	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/match"
	"github.com/katalvlaran/hyperrewrite/rulelang"
)

// admit reports whether m may be instantiated for tracked branch b
// (full-multiway runs always call admit with b == 0 and fullMultiway
// true, which short-circuits to "always admissible"). Two separate code
// paths mirror the two separate admissibility rules spec.md §4.7 gives
// for ordinary rules versus completion rules.
func admit(store *dagstore.Store, rule rulelang.Rule, m match.Match, b uint16, interactions dagstore.Separation, fullMultiway bool) bool {
	if fullMultiway {
		return true
	}
	if rule.Completion {
		return admitCompletion(store, m, b)
	}
	return admitOrdinary(store, m, b, interactions)
}

// admitOrdinary implements the non-completion branch-admissibility
// rule: no hit token may already have been consumed by b, and the
// branchlike-allowed flag switches the accessibility quantifier between
// "all" and "at least one".
func admitOrdinary(store *dagstore.Store, m match.Match, b uint16, interactions dagstore.Separation) bool {
	branchlikeAllowed := interactions&dagstore.SepBranchlike != 0

	anyAccessible := false
	allAccessible := true
	for _, id := range m.Hit {
		tok, err := store.TokenByID(id)
		if err != nil {
			return false
		}
		if consumedByBranch(tok, b) {
			return false
		}
		if tok.Branch()&b != 0 {
			anyAccessible = true
		} else {
			allAccessible = false
		}
	}
	if branchlikeAllowed {
		return anyAccessible
	}
	return allAccessible
}

// admitCompletion implements the completion-rule admissibility check:
// the hit tokens must carry at least two distinct branch masks and
// every pairwise branch-mask intersection among the hit must be
// non-empty, the "stitch branches together" rule.
func admitCompletion(store *dagstore.Store, m match.Match, b uint16) bool {
	masks := make([]uint16, len(m.Hit))
	for i, id := range m.Hit {
		tok, err := store.TokenByID(id)
		if err != nil {
			return false
		}
		masks[i] = tok.Branch()
	}

	distinctOrigins := make(map[uint16]struct{})
	for i := 0; i < len(masks); i++ {
		for j := i + 1; j < len(masks); j++ {
			if masks[i]&masks[j] == 0 {
				return false
			}
		}
		distinctOrigins[masks[i]] = struct{}{}
	}
	return len(distinctOrigins) >= 2
}

// consumedByBranch reports whether tok already has a child event whose
// branch mask includes b.
func consumedByBranch(tok dagstore.Token, b uint16) bool {
	for _, ev := range tok.Child() {
		if ev.Branch()&b != 0 {
			return true
		}
	}
	return false
}
