package post

import (
	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/match"
	"github.com/katalvlaran/hyperrewrite/rulelang"
	"github.com/katalvlaran/hyperrewrite/stateindex"
)

// NegRecheck deletes every still-live event created since snapshot
// whose rule carries a negative pattern that now has a full match in
// idx, cascading the deletion through dagstore, per spec.md §4.8's
// negative re-check rule. The event's own hit tokens are excluded from
// the candidate search automatically: AddEvent marks them non-leaf the
// moment they became parents, and match.NegSatisfied only considers
// leaf tokens.
func NegRecheck(store *dagstore.Store, idx *stateindex.Index, rules []rulelang.Rule, snapshot int) {
	var newEvents []dagstore.ID
	forEachNew(store, snapshot, func(id dagstore.ID, kind dagstore.Kind) {
		if kind == dagstore.KindEvent {
			newEvents = append(newEvents, id)
		}
	})

	for _, id := range newEvents {
		ev, err := store.EventByID(id)
		if err != nil || ev.Deleted() {
			continue
		}
		rule := rules[ev.Rule()]
		if len(rule.Neg) == 0 {
			continue
		}
		vars := rebuildVars(rule, ev.Parent())
		if !match.NegSatisfied(store, idx, rule.Neg, vars) {
			continue
		}
		unregisterChildren(idx, ev)
		store.DeleteEvent(ev)
	}
}

// rebuildVars reconstructs the LHS variable -> vertex binding an
// event's instantiation used, by re-running the same positional
// assignment the matcher's unify performs: rule.LHS[i] is matched
// against parents[i].Edge() in order.
func rebuildVars(rule rulelang.Rule, parents []dagstore.Token) []int {
	n := rule.NumVars
	for _, p := range rule.RHS {
		for _, v := range p {
			if v+1 > n {
				n = v + 1
			}
		}
	}
	vars := make([]int, n)
	for i := range vars {
		vars[i] = -1
	}
	for i, pat := range rule.LHS {
		if i >= len(parents) {
			break
		}
		edge := parents[i].Edge()
		for j, v := range pat {
			if j < len(edge) {
				vars[v] = edge[j]
			}
		}
	}
	return vars
}

// unregisterChildren removes ev's current leaf children from idx before
// the cascading delete, per dagstore.DeleteEvent's documented
// requirement.
func unregisterChildren(idx *stateindex.Index, ev dagstore.Event) {
	for _, tok := range ev.Child() {
		if tok.Leaf() {
			idx.UnsetLeaf(tok.ID(), tok.Edge())
		}
	}
}
