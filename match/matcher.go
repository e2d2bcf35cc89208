package match

import (
	"context"
	"time"

	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/rulelang"
	"github.com/katalvlaran/hyperrewrite/stateindex"
)

const wildcardMarker = -1

// Match enumerates every admissible LHS instantiation of rules over
// store's current frontier, indexed by idx, per spec.md §4.6. yieldEvery
// is the cooperative-yield budget (spec.md §5's timeslot); a zero value
// disables yielding.
func Match(ctx context.Context, store *dagstore.Store, idx *stateindex.Index, rules []rulelang.Rule, opts Options, yieldEvery time.Duration) []Match {
	var out []Match
	last := time.Now()
	for ri, rule := range rules {
		m := &matcher{
			ctx:    ctx,
			store:  store,
			idx:    idx,
			rule:   rule,
			mask:   effectiveMask(opts.Interactions, rule),
			yield:  yieldEvery,
			last:   &last,
			ruleNo: ri,
		}
		if ctx.Err() != nil {
			break
		}
		m.search()
		out = append(out, m.results...)
	}
	return out
}

// matcher holds the mutable search state for one rule's enumeration,
// the same walker-struct shape bfs.walker uses for BFS.
type matcher struct {
	ctx     context.Context
	store   *dagstore.Store
	idx     *stateindex.Index
	rule    rulelang.Rule
	mask    dagstore.Separation
	yield   time.Duration
	last    *time.Time
	ruleNo  int
	results []Match
	cancel  bool
}

func (m *matcher) search() {
	nv := numVars(m.rule)
	vars := make([]int, nv)
	for i := range vars {
		vars[i] = wildcardMarker
	}
	m.rec(0, vars, nil)
}

func numVars(rule rulelang.Rule) int {
	n := rule.NumVars
	for _, p := range rule.RHS {
		for _, v := range p {
			if v+1 > n {
				n = v + 1
			}
		}
	}
	for _, p := range rule.Neg {
		for _, v := range p {
			if v+1 > n {
				n = v + 1
			}
		}
	}
	return n
}

func (m *matcher) checkYield() {
	if m.cancel {
		return
	}
	if m.ctx.Err() != nil {
		m.cancel = true
		return
	}
	if m.yield <= 0 {
		return
	}
	if time.Since(*m.last) >= m.yield {
		*m.last = time.Now()
	}
}

func (m *matcher) rec(pos int, vars []int, hits []dagstore.ID) {
	if m.cancel {
		return
	}
	m.checkYield()
	if m.cancel {
		return
	}

	if pos == len(m.rule.LHS) {
		m.finish(vars, hits)
		return
	}

	pattern := m.rule.LHS[pos]
	candidates := m.candidatesFor(pattern, vars)
	for _, id := range candidates {
		tok, err := m.store.TokenByID(id)
		if err != nil || !tok.Leaf() || tok.Deleted() {
			continue
		}
		newVars, ok := unify(pattern, tok.Edge(), vars)
		if !ok {
			continue
		}
		m.rec(pos+1, newVars, append(hits, id))
		if m.cancel {
			return
		}
	}
}

// candidatesFor picks the cheapest index lookup available for pattern
// given the current partial binding: an exact lookup if every slot is
// already bound, a one-slot wildcard lookup if exactly one slot is
// open, or a by-length scan (verified by unify) otherwise.
func (m *matcher) candidatesFor(pattern rulelang.Pattern, vars []int) []dagstore.ID {
	substituted := make([]int, len(pattern))
	openSlot := -1
	openCount := 0
	for i, v := range pattern {
		if v < len(vars) && vars[v] != wildcardMarker {
			substituted[i] = vars[v]
		} else {
			substituted[i] = wildcardMarker
			openSlot = i
			openCount++
		}
	}
	switch openCount {
	case 0:
		return m.idx.Exact(substituted)
	case 1:
		return m.idx.Wildcard(substituted, openSlot)
	default:
		return m.idx.ByLength(len(pattern))
	}
}

// unify attempts to bind pattern's variables against edge given the
// current vars assignment, implementing spec.md §4.6's isMatch (equal
// length, and every repeated pattern variable maps to equal edge
// positions) fused with variable binding.
func unify(pattern rulelang.Pattern, edge []int, vars []int) ([]int, bool) {
	if len(pattern) != len(edge) {
		return nil, false
	}
	nv := append([]int(nil), vars...)
	for _, v := range pattern {
		if v >= len(nv) {
			grown := make([]int, v+1)
			copy(grown, nv)
			for i := len(nv); i < len(grown); i++ {
				grown[i] = wildcardMarker
			}
			nv = grown
		}
	}
	for i, v := range pattern {
		if nv[v] == wildcardMarker {
			nv[v] = edge[i]
		} else if nv[v] != edge[i] {
			return nil, false
		}
	}
	return nv, true
}

// finish is reached once every LHS position has a candidate token: it
// rejects duplicate-token tuples, applies the separation filter, then
// the negative-pattern check, before recording a Match.
func (m *matcher) finish(vars []int, hits []dagstore.ID) {
	if hasDuplicate(hits) {
		return
	}
	if !isSeparated(m.store, hits, m.mask) {
		return
	}
	if len(m.rule.Neg) > 0 && NegSatisfied(m.store, m.idx, m.rule.Neg, vars) {
		return
	}
	mp := append([]int(nil), vars...)
	m.results = append(m.results, Match{Rule: m.ruleNo, Hit: append([]dagstore.ID(nil), hits...), Map: mp})
}

func hasDuplicate(ids []dagstore.ID) bool {
	seen := make(map[dagstore.ID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}

func isSeparated(store *dagstore.Store, ids []dagstore.ID, mask dagstore.Separation) bool {
	refs := make([]dagstore.Ref, len(ids))
	for i, id := range ids {
		tok, err := store.TokenByID(id)
		if err != nil {
			return false
		}
		refs[i] = tok
	}
	return store.IsSeparation(refs, mask)
}

// NegSatisfied reports whether at least one combined extension of vars
// into neg yields a real match in the leaf index, per spec.md §4.6.
// Exported so post.NegRecheck can reapply the identical check after an
// event is instantiated (spec.md §4.8's post-instantiation re-check).
func NegSatisfied(store *dagstore.Store, idx *stateindex.Index, neg []rulelang.Pattern, vars []int) bool {
	found := false
	var rec func(pos int, vs []int)
	rec = func(pos int, vs []int) {
		if found {
			return
		}
		if pos == len(neg) {
			found = true
			return
		}
		pattern := neg[pos]
		substituted := make([]int, len(pattern))
		openSlot := -1
		openCount := 0
		for i, v := range pattern {
			if v < len(vs) && vs[v] != wildcardMarker {
				substituted[i] = vs[v]
			} else {
				substituted[i] = wildcardMarker
				openSlot = i
				openCount++
			}
		}
		var candidates []dagstore.ID
		switch openCount {
		case 0:
			candidates = idx.Exact(substituted)
		case 1:
			candidates = idx.Wildcard(substituted, openSlot)
		default:
			candidates = idx.ByLength(len(pattern))
		}
		for _, id := range candidates {
			tok, err := store.TokenByID(id)
			if err != nil || !tok.Leaf() || tok.Deleted() {
				continue
			}
			nv, ok := unify(pattern, tok.Edge(), vs)
			if !ok {
				continue
			}
			rec(pos+1, nv)
			if found {
				return
			}
		}
	}
	rec(0, append([]int(nil), vars...))
	return found
}
