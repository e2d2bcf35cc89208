package post

import (
	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/internal/fnv1a"
	"github.com/katalvlaran/hyperrewrite/stateindex"
)

// Dedup groups new events whose child-token patterns match and whose
// hits are pairwise branchlike-separated, then rewrites every
// non-canonical group member's child-token edges to the canonical
// member's fresh vertex ids via dagstore.SetEdge, per spec.md §4.8's
// vertex-coining rule. Must run before RegisterLeaves so the index
// never sees a pre-rewrite edge.
func Dedup(store *dagstore.Store, idx *stateindex.Index, snapshot int) {
	var newEvents []dagstore.ID
	forEachNew(store, snapshot, func(id dagstore.ID, kind dagstore.Kind) {
		if kind == dagstore.KindEvent {
			newEvents = append(newEvents, id)
		}
	})

	buckets := make(map[uint64][]dagstore.ID)
	for _, id := range newEvents {
		ev, err := store.EventByID(id)
		if err != nil || ev.Deleted() {
			continue
		}
		buckets[childPatternKey(ev)] = append(buckets[childPatternKey(ev)], id)
	}

	for _, group := range buckets {
		if len(group) < 2 {
			continue
		}
		for _, clique := range branchlikeCliques(store, group) {
			if len(clique) < 2 {
				continue
			}
			canonical := clique[0]
			canonicalChildren := childEdges(store, canonical)
			for _, other := range clique[1:] {
				otherEv, err := store.EventByID(other)
				if err != nil {
					continue
				}
				bound := make(map[int]struct{})
				for _, p := range otherEv.Parent() {
					for _, v := range p.Edge() {
						bound[v] = struct{}{}
					}
				}
				for i, tok := range otherEv.Child() {
					if i >= len(canonicalChildren) {
						break
					}
					edge := append([]int(nil), tok.Edge()...)
					for j, v := range edge {
						if _, ok := bound[v]; !ok && j < len(canonicalChildren[i]) {
							edge[j] = canonicalChildren[i][j]
						}
					}
					store.SetEdge(tok.ID(), edge)
				}
			}
		}
	}
}

func childPatternKey(ev dagstore.Event) uint64 {
	var flat []int
	for _, tok := range ev.Child() {
		flat = append(flat, tok.Pattern()...)
		flat = append(flat, -1)
	}
	return fnv1a.Ints(flat)
}

func childEdges(store *dagstore.Store, id dagstore.ID) [][]int {
	ev, err := store.EventByID(id)
	if err != nil {
		return nil
	}
	out := make([][]int, 0)
	for _, tok := range ev.Child() {
		out = append(out, tok.Edge())
	}
	return out
}

// branchlikeCliques greedily partitions ids into groups whose every
// member's hit is pairwise branchlike-separated from every other
// member already in the group -- a maximal-clique approximation that
// favors simplicity over optimality, acceptable because spec.md §4.8
// only requires "a" valid partition, not the unique maximum one.
func branchlikeCliques(store *dagstore.Store, ids []dagstore.ID) [][]dagstore.ID {
	var groups [][]dagstore.ID
	for _, id := range ids {
		placed := false
		for gi, group := range groups {
			if allBranchlike(store, group, id) {
				groups[gi] = append(group, id)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []dagstore.ID{id})
		}
	}
	return groups
}

func allBranchlike(store *dagstore.Store, group []dagstore.ID, id dagstore.ID) bool {
	ev, err := store.EventByID(id)
	if err != nil {
		return false
	}
	for _, gid := range group {
		gev, err := store.EventByID(gid)
		if err != nil {
			return false
		}
		if !anyHitBranchlike(store, ev, gev) {
			return false
		}
	}
	return true
}

// anyHitBranchlike reports whether a and b's hit sets are separated as
// branchlike (their parent tokens share a common producing event).
func anyHitBranchlike(store *dagstore.Store, a, b dagstore.Event) bool {
	return store.Separation(a, b) == dagstore.SepBranchlike
}
