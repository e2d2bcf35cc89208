package post

import (
	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/stateindex"
)

// Merge partitions the newly-created leaf tokens sharing an exact edge
// key into maximal branchlike-separated cliques and merges every
// non-canonical (lowest-id) member into the canonical one, per
// spec.md §4.8's edge-merging rule. Must run after RegisterLeaves.
func Merge(store *dagstore.Store, idx *stateindex.Index, snapshot int) {
	byEdge := make(map[string][]dagstore.ID)
	forEachNew(store, snapshot, func(id dagstore.ID, kind dagstore.Kind) {
		if kind != dagstore.KindToken {
			return
		}
		tok, err := store.TokenByID(id)
		if err != nil || tok.Deleted() || !tok.Leaf() {
			return
		}
		k := edgeString(tok.Edge())
		byEdge[k] = append(byEdge[k], id)
	})

	for _, ids := range byEdge {
		if len(ids) < 2 {
			continue
		}
		for _, clique := range branchlikeTokenCliques(store, ids) {
			if len(clique) < 2 {
				continue
			}
			canonical := clique[0]
			cTok, err := store.TokenByID(canonical)
			if err != nil {
				continue
			}
			for _, other := range clique[1:] {
				oTok, err := store.TokenByID(other)
				if err != nil || oTok.Deleted() {
					continue
				}
				idx.UnsetLeaf(other, oTok.Edge())
				if err := store.Merge(cTok, oTok); err != nil {
					continue
				}
			}
		}
	}
}

func edgeString(edge []int) string {
	buf := make([]byte, 0, len(edge)*5)
	for _, v := range edge {
		buf = appendVarint(buf, v)
	}
	return string(buf)
}

func appendVarint(buf []byte, v int) []byte {
	u := uint32(v)
	return append(buf, byte(u), byte(u>>8), byte(u>>16), byte(u>>24), ',')
}

func branchlikeTokenCliques(store *dagstore.Store, ids []dagstore.ID) [][]dagstore.ID {
	var groups [][]dagstore.ID
	for _, id := range ids {
		placed := false
		for gi, group := range groups {
			if allTokensBranchlike(store, group, id) {
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

func allTokensBranchlike(store *dagstore.Store, group []dagstore.ID, id dagstore.ID) bool {
	tok, err := store.TokenByID(id)
	if err != nil {
		return false
	}
	for _, gid := range group {
		gtok, err := store.TokenByID(gid)
		if err != nil {
			return false
		}
		if store.Separation(tok, gtok) != dagstore.SepBranchlike {
			return false
		}
	}
	return true
}
