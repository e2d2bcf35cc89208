package post

import (
	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/stateindex"
)

// RegisterLeaves registers every token created since snapshot into idx,
// completing spec.md §4.8's deferred-indexing rule: tokens are created
// (and may have their edges rewritten by Dedup) before they are ever
// looked up by the matcher.
func RegisterLeaves(store *dagstore.Store, idx *stateindex.Index, snapshot int) {
	forEachNew(store, snapshot, func(id dagstore.ID, kind dagstore.Kind) {
		if kind != dagstore.KindToken {
			return
		}
		tok, err := store.TokenByID(id)
		if err != nil || tok.Deleted() || !tok.Leaf() {
			return
		}
		idx.SetLeaf(id, tok.Edge())
	})
}

// forEachNew walks every record id in [snapshot, store.Len()), invoking
// fn with its kind. Deleted records are still visited; callers filter.
func forEachNew(store *dagstore.Store, snapshot int, fn func(id dagstore.ID, kind dagstore.Kind)) {
	for i := snapshot; i < store.Len(); i++ {
		id := dagstore.ID(i)
		fn(id, store.Kind(id))
	}
}
