package post

import (
	"sort"

	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/hv"
)

type neighbor struct {
	id   dagstore.ID
	dist int
}

// KNN computes, for each token created since snapshot, its k nearest
// historical tokens by Hamming distance on bc, subject to cutoff, per
// spec.md §4.8's optional k-NN pass: a candidate whose own
// nearest-neighbour distance is already below cutoff is treated as
// already-clustered, and its neighbour list is reused verbatim when its
// bc is identical to the new token's.
func KNN(store *dagstore.Store, k, cutoff int, snapshot int) map[dagstore.ID][]dagstore.ID {
	out := make(map[dagstore.ID][]dagstore.ID)
	if k <= 0 {
		return out
	}

	historical := make([]dagstore.Token, 0, snapshot)
	for i := 0; i < snapshot; i++ {
		if store.Kind(dagstore.ID(i)) != dagstore.KindToken {
			continue
		}
		tok, err := store.TokenByID(dagstore.ID(i))
		if err != nil || tok.Deleted() {
			continue
		}
		historical = append(historical, tok)
	}

	cache := make(map[dagstore.ID][]dagstore.ID)

	forEachNew(store, snapshot, func(id dagstore.ID, kind dagstore.Kind) {
		if kind != dagstore.KindToken {
			return
		}
		tok, err := store.TokenByID(id)
		if err != nil || tok.Deleted() {
			return
		}

		if reused, ok := reuseIdentical(store, tok, cache); ok {
			out[id] = reused
			return
		}

		neighbors := nearest(tok.BC(), historical, k)
		if len(neighbors) > 0 && neighbors[0].dist < cutoff {
			cache[id] = idsOf(neighbors)
		}
		out[id] = idsOf(neighbors)
	})
	return out
}

func reuseIdentical(store *dagstore.Store, tok dagstore.Token, cache map[dagstore.ID][]dagstore.ID) ([]dagstore.ID, bool) {
	for id, list := range cache {
		c, err := store.TokenByID(id)
		if err == nil && hv.Equal(tok.BC(), c.BC()) {
			return list, true
		}
	}
	return nil, false
}

func nearest(bc hv.Vector, pool []dagstore.Token, k int) []neighbor {
	ns := make([]neighbor, 0, len(pool))
	for _, t := range pool {
		ns = append(ns, neighbor{id: t.ID(), dist: hv.Dist(bc, t.BC())})
	}
	sort.Slice(ns, func(i, j int) bool { return ns[i].dist < ns[j].dist })
	if len(ns) > k {
		ns = ns[:k]
	}
	return ns
}

func idsOf(ns []neighbor) []dagstore.ID {
	out := make([]dagstore.ID, len(ns))
	for i, n := range ns {
		out[i] = n.id
	}
	return out
}
