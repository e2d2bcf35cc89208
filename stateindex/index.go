package stateindex

import "github.com/katalvlaran/hyperrewrite/dagstore"

// Index holds the exact-edge index L and the one-slot-wildcard index P
// over the tokens currently in the multiway frontier, plus a by-length
// index used to enumerate candidates for a rule's first LHS pattern
// (which, having no prior variable bindings, constrains only length and
// internal repeated-variable equality, not any fixed slot value).
//
// Index holds no lock of its own: spec.md §5 requires SetLeaf/UnsetLeaf
// to be mutually exclusive with matcher reads, which the scheduler
// provides by never running the matcher concurrently with
// post-processing within a macro-step.
type Index struct {
	exact  map[uint64][]dagstore.ID
	wild   map[uint64][]dagstore.ID
	byLen  map[int][]dagstore.ID
}

// New returns an empty Index.
func New() *Index {
	return &Index{
		exact: make(map[uint64][]dagstore.ID),
		wild:  make(map[uint64][]dagstore.ID),
		byLen: make(map[int][]dagstore.ID),
	}
}

// SetLeaf registers id (whose concrete hyperedge is edge) into every
// index: the exact key, the by-length bucket, and one wildcard key per
// slot.
func (idx *Index) SetLeaf(id dagstore.ID, edge []int) {
	idx.exact[exactKey(edge)] = append(idx.exact[exactKey(edge)], id)
	idx.byLen[len(edge)] = append(idx.byLen[len(edge)], id)
	for pos := range edge {
		k := wildKey(edge, pos)
		idx.wild[k] = append(idx.wild[k], id)
	}
}

// UnsetLeaf removes id from every index it was registered under for
// edge. Must be called with the same edge SetLeaf was called with.
func (idx *Index) UnsetLeaf(id dagstore.ID, edge []int) {
	removeFrom(idx.exact, exactKey(edge), id)
	removeFrom(idx.byLen, len(edge), id)
	for pos := range edge {
		removeFrom(idx.wild, wildKey(edge, pos), id)
	}
}

// Exact returns candidate leaf ids whose edge may equal edge exactly.
func (idx *Index) Exact(edge []int) []dagstore.ID {
	return idx.exact[exactKey(edge)]
}

// Wildcard returns candidate leaf ids whose edge may match edge at
// every position except pos.
func (idx *Index) Wildcard(edge []int, pos int) []dagstore.ID {
	return idx.wild[wildKey(edge, pos)]
}

// ByLength returns candidate leaf ids whose edge has exactly n slots.
func (idx *Index) ByLength(n int) []dagstore.ID {
	return idx.byLen[n]
}

func removeFrom[K comparable](m map[K][]dagstore.ID, key K, id dagstore.ID) {
	list := m[key]
	for i, v := range list {
		if v == id {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(m, key)
		return
	}
	m[key] = list
}
