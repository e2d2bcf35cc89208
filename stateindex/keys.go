package stateindex

import "github.com/katalvlaran/hyperrewrite/internal/fnv1a"

// wildcardMarker stands in for an open slot in a wildcard key. Vertex
// ids are always non-negative (spec.md §3), so -1 can never collide
// with a real vertex id.
const wildcardMarker = -1

func exactKey(edge []int) uint64 {
	return fnv1a.Ints(edge)
}

// wildKey hashes edge with position pos replaced by wildcardMarker,
// prefixed by pos itself so that wildcarding different positions of an
// otherwise-identical edge never collide with one another.
func wildKey(edge []int, pos int) uint64 {
	key := make([]int, len(edge)+1)
	key[0] = pos
	copy(key[1:], edge)
	key[1+pos] = wildcardMarker
	return fnv1a.Ints(key)
}
