package dagstore

import "github.com/katalvlaran/hyperrewrite/bitset"

// Ref is anything with an id: Token and Event both satisfy it, letting
// Separation/IsSeparation operate generically the way spec.md §4.2
// describes them.
type Ref interface {
	ID() ID
}

// Separation computes the causal relationship between x and y: same if
// identical, timelike if one is an ancestor of the other, branchlike if
// their lowest common ancestors include an event (they are sibling
// outputs of a shared rewrite), spacelike otherwise.
//
// Per SPEC_FULL.md's Design Notes, this preserves the source's literal
// "LCA is an event" distinction rather than unifying it with a cleaner
// but different rule: an event LCA means x and y both descend from
// branches of the *same application*, a token LCA means they only share
// ancestry further back.
func (s *Store) Separation(x, y Ref) Separation {
	if x.ID() == y.ID() {
		return SepSame
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	xp := s.nodes[x.ID()].past
	yp := s.nodes[y.ID()].past
	inter := xp.Intersect(yp)

	lca := s.lcaLocked(inter)
	for _, id := range lca {
		if id == x.ID() || id == y.ID() {
			return SepTimelike
		}
	}
	for _, id := range lca {
		if s.nodes[id].kind == KindEvent {
			return SepBranchlike
		}
	}
	return SepSpacelike
}

// lcaLocked returns the out-degree-zero elements of inter: ids whose
// children are not themselves members of inter. Must be called with
// s.mu held (read or write).
func (s *Store) lcaLocked(inter *bitset.Set) []ID {
	var out []ID
	inter.ForEach(func(i int) bool {
		id := ID(i)
		hasChildInInter := false
		for _, c := range s.nodes[id].child {
			if inter.Has(int(c)) {
				hasChildInInter = true
				break
			}
		}
		if !hasChildInInter {
			out = append(out, id)
		}
		return true
	})
	return out
}

// IsSeparation reports whether every pair in ts has a separation whose
// bit is set in mask.
func (s *Store) IsSeparation(ts []Ref, mask Separation) bool {
	for i := 0; i < len(ts); i++ {
		for j := i + 1; j < len(ts); j++ {
			sep := s.Separation(ts[i], ts[j])
			if sep&mask == 0 {
				return false
			}
		}
	}
	return true
}
