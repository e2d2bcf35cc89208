// Package bitset provides a fixed-block sparse bitset used to represent
// past-cone membership and branch masks over monotonically increasing ids.
//
// Set grows in fixed-size word blocks as ids are added, so membership and
// union/intersection stay O(1) amortized rather than paying hash-set
// overhead per id, the way a large run's past-cones would if stored as
// Go maps (see Design Notes in SPEC_FULL.md).
package bitset

import "math/bits"

// wordBits is the number of membership bits held per backing word.
const wordBits = 64

// Set is a growable bitset over non-negative integer ids. The zero value
// is an empty set ready to use.
type Set struct {
	words []uint64
}

// New returns an empty Set.
func New() *Set {
	return &Set{}
}

// FromItems returns a Set containing exactly the given ids.
func FromItems(ids ...int) *Set {
	s := New()
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	if s == nil {
		return New()
	}
	out := &Set{words: make([]uint64, len(s.words))}
	copy(out.words, s.words)
	return out
}

// Add inserts id into the set. id must be >= 0.
func (s *Set) Add(id int) {
	w, b := id/wordBits, uint(id%wordBits)
	s.ensure(w + 1)
	s.words[w] |= 1 << b
}

// Remove deletes id from the set if present.
func (s *Set) Remove(id int) {
	w, b := id/wordBits, uint(id%wordBits)
	if w >= len(s.words) {
		return
	}
	s.words[w] &^= 1 << b
}

// Has reports whether id is a member of s.
func (s *Set) Has(id int) bool {
	if s == nil {
		return false
	}
	w, b := id/wordBits, uint(id%wordBits)
	if w >= len(s.words) {
		return false
	}
	return s.words[w]&(1<<b) != 0
}

// Len returns the number of members in s.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Empty reports whether s has no members.
func (s *Set) Empty() bool {
	return s.Len() == 0
}

// Union sets s to the union of s and other, growing s as needed.
func (s *Set) Union(other *Set) {
	if other == nil {
		return
	}
	s.ensure(len(other.words))
	for i, w := range other.words {
		s.words[i] |= w
	}
}

// UnionOf returns a new Set that is the union of the given sets.
func UnionOf(sets ...*Set) *Set {
	out := New()
	for _, s := range sets {
		out.Union(s)
	}
	return out
}

// Intersect returns a new Set with the members present in both s and other.
func (s *Set) Intersect(other *Set) *Set {
	out := New()
	if s == nil || other == nil {
		return out
	}
	n := len(s.words)
	if len(other.words) < n {
		n = len(other.words)
	}
	out.ensure(n)
	for i := 0; i < n; i++ {
		out.words[i] = s.words[i] & other.words[i]
	}
	return out
}

// Subtract returns a new Set with the members of s that are not in other.
func (s *Set) Subtract(other *Set) *Set {
	out := s.Clone()
	if other == nil {
		return out
	}
	n := len(out.words)
	if len(other.words) < n {
		n = len(other.words)
	}
	for i := 0; i < n; i++ {
		out.words[i] &^= other.words[i]
	}
	return out
}

// Equal reports whether s and other contain exactly the same ids.
func (s *Set) Equal(other *Set) bool {
	n := len(s.words)
	if len(other.words) > n {
		n = len(other.words)
	}
	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(s.words) {
			a = s.words[i]
		}
		if i < len(other.words) {
			b = other.words[i]
		}
		if a != b {
			return false
		}
	}
	return true
}

// Items returns the set's members in ascending order.
func (s *Set) Items() []int {
	out := make([]int, 0, s.Len())
	for wi, w := range s.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out = append(out, wi*wordBits+tz)
			w &= w - 1
		}
	}
	return out
}

// ForEach calls fn for every member of s in ascending order, stopping early
// if fn returns false.
func (s *Set) ForEach(fn func(id int) bool) {
	for wi, w := range s.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			if !fn(wi*wordBits + tz) {
				return
			}
			w &= w - 1
		}
	}
}

func (s *Set) ensure(words int) {
	if words <= len(s.words) {
		return
	}
	grown := make([]uint64, words)
	copy(grown, s.words)
	s.words = grown
}
