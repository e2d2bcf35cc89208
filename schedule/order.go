package schedule

import (
	"sort"

	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/match"
	"github.com/katalvlaran/hyperrewrite/rng"
)

// orderMatches returns a permutation of ms per opts.Order, implementing
// spec.md §4.7's three processing orders. The input slice is never
// mutated; orderMatches always returns a fresh slice.
func orderMatches(ms []match.Match, opts Options) []match.Match {
	out := make([]match.Match, len(ms))
	copy(out, ms)

	switch opts.Order {
	case OrderRandom:
		shuffleMatches(out, opts.Rand)
	case OrderWolframReverse:
		sortWolfram(out)
		reverseMatches(out)
	default: // OrderWolfram
		sortWolfram(out)
	}

	if opts.RuleIndexTie {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rule < out[j].Rule
		})
	}
	return out
}

// shuffleMatches performs a Fisher-Yates shuffle driven by r, the same
// swap-callback shape rng.Source.Shuffle and bfs's random-order options
// use elsewhere in the corpus.
func shuffleMatches(ms []match.Match, r rng.Source) {
	n := len(ms)
	r.Shuffle(n, func(i, j int) { ms[i], ms[j] = ms[j], ms[i] })
}

// sortWolfram implements b=1: lexicographic by (LHS token ids
// descending -- "least-recent edge"), then position-sort of ids --
// "rule ordering" -- then rule index.
func sortWolfram(ms []match.Match) {
	sort.Slice(ms, func(i, j int) bool {
		return lessWolfram(ms[i], ms[j])
	})
}

func lessWolfram(a, b match.Match) bool {
	if c := compareDescending(a.Hit, b.Hit); c != 0 {
		return c < 0
	}
	if c := comparePositionSort(a.Hit, b.Hit); c != 0 {
		return c < 0
	}
	return a.Rule < b.Rule
}

// compareDescending compares two id lists as if sorted highest-first,
// greater lists (more-recent matches) ordering first.
func compareDescending(a, bIDs []dagstore.ID) int {
	la, lb := len(a), len(bIDs)
	n := la
	if lb < n {
		n = lb
	}
	for i := 0; i < n; i++ {
		if a[i] != bIDs[i] {
			if a[i] > bIDs[i] {
				return -1
			}
			return 1
		}
	}
	return la - lb
}

// comparePositionSort compares the two id lists sorted ascending,
// breaking ties left by compareDescending.
func comparePositionSort(a, bIDs []dagstore.ID) int {
	sa := append([]dagstore.ID(nil), a...)
	sb := append([]dagstore.ID(nil), bIDs...)
	sort.Slice(sa, func(i, j int) bool { return sa[i] < sa[j] })
	sort.Slice(sb, func(i, j int) bool { return sb[i] < sb[j] })
	n := len(sa)
	if len(sb) < n {
		n = len(sb)
	}
	for i := 0; i < n; i++ {
		if sa[i] != sb[i] {
			if sa[i] < sb[i] {
				return -1
			}
			return 1
		}
	}
	return len(sa) - len(sb)
}

func reverseMatches(ms []match.Match) {
	for i, j := 0, len(ms)-1; i < j; i, j = i+1, j-1 {
		ms[i], ms[j] = ms[j], ms[i]
	}
}
