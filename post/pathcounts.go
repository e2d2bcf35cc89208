package post

import "github.com/katalvlaran/hyperrewrite/dagstore"

// PathCounts recomputes path multiplicities for every record created
// since snapshot, in ascending id order so an event is always finalized
// before any child token that sums over it -- instantiate() always
// creates an event strictly before its children, so a single forward
// pass suffices. Implements spec.md §4.8's token/event pathcnt rules,
// overwriting the naive value dagstore.AddToken assigned at creation
// time (computed before its parent events had a real pathcnt).
func PathCounts(store *dagstore.Store, snapshot int) {
	for i := snapshot; i < store.Len(); i++ {
		id := dagstore.ID(i)
		switch store.Kind(id) {
		case dagstore.KindEvent:
			ev, err := store.EventByID(id)
			if err != nil || ev.Deleted() {
				continue
			}
			store.SetPathCount(id, eventPathCount(store, ev))
		case dagstore.KindToken:
			tok, err := store.TokenByID(id)
			if err != nil || tok.Deleted() {
				continue
			}
			store.SetPathCount(id, tokenPathCount(tok))
		}
	}
}

// eventPathCount transcribes spec.md §4.8's literal pathcnt(event)
// procedure: partition the parent multiset into branchlike equivalence
// classes (two tokens are merged into the same class when they are
// NOT branchlike-separated, i.e. timelike or spacelike), take the max
// pathcnt within each class, and sum the class maxima.
func eventPathCount(store *dagstore.Store, ev dagstore.Event) int {
	g := ev.Parent()
	if len(g) == 0 {
		return 1
	}

	sum := 0
	for len(g) > 0 {
		last := len(g) - 1
		t := g[last]
		g = g[:last]
		c := t.PathCount()

		for i := len(g) - 1; i >= 0; i-- {
			other := g[i]
			if store.Separation(t, other) != dagstore.SepBranchlike {
				if other.PathCount() > c {
					c = other.PathCount()
				}
				g = append(g[:i], g[i+1:]...)
			}
		}
		sum += c
	}
	return sum
}

// tokenPathCount implements spec.md §3's token half: the sum of parent
// events' (already-finalized) pathcnts, or 1 with no parents.
func tokenPathCount(tok dagstore.Token) int {
	parents := tok.Parent()
	if len(parents) == 0 {
		return 1
	}
	sum := 0
	for _, ev := range parents {
		sum += ev.PathCount()
	}
	return sum
}
