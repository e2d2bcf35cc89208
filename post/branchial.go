package post

import (
	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/hv"
	"github.com/katalvlaran/hyperrewrite/rng"
)

// BranchialCoordinates assigns every event created since snapshot a
// branchial-coordinate hypervector, then propagates it to child tokens
// unchanged, per spec.md §4.8. Processes ids in ascending order so an
// event's bc is final before any child token inherits it.
func BranchialCoordinates(store *dagstore.Store, r rng.Source, snapshot int) {
	for i := snapshot; i < store.Len(); i++ {
		id := dagstore.ID(i)
		switch store.Kind(id) {
		case dagstore.KindEvent:
			ev, err := store.EventByID(id)
			if err != nil || ev.Deleted() {
				continue
			}
			store.SetBC(id, eventBC(store, r, ev))
		case dagstore.KindToken:
			tok, err := store.TokenByID(id)
			if err != nil || tok.Deleted() {
				continue
			}
			store.SetBC(id, tokenBC(r, tok))
		}
	}
}

func eventBC(store *dagstore.Store, r rng.Source, ev dagstore.Event) hv.Vector {
	parents := ev.Parent()
	if len(parents) == 0 {
		return hv.Random(r)
	}

	bcs := make([]hv.Vector, len(parents))
	allEqual := true
	for i, t := range parents {
		bcs[i] = t.BC()
		if i > 0 && !hv.Equal(bcs[i], bcs[0]) {
			allEqual = false
		}
	}

	var bc hv.Vector
	if allEqual {
		bc = bcs[0]
	} else {
		bc = hv.Maj(bcs, hv.Random(r))
	}

	if anyParentBranches(parents) {
		bc = hv.Maj([]hv.Vector{bc, hv.Random(r)}, hv.Random(r))
	}
	return bc
}

// anyParentBranches reports whether any of ev's parent tokens has more
// than one child event, the "materialises a new branch" trigger.
func anyParentBranches(parents []dagstore.Token) bool {
	for _, t := range parents {
		if len(t.Child()) > 1 {
			return true
		}
	}
	return false
}

// tokenBC implements "every child token inherits its event's bc
// unchanged (a token with multiple parent events uses maj of those
// events' bcs)".
func tokenBC(r rng.Source, tok dagstore.Token) hv.Vector {
	parents := tok.Parent()
	if len(parents) == 1 {
		return parents[0].BC()
	}
	bcs := make([]hv.Vector, len(parents))
	for i, ev := range parents {
		bcs[i] = ev.BC()
	}
	if len(bcs) == 0 {
		return hv.Vector{}
	}
	return hv.Maj(bcs, hv.Random(r))
}
