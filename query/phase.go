package query

import (
	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/hv"
)

// PhaseDistance returns the Hamming distance between two records'
// branchial-coordinate hypervectors, the metric post.KNN clusters on,
// for multiway "phase" queries.
func PhaseDistance(store *dagstore.Store, a, b dagstore.ID) (int, error) {
	va, err := bcOf(store, a)
	if err != nil {
		return 0, err
	}
	vb, err := bcOf(store, b)
	if err != nil {
		return 0, err
	}
	return hv.Dist(va, vb), nil
}

func bcOf(store *dagstore.Store, id dagstore.ID) (hv.Vector, error) {
	switch store.Kind(id) {
	case dagstore.KindToken:
		tok, err := store.TokenByID(id)
		if err != nil {
			return hv.Vector{}, err
		}
		return tok.BC(), nil
	case dagstore.KindEvent:
		ev, err := store.EventByID(id)
		if err != nil {
			return hv.Vector{}, err
		}
		return ev.BC(), nil
	}
	return hv.Vector{}, dagstore.ErrNotFound
}
