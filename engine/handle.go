package engine

import (
	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/hv"
	"github.com/katalvlaran/hyperrewrite/stateindex"
)

// Handle is the read-only view into a finished (or in-progress) run's
// state, the engine-facing wrapper around dagstore.Store/stateindex.Index
// callers use instead of reaching into those packages directly.
type Handle struct {
	store *dagstore.Store
	idx   *stateindex.Index
}

// Tokens returns every live token.
func (h *Handle) Tokens() []dagstore.Token { return h.store.Tokens() }

// Events returns every live event.
func (h *Handle) Events() []dagstore.Event { return h.store.Events() }

// Leaves returns the current multiway frontier.
func (h *Handle) Leaves() []dagstore.Token { return h.store.Leaves() }

// BC returns the branchial-coordinate hypervector for id.
func (h *Handle) BC(id dagstore.ID) (hv.Vector, error) {
	switch h.store.Kind(id) {
	case dagstore.KindToken:
		t, err := h.store.TokenByID(id)
		return t.BC(), err
	default:
		e, err := h.store.EventByID(id)
		return e.BC(), err
	}
}

// PathCount returns the path multiplicity for id.
func (h *Handle) PathCount(id dagstore.ID) (int, error) {
	switch h.store.Kind(id) {
	case dagstore.KindToken:
		t, err := h.store.TokenByID(id)
		return t.PathCount(), err
	default:
		e, err := h.store.EventByID(id)
		return e.PathCount(), err
	}
}

// Branches returns the evolution-branch bitmask for id.
func (h *Handle) Branches(id dagstore.ID) (uint16, error) {
	switch h.store.Kind(id) {
	case dagstore.KindToken:
		t, err := h.store.TokenByID(id)
		return t.Branch(), err
	default:
		e, err := h.store.EventByID(id)
		return e.Branch(), err
	}
}

// Store exposes the underlying dagstore.Store for callers that need the
// full accessor surface (query.Spatial/query.Causal construction).
func (h *Handle) Store() *dagstore.Store { return h.store }

// Index exposes the underlying stateindex.Index.
func (h *Handle) Index() *stateindex.Index { return h.idx }

// Snapshot is a point-in-time summary of a run, cheap enough to poll
// from a Progress callback or log at the end of a run.
type Snapshot struct {
	Tokens int
	Events int
	Leaves int
}

// Snapshot summarizes h's current state.
func (h *Handle) Snapshot() Snapshot {
	return Snapshot{
		Tokens: len(h.Tokens()),
		Events: len(h.Events()),
		Leaves: len(h.Leaves()),
	}
}
