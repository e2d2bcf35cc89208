package dagstore

import (
	"github.com/katalvlaran/hyperrewrite/bitset"
	"github.com/katalvlaran/hyperrewrite/hv"
)

// TokenByID returns the token with the given id.
func (s *Store) TokenByID(id ID) (Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(s.nodes) || s.nodes[id].kind != KindToken {
		return Token{}, ErrNotFound
	}
	return Token{id: id, s: s}, nil
}

// EventByID returns the event with the given id.
func (s *Store) EventByID(id ID) (Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(s.nodes) || s.nodes[id].kind != KindEvent {
		return Event{}, ErrNotFound
	}
	return Event{id: id, s: s}, nil
}

// Tokens returns every live token in id order.
func (s *Store) Tokens() []Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Token, 0, len(s.nodes))
	for _, n := range s.nodes {
		if n.kind == KindToken && !n.deleted {
			out = append(out, Token{id: n.id, s: s})
		}
	}
	return out
}

// Events returns every live event in id order.
func (s *Store) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, 0, len(s.nodes))
	for _, n := range s.nodes {
		if n.kind == KindEvent && !n.deleted {
			out = append(out, Event{id: n.id, s: s})
		}
	}
	return out
}

// Leaves returns every token currently in the multiway frontier.
func (s *Store) Leaves() []Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Token, 0)
	for _, n := range s.nodes {
		if n.kind == KindToken && !n.deleted && n.leaf {
			out = append(out, Token{id: n.id, s: s})
		}
	}
	return out
}

// Edge returns the token's concrete hyperedge.
func (t Token) Edge() []int { return t.s.node(t.id).edge }

// Pattern returns the token's pattern template prior to vertex renaming.
func (t Token) Pattern() []int { return t.s.node(t.id).pat }

// Leaf reports whether t is currently part of the multiway frontier.
func (t Token) Leaf() bool { return t.s.node(t.id).leaf }

// Deleted reports whether t has been removed from the DAG.
func (t Token) Deleted() bool { return t.s.node(t.id).deleted }

// Parent returns the events that produced t (empty for seed tokens).
func (t Token) Parent() []Event { return t.s.eventsFor(t.s.node(t.id).parent) }

// Child returns the events that consume t.
func (t Token) Child() []Event { return t.s.eventsFor(t.s.node(t.id).child) }

// Past returns t's ancestor set (tokens and events, by id).
func (t Token) Past() *bitset.Set { return t.s.node(t.id).past }

// PathCount returns t's path multiplicity.
func (t Token) PathCount() int { return t.s.node(t.id).pathcnt }

// BC returns t's branchial coordinate hypervector.
func (t Token) BC() hv.Vector { return t.s.node(t.id).bc }

// BCSet reports whether BC has been assigned yet.
func (t Token) BCSet() bool { return t.s.node(t.id).bcSet }

// Branch returns t's evolution-branch bitmask.
func (t Token) Branch() uint16 { return t.s.node(t.id).branch }

// Step returns the event's macro-step.
func (e Event) Step() int { return e.s.node(e.id).step }

// Rule returns the event's rule index.
func (e Event) Rule() int { return e.s.node(e.id).rule }

// Deleted reports whether e has been removed from the DAG.
func (e Event) Deleted() bool { return e.s.node(e.id).deleted }

// Parent returns the tokens consumed by e (the LHS match).
func (e Event) Parent() []Token { return e.s.tokensFor(e.s.node(e.id).parent) }

// Child returns the tokens produced by e (the RHS instantiation).
func (e Event) Child() []Token { return e.s.tokensFor(e.s.node(e.id).child) }

// Past returns e's ancestor set (tokens and events, by id).
func (e Event) Past() *bitset.Set { return e.s.node(e.id).past }

// PathCount returns e's path multiplicity.
func (e Event) PathCount() int { return e.s.node(e.id).pathcnt }

// BC returns e's branchial coordinate hypervector.
func (e Event) BC() hv.Vector { return e.s.node(e.id).bc }

// BCSet reports whether BC has been assigned yet.
func (e Event) BCSet() bool { return e.s.node(e.id).bcSet }

// Branch returns e's evolution-branch bitmask.
func (e Event) Branch() uint16 { return e.s.node(e.id).branch }

// node returns a read-locked snapshot copy of the node at id. Copying
// the (small) struct out from under the lock keeps accessor methods
// lock-free after the call, at the cost of copying the past bitset
// pointer (not its contents) and the edge/pat slice headers (not their
// backing arrays) — callers must treat Edge()/Pattern() as read-only.
func (s *Store) node(id ID) node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nodes[id]
}

func (s *Store) eventsFor(ids []ID) []Event {
	out := make([]Event, len(ids))
	for i, id := range ids {
		out[i] = Event{id: id, s: s}
	}
	return out
}

func (s *Store) tokensFor(ids []ID) []Token {
	out := make([]Token, len(ids))
	for i, id := range ids {
		out[i] = Token{id: id, s: s}
	}
	return out
}

// SetBranch ORs mask into id's evolution-branch bitmask; bits already
// set are kept. Exported for the
// scheduler and post-processor, the only callers that assign branches.
func (s *Store) SetBranch(id ID, mask uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes[id].branch |= mask
}

// SetBC assigns the branchial coordinate for id. Exported for post.
func (s *Store) SetBC(id ID, v hv.Vector) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes[id].bc = v
	s.nodes[id].bcSet = true
}

// SetPathCount assigns the path multiplicity for id. Exported for post.
func (s *Store) SetPathCount(id ID, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes[id].pathcnt = n
}

// SetLeafState flips the leaf flag for a token id. Exported for
// stateindex's SetLeaf/UnsetLeaf to keep the DAG and the index in sync.
func (s *Store) SetLeafState(id ID, leaf bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes[id].leaf = leaf
}

// SetEdge overwrites a token's concrete hyperedge in place. Exported
// for post.Dedup, which must rewrite a just-created token's fresh
// vertex ids to match a canonical sibling's before either is ever
// registered in the stateindex (vertex coining happens before
// registration, per spec.md §4.8's deferred-indexing rule).
func (s *Store) SetEdge(id ID, edge []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes[id].edge = append([]int(nil), edge...)
}

// Kind returns the kind of the record at id.
func (s *Store) Kind(id ID) Kind {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nodes[id].kind
}
