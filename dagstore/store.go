package dagstore

import (
	"sync"

	"github.com/katalvlaran/hyperrewrite/bitset"
)

// Store owns every token and event record produced by a single engine
// run. Unlike core.Graph's two-lock split (muVert/muEdgeAdj), Store uses
// one RWMutex: every mutation here is either "append one new record" or
// "read the current frontier", never two independently-contended
// sub-resources, so a single lock keeps the implementation honest
// without giving up real concurrency on the read side.
type Store struct {
	mu    sync.RWMutex
	nodes []node
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Token is a handle to a token record. The zero value is not valid; use
// Store.AddToken or a lookup method to obtain one.
type Token struct {
	id ID
	s  *Store
}

// Event is a handle to an event record.
type Event struct {
	id ID
	s  *Store
}

// ID returns the token's identifier.
func (t Token) ID() ID { return t.id }

// ID returns the event's identifier.
func (e Event) ID() ID { return e.id }

// AddToken appends a new token for the given concrete edge and pattern
// template, produced by the given parent events (empty for seed
// tokens). past is set to {t} ∪ ⋃ e∈parents (e.past ∪ {e}) per spec.md §3.
func (s *Store) AddToken(edge, pat []int, parents ...Event) (Token, error) {
	if len(edge) == 0 {
		return Token{}, ErrEmptyEdge
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID()
	past := bitset.New()
	past.Add(int(id))
	parentIDs := make([]ID, len(parents))
	for i, p := range parents {
		parentIDs[i] = p.id
		pn := &s.nodes[p.id]
		past.Union(pn.past)
		past.Add(int(p.id))
		pn.child = append(pn.child, id)
	}

	s.nodes = append(s.nodes, node{
		id:      id,
		kind:    KindToken,
		edge:    append([]int(nil), edge...),
		pat:     append([]int(nil), pat...),
		leaf:    true,
		parent:  parentIDs,
		past:    past,
		pathcnt: tokenPathCount(s, parentIDs),
	})
	return Token{id: id, s: s}, nil
}

// AddEvent appends a new event consuming the given parent tokens
// (the LHS match). past is set to {e} ∪ ⋃ t∈parents (t.past ∪ {t}).
func (s *Store) AddEvent(rule, step int, parents ...Token) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID()
	past := bitset.New()
	past.Add(int(id))
	parentIDs := make([]ID, len(parents))
	for i, p := range parents {
		parentIDs[i] = p.id
		pn := &s.nodes[p.id]
		past.Union(pn.past)
		past.Add(int(p.id))
		pn.child = append(pn.child, id)
		pn.leaf = false
	}

	s.nodes = append(s.nodes, node{
		id:     id,
		kind:   KindEvent,
		rule:   rule,
		step:   step,
		parent: parentIDs,
		past:   past,
	})
	return Event{id: id, s: s}, nil
}

func (s *Store) nextID() ID {
	return ID(len(s.nodes))
}

// tokenPathCount implements the token half of spec.md §4.8's path-count
// definition: the sum of parent events' pathcnts, or 1 with none.
// Called while s.mu is already held for writing.
func tokenPathCount(s *Store, parents []ID) int {
	if len(parents) == 0 {
		return 1
	}
	sum := 0
	for _, p := range parents {
		sum += s.nodes[p].pathcnt
	}
	return sum
}

// Len returns the total number of records (tokens and events) ever
// created, including deleted ones; ids are dense in [0, Len()).
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}
