package dagstore

import "github.com/katalvlaran/hyperrewrite/bitset"

// DeleteEvent removes ev from the DAG, cascading per spec.md §3's
// lifecycle rule: children orphaned by the removal (no remaining parent
// event) are removed in turn; surviving children have their past-cones
// recomputed against their updated parent set.
//
// DeleteEvent does not touch the multiway state index; callers that
// delete a leaf-adjacent token as part of the cascade are responsible
// for calling stateindex.UnsetLeaf first if the token was a leaf.
func (s *Store) DeleteEvent(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if int(ev.id) < 0 || int(ev.id) >= len(s.nodes) || s.nodes[ev.id].kind != KindEvent {
		return ErrNotFound
	}
	s.cascadeDeleteEvent(ev.id)
	return nil
}

// DeleteToken removes t from the DAG, cascading to any event that
// consumed t as part of its LHS match (that event's application is no
// longer backed by a live match) and, transitively, to that event's own
// children.
func (s *Store) DeleteToken(t Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if int(t.id) < 0 || int(t.id) >= len(s.nodes) || s.nodes[t.id].kind != KindToken {
		return ErrNotFound
	}
	s.cascadeDeleteToken(t.id)
	return nil
}

func (s *Store) cascadeDeleteEvent(id ID) {
	n := &s.nodes[id]
	if n.deleted {
		return
	}
	n.deleted = true

	for _, pid := range n.parent {
		removeID(&s.nodes[pid].child, id)
	}

	affected := n.child
	n.child = nil
	for _, cid := range affected {
		cn := &s.nodes[cid]
		removeID(&cn.parent, id)
		if len(cn.parent) == 0 {
			s.cascadeDeleteToken(cid)
		} else {
			s.recomputePastLocked(cid)
		}
	}
}

func (s *Store) cascadeDeleteToken(id ID) {
	n := &s.nodes[id]
	if n.deleted {
		return
	}
	n.deleted = true
	n.leaf = false

	for _, pid := range n.parent {
		removeID(&s.nodes[pid].child, id)
	}

	affected := n.child
	n.child = nil
	for _, eid := range affected {
		s.cascadeDeleteEvent(eid)
	}
}

func (s *Store) recomputePastLocked(id ID) {
	n := &s.nodes[id]
	p := bitset.New()
	p.Add(int(id))
	for _, pid := range n.parent {
		p.Union(s.nodes[pid].past)
		p.Add(int(pid))
	}
	n.past = p
}

// Merge redirects t2's children and parents to t1 (after ordering the
// pair so the lower id survives), unions their past-cones minus the
// removed token, then deletes the removed token. Satisfies property
// "merge preserves past": the survivor's past ⊇ (old t1.past ∪ old
// t2.past) − {removed}.
func (s *Store) Merge(t1, t2 Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if int(t1.id) < 0 || int(t1.id) >= len(s.nodes) || s.nodes[t1.id].kind != KindToken {
		return ErrNotFound
	}
	if int(t2.id) < 0 || int(t2.id) >= len(s.nodes) || s.nodes[t2.id].kind != KindToken {
		return ErrNotFound
	}
	if t1.id == t2.id {
		return nil
	}

	lo, hi := t1.id, t2.id
	if hi < lo {
		lo, hi = hi, lo
	}
	loN, hiN := &s.nodes[lo], &s.nodes[hi]

	for _, eid := range hiN.parent {
		replaceIDDedup(&s.nodes[eid].child, hi, lo)
	}
	for _, eid := range hiN.child {
		replaceIDDedup(&s.nodes[eid].parent, hi, lo)
	}
	loN.parent = dedupIDs(append(loN.parent, hiN.parent...))
	loN.child = dedupIDs(append(loN.child, hiN.child...))

	loN.past.Union(hiN.past)
	loN.past.Remove(int(hi))

	hiN.parent = nil
	hiN.child = nil
	s.cascadeDeleteToken(hi)

	return nil
}

func removeID(list *[]ID, id ID) {
	for i, v := range *list {
		if v == id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return
		}
	}
}

func replaceIDDedup(list *[]ID, old, new ID) {
	found := false
	for i, v := range *list {
		if v == old {
			(*list)[i] = new
			found = true
		}
	}
	if found {
		*list = dedupIDs(*list)
	}
}

func dedupIDs(ids []ID) []ID {
	seen := make(map[ID]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
