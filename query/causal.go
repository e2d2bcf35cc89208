package query

import "github.com/katalvlaran/hyperrewrite/dagstore"

// Causal answers questions about the causal structure of store's DAG:
// constant-time hypersurfaces, light cones, and worldlines.
type Causal struct {
	store *dagstore.Store
}

// NewCausal wraps store for causal queries.
func NewCausal(store *dagstore.Store) *Causal {
	return &Causal{store: store}
}

// Hypersurface returns a maximal antichain of the current leaf
// frontier: tokens kept pairwise spacelike-separated, dropping any
// leaf that would introduce a branchlike pair with an already-kept
// member, greedily in id order. This is the constant-time slice a
// foliation of the multiway graph would cut through.
func (c *Causal) Hypersurface() []dagstore.Token {
	leaves := c.store.Leaves()
	var kept []dagstore.Token
	for _, tok := range leaves {
		ok := true
		for _, k := range kept {
			if c.store.Separation(tok, k) != dagstore.SepSpacelike {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, tok)
		}
	}
	return kept
}

// LightCone returns every record causally connected to id: its past
// cone (ancestors) when future is false, or its future cone
// (descendants, found by forward BFS over Child()) when future is true.
func (c *Causal) LightCone(id dagstore.ID, future bool) []dagstore.ID {
	if !future {
		past := c.pastOf(id)
		if past == nil {
			return nil
		}
		var out []dagstore.ID
		past.ForEach(func(i int) bool {
			out = append(out, dagstore.ID(i))
			return true
		})
		return out
	}
	return c.forwardCone(id)
}

func (c *Causal) pastOf(id dagstore.ID) interface {
	ForEach(func(int) bool)
} {
	switch c.store.Kind(id) {
	case dagstore.KindToken:
		tok, err := c.store.TokenByID(id)
		if err != nil {
			return nil
		}
		return tok.Past()
	case dagstore.KindEvent:
		ev, err := c.store.EventByID(id)
		if err != nil {
			return nil
		}
		return ev.Past()
	}
	return nil
}

func (c *Causal) forwardCone(id dagstore.ID) []dagstore.ID {
	seen := map[dagstore.ID]struct{}{id: {}}
	queue := []dagstore.ID{id}
	var out []dagstore.ID
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range c.childrenOf(cur) {
			if _, ok := seen[child]; ok {
				continue
			}
			seen[child] = struct{}{}
			out = append(out, child)
			queue = append(queue, child)
		}
	}
	return out
}

func (c *Causal) childrenOf(id dagstore.ID) []dagstore.ID {
	switch c.store.Kind(id) {
	case dagstore.KindToken:
		tok, err := c.store.TokenByID(id)
		if err != nil {
			return nil
		}
		out := make([]dagstore.ID, 0)
		for _, ev := range tok.Child() {
			out = append(out, ev.ID())
		}
		return out
	case dagstore.KindEvent:
		ev, err := c.store.EventByID(id)
		if err != nil {
			return nil
		}
		out := make([]dagstore.ID, 0)
		for _, tok := range ev.Child() {
			out = append(out, tok.ID())
		}
		return out
	}
	return nil
}

// Worldline follows id's descent forward, always taking its first child
// record, up to maxSteps hops -- a single causal thread through the
// multiway graph rather than its full future cone.
func (c *Causal) Worldline(id dagstore.ID, maxSteps int) []dagstore.ID {
	out := []dagstore.ID{id}
	cur := id
	for i := 0; i < maxSteps; i++ {
		children := c.childrenOf(cur)
		if len(children) == 0 {
			break
		}
		cur = children[0]
		out = append(out, cur)
	}
	return out
}
