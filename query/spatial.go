package query

import (
	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/rng"
)

// Spatial answers BFS-style neighborhood queries over the projection of
// the current leaf hyperedges onto a plain graph: two vertices are
// adjacent whenever they co-occur in some live leaf edge, the standard
// Wolfram-model "spatial graph" construction.
type Spatial struct {
	adj map[int]map[int]struct{}
}

// NewSpatial builds the spatial graph from store's current leaf tokens.
func NewSpatial(store *dagstore.Store) *Spatial {
	g := &Spatial{adj: make(map[int]map[int]struct{})}
	for _, tok := range store.Leaves() {
		edge := tok.Edge()
		for i := 0; i < len(edge); i++ {
			g.ensure(edge[i])
			for j := 0; j < len(edge); j++ {
				if i == j {
					continue
				}
				g.adj[edge[i]][edge[j]] = struct{}{}
			}
		}
	}
	return g
}

func (g *Spatial) ensure(v int) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = make(map[int]struct{})
	}
}

func (g *Spatial) has(v int) bool {
	_, ok := g.adj[v]
	return ok
}

// Result mirrors bfs.BFSResult's Order/Depth/Parent shape, generalized
// to the engine's dense integer vertex ids.
type Result struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// BFS walks the spatial graph breadth-first from start.
func (g *Spatial) BFS(start int) (*Result, error) {
	if !g.has(start) {
		return nil, ErrVertexNotFound
	}
	res := &Result{Depth: map[int]int{start: 0}, Parent: map[int]int{}}
	queue := []int{start}
	res.Order = append(res.Order, start)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for n := range g.adj[cur] {
			if _, seen := res.Depth[n]; seen {
				continue
			}
			res.Depth[n] = res.Depth[cur] + 1
			res.Parent[n] = cur
			res.Order = append(res.Order, n)
			queue = append(queue, n)
		}
	}
	return res, nil
}

// NBall returns every vertex within radius hops of start (inclusive).
func (g *Spatial) NBall(start, radius int) ([]int, error) {
	res, err := g.BFS(start)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(res.Order))
	for v, d := range res.Depth {
		if d <= radius {
			out = append(out, v)
		}
	}
	return out, nil
}

// NSphere returns every vertex exactly radius hops from start.
func (g *Spatial) NSphere(start, radius int) ([]int, error) {
	res, err := g.BFS(start)
	if err != nil {
		return nil, err
	}
	var out []int
	for v, d := range res.Depth {
		if d == radius {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoSphere
	}
	return out, nil
}

// MinDistance returns the hop count of the shortest path between a and b.
func (g *Spatial) MinDistance(a, b int) (int, error) {
	res, err := g.BFS(a)
	if err != nil {
		return 0, err
	}
	d, ok := res.Depth[b]
	if !ok {
		return 0, ErrDisconnected
	}
	return d, nil
}

// Geodesic reconstructs a shortest path from a to b. With allShortest
// false it returns a single path (the BFS-tree reconstruction); with
// allShortest true it returns every shortest path, found by walking
// back from b through every predecessor one hop closer to a at each
// step rather than just the first BFS discovered.
func (g *Spatial) Geodesic(a, b int, allShortest bool) ([][]int, error) {
	res, err := g.BFS(a)
	if err != nil {
		return nil, err
	}
	if _, ok := res.Depth[b]; !ok {
		return nil, ErrDisconnected
	}

	if !allShortest {
		path := []int{b}
		for cur := b; cur != a; {
			prev, ok := res.Parent[cur]
			if !ok {
				break
			}
			path = append(path, prev)
			cur = prev
		}
		reverseIntSlice(path)
		return [][]int{path}, nil
	}

	predecessors := make(map[int][]int)
	for v, d := range res.Depth {
		if d == 0 {
			continue
		}
		for u := range g.adj[v] {
			if res.Depth[u] == d-1 {
				predecessors[v] = append(predecessors[v], u)
			}
		}
	}

	var paths [][]int
	var walk func(cur int, acc []int)
	walk = func(cur int, acc []int) {
		next := append(append([]int(nil), acc...), cur)
		if cur == a {
			reverseIntSlice(next)
			paths = append(paths, next)
			return
		}
		for _, p := range predecessors[cur] {
			walk(p, next)
		}
	}
	walk(b, nil)
	return paths, nil
}

func reverseIntSlice(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// RandomWalk takes steps random hops from start, driven by r.
func (g *Spatial) RandomWalk(start, steps int, r rng.Source) ([]int, error) {
	if !g.has(start) {
		return nil, ErrVertexNotFound
	}
	path := make([]int, 0, steps+1)
	path = append(path, start)
	cur := start
	for i := 0; i < steps; i++ {
		neighbors := neighborSlice(g.adj[cur])
		if len(neighbors) == 0 {
			break
		}
		idx := int(r.Uint64() % uint64(len(neighbors)))
		cur = neighbors[idx]
		path = append(path, cur)
	}
	return path, nil
}

func neighborSlice(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for v := range m {
		out = append(out, v)
	}
	return out
}
