package seed

import "fmt"

// Grid returns the product lattice of the given per-axis sizes,
// connecting every pair of lattice points whose Euclidean distance is
// < 1.01 (i.e. every pair of axis-adjacent neighbors) with an edge
// whose orientation is chosen uniformly at random. The total vertex
// count (the product of dims) must be in [1, 10000].
//
// Enumerating axis-adjacent neighbors directly rather than testing
// every O(N^2) pair is an implementation shortcut, not a semantic
// change: on an integer lattice the only pairs within distance 1.01 of
// each other are exactly the axis-adjacent ones.
func Grid(dims []int, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	if len(dims) == 0 {
		return Result{}, fmt.Errorf("seed: Grid(): %w", ErrInvalidDims)
	}
	total := 1
	for _, d := range dims {
		if d <= 0 {
			return Result{}, fmt.Errorf("seed: Grid(%v): %w", dims, ErrInvalidDims)
		}
		total *= d
	}
	if total < 1 || total > 10000 {
		return Result{}, fmt.Errorf("seed: Grid(%v): total vertices %d: %w", dims, total, ErrOutOfRange)
	}

	strides := make([]int, len(dims))
	strides[len(dims)-1] = 1
	for i := len(dims) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * dims[i+1]
	}

	coordsOf := func(id int) []int {
		c := make([]int, len(dims))
		for i, s := range strides {
			c[i] = (id / s) % dims[i]
		}
		return c
	}
	idOf := func(c []int) int {
		id := 0
		for i, v := range c {
			id += v * strides[i]
		}
		return id
	}

	var edges []Edge
	for id := 0; id < total; id++ {
		c := coordsOf(id)
		for axis, size := range dims {
			if c[axis]+1 >= size {
				continue
			}
			nc := append([]int(nil), c...)
			nc[axis]++
			nid := idOf(nc)
			if cfg.rand.Uint64()%2 == 0 {
				edges = append(edges, Edge{id, nid})
			} else {
				edges = append(edges, Edge{nid, id})
			}
		}
	}
	return Result{Edges: edges, Next: total}, nil
}
