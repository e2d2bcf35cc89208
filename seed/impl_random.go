package seed

import (
	"fmt"
	"sort"
)

// Random scatters n points uniformly in [-1,1]^dim, sorts every vertex
// pair by Euclidean distance, and greedily adds edges shortest-first,
// skipping any pair that would push either endpoint's degree above k.
// Ranges: n in [10,1000], dim in [1,20], k in [1,100].
func Random(n, dim, k int, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	if n < 10 || n > 1000 {
		return Result{}, fmt.Errorf("seed: Random(n=%d): %w", n, ErrOutOfRange)
	}
	if dim < 1 || dim > 20 {
		return Result{}, fmt.Errorf("seed: Random(dim=%d): %w", dim, ErrOutOfRange)
	}
	if k < 1 || k > 100 {
		return Result{}, fmt.Errorf("seed: Random(k=%d): %w", k, ErrOutOfRange)
	}

	pts := make([]point, n)
	for i := range pts {
		p := make(point, dim)
		for j := 0; j < dim; j++ {
			p[j] = uniformSigned(cfg)
		}
		pts[i] = p
	}

	type pair struct {
		i, j int
		d    float64
	}
	pairs := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, pair{i, j, euclidean(pts[i], pts[j])})
		}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].d < pairs[b].d })

	degree := make([]int, n)
	var edges []Edge
	for _, pr := range pairs {
		if degree[pr.i] >= k || degree[pr.j] >= k {
			continue
		}
		degree[pr.i]++
		degree[pr.j]++
		edges = append(edges, Edge{pr.i, pr.j})
	}
	return Result{Edges: edges, Next: n}, nil
}

// uniformSigned draws a uniform float64 in [-1,1] from a uint64 source.
func uniformSigned(cfg *Config) float64 {
	u := cfg.rand.Uint64()
	f := float64(u>>11) / float64(1<<53) // uniform in [0,1)
	return f*2 - 1
}
