package seed

import "fmt"

// Line returns n vertices connected by n-1 directed edges (i, i+1), a
// path seed. n must be in [1, 10000]. Line(4) (spec.md §8 scenario S4)
// produces exactly 3 edges over 4 vertices.
func Line(n int, opts ...Option) (Result, error) {
	_ = newConfig(opts...)
	if n < 1 || n > 10000 {
		return Result{}, fmt.Errorf("seed: Line(%d): %w", n, ErrOutOfRange)
	}
	edges := make([]Edge, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, Edge{i, i + 1})
	}
	return Result{Edges: edges, Next: n}, nil
}
