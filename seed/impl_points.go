package seed

import "fmt"

// Points returns n singleton (length-one) edges, one per fresh vertex:
// a "unary ring" seed per spec.md §3. n must be in [1, 10000].
func Points(n int, opts ...Option) (Result, error) {
	_ = newConfig(opts...)
	if n < 1 || n > 10000 {
		return Result{}, fmt.Errorf("seed: Points(%d): %w", n, ErrOutOfRange)
	}
	edges := make([]Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = Edge{i}
	}
	return Result{Edges: edges, Next: n}, nil
}
