package seed

import "fmt"

// Complete returns a complete graph on n vertices. With surface=false
// (n in [1,100]) every pair of vertices is connected. With surface=true
// (n in [5,1000]) the n vertices are placed on a unit Fibonacci sphere
// and an edge is added between i and j iff their great-circle distance
// is <= 1.1 times the reference spacing d(point(0), point(1)).
//
// When d > 1, every edge produced by either mode is subdivided into d
// sub-edges through d-1 freshly coined vertices, per spec.md §4.4.
func Complete(n, d int, surface bool, opts ...Option) (Result, error) {
	_ = newConfig(opts...)
	if surface {
		if n < 5 || n > 1000 {
			return Result{}, fmt.Errorf("seed: Complete(%d,surface): %w", n, ErrOutOfRange)
		}
	} else if n < 1 || n > 100 {
		return Result{}, fmt.Errorf("seed: Complete(%d): %w", n, ErrOutOfRange)
	}
	if d < 1 {
		return Result{}, fmt.Errorf("seed: Complete(d=%d): %w", d, ErrOutOfRange)
	}

	var pairs [][2]int
	if surface {
		pts := fibonacciSphere(n)
		ref := arcDistance(pts[0], pts[1])
		threshold := 1.1 * ref
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if arcDistance(pts[i], pts[j]) <= threshold {
					pairs = append(pairs, [2]int{i, j})
				}
			}
		}
	} else {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	next := n
	var edges []Edge
	for _, pr := range pairs {
		if d == 1 {
			edges = append(edges, Edge{pr[0], pr[1]})
			continue
		}
		prev := pr[0]
		for k := 1; k < d; k++ {
			mid := next
			next++
			edges = append(edges, Edge{prev, mid})
			prev = mid
		}
		edges = append(edges, Edge{prev, pr[1]})
	}
	return Result{Edges: edges, Next: next}, nil
}

// Sphere is Complete(n, 1, true): n points on a unit Fibonacci sphere
// connected at the surface's natural neighbor spacing. n in [5,1000].
func Sphere(n int, opts ...Option) (Result, error) {
	return Complete(n, 1, true, opts...)
}
