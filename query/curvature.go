package query

import (
	"math"

	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/hv"
	"github.com/katalvlaran/hyperrewrite/matrixalg"
)

// OllivierRicci computes the Ollivier-Ricci curvature of the spatial
// graph's edge (a, b) at radius r: builds the n-sphere of radius r
// around each endpoint, fills the transport cost matrix with the
// Hamming distance between the branchial coordinates of the two
// spheres' vertices (each vertex takes the `bc` of the first leaf token
// that mentions it, see vertexBC), and solves the Wasserstein-1
// optimal-transport problem via Sinkhorn-Knopp, returning
// `1 - W1/d(a,b)` per spec.md §6. A radius with no vertices at that
// distance from either endpoint is a degenerate n-sphere and reports
// curvature 0 rather than an error, as does a non-finite result.
func OllivierRicci(store *dagstore.Store, a, b, r int) (float64, error) {
	g := NewSpatial(store)
	if !g.has(a) || !g.has(b) {
		return 0, ErrVertexNotFound
	}

	na, err := g.NSphere(a, r)
	if err != nil {
		return 0, nil
	}
	nb, err := g.NSphere(b, r)
	if err != nil {
		return 0, nil
	}

	bc := vertexBC(store)

	cost, err := matrixalg.NewDense(len(na), len(nb))
	if err != nil {
		return 0, err
	}
	for i, x := range na {
		for j, y := range nb {
			cost.Set(i, j, float64(hv.Dist(bc[x], bc[y])))
		}
	}

	mu := uniform(len(na))
	nu := uniform(len(nb))

	_, w1, err := matrixalg.Sinkhorn(cost, mu, nu, matrixalg.SinkhornLambda)
	if err != nil {
		return 0, err
	}

	dab, err := g.MinDistance(a, b)
	if err != nil || dab == 0 {
		return 0, ErrDisconnected
	}
	curv := 1 - w1/float64(dab)
	if math.IsNaN(curv) || math.IsInf(curv, 0) {
		return 0, nil
	}
	return curv, nil
}

// vertexBC maps every spatial-graph vertex to a representative
// branchial coordinate: the `bc` of the first live leaf token (in id
// order) whose edge mentions that vertex. A vertex can appear in many
// leaf edges at once; picking the earliest keeps the mapping
// deterministic without averaging hypervectors across them.
func vertexBC(store *dagstore.Store) map[int]hv.Vector {
	out := make(map[int]hv.Vector)
	for _, tok := range store.Leaves() {
		v := tok.BC()
		for _, vertex := range tok.Edge() {
			if _, ok := out[vertex]; !ok {
				out[vertex] = v
			}
		}
	}
	return out
}

func uniform(n int) []float64 {
	out := make([]float64, n)
	p := 1.0 / float64(n)
	for i := range out {
		out[i] = p
	}
	return out
}
