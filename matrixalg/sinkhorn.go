package matrixalg

import (
	"errors"
	"math"
)

// ErrShapeMismatch indicates cost's shape disagrees with the supplied
// marginals.
var ErrShapeMismatch = errors.New("matrixalg: cost/marginal shape mismatch")

// SinkhornLambda is the entropic-regularization strength query.OllivierRicci
// uses, matching the Ollivier-Ricci literature's typical choice.
const SinkhornLambda = 10.0

// SinkhornEpsilon is the convergence tolerance on the row/column
// marginal residual.
const SinkhornEpsilon = 1e-8

// SinkhornMaxIters bounds the scaling-loop iteration count so a
// pathological cost matrix cannot hang a query.
const SinkhornMaxIters = 1000

// Sinkhorn solves the entropy-regularized optimal transport problem
// between discrete distributions mu (length r) and nu (length c) under
// cost, returning the transport plan and its total cost. Implements the
// Sinkhorn-Knopp fixed-point iteration: alternately rescale row and
// column scaling vectors against the Gibbs kernel exp(-lambda*cost)
// until both marginals are within epsilon, or the iteration budget is
// spent.
func Sinkhorn(cost *Dense, mu, nu []float64, lambda float64) (*Dense, float64, error) {
	if cost.Rows() != len(mu) || cost.Cols() != len(nu) {
		return nil, 0, ErrShapeMismatch
	}
	r, c := cost.Rows(), cost.Cols()

	k, err := NewDense(r, c)
	if err != nil {
		return nil, 0, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			cij, _ := cost.At(i, j)
			k.Set(i, j, math.Exp(-lambda*cij))
		}
	}

	u := make([]float64, r)
	v := make([]float64, c)
	for i := range u {
		u[i] = 1
	}
	for j := range v {
		v[j] = 1
	}

	for iter := 0; iter < SinkhornMaxIters; iter++ {
		for i := 0; i < r; i++ {
			var s float64
			for j := 0; j < c; j++ {
				kij, _ := k.At(i, j)
				s += kij * v[j]
			}
			if s <= 0 {
				s = 1e-300
			}
			u[i] = mu[i] / s
		}
		for j := 0; j < c; j++ {
			var s float64
			for i := 0; i < r; i++ {
				kij, _ := k.At(i, j)
				s += kij * u[i]
			}
			if s <= 0 {
				s = 1e-300
			}
			v[j] = nu[j] / s
		}

		if residual(k, u, v, mu, nu) < SinkhornEpsilon {
			break
		}
	}

	plan, err := NewDense(r, c)
	if err != nil {
		return nil, 0, err
	}
	var totalCost float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			kij, _ := k.At(i, j)
			p := u[i] * kij * v[j]
			plan.Set(i, j, p)
			cij, _ := cost.At(i, j)
			totalCost += p * cij
		}
	}
	return plan, totalCost, nil
}

// residual reports the max absolute deviation of the current plan's row
// marginal from mu, the convergence signal the scaling loop checks.
func residual(k *Dense, u, v, mu, nu []float64) float64 {
	r, c := k.Rows(), k.Cols()
	var maxDev float64
	for i := 0; i < r; i++ {
		var s float64
		for j := 0; j < c; j++ {
			kij, _ := k.At(i, j)
			s += u[i] * kij * v[j]
		}
		if d := math.Abs(s - mu[i]); d > maxDev {
			maxDev = d
		}
	}
	return maxDev
}
