package matrixalg_test

import (
	"testing"

	"github.com/katalvlaran/hyperrewrite/matrixalg"
	"github.com/stretchr/testify/require"
)

func TestSinkhornIdenticalDistributionsZeroCost(t *testing.T) {
	cost, err := matrixalg.NewDense(2, 2)
	require.NoError(t, err)
	cost.Set(0, 0, 0)
	cost.Set(0, 1, 1)
	cost.Set(1, 0, 1)
	cost.Set(1, 1, 0)

	mu := []float64{0.5, 0.5}
	nu := []float64{0.5, 0.5}

	plan, totalCost, err := matrixalg.Sinkhorn(cost, mu, nu, matrixalg.SinkhornLambda)
	require.NoError(t, err)
	require.NotNil(t, plan)
	require.InDelta(t, 0, totalCost, 0.05)
}

func TestSinkhornShapeMismatch(t *testing.T) {
	cost, err := matrixalg.NewDense(2, 3)
	require.NoError(t, err)
	_, _, err = matrixalg.Sinkhorn(cost, []float64{1, 0}, []float64{1, 0}, matrixalg.SinkhornLambda)
	require.ErrorIs(t, err, matrixalg.ErrShapeMismatch)
}

func TestDenseAtSetRoundTrip(t *testing.T) {
	m, err := matrixalg.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 1, 3.5))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 3.5, v)

	_, err = m.At(5, 0)
	require.ErrorIs(t, err, matrixalg.ErrIndexOutOfBounds)
}
