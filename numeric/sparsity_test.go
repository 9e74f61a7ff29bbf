package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/numeric"
)

func TestDecideSparsityShortColumnAlwaysDense(t *testing.T) {
	data := make([]float64, 10)
	got := numeric.DecideSparsity(data)
	require.False(t, got.Sparse)
}

func TestDecideSparsityRecommendsSparseForRepetitiveData(t *testing.T) {
	data := make([]float64, 4000)
	for i := range data {
		if i%10 == 0 {
			data[i] = float64(i)
		}
		// else left at zero, the overwhelmingly frequent value
	}
	got := numeric.DecideSparsity(data, numeric.WithSeed(42))
	require.True(t, got.Sparse)
	require.Equal(t, 0.0, got.Default)
}

func TestDecideSparsityRejectsUniformlyDistributedData(t *testing.T) {
	data := make([]float64, 4000)
	for i := range data {
		data[i] = float64(i) // every value distinct: no dominant mode
	}
	got := numeric.DecideSparsity(data, numeric.WithSeed(42))
	require.False(t, got.Sparse)
}

func TestNewColumnDispatchesByHeuristic(t *testing.T) {
	data := make([]float64, 4000)
	for i := range data {
		if i%20 == 0 {
			data[i] = float64(i)
		}
	}
	col, err := numeric.NewColumn(core.TypeReal, data, numeric.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, core.FormatSparse, col.Format())
	require.Equal(t, uint32(len(data)), col.Size())
}

func TestNewColumnIsReproducibleWithSameSeed(t *testing.T) {
	data := make([]float64, 4000)
	for i := range data {
		if i%7 == 0 {
			data[i] = float64(i) + 0.5
		}
	}
	a := numeric.DecideSparsity(data, numeric.WithSeed(99))
	b := numeric.DecideSparsity(data, numeric.WithSeed(99))
	require.Equal(t, a, b)
}
