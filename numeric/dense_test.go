package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/mapping"
	"github.com/vectorframe/column/numeric"
)

func TestDenseFillContiguous(t *testing.T) {
	d, err := numeric.NewDense(core.TypeReal, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	dst := make([]float64, 4)
	n := d.Fill(dst, 0, 0, 1)
	require.Equal(t, 4, n)
	require.Equal(t, []float64{1, 2, 3, 4}, dst)
}

func TestDenseFillStridedWithOffset(t *testing.T) {
	d, err := numeric.NewDense(core.TypeReal, []float64{1, 2, 3})
	require.NoError(t, err)
	dst := make([]float64, 6)
	n := d.Fill(dst, 1, 0, 2)
	require.Equal(t, 2, n)
	require.Equal(t, []float64{2, 0, 3, 0, 0, 0}, dst)
}

func TestDenseSortNaNLast(t *testing.T) {
	d, err := numeric.NewDense(core.TypeReal, []float64{3, math.NaN(), 1, 2})
	require.NoError(t, err)
	perm, err := d.Sort(numeric.Ascending)
	require.NoError(t, err)
	require.Equal(t, []uint32{2, 3, 0, 1}, perm)

	perm, err = d.Sort(numeric.Descending)
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 3, 2, 1}, perm)
}

func TestDenseMapBelowThresholdAlwaysMaterializes(t *testing.T) {
	backing := make([]float64, 1000)
	for i := range backing {
		backing[i] = float64(i)
	}
	d, err := numeric.NewDense(core.TypeReal, backing)
	require.NoError(t, err)

	m := mapping.Mapping{5, 6} // ratio 2/1000 << MappingThreshold
	got, err := d.Map(m, true)
	require.NoError(t, err)
	require.Equal(t, core.FormatDense, got.Format())
	dst := make([]float64, 2)
	got.Fill(dst, 0, 0, 1)
	require.Equal(t, []float64{5, 6}, dst)
}

func TestDenseMapAboveThresholdHonorsPreferView(t *testing.T) {
	backing := make([]float64, 10)
	for i := range backing {
		backing[i] = float64(i)
	}
	d, err := numeric.NewDense(core.TypeReal, backing)
	require.NoError(t, err)

	m := mapping.Mapping{9, 8, 7, 6} // ratio 0.4 >= MappingThreshold
	view, err := d.Map(m, true)
	require.NoError(t, err)
	require.Equal(t, core.FormatMapped, view.Format())

	copyCol, err := d.Map(m, false)
	require.NoError(t, err)
	require.Equal(t, core.FormatDense, copyCol.Format())
}

func TestDenseMapMissingFillsNaN(t *testing.T) {
	d, err := numeric.NewDense(core.TypeReal, []float64{10, 20})
	require.NoError(t, err)
	got, err := d.Map(mapping.Mapping{0, -1, 5}, false)
	require.NoError(t, err)
	dense := got.(*numeric.Dense)
	require.Equal(t, 10.0, dense.Values()[0])
	require.True(t, math.IsNaN(dense.Values()[1]))
	require.True(t, math.IsNaN(dense.Values()[2]))
}
