package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/mapping"
	"github.com/vectorframe/column/numeric"
)

func TestMappedFillAndChainedMap(t *testing.T) {
	backing := make([]float64, 20)
	for i := range backing {
		backing[i] = float64(i)
	}
	d, err := numeric.NewDense(core.TypeReal, backing)
	require.NoError(t, err)

	m1 := mapping.Mapping{19, 18, 17, 16, 15, 14, 13, 12, 11, 10} // ratio 0.5, view
	view, err := d.Map(m1, true)
	require.NoError(t, err)
	require.Equal(t, core.FormatMapped, view.Format())

	dst := make([]float64, 10)
	view.Fill(dst, 0, 0, 1)
	require.Equal(t, []float64{19, 18, 17, 16, 15, 14, 13, 12, 11, 10}, dst)

	// c.Map(m1).Map(m2) must read the same as c.Map(Merge(m2, m1)).
	m2 := mapping.Mapping{0, 2, 9}
	chained, err := view.Map(m2, false)
	require.NoError(t, err)
	chainedDst := make([]float64, 3)
	chained.Fill(chainedDst, 0, 0, 1)

	composed := mapping.Merge(m2, m1)
	direct, err := d.Map(composed, false)
	require.NoError(t, err)
	directDst := make([]float64, 3)
	direct.Fill(directDst, 0, 0, 1)

	require.Equal(t, directDst, chainedDst)
}

func TestMappedSort(t *testing.T) {
	backing := make([]float64, 20)
	for i := range backing {
		backing[i] = float64(20 - i)
	}
	d, err := numeric.NewDense(core.TypeReal, backing)
	require.NoError(t, err)
	m := mapping.Mapping{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	view, err := d.Map(m, true)
	require.NoError(t, err)
	require.Equal(t, core.FormatMapped, view.Format())

	perm, err := view.Sort(numeric.Ascending)
	require.NoError(t, err)
	require.Equal(t, []uint32{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, perm)
}
