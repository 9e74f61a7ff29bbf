package temporal_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/mapping"
	"github.com/vectorframe/column/temporal"
)

func TestNewTimeDenseRejectsOutOfRangeNanos(t *testing.T) {
	_, err := temporal.NewTimeDense(core.TypeTime, []int64{temporal.MaxNanosOfDay + 1})
	require.Error(t, err)

	_, err = temporal.NewTimeDense(core.TypeTime, []int64{-1})
	require.Error(t, err)

	d, err := temporal.NewTimeDense(core.TypeTime, []int64{0, temporal.MaxNanosOfDay, temporal.Missing})
	require.NoError(t, err)
	require.EqualValues(t, 3, d.Size())
}

func TestTimeDenseSortMissingLast(t *testing.T) {
	d, err := temporal.NewTimeDense(core.TypeTime, []int64{500, temporal.Missing, 100, 300})
	require.NoError(t, err)

	perm, err := d.Sort(temporal.Ascending)
	require.NoError(t, err)
	require.Equal(t, []uint32{2, 3, 0, 1}, perm)

	perm, err = d.Sort(temporal.Descending)
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 3, 2, 1}, perm)
}

func TestTimeSparseMapCollapsesToDense(t *testing.T) {
	s, err := temporal.NewTimeSparse(core.TypeTime, 10, 0, []uint32{1, 3, 5, 7, 9}, []int64{100, 200, 300, 400, 500})
	require.NoError(t, err)

	m := mapping.Mapping{1, 3, 5, 7, 9}
	mapped, err := s.Map(m, true)
	require.NoError(t, err)
	require.Equal(t, core.FormatDense, mapped.Format())

	dst := make([]int64, 5)
	mapped.Fill(dst, 0, 0, 1)
	require.Equal(t, []int64{100, 200, 300, 400, 500}, dst)
}

func TestTimeSparseSortSplicesDefaultBlockContiguously(t *testing.T) {
	s, err := temporal.NewTimeSparse(core.TypeTime, 6, 1000, []uint32{0, 5}, []int64{2000, 500})
	require.NoError(t, err)

	perm, err := s.Sort(temporal.Ascending)
	require.NoError(t, err)
	require.Equal(t, []uint32{5, 1, 2, 3, 4, 0}, perm)
}

func TestTimeMappedFillAndChainedMap(t *testing.T) {
	backing := make([]int64, 20)
	for i := range backing {
		backing[i] = int64(i) * 1_000_000
	}
	d, err := temporal.NewTimeDense(core.TypeTime, backing)
	require.NoError(t, err)

	m1 := mapping.Mapping{19, 18, 17, 16, 15, 14, 13, 12, 11, 10}
	view, err := d.Map(m1, true)
	require.NoError(t, err)
	require.Equal(t, core.FormatMapped, view.Format())

	m2 := mapping.Mapping{0, 2, 9}
	chained, err := view.Map(m2, false)
	require.NoError(t, err)
	chainedDst := make([]int64, 3)
	chained.Fill(chainedDst, 0, 0, 1)

	composed := mapping.Merge(m2, m1)
	direct, err := d.Map(composed, false)
	require.NoError(t, err)
	directDst := make([]int64, 3)
	direct.Fill(directDst, 0, 0, 1)

	require.Equal(t, directDst, chainedDst)
}
