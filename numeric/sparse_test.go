package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/mapping"
	"github.com/vectorframe/column/numeric"
)

func newTestSparse(t *testing.T) *numeric.Sparse {
	t.Helper()
	s, err := numeric.NewSparse(core.TypeReal, 6, 0, []uint32{1, 4}, []float64{10, 40})
	require.NoError(t, err)
	return s
}

func TestSparseFillUsesDefaultElsewhere(t *testing.T) {
	s := newTestSparse(t)
	dst := make([]float64, 6)
	n := s.Fill(dst, 0, 0, 1)
	require.Equal(t, 6, n)
	require.Equal(t, []float64{0, 10, 0, 0, 40, 0}, dst)
}

func TestSparseRejectsMismatchedLengths(t *testing.T) {
	_, err := numeric.NewSparse(core.TypeReal, 6, 0, []uint32{1, 4}, []float64{10})
	require.Error(t, err)
}

// TestSparseMapCollapsesToDense is scenario S1: mapping a sparse column so
// that survivors exceed MaxDensityDoubleSparse materializes a Dense result
// instead of producing a sparser-than-warranted SparseNumeric.
func TestSparseMapCollapsesToDense(t *testing.T) {
	s := newTestSparse(t)
	// Select only the two non-default rows plus one default row: survivor
	// density = 2/3 > MaxDensityDoubleSparse (0.5).
	m := mapping.Mapping{1, 4, 0}
	got, err := s.Map(m, false)
	require.NoError(t, err)
	require.Equal(t, core.FormatDense, got.Format())
	dst := make([]float64, 3)
	got.Fill(dst, 0, 0, 1)
	require.Equal(t, []float64{10, 40, 0}, dst)
}

func TestSparseMapStaysSparseBelowThreshold(t *testing.T) {
	s, err := numeric.NewSparse(core.TypeReal, 100, 0, []uint32{1}, []float64{99})
	require.NoError(t, err)
	m := mapping.Mapping{1, 2, 3, 4} // survivor density 1/4 <= 0.5
	got, err := s.Map(m, false)
	require.NoError(t, err)
	require.Equal(t, core.FormatSparse, got.Format())
}

func TestSparseMapOutOfBoundsIsNaN(t *testing.T) {
	s := newTestSparse(t)
	got, err := s.Map(mapping.Mapping{99}, false)
	require.NoError(t, err)
	dst := make([]float64, 1)
	got.Fill(dst, 0, 0, 1)
	require.True(t, math.IsNaN(dst[0]))
}

func TestSparseSortSplicesDefaultBlockContiguously(t *testing.T) {
	// rows: 0:default(0) 1:10 2:default(0) 3:default(0) 4:40 5:default(0)
	s := newTestSparse(t)
	perm, err := s.Sort(numeric.Ascending)
	require.NoError(t, err)
	require.Len(t, perm, 6)

	// Reconstruct values in permuted order and assert non-decreasing.
	values := map[uint32]float64{1: 10, 4: 40}
	last := math.Inf(-1)
	defaultRows := map[uint32]bool{0: true, 2: true, 3: true, 5: true}
	seenDefaults := 0
	firstDefaultPos, lastDefaultPos := -1, -1
	for i, row := range perm {
		v, ok := values[row]
		if !ok {
			v = 0
			seenDefaults++
			if firstDefaultPos == -1 {
				firstDefaultPos = i
			}
			lastDefaultPos = i
		}
		require.GreaterOrEqual(t, v, last)
		last = v
		_ = defaultRows
	}
	require.Equal(t, 4, seenDefaults)
	require.Equal(t, lastDefaultPos-firstDefaultPos+1, seenDefaults, "default rows must be contiguous")
}
