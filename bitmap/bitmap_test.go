package bitmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vectorframe/column/bitmap"
)

func TestGetBasic(t *testing.T) {
	// rows: 0 1 2 3 4 5 6 7, non-default at 2,4 (default elsewhere)
	b, err := bitmap.New(false, []uint32{2, 4}, 8)
	require.NoError(t, err)
	require.Equal(t, bitmap.DefaultIndex, b.Get(0))
	require.Equal(t, bitmap.DefaultIndex, b.Get(1))
	require.Equal(t, int32(0), b.Get(2))
	require.Equal(t, bitmap.DefaultIndex, b.Get(3))
	require.Equal(t, int32(1), b.Get(4))
	require.Equal(t, bitmap.DefaultIndex, b.Get(5))
}

func TestGetOutOfBounds(t *testing.T) {
	b, err := bitmap.New(false, nil, 4)
	require.NoError(t, err)
	require.Equal(t, bitmap.OutOfBoundsIndex, b.Get(-1))
	require.Equal(t, bitmap.OutOfBoundsIndex, b.Get(4))

	bm, err := bitmap.New(true, nil, 4)
	require.NoError(t, err)
	require.Equal(t, bitmap.DefaultIndex, bm.Get(-1))
	require.Equal(t, bitmap.DefaultIndex, bm.Get(10))
}

func TestGetAcrossBuckets(t *testing.T) {
	// exercise a bucket boundary at 64
	nonDefault := []uint32{0, 63, 64, 65, 127, 128}
	b, err := bitmap.New(false, nonDefault, 256)
	require.NoError(t, err)
	for i, idx := range nonDefault {
		require.Equal(t, int32(i), b.Get(int(idx)), "idx=%d", idx)
	}
	require.Equal(t, bitmap.DefaultIndex, b.Get(1))
	require.Equal(t, bitmap.DefaultIndex, b.Get(200))
	require.Equal(t, int32(len(nonDefault)), b.NonDefaultCount())
}

func TestNewRejectsUnsortedOrDuplicate(t *testing.T) {
	_, err := bitmap.New(false, []uint32{2, 1}, 8)
	require.ErrorIs(t, err, bitmap.ErrUnsorted)

	_, err = bitmap.New(false, []uint32{2, 2}, 8)
	require.ErrorIs(t, err, bitmap.ErrUnsorted)
}

func TestNewRejectsOutOfRange(t *testing.T) {
	_, err := bitmap.New(false, []uint32{8}, 8)
	require.ErrorIs(t, err, bitmap.ErrOutOfRange)
}

func TestCountNonDefault(t *testing.T) {
	b, err := bitmap.New(false, []uint32{1, 3, 5}, 8)
	require.NoError(t, err)
	require.Equal(t, 2, b.CountNonDefault([]int{0, 1, 2, 3}))
	require.Equal(t, 3, b.CountNonDefault([]int{1, 3, 5}))
}

// TestBitmapInvariant checks spec §8 invariant 2: Get(i) == DefaultIndex
// iff the corresponding value equals the default.
func TestBitmapInvariant(t *testing.T) {
	default_ := 0.0
	values := []float64{0, 0, 1, 0, 2, 0, 0, 0}
	var nonDefault []uint32
	for i, v := range values {
		if v != default_ {
			nonDefault = append(nonDefault, uint32(i))
		}
	}
	b, err := bitmap.New(false, nonDefault, len(values))
	require.NoError(t, err)
	for i, v := range values {
		isDefaultRow := b.Get(i) == bitmap.DefaultIndex
		require.Equal(t, v == default_, isDefaultRow, "row %d", i)
	}
}
