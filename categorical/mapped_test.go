package categorical_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vectorframe/column/categorical"
	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/dictionary"
	"github.com/vectorframe/column/mapping"
)

func newTestDict(t *testing.T) dictionary.Interface {
	t.Helper()
	d, err := dictionary.New([]any{nil, "red", "green", "blue"})
	require.NoError(t, err)
	return d
}

func TestMappedFillAndChainedMap(t *testing.T) {
	dict := newTestDict(t)
	indices := make([]int32, 20)
	for i := range indices {
		indices[i] = int32(i%3) + 1
	}
	d, err := categorical.NewDense(core.TypeNominal, indices, dict, categorical.U8)
	require.NoError(t, err)

	m1 := mapping.Mapping{19, 18, 17, 16, 15, 14, 13, 12, 11, 10}
	view, err := d.Map(m1, true)
	require.NoError(t, err)
	require.Equal(t, core.FormatMapped, view.Format())

	dst := make([]int32, 10)
	view.FillIndex(dst, 0, 0, 1)
	want := make([]int32, 10)
	for i, r := range m1 {
		want[i] = indices[r]
	}
	require.Equal(t, want, dst)

	m2 := mapping.Mapping{0, 2, 9}
	chained, err := view.Map(m2, false)
	require.NoError(t, err)
	chainedDst := make([]int32, 3)
	chained.FillIndex(chainedDst, 0, 0, 1)

	composed := mapping.Merge(m2, m1)
	direct, err := d.Map(composed, false)
	require.NoError(t, err)
	directDst := make([]int32, 3)
	direct.FillIndex(directDst, 0, 0, 1)

	require.Equal(t, directDst, chainedDst)
}

func TestMappedFillObjectDereferencesDictionary(t *testing.T) {
	dict := newTestDict(t)
	indices := []int32{1, 2, 3, 0}
	d, err := categorical.NewDense(core.TypeNominal, indices, dict, categorical.U8)
	require.NoError(t, err)

	m := mapping.Mapping{3, 2, 1, 0}
	view, err := d.Map(m, true)
	require.NoError(t, err)

	dst := make([]any, 4)
	view.FillObject(dst, 0, 0, 1)
	require.Equal(t, []any{nil, "blue", "green", "red"}, dst)
}

func TestMappedRemapPromotesToRemappedMapped(t *testing.T) {
	dict := newTestDict(t)
	indices := []int32{1, 2, 3, 0}
	d, err := categorical.NewDense(core.TypeNominal, indices, dict, categorical.U8)
	require.NoError(t, err)

	m := mapping.Mapping{0, 1, 2, 3}
	view, err := d.Map(m, true)
	require.NoError(t, err)

	newDict, err := dictionary.New([]any{nil, "RED", "GREEN", "BLUE"})
	require.NoError(t, err)
	remapped, err := view.Remap(newDict, []int32{0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, core.FormatRemappedMapped, remapped.Format())

	dst := make([]any, 4)
	remapped.FillObject(dst, 0, 0, 1)
	require.Equal(t, []any{"RED", "GREEN", "BLUE", nil}, dst)
}
