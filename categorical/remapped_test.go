package categorical_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vectorframe/column/categorical"
	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/dictionary"
	"github.com/vectorframe/column/mapping"
)

func TestRemappedDenseFillObjectUsesNewDictionary(t *testing.T) {
	dict := newTestDict(t)
	indices := []int32{1, 2, 3, 0}
	d, err := categorical.NewDense(core.TypeNominal, indices, dict, categorical.U8)
	require.NoError(t, err)

	newDict, err := dictionary.New([]any{nil, "ROUGE", "VERT", "BLEU"})
	require.NoError(t, err)
	remapped, err := d.Remap(newDict, []int32{0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, core.FormatRemapped, remapped.Format())

	dst := make([]any, 4)
	remapped.FillObject(dst, 0, 0, 1)
	require.Equal(t, []any{"ROUGE", "VERT", "BLEU", nil}, dst)
}

func TestRemappedComposesInsteadOfNesting(t *testing.T) {
	dict := newTestDict(t)
	indices := []int32{1, 2, 3, 0}
	d, err := categorical.NewDense(core.TypeNominal, indices, dict, categorical.U8)
	require.NoError(t, err)

	mid, err := dictionary.New([]any{nil, "a", "b", "c"})
	require.NoError(t, err)
	step1, err := d.Remap(mid, []int32{0, 1, 2, 3})
	require.NoError(t, err)

	final, err := dictionary.New([]any{nil, "A", "B", "C"})
	require.NoError(t, err)
	step2, err := step1.Remap(final, []int32{0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, core.FormatRemapped, step2.Format())

	dst := make([]any, 4)
	step2.FillObject(dst, 0, 0, 1)
	require.Equal(t, []any{"A", "B", "C", nil}, dst)
}

func TestRemappedSparseMapMaterializesDense(t *testing.T) {
	dict := newTestDict(t)
	rows := []uint32{1, 3}
	vals := []int32{2, 3}
	s, err := categorical.NewSparse(core.TypeNominal, 5, 0, rows, vals, dict, categorical.U8)
	require.NoError(t, err)

	newDict, err := dictionary.New([]any{nil, "ROUGE", "VERT", "BLEU"})
	require.NoError(t, err)
	remapped, err := s.Remap(newDict, []int32{0, 1, 2, 3})
	require.NoError(t, err)

	m := mapping.Mapping{0, 1, 2, 3, 4}
	mapped, err := remapped.Map(m, true)
	require.NoError(t, err)
	require.Equal(t, core.FormatDense, mapped.Format())

	dst := make([]any, 5)
	mapped.FillObject(dst, 0, 0, 1)
	require.Equal(t, []any{nil, "VERT", nil, "BLEU", nil}, dst)
}

func TestRemappedSort(t *testing.T) {
	dict := newTestDict(t)
	indices := []int32{3, 1, 2, 0}
	d, err := categorical.NewDense(core.TypeNominal, indices, dict, categorical.U8)
	require.NoError(t, err)

	same, err := dictionary.New([]any{nil, "red", "green", "blue"})
	require.NoError(t, err)
	remapped, err := d.Remap(same, []int32{0, 1, 2, 3})
	require.NoError(t, err)

	perm, err := remapped.Sort(categorical.Ascending)
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 2, 1, 3}, perm)
}
