package object_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/mapping"
	"github.com/vectorframe/column/object"
)

func registerStringType(t *testing.T) core.Type {
	t.Helper()
	return core.RegisterObjectType("test-string", func(a, b any) int {
		return strings.Compare(a.(string), b.(string))
	})
}

func TestDenseFillAndMap(t *testing.T) {
	typ := registerStringType(t)
	d, err := object.NewDense(typ, []any{"a", "b", "c", nil})
	require.NoError(t, err)

	dst := make([]any, 4)
	d.Fill(dst, 0, 0, 1)
	require.Equal(t, []any{"a", "b", "c", nil}, dst)

	m := mapping.Mapping{3, 2, 1, 0}
	mapped, err := d.Map(m, false)
	require.NoError(t, err)
	require.Equal(t, core.FormatDense, mapped.Format())
	mdst := make([]any, 4)
	mapped.Fill(mdst, 0, 0, 1)
	require.Equal(t, []any{nil, "c", "b", "a"}, mdst)
}

func TestDenseSortRequiresComparator(t *testing.T) {
	untyped := core.RegisterObjectType("test-no-comparator", nil)
	d, err := object.NewDense(untyped, []any{"x", "y"})
	require.NoError(t, err)

	_, err = d.Sort(object.Ascending)
	require.ErrorIs(t, err, core.ErrUnsupported)
}

func TestDenseSortNilLast(t *testing.T) {
	typ := registerStringType(t)
	d, err := object.NewDense(typ, []any{"banana", nil, "apple", "cherry"})
	require.NoError(t, err)

	perm, err := d.Sort(object.Ascending)
	require.NoError(t, err)
	require.Equal(t, []uint32{2, 0, 3, 1}, perm)
}

func TestMappedSortAndChainedMap(t *testing.T) {
	typ := registerStringType(t)
	backing := []any{"e", "d", "c", "b", "a", nil}
	d, err := object.NewDense(typ, backing)
	require.NoError(t, err)

	m1 := mapping.Mapping{0, 1, 2, 3, 4, 5}
	view, err := d.Map(m1, true)
	require.NoError(t, err)
	require.Equal(t, core.FormatMapped, view.Format())

	perm, err := view.Sort(object.Ascending)
	require.NoError(t, err)
	require.Equal(t, []uint32{4, 3, 2, 1, 0, 5}, perm)

	m2 := mapping.Mapping{5, 4, 3}
	chained, err := view.Map(m2, false)
	require.NoError(t, err)
	chainedDst := make([]any, 3)
	chained.Fill(chainedDst, 0, 0, 1)

	composed := mapping.Merge(m2, m1)
	direct, err := d.Map(composed, false)
	require.NoError(t, err)
	directDst := make([]any, 3)
	direct.Fill(directDst, 0, 0, 1)

	require.Equal(t, directDst, chainedDst)
}
