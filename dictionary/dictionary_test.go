package dictionary_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/dictionary"
)

func TestNewRejectsNonNullZero(t *testing.T) {
	_, err := dictionary.New([]any{"a", "b"})
	require.ErrorIs(t, err, core.ErrInvalidDictionaryShape)
}

func TestGetSizeMaximalIndex(t *testing.T) {
	d, err := dictionary.New([]any{nil, "a", "b", "c"})
	require.NoError(t, err)
	require.Equal(t, int32(3), d.Size())
	require.Equal(t, int32(3), d.MaximalIndex())
	require.Equal(t, "b", d.Get(2))
	require.Nil(t, d.Get(0))
	require.Nil(t, d.Get(99))
}

func TestGapsAllowMaximalIndexToExceedSize(t *testing.T) {
	d, err := dictionary.New([]any{nil, "a", nil, "c"})
	require.NoError(t, err)
	require.Equal(t, int32(2), d.Size())
	require.Equal(t, int32(3), d.MaximalIndex())
}

// TestInverseRoundTrip exercises spec §8 invariant 4.
func TestInverseRoundTrip(t *testing.T) {
	d, err := dictionary.New([]any{nil, "a", nil, "c"})
	require.NoError(t, err)
	inv := d.CreateInverse()
	require.Equal(t, int32(0), inv[nil])
	for i := int32(1); i <= d.MaximalIndex(); i++ {
		v := d.Get(i)
		if v == nil {
			continue
		}
		require.Equal(t, i, inv[v])
	}
}

func TestIteratorSkipsNullAndGaps(t *testing.T) {
	d, err := dictionary.New([]any{nil, "a", nil, "c"})
	require.NoError(t, err)
	entries := d.Iterator()
	require.Equal(t, []dictionary.Entry{{Index: 1, Value: "a"}, {Index: 3, Value: "c"}}, entries)
}

func TestToBoolean(t *testing.T) {
	d, err := dictionary.New([]any{nil, "yes", "no"})
	require.NoError(t, err)
	bd, err := d.ToBoolean("yes")
	require.NoError(t, err)
	require.True(t, bd.HasPositive())
	require.True(t, bd.HasNegative())
	require.Equal(t, int32(1), bd.GetPositiveIndex())
	require.Equal(t, int32(2), bd.GetNegativeIndex())
}

// TestBooleanDictionaryConstruction is scenario S3.
func TestBooleanDictionaryConstruction(t *testing.T) {
	bd, err := dictionary.NewBoolean([]any{nil, "yes", "no"}, 1)
	require.NoError(t, err)
	require.True(t, bd.HasPositive())
	require.True(t, bd.HasNegative())
	require.Equal(t, int32(1), bd.GetPositiveIndex())
	require.Equal(t, int32(2), bd.GetNegativeIndex())
}

func TestBooleanRequiresChoiceWhenBothPopulated(t *testing.T) {
	_, err := dictionary.NewBoolean([]any{nil, "yes", "no"}, dictionary.NoEntry)
	require.ErrorIs(t, err, core.ErrInvalidDictionaryShape)
}

func TestBooleanInvalidPositiveIndex(t *testing.T) {
	_, err := dictionary.NewBoolean([]any{nil, "yes"}, 2)
	require.ErrorIs(t, err, core.ErrInvalidDictionaryShape)

	_, err = dictionary.NewBoolean([]any{nil, nil, "no"}, 1)
	require.ErrorIs(t, err, core.ErrInvalidDictionaryShape)
}

func TestBooleanGapShape(t *testing.T) {
	// [null, null, a]: only a negative entry present.
	bd, err := dictionary.NewBoolean([]any{nil, nil, "no"}, dictionary.NoEntry)
	require.NoError(t, err)
	require.False(t, bd.HasPositive())
	require.True(t, bd.HasNegative())
	require.Equal(t, int32(2), bd.GetNegativeIndex())
}

func TestBooleanAccessor(t *testing.T) {
	var iface dictionary.Interface
	d, err := dictionary.New([]any{nil, "a"})
	require.NoError(t, err)
	iface = d
	_, err = dictionary.Boolean(iface)
	require.ErrorIs(t, err, core.ErrUnsupported)

	bd, err := dictionary.NewBoolean([]any{nil, "yes", "no"}, 1)
	require.NoError(t, err)
	iface = bd
	got, err := dictionary.Boolean(iface)
	require.NoError(t, err)
	require.Same(t, bd, got)
}
