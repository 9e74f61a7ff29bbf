package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vectorframe/column/core"
)

func TestLookupBuiltins(t *testing.T) {
	ct, ok := core.Lookup(core.TypeReal)
	require.True(t, ok)
	require.Equal(t, core.CategoryNumeric, ct.Category())
	require.True(t, ct.Capabilities().Has(core.CapNumericReadable))

	ct, ok = core.Lookup(core.TypeNominal)
	require.True(t, ok)
	require.Equal(t, core.CategoryCategorical, ct.Category())
	require.True(t, ct.Capabilities().Has(core.CapSortable))
}

func TestLookupUnknown(t *testing.T) {
	_, ok := core.Lookup(core.Type(999))
	require.False(t, ok)
}

func TestRegisterObjectType(t *testing.T) {
	cmp := func(a, b any) int {
		as, bs := a.(string), b.(string)
		switch {
		case as < bs:
			return -1
		case as > bs:
			return 1
		default:
			return 0
		}
	}
	t1 := core.RegisterObjectType("widget", cmp)
	t2 := core.RegisterObjectType("gadget", nil)
	require.NotEqual(t, t1, t2)

	ct1, ok := core.Lookup(t1)
	require.True(t, ok)
	require.Equal(t, core.CategoryObject, ct1.Category())
	require.True(t, ct1.Capabilities().Has(core.CapSortable))
	require.NotNil(t, ct1.Comparator())

	ct2, ok := core.Lookup(t2)
	require.True(t, ok)
	require.False(t, ct2.Capabilities().Has(core.CapSortable))

	require.Equal(t, "widget", t1.String())
}

func TestCapabilityHas(t *testing.T) {
	caps := core.CapNumericReadable | core.CapSortable
	require.True(t, caps.Has(core.CapNumericReadable))
	require.True(t, caps.Has(core.CapSortable))
	require.False(t, caps.Has(core.CapObjectReadable))
	require.True(t, caps.Has(core.CapNumericReadable|core.CapSortable))
}

func TestColumnTypeEqual(t *testing.T) {
	a, _ := core.Lookup(core.TypeReal)
	b, _ := core.Lookup(core.TypeReal)
	require.True(t, a.Equal(b))

	c, _ := core.Lookup(core.TypeNominal)
	require.False(t, a.Equal(c))
}
