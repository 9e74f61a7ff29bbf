package categorical

import (
	"fmt"

	"github.com/vectorframe/column/core"
)

// comparatorFor returns the ordering function Sort uses for typ's
// dictionary values: the type's registered comparator if it has one
// (custom object-backed categoricals), otherwise a default that handles
// the value domains spec.md actually names for TypeNominal/TypeText
// (strings) plus the numeric/bool domains a caller might plausibly encode.
func comparatorFor(typ core.Type) core.Comparator {
	if cmp := core.MustLookup(typ).Comparator(); cmp != nil {
		return cmp
	}
	return defaultCompare
}

func defaultCompare(a, b any) int {
	switch av := a.(type) {
	case string:
		bv := b.(string)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case float64:
		bv := b.(float64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case int32:
		bv := b.(int32)
		return int(av - bv)
	case int64:
		bv := b.(int64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case bool:
		bv := b.(bool)
		if av == bv {
			return 0
		}
		if !av {
			return -1
		}
		return 1
	default:
		panic(fmt.Sprintf("categorical: no default ordering for dictionary value of type %T", a))
	}
}

// identityRemap returns the indexRemap that sends every index in
// [0, maxIndex] to itself, used by SwapDictionary to attach a new
// dictionary without altering which raw index names which value.
func identityRemap(maxIndex int32) []int32 {
	r := make([]int32, maxIndex+1)
	for i := range r {
		r[i] = int32(i)
	}
	return r
}

// composeIndexRemap folds a new outer remap on top of an existing inner one:
// composed[i] = outer[inner[i]], with any out-of-range inner entry mapping
// to the dictionary's reserved null slot (spec §4.4's "Remap composition").
func composeIndexRemap(inner, outer []int32) []int32 {
	composed := make([]int32, len(inner))
	for i, idx := range inner {
		if idx < 0 || int(idx) >= len(outer) {
			composed[i] = 0
			continue
		}
		composed[i] = outer[idx]
	}
	return composed
}
