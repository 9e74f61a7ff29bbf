package dictionary

// NoEntry marks the absence of a positive or negative index in a
// BooleanDictionary.
const NoEntry int32 = -1

// BooleanDictionary is a Dictionary of at most 3 slots (including the
// reserved null at index 0) with an explicit notion of which non-null slot,
// if any, is the "positive" value. Valid shapes (spec §3):
//
//	[null]             - no values at all
//	[null, a]          - one value, no declared polarity (positiveIndex NoEntry or 1)
//	[null, a, b]       - two values; if both non-null, positiveIndex must be 1 or 2
//	[null, null, a]    - a gap at 1, one value at 2 (e.g. after removing the positive entry)
type BooleanDictionary struct {
	*Dictionary
	positiveIndex int32
}

// NewBoolean builds a BooleanDictionary from values (values[0] must be
// nil, len(values) <= 3) and a positiveIndex. Validity (spec §4.2):
// positiveIndex must either be NoEntry or index a non-null entry; when both
// slots 1 and 2 are non-null, positiveIndex must be 1 or 2 (not NoEntry).
func NewBoolean(values []any, positiveIndex int32) (*BooleanDictionary, error) {
	if len(values) > 3 {
		return nil, shapeErrorf("boolean dictionary has %d slots, want <= 3", len(values))
	}
	base, err := New(values)
	if err != nil {
		return nil, err
	}

	if positiveIndex != NoEntry {
		if positiveIndex < 1 || int(positiveIndex) >= len(base.values) || base.values[positiveIndex] == nil {
			return nil, shapeErrorf("positive index %d does not name a non-null entry", positiveIndex)
		}
	} else if len(base.values) == 3 && base.values[1] != nil && base.values[2] != nil {
		return nil, shapeErrorf("both entries populated but no positive index chosen")
	}

	return &BooleanDictionary{Dictionary: base, positiveIndex: positiveIndex}, nil
}

// IsBoolean is always true for a BooleanDictionary.
func (b *BooleanDictionary) IsBoolean() bool { return true }

// HasPositive reports whether a positive entry is present.
func (b *BooleanDictionary) HasPositive() bool { return b.positiveIndex != NoEntry }

// GetPositiveIndex returns the positive entry's index, or NoEntry.
func (b *BooleanDictionary) GetPositiveIndex() int32 { return b.positiveIndex }

// GetNegativeIndex returns the index of the non-null slot among {1,2} that
// is not the positive index, or NoEntry if there is none.
func (b *BooleanDictionary) GetNegativeIndex() int32 {
	for i := int32(1); i <= 2 && int(i) < len(b.values); i++ {
		if i != b.positiveIndex && b.values[i] != nil {
			return i
		}
	}
	return NoEntry
}

// HasNegative reports whether a negative entry is present.
func (b *BooleanDictionary) HasNegative() bool { return b.GetNegativeIndex() != NoEntry }

// Boolean returns d as a *BooleanDictionary, or a wrapped core.ErrUnsupported
// if d is not boolean. It gives callers holding an Interface value (rather
// than a concrete *BooleanDictionary) the same "throws unsupported" behavior
// spec §4.2 describes for boolean-only getters on a non-boolean dictionary.
func Boolean(d Interface) (*BooleanDictionary, error) {
	bd, ok := d.(*BooleanDictionary)
	if !ok {
		return nil, unsupportedErrorf("boolean accessor on non-boolean dictionary")
	}
	return bd, nil
}
