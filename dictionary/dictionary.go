package dictionary

// Entry is one (index, value) pair yielded by Iterator, in ascending index
// order, skipping gaps (nil entries).
type Entry struct {
	Index int32
	Value any
}

// Interface is implemented by both Dictionary and BooleanDictionary, so
// categorical columns can hold either without knowing which up front.
type Interface interface {
	// Get returns the value at index i, or nil if i is out of range, the
	// reserved null slot (0), or a gap. Never fails.
	Get(i int32) any
	// Size returns the count of non-null entries.
	Size() int32
	// MaximalIndex returns the highest valid index; may exceed Size() when
	// gaps exist below it.
	MaximalIndex() int32
	// IsBoolean reports whether this dictionary is a BooleanDictionary.
	IsBoolean() bool
	// CreateInverse returns a value -> index map; null maps to 0.
	CreateInverse() map[any]int32
	// Iterator returns the non-null (index, value) pairs in ascending
	// index order.
	Iterator() []Entry
}

// Dictionary is an ordered list of distinct domain values, values[0]
// reserved for null/missing.
type Dictionary struct {
	values []any
}

// New builds a Dictionary from values, where values[0] must be nil (the
// reserved null slot). The supplied slice is copied; the returned
// Dictionary owns its own backing array.
//
// Complexity: O(len(values)).
func New(values []any) (*Dictionary, error) {
	if len(values) == 0 {
		values = []any{nil}
	}
	if values[0] != nil {
		return nil, shapeErrorf("index 0 must be null, got %v", values[0])
	}
	cp := make([]any, len(values))
	copy(cp, values)
	return &Dictionary{values: cp}, nil
}

// Get returns the value at index i, or nil for an out-of-range index, the
// reserved null slot, or a gap. Never fails.
func (d *Dictionary) Get(i int32) any {
	if i < 0 || int(i) >= len(d.values) {
		return nil
	}
	return d.values[i]
}

// Size returns the count of non-null entries (excludes index 0 and any
// gaps).
func (d *Dictionary) Size() int32 {
	var n int32
	for i := 1; i < len(d.values); i++ {
		if d.values[i] != nil {
			n++
		}
	}
	return n
}

// MaximalIndex returns len(values)-1.
func (d *Dictionary) MaximalIndex() int32 { return int32(len(d.values) - 1) }

// IsBoolean is always false for a plain Dictionary.
func (d *Dictionary) IsBoolean() bool { return false }

// CreateInverse builds a value -> index map; null always maps to 0.
//
// Complexity: O(len(values)).
func (d *Dictionary) CreateInverse() map[any]int32 {
	inv := make(map[any]int32, len(d.values))
	inv[nil] = 0
	for i := 1; i < len(d.values); i++ {
		if d.values[i] != nil {
			inv[d.values[i]] = int32(i)
		}
	}
	return inv
}

// Iterator returns the non-null (index, value) pairs in ascending index
// order.
func (d *Dictionary) Iterator() []Entry {
	entries := make([]Entry, 0, len(d.values))
	for i := 1; i < len(d.values); i++ {
		if d.values[i] != nil {
			entries = append(entries, Entry{Index: int32(i), Value: d.values[i]})
		}
	}
	return entries
}

// Values returns the raw backing slice (index 0 is nil). Callers must treat
// it as read-only; it is shared, not copied, with the Dictionary's internal
// storage, matching the ownership model of spec §3 ("Dictionaries are
// shared by any column derived via swapDictionary/remap that keeps the
// same dictionary identity").
func (d *Dictionary) Values() []any { return d.values }

// ToBoolean returns a BooleanDictionary holding a copy of this dictionary's
// entries with positive located at the entry equal to positive, or NoEntry
// if no entry equals it; positive is never appended. A dictionary of more
// than 3 slots (including null) fails with ErrInvalidDictionaryShape, as
// does a 3-slot dictionary with both entries populated when positive is
// absent.
//
// Complexity: O(len(values)).
func (d *Dictionary) ToBoolean(positive any) (*BooleanDictionary, error) {
	if len(d.values) > 3 {
		return nil, shapeErrorf("dictionary with %d slots cannot become boolean", len(d.values))
	}
	cp := make([]any, len(d.values))
	copy(cp, d.values)

	positiveIndex := NoEntry
	for i := 1; i < len(cp); i++ {
		if cp[i] == positive {
			positiveIndex = int32(i)
			break
		}
	}
	return NewBoolean(cp, positiveIndex)
}
