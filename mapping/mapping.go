package mapping

// Missing is the sentinel a Mapping entry (or a Merge/Apply result) carries
// for "no backing row" — either because the entry was already negative or
// because it addressed a row at-or-past the backing size.
const Missing int32 = -1

// Mapping is a row-selection array: Mapping[j] names which backing row
// logical row j is drawn from. A negative entry, or one >= the backing
// column's size, reads as missing on every consuming operation.
type Mapping []int32

// Identity returns the n-length Mapping equivalent to selecting every row
// in order (Mapping[i] == i for all i).
func Identity(n int) Mapping {
	m := make(Mapping, n)
	for i := range m {
		m[i] = int32(i)
	}
	return m
}

// InBounds reports whether idx, read from a mapping entry, is a valid row
// index into a backing store of the given size.
func InBounds(idx int32, size int) bool {
	return idx >= 0 && int(idx) < size
}

// Merge composes two mappings so that the result reads, for each output
// row i, the value inner would have produced at row outer[i]:
//
//	result[i] = inner[outer[i]]   (outer[i] out of bounds, or the looked-up
//	                                inner entry itself missing, both yield Missing)
//
// This is spec §8 invariant 3's compose(m1, m2)[i] = m1[m2[i]] with outer
// playing the role of m2 (applied first) and inner playing m1 (applied to
// outer's result): c.Map(m1).Map(m2) == c.Map(Merge(m2, m1)).
//
// Complexity: O(len(outer)).
func Merge(outer, inner Mapping) Mapping {
	result := make(Mapping, len(outer))
	for i, o := range outer {
		if !InBounds(o, len(inner)) {
			result[i] = Missing
			continue
		}
		result[i] = inner[o]
	}
	return result
}

// Apply gathers data[m[i]] into a freshly allocated result of length
// len(m), substituting fill for every missing entry.
//
// Complexity: O(len(m)).
func Apply[T any](data []T, m Mapping, fill T) []T {
	result := make([]T, len(m))
	for i, idx := range m {
		if !InBounds(idx, len(data)) {
			result[i] = fill
			continue
		}
		result[i] = data[idx]
	}
	return result
}
