// Package temporal implements the Time (C5) and DateTime (C6) column
// families. Both reuse the representation algebra numeric establishes
// (Dense/Sparse/Mapped, the view-vs-copy MappingThreshold rule, the
// default-block splice Sort strategy) over int64 wire-exact values instead
// of float64: Time stores nanoseconds-of-day with MISSING = math.MaxInt64,
// and DateTime stores seconds-since-epoch (also MISSING = math.MaxInt64)
// plus an optional dense nanos-of-second array for columns that declare
// sub-second precision.
//
// DateTime's sparse representation elides only the seconds array; nanos, if
// present, are always stored dense (spec §4.5) since sub-second precision
// is rarely uniform enough to benefit from the same default-elision trick.
// High-precision sparse Sort therefore proceeds in two passes: sort by
// seconds using the same splice strategy Sparse.Sort uses elsewhere in this
// module, then, within each contiguous run of equal seconds the first pass
// produces, stably re-sort by nanos.
package temporal
