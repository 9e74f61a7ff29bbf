// Package bitmap implements the sparse presence bitmap described in spec §4.1
// (C1): given a logical row count n and the sorted indices of "non-default"
// rows, it answers, in O(1), whether row i is a default row and, if not,
// its position in the backing non-defaults array.
//
// The bitmap is derived, not persisted: sparse columns rebuild it once at
// construction from their stored non-default index array and keep it for
// the lifetime of the value. It never mutates after construction.
package bitmap
