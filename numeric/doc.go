// Package numeric implements the double-precision column family (spec §4.3,
// C3): DenseNumeric, SparseNumeric, and MappedNumeric, plus the
// construction-time sparsity heuristic (spec §4.9, C10) that decides between
// dense and sparse storage for raw data.
//
// NaN is the missing-value sentinel throughout. A MappedNumeric's backing is
// always a Dense column: mapping a Sparse column materializes a fresh Dense
// or a fresh Sparse depending on post-map density, it never produces a view,
// which keeps representation depth at most two (one concrete column plus at
// most one Mapping layer).
package numeric
