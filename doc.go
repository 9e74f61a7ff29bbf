// Package column is a columnar in-memory table engine: immutable,
// type-tagged columns for analytical workloads — reading, mapping
// (reordering/subsetting), sorting, statistics, and binary I/O.
//
// The module is organized as one package per concern, matching the
// component list below:
//
//	core/        — column type identity, capability bits, the shared Column interface (C8)
//	bitmap/      — sparse presence bitmap: O(1) default/non-default lookup (C1)
//	dictionary/  — ordered value dictionary + boolean specialization (C2)
//	mapping/     — lazy row-mapping algebra with a de-duplicating merge cache (C9)
//	numeric/     — dense/sparse/mapped float64 columns + sparsity heuristic (C3, C10)
//	categorical/ — dictionary-encoded columns over U2/U4/U8/U16/I32 indices (C4)
//	temporal/    — Time (nanoseconds-of-day) and DateTime columns (C5, C6)
//	object/      — arbitrary object-typed columns (C7)
//	exec/        — execution context abstraction for parallel reductions (C12)
//	stats/       — statistics engine with per-column result cache (C11)
//	codec/       — fixed-width binary I/O, bit-exact with external buffers (C13)
//
// Every column is frozen after construction; map/sort/remap/swapDictionary
// produce new column values rather than mutating in place. Statistics run
// through the transformer-reducer pipeline in exec and stats, scheduled by
// whichever exec.Context the caller supplies; results are memoized on a
// per-column stats.Cache.
package column
