// Package stats implements the C11 statistics engine: parallel batch
// reduction over numeric/time columns with numerically-stable weighted
// combiners, NIST-interpolated percentiles, one-pass categorical
// mode/least/index-count accumulation, date-time min/max, and a per-column
// stat cache guarded by double-checked locking (spec §4.10).
//
// Every reduction that benefits from concurrency takes an exec.Context and
// partitions its column into exec.Context.Parallelism() batches, consistent
// with spec §5's "parallel-threads for reductions" scheduling model.
package stats
