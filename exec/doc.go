// Package exec implements the C12 execution context abstraction: a small
// interface reductions and other parallelizable operations consume to run
// batches of work, check for cooperative cancellation, and report
// parallelism. Two concrete contexts are in scope here, matching spec
// §4.11's boundary: Sequential (in-caller execution, parallelism 1) and a
// SingleThreaded wrapper that serializes Call while forwarding to an
// underlying context. A general parallel pool is outside the core's
// boundary (spec §4.11); this package nonetheless provides an
// errgroup-backed Parallel context for tests and benchmarks that want real
// concurrency without depending on an external scheduler.
package exec
