package numeric

// Tunables for the sparsity heuristic (spec §4.9, C10) and the map-view
// decision (spec §4.3/§6.3, C3). Exported so callers can reproduce the
// engine's decisions or override them via the functional options below.
const (
	// MinSparseColumnSize is the smallest column length the heuristic will
	// ever consider for sparse storage; shorter columns are always Dense.
	MinSparseColumnSize = 1024

	// SparsitySampleSize is how many rows the heuristic samples (with
	// replacement) to estimate the most frequent value's density.
	SparsitySampleSize = 1024

	// MinSparsity is the minimum estimated density of the sampled mode
	// required to choose Sparse over Dense.
	MinSparsity = 0.625

	// MaxDensityDoubleSparse bounds the post-map survivor density below
	// which a mapped Sparse column stays Sparse; above it, Map materializes
	// a Dense column instead.
	MaxDensityDoubleSparse = 0.5

	// MappingThreshold is the minimum ratio of mapping length to backing
	// size required before Map will ever return a lazy view, even when
	// preferView is set: below this ratio a view would pin a backing array
	// many times larger than the rows actually reachable through it, so Map
	// always materializes instead.
	MappingThreshold = 0.1
)
