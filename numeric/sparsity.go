package numeric

import (
	"math"
	"math/rand/v2"
)

// Decision is the outcome of the construction-time sparsity heuristic
// (spec §4.9, C10): whether to store the data Sparse, and if so, which
// value to treat as the implicit default.
type Decision struct {
	Sparse  bool
	Default float64
}

type sparsityConfig struct {
	seed uint64
}

// SparsityOption configures DecideSparsity.
type SparsityOption func(*sparsityConfig)

// WithSeed pins the sampler's PRNG seed, making the heuristic's decision
// reproducible across runs for the same data — useful for tests and for
// callers who need identical columns to always receive the same layout.
func WithSeed(seed uint64) SparsityOption {
	return func(c *sparsityConfig) { c.seed = seed }
}

// DecideSparsity samples data (with replacement) to estimate the density of
// its most frequent value, and recommends Sparse storage with that value as
// the default when the estimate clears MinSparsity. Columns shorter than
// MinSparseColumnSize are always recommended Dense: the heuristic's sampling
// cost and a sparse column's per-row bitmap overhead aren't worth it below
// that size regardless of how repetitive the data is.
//
// Complexity: O(min(len(data), SparsitySampleSize)).
func DecideSparsity(data []float64, opts ...SparsityOption) Decision {
	n := len(data)
	if n < MinSparseColumnSize {
		return Decision{Sparse: false}
	}

	cfg := sparsityConfig{seed: 0x5eed}
	for _, o := range opts {
		o(&cfg)
	}
	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed^0x9e3779b97f4a7c15))

	sampleSize := SparsitySampleSize
	if sampleSize > n {
		sampleSize = n
	}

	counts := make(map[uint64]int, sampleSize)
	var modeVal float64
	var modeCount int
	for i := 0; i < sampleSize; i++ {
		v := data[rng.IntN(n)]
		key := math.Float64bits(v)
		counts[key]++
		if counts[key] > modeCount {
			modeCount = counts[key]
			modeVal = v
		}
	}

	density := float64(modeCount) / float64(sampleSize)
	if density >= MinSparsity {
		return Decision{Sparse: true, Default: modeVal}
	}
	return Decision{Sparse: false}
}
