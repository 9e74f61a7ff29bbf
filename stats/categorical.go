package stats

import (
	"github.com/vectorframe/column/categorical"
	"github.com/vectorframe/column/exec"
)

// categoricalCounts is the one-pass accumulation spec §4.10 describes for
// categorical columns: a counter per dictionary index (including the
// reserved null index 0), from which COUNT (non-null rows), LEAST (lowest
// count, ties broken by lowest index), MODE (highest count, ties broken by
// lowest index) and INDEX_COUNTS (the full per-index histogram) all derive.
type categoricalCounts struct {
	counts []int64 // counts[i] is the number of rows holding dictionary index i
}

func computeCategoricalCounts(ctx exec.Context, col categorical.Column) (categoricalCounts, error) {
	dict := col.Dictionary()
	width := int(dict.MaximalIndex()) + 1
	if width < 1 {
		width = 1
	}

	size := int(col.Size())
	ranges := splitRows(size, ctx.Parallelism())
	if len(ranges) == 0 {
		return categoricalCounts{counts: make([]int64, width)}, nil
	}

	tasks := make([]exec.Task, len(ranges))
	for i, r := range ranges {
		r := r
		tasks[i] = func(taskCtx exec.Context) (any, error) {
			if err := taskCtx.RequireActive(); err != nil {
				return nil, err
			}
			buf := make([]int32, r[1]-r[0])
			col.FillIndex(buf, r[0], 0, 1)
			local := make([]int64, width)
			for _, idx := range buf {
				if idx >= 0 && int(idx) < width {
					local[idx]++
				}
			}
			return local, nil
		}
	}
	results, err := ctx.Call(tasks)
	if err != nil {
		return categoricalCounts{}, err
	}

	total := make([]int64, width)
	for _, r := range results {
		local := r.([]int64)
		for i, c := range local {
			total[i] += c
		}
	}
	return categoricalCounts{counts: total}, nil
}

func getCategoricalCounts(ctx exec.Context, col categorical.Column, cache *Cache) (categoricalCounts, error) {
	v, err := cache.GetOrCompute(statCountsBundle, func() (any, error) {
		return computeCategoricalCounts(ctx, col)
	})
	if err != nil {
		return categoricalCounts{}, err
	}
	return v.(categoricalCounts), nil
}

// ComputeCategoricalScalar answers COUNT, LEAST, MODE for a categorical
// column as dictionary indices (COUNT as a row count instead).
func ComputeCategoricalScalar(ctx exec.Context, col categorical.Column, cache *Cache, wanted []Statistic) (map[Statistic]float64, error) {
	out := make(map[Statistic]float64, len(wanted))
	for _, stat := range wanted {
		switch stat {
		case Count:
			bundle, err := getCategoricalCounts(ctx, col, cache)
			if err != nil {
				return nil, err
			}
			var total int64
			for i, c := range bundle.counts {
				if i == 0 {
					continue // index 0 is the reserved null/missing value
				}
				total += c
			}
			out[Count] = float64(total)
		case Least:
			idx, err := leastIndex(ctx, col, cache)
			if err != nil {
				return nil, err
			}
			out[Least] = float64(idx)
		case Mode:
			idx, err := modeIndex(ctx, col, cache)
			if err != nil {
				return nil, err
			}
			out[Mode] = float64(idx)
		default:
			return nil, unsupportedErrorf(stat)
		}
	}
	return out, nil
}

func leastIndex(ctx exec.Context, col categorical.Column, cache *Cache) (int32, error) {
	bundle, err := getCategoricalCounts(ctx, col, cache)
	if err != nil {
		return 0, err
	}
	best := int32(0)
	bestCount := int64(-1)
	for i, c := range bundle.counts {
		if bestCount < 0 || c < bestCount {
			best, bestCount = int32(i), c
		}
	}
	return best, nil
}

func modeIndex(ctx exec.Context, col categorical.Column, cache *Cache) (int32, error) {
	bundle, err := getCategoricalCounts(ctx, col, cache)
	if err != nil {
		return 0, err
	}
	best := int32(0)
	bestCount := int64(-1)
	for i, c := range bundle.counts {
		if c > bestCount {
			best, bestCount = int32(i), c
		}
	}
	return best, nil
}

// ComputeIndexCounts answers INDEX_COUNTS: the full per-dictionary-index
// row histogram, keyed by dictionary index (0 = null/missing).
func ComputeIndexCounts(ctx exec.Context, col categorical.Column, cache *Cache) (map[int32]int64, error) {
	bundle, err := getCategoricalCounts(ctx, col, cache)
	if err != nil {
		return nil, err
	}
	out := make(map[int32]int64, len(bundle.counts))
	for i, c := range bundle.counts {
		out[int32(i)] = c
	}
	return out, nil
}
