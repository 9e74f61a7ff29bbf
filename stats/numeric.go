package stats

import (
	"math"

	"github.com/vectorframe/column/exec"
	"github.com/vectorframe/column/mapping"
	"github.com/vectorframe/column/numeric"
)

// countsBundle holds the shared (count, min, max, mean) reduction spec
// §4.10 describes for numeric counts: a single parallel pass over batches,
// each folding its rows into (count, min, max, mean), then pairwise
// weighted-merged across batches.
type countsBundle struct {
	count int64
	min   float64
	max   float64
	mean  float64
}

// batchStat is one batch's local reduction before it is folded into its
// neighbors.
type batchStat struct {
	count int64
	min   float64
	max   float64
	mean  float64
}

func reduceBatch(values []float64) batchStat {
	b := batchStat{min: math.Inf(1), max: math.Inf(-1)}
	var sum float64
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		b.count++
		sum += v
		if v < b.min {
			b.min = v
		}
		if v > b.max {
			b.max = v
		}
	}
	if b.count > 0 {
		b.mean = sum / float64(b.count)
	}
	return b
}

// combineBatch implements spec §4.10's weighted mean merge:
// mean = α·meanA + (1−α)·meanB, α = countA/(countA+countB). Min/max combine
// by extremum.
func combineBatch(a, b batchStat) batchStat {
	if a.count == 0 {
		return b
	}
	if b.count == 0 {
		return a
	}
	count := a.count + b.count
	alpha := float64(a.count) / float64(count)
	return batchStat{
		count: count,
		min:   math.Min(a.min, b.min),
		max:   math.Max(a.max, b.max),
		mean:  alpha*a.mean + (1-alpha)*b.mean,
	}
}

// splitRows partitions [0, size) into at most parallelism contiguous
// batches, never producing an empty batch when size > 0.
func splitRows(size, parallelism int) [][2]int {
	if parallelism < 1 {
		parallelism = 1
	}
	if size == 0 {
		return nil
	}
	if parallelism > size {
		parallelism = size
	}
	batches := make([][2]int, 0, parallelism)
	batchSize := (size + parallelism - 1) / parallelism
	for start := 0; start < size; start += batchSize {
		end := start + batchSize
		if end > size {
			end = size
		}
		batches = append(batches, [2]int{start, end})
	}
	return batches
}

func computeCountsBundle(ctx exec.Context, col numeric.Column) (countsBundle, error) {
	size := int(col.Size())
	ranges := splitRows(size, ctx.Parallelism())
	if len(ranges) == 0 {
		return countsBundle{min: math.Inf(1), max: math.Inf(-1)}, nil
	}

	tasks := make([]exec.Task, len(ranges))
	for i, r := range ranges {
		r := r
		tasks[i] = func(taskCtx exec.Context) (any, error) {
			if err := taskCtx.RequireActive(); err != nil {
				return nil, err
			}
			buf := make([]float64, r[1]-r[0])
			col.Fill(buf, r[0], 0, 1)
			return reduceBatch(buf), nil
		}
	}
	results, err := ctx.Call(tasks)
	if err != nil {
		return countsBundle{}, err
	}

	total := batchStat{min: math.Inf(1), max: math.Inf(-1)}
	for _, r := range results {
		total = combineBatch(total, r.(batchStat))
	}

	bundle := countsBundle{count: total.count, min: total.min, max: total.max, mean: total.mean}
	if bundle.count > 0 {
		switch {
		case bundle.mean < bundle.min:
			if math.IsInf(bundle.min, -1) {
				bundle.mean = math.NaN()
			} else {
				bundle.mean = bundle.min
			}
		case bundle.mean > bundle.max:
			if math.IsInf(bundle.max, 1) {
				bundle.mean = math.NaN()
			} else {
				bundle.mean = bundle.max
			}
		}
	}
	return bundle, nil
}

func getCountsBundle(ctx exec.Context, col numeric.Column, cache *Cache) (countsBundle, error) {
	v, err := cache.GetOrCompute(statCountsBundle, func() (any, error) {
		return computeCountsBundle(ctx, col)
	})
	if err != nil {
		return countsBundle{}, err
	}
	return v.(countsBundle), nil
}

// computeVariance implements spec §4.10's numeric deviation: requires
// count >= 2 and a finite mean, accumulates sum-of-squared-deviations per
// batch against the already-known global mean (so batches combine by plain
// addition — no cross-term correction is needed since every deviation is
// already relative to the same mean), then scales by n/(n-1) for the
// sample variance this package exposes as Statistic Var.
func computeVariance(ctx exec.Context, col numeric.Column, bundle countsBundle) (float64, error) {
	if bundle.count < 2 || math.IsNaN(bundle.mean) {
		return math.NaN(), nil
	}

	size := int(col.Size())
	ranges := splitRows(size, ctx.Parallelism())
	tasks := make([]exec.Task, len(ranges))
	for i, r := range ranges {
		r := r
		tasks[i] = func(taskCtx exec.Context) (any, error) {
			if err := taskCtx.RequireActive(); err != nil {
				return nil, err
			}
			buf := make([]float64, r[1]-r[0])
			col.Fill(buf, r[0], 0, 1)
			var m2 float64
			for _, v := range buf {
				if math.IsNaN(v) {
					continue
				}
				d := v - bundle.mean
				m2 += d * d
			}
			return m2, nil
		}
	}
	results, err := ctx.Call(tasks)
	if err != nil {
		return 0, err
	}
	var totalM2 float64
	for _, r := range results {
		totalM2 += r.(float64)
	}

	popVar := totalM2 / float64(bundle.count)
	return popVar * float64(bundle.count) / float64(bundle.count-1), nil
}

func percentileFor(stat Statistic) float64 {
	switch stat {
	case P25:
		return 0.25
	case P50, Median:
		return 0.5
	case P75:
		return 0.75
	default:
		return 0.5
	}
}

// computePercentile implements spec §4.10's NIST interpolation. It requires
// an ascending-sorted view of the column (spec: "Percentiles require
// sorting the column first via ascending map(sort(Order::Ascending),
// view)"); numeric.Sort already places NaN (missing) last for either
// order, so the valid prefix length is exactly the run before the first
// NaN.
func computePercentile(col numeric.Column, p float64) (float64, error) {
	perm, err := col.Sort(numeric.Ascending)
	if err != nil {
		return 0, err
	}
	m := make(mapping.Mapping, len(perm))
	for i, row := range perm {
		m[i] = int32(row)
	}
	sorted, err := col.Map(m, true)
	if err != nil {
		return 0, err
	}
	values := make([]float64, int(sorted.Size()))
	sorted.Fill(values, 0, 0, 1)

	n := 0
	for _, v := range values {
		if math.IsNaN(v) {
			break
		}
		n++
	}
	if n == 0 {
		return math.NaN(), nil
	}

	rank := p * float64(n+1)
	idx := int(math.Floor(rank))
	weight := rank - float64(idx)
	switch {
	case idx < 1:
		return values[0], nil
	case idx >= n:
		return values[n-1], nil
	default:
		return values[idx-1] + weight*(values[idx]-values[idx-1]), nil
	}
}

// ComputeNumeric answers the requested statistics for a numeric column
// (spec §4.10: COUNT, MIN, MAX, MEAN, VAR, SD, P25, P50, P75, MEDIAN),
// consulting cache first and computing only the missing subset.
func ComputeNumeric(ctx exec.Context, col numeric.Column, cache *Cache, wanted []Statistic) (map[Statistic]float64, error) {
	out := make(map[Statistic]float64, len(wanted))
	for _, stat := range wanted {
		switch stat {
		case Count, Min, Max, Mean:
			bundle, err := getCountsBundle(ctx, col, cache)
			if err != nil {
				return nil, err
			}
			switch stat {
			case Count:
				out[Count] = float64(bundle.count)
			case Min:
				out[Min] = bundle.min
			case Max:
				out[Max] = bundle.max
			case Mean:
				out[Mean] = bundle.mean
			}
		case Var, SD:
			// The bundle is fetched outside the Var computation: GetOrCompute
			// holds the cache's write lock while compute runs, so a nested
			// cache lookup inside it would block forever.
			bundle, err := getCountsBundle(ctx, col, cache)
			if err != nil {
				return nil, err
			}
			v, err := cache.GetOrCompute(Var, func() (any, error) {
				return computeVariance(ctx, col, bundle)
			})
			if err != nil {
				return nil, err
			}
			variance := v.(float64)
			if stat == Var {
				out[Var] = variance
			} else {
				out[SD] = math.Sqrt(variance)
			}
		case P25, P50, P75, Median:
			v, err := cache.GetOrCompute(stat, func() (any, error) {
				return computePercentile(col, percentileFor(stat))
			})
			if err != nil {
				return nil, err
			}
			out[stat] = v.(float64)
		default:
			return nil, unsupportedErrorf(stat)
		}
	}
	return out, nil
}
