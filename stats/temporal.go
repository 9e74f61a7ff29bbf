package stats

import (
	"github.com/vectorframe/column/exec"
	"github.com/vectorframe/column/temporal"
)

// timeCountsBundle mirrors numeric's countsBundle for nanoseconds-of-day
// values: mean is expressed as a float64 average of valid nanos, matching
// spec §4.10's text that time means follow the same weighted-combine rule
// as numeric, minus variance (time has no defined VAR/SD statistic).
type timeCountsBundle struct {
	count int64
	min   int64
	max   int64
	mean  float64
}

type timeBatchStat struct {
	count int64
	min   int64
	max   int64
	mean  float64
}

func reduceTimeBatch(values []int64) timeBatchStat {
	b := timeBatchStat{min: temporal.Missing, max: temporal.Missing}
	var sum float64
	first := true
	for _, v := range values {
		if v == temporal.Missing {
			continue
		}
		b.count++
		sum += float64(v)
		if first || v < b.min {
			b.min = v
		}
		if first || v > b.max {
			b.max = v
		}
		first = false
	}
	if b.count > 0 {
		b.mean = sum / float64(b.count)
	}
	return b
}

func combineTimeBatch(a, b timeBatchStat) timeBatchStat {
	if a.count == 0 {
		return b
	}
	if b.count == 0 {
		return a
	}
	count := a.count + b.count
	alpha := float64(a.count) / float64(count)
	min, max := a.min, a.max
	if b.min < min {
		min = b.min
	}
	if b.max > max {
		max = b.max
	}
	return timeBatchStat{
		count: count,
		min:   min,
		max:   max,
		mean:  alpha*a.mean + (1-alpha)*b.mean,
	}
}

func computeTimeCountsBundle(ctx exec.Context, col temporal.TimeColumn) (timeCountsBundle, error) {
	size := int(col.Size())
	ranges := splitRows(size, ctx.Parallelism())
	if len(ranges) == 0 {
		return timeCountsBundle{min: temporal.Missing, max: temporal.Missing}, nil
	}

	tasks := make([]exec.Task, len(ranges))
	for i, r := range ranges {
		r := r
		tasks[i] = func(taskCtx exec.Context) (any, error) {
			if err := taskCtx.RequireActive(); err != nil {
				return nil, err
			}
			buf := make([]int64, r[1]-r[0])
			col.Fill(buf, r[0], 0, 1)
			return reduceTimeBatch(buf), nil
		}
	}
	results, err := ctx.Call(tasks)
	if err != nil {
		return timeCountsBundle{}, err
	}

	total := timeBatchStat{min: temporal.Missing, max: temporal.Missing}
	for _, r := range results {
		total = combineTimeBatch(total, r.(timeBatchStat))
	}
	return timeCountsBundle{count: total.count, min: total.min, max: total.max, mean: total.mean}, nil
}

func getTimeCountsBundle(ctx exec.Context, col temporal.TimeColumn, cache *Cache) (timeCountsBundle, error) {
	v, err := cache.GetOrCompute(statCountsBundle, func() (any, error) {
		return computeTimeCountsBundle(ctx, col)
	})
	if err != nil {
		return timeCountsBundle{}, err
	}
	return v.(timeCountsBundle), nil
}

// ComputeTime answers COUNT, MIN, MAX, MEAN for a Time column. VAR/SD are
// not defined for time values (spec §4.10 scopes deviation to numeric).
func ComputeTime(ctx exec.Context, col temporal.TimeColumn, cache *Cache, wanted []Statistic) (map[Statistic]float64, error) {
	out := make(map[Statistic]float64, len(wanted))
	for _, stat := range wanted {
		switch stat {
		case Count, Min, Max, Mean:
			bundle, err := getTimeCountsBundle(ctx, col, cache)
			if err != nil {
				return nil, err
			}
			switch stat {
			case Count:
				out[Count] = float64(bundle.count)
			case Min:
				out[Min] = float64(bundle.min)
			case Max:
				out[Max] = float64(bundle.max)
			case Mean:
				out[Mean] = bundle.mean
			}
		default:
			return nil, unsupportedErrorf(stat)
		}
	}
	return out, nil
}

// dateTimeExtrema is the single-pass (count, min, max) reduction for
// DateTime columns: compound (seconds, nanos) keys compared lexicographically,
// matching the ordering DateTimeDense/DateTimeSparse.Sort already use.
type dateTimeExtrema struct {
	count      int64
	minSeconds int64
	minNanos   int32
	maxSeconds int64
	maxNanos   int32
}

func compareDateTime(aSec int64, aNanos int32, bSec int64, bNanos int32) int {
	switch {
	case aSec < bSec:
		return -1
	case aSec > bSec:
		return 1
	case aNanos < bNanos:
		return -1
	case aNanos > bNanos:
		return 1
	default:
		return 0
	}
}

// ComputeDateTime answers COUNT, MIN, MAX for a DateTime column (spec
// §4.6: no MEAN/VAR defined over calendar timestamps). The result for
// MIN/MAX is expressed as seconds-since-epoch; callers needing the
// sub-second component should re-derive it via the column's own Sort +
// Fill, since a single float64 cannot carry both fields losslessly.
func ComputeDateTime(ctx exec.Context, col temporal.DateTimeColumn, cache *Cache, wanted []Statistic) (map[Statistic]float64, error) {
	v, err := cache.GetOrCompute(statCountsBundle, func() (any, error) {
		return computeDateTimeExtrema(ctx, col)
	})
	if err != nil {
		return nil, err
	}
	extrema := v.(dateTimeExtrema)

	out := make(map[Statistic]float64, len(wanted))
	for _, stat := range wanted {
		switch stat {
		case Count:
			out[Count] = float64(extrema.count)
		case Min:
			out[Min] = float64(extrema.minSeconds)
		case Max:
			out[Max] = float64(extrema.maxSeconds)
		default:
			return nil, unsupportedErrorf(stat)
		}
	}
	return out, nil
}

func computeDateTimeExtrema(ctx exec.Context, col temporal.DateTimeColumn) (dateTimeExtrema, error) {
	size := int(col.Size())
	ranges := splitRows(size, ctx.Parallelism())
	if len(ranges) == 0 {
		return dateTimeExtrema{minSeconds: temporal.Missing, maxSeconds: temporal.Missing}, nil
	}

	tasks := make([]exec.Task, len(ranges))
	for i, r := range ranges {
		r := r
		tasks[i] = func(taskCtx exec.Context) (any, error) {
			if err := taskCtx.RequireActive(); err != nil {
				return nil, err
			}
			n := r[1] - r[0]
			secs := make([]int64, n)
			nanos := make([]int32, n)
			col.FillSeconds(secs, r[0], 0, 1)
			col.FillNanos(nanos, r[0], 0, 1)

			local := dateTimeExtrema{minSeconds: temporal.Missing, maxSeconds: temporal.Missing}
			first := true
			for i, s := range secs {
				if s == temporal.Missing {
					continue
				}
				local.count++
				if first || compareDateTime(s, nanos[i], local.minSeconds, local.minNanos) < 0 {
					local.minSeconds, local.minNanos = s, nanos[i]
				}
				if first || compareDateTime(s, nanos[i], local.maxSeconds, local.maxNanos) > 0 {
					local.maxSeconds, local.maxNanos = s, nanos[i]
				}
				first = false
			}
			return local, nil
		}
	}
	results, err := ctx.Call(tasks)
	if err != nil {
		return dateTimeExtrema{}, err
	}

	total := dateTimeExtrema{minSeconds: temporal.Missing, maxSeconds: temporal.Missing}
	first := true
	for _, r := range results {
		local := r.(dateTimeExtrema)
		if local.count == 0 {
			continue
		}
		total.count += local.count
		if first || compareDateTime(local.minSeconds, local.minNanos, total.minSeconds, total.minNanos) < 0 {
			total.minSeconds, total.minNanos = local.minSeconds, local.minNanos
		}
		if first || compareDateTime(local.maxSeconds, local.maxNanos, total.maxSeconds, total.maxNanos) > 0 {
			total.maxSeconds, total.maxNanos = local.maxSeconds, local.maxNanos
		}
		first = false
	}
	return total, nil
}
