package stats

import (
	"github.com/vectorframe/column/exec"
	"github.com/vectorframe/column/object"
)

// ComputeObject answers COUNT for an object column (spec §4.10 scopes
// object-family statistics to counting non-nil rows; object values have no
// defined ordering or arithmetic in general, so MIN/MAX/MEAN etc. are not
// offered here).
func ComputeObject(ctx exec.Context, col object.Column, cache *Cache, wanted []Statistic) (map[Statistic]float64, error) {
	out := make(map[Statistic]float64, len(wanted))
	for _, stat := range wanted {
		if stat != Count {
			return nil, unsupportedErrorf(stat)
		}
		v, err := cache.GetOrCompute(Count, func() (any, error) {
			return computeObjectCount(ctx, col)
		})
		if err != nil {
			return nil, err
		}
		out[Count] = v.(float64)
	}
	return out, nil
}

func computeObjectCount(ctx exec.Context, col object.Column) (float64, error) {
	size := int(col.Size())
	ranges := splitRows(size, ctx.Parallelism())
	if len(ranges) == 0 {
		return 0, nil
	}

	tasks := make([]exec.Task, len(ranges))
	for i, r := range ranges {
		r := r
		tasks[i] = func(taskCtx exec.Context) (any, error) {
			if err := taskCtx.RequireActive(); err != nil {
				return nil, err
			}
			buf := make([]any, r[1]-r[0])
			col.Fill(buf, r[0], 0, 1)
			var count int64
			for _, v := range buf {
				if v != nil {
					count++
				}
			}
			return count, nil
		}
	}
	results, err := ctx.Call(tasks)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, r := range results {
		total += r.(int64)
	}
	return float64(total), nil
}
