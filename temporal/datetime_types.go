package temporal

import (
	"sort"

	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/mapping"
)

// DateTimeColumn is the C6 family surface: seconds-since-epoch per row, plus
// an optional dense nanos-of-second array when the column declares
// sub-second (high) precision.
type DateTimeColumn interface {
	core.Column
	HighPrecision() bool
	FillSeconds(dst []int64, rowOffset, arrayOffset, step int) int
	FillNanos(dst []int32, rowOffset, arrayOffset, step int) int
	Map(m mapping.Mapping, preferView bool) (DateTimeColumn, error)
	Sort(order Order) ([]uint32, error)
}

func validateNanosOfSecond(v int32) error {
	if v < 0 || v > MaxNanosOfSecond {
		return rangeErrorf("validateNanosOfSecond", int64(v))
	}
	return nil
}

// sortEqualSecondsRunsByNanos implements spec §4.5's second pass for
// high-precision sort: within every maximal contiguous run of perm sharing
// the same seconds value, stably re-sort by nanos using the same order.
func sortEqualSecondsRunsByNanos(perm []uint32, secondsAt func(row uint32) int64, nanosAt func(row uint32) int32, order Order) {
	n := len(perm)
	i := 0
	for i < n {
		j := i + 1
		for j < n && secondsAt(perm[j]) == secondsAt(perm[i]) && secondsAt(perm[i]) != Missing {
			j++
		}
		if j-i > 1 {
			run := perm[i:j]
			sort.SliceStable(run, func(a, b int) bool {
				return timeLess(int64(nanosAt(run[a])), int64(nanosAt(run[b])), order)
			})
		}
		i = j
	}
}
