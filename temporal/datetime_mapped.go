package temporal

import (
	"context"
	"sort"

	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/mapping"
)

// DateTimeMapped is the DateTime family's lazy row-selection view, always
// backing a DateTimeDense.
type DateTimeMapped struct {
	backing *DateTimeDense
	m       mapping.Mapping
	cache   *mapping.Cache
}

var _ DateTimeColumn = (*DateTimeMapped)(nil)

func newDateTimeMapped(backing *DateTimeDense, m mapping.Mapping) *DateTimeMapped {
	return &DateTimeMapped{backing: backing, m: m, cache: mapping.NewCache()}
}

func (md *DateTimeMapped) Type() core.Type               { return md.backing.typ }
func (md *DateTimeMapped) Category() core.Category       { return core.CategoryNumeric }
func (md *DateTimeMapped) Size() uint32                  { return uint32(len(md.m)) }
func (md *DateTimeMapped) Format() core.Format           { return core.FormatMapped }
func (md *DateTimeMapped) Capabilities() core.Capability { return capabilitiesFor(md.backing.typ) }
func (md *DateTimeMapped) HighPrecision() bool           { return md.backing.highPrecision }

func (md *DateTimeMapped) secondsAt(row int) int64 {
	if row < 0 || row >= len(md.m) {
		return Missing
	}
	idx := md.m[row]
	if !mapping.InBounds(idx, len(md.backing.seconds)) {
		return Missing
	}
	return md.backing.seconds[idx]
}

func (md *DateTimeMapped) nanosAt(row int) int32 {
	if row < 0 || row >= len(md.m) {
		return 0
	}
	idx := md.m[row]
	if !mapping.InBounds(idx, len(md.backing.seconds)) {
		return 0
	}
	return md.backing.nanosAt(int(idx))
}

func (md *DateTimeMapped) FillSeconds(dst []int64, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < len(md.m) {
		dst[pos] = md.secondsAt(row)
		pos += step
		row++
		n++
	}
	return n
}

func (md *DateTimeMapped) FillNanos(dst []int32, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < len(md.m) {
		dst[pos] = md.nanosAt(row)
		pos += step
		row++
		n++
	}
	return n
}

func (md *DateTimeMapped) Map(m2 mapping.Mapping, preferView bool) (DateTimeColumn, error) {
	merged, err := md.cache.Compose(context.Background(), m2, md.m)
	if err != nil {
		return nil, err
	}
	return md.backing.Map(merged, preferView)
}

func (md *DateTimeMapped) Sort(order Order) ([]uint32, error) {
	perm := make([]uint32, len(md.m))
	for i := range perm {
		perm[i] = uint32(i)
	}
	sort.SliceStable(perm, func(i, j int) bool {
		a, b := perm[i], perm[j]
		sa, sb := md.secondsAt(int(a)), md.secondsAt(int(b))
		if sa != sb {
			return timeLess(sa, sb, order)
		}
		if !md.backing.highPrecision {
			return false
		}
		return timeLess(int64(md.nanosAt(int(a))), int64(md.nanosAt(int(b))), order)
	})
	return perm, nil
}
