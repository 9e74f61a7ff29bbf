package temporal

import (
	"context"
	"sort"

	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/mapping"
)

// TimeMapped is the Time family's lazy row-selection view, structurally
// identical to numeric.Mapped.
type TimeMapped struct {
	backing *TimeDense
	m       mapping.Mapping
	cache   *mapping.Cache
}

var _ TimeColumn = (*TimeMapped)(nil)

func newTimeMapped(backing *TimeDense, m mapping.Mapping) *TimeMapped {
	return &TimeMapped{backing: backing, m: m, cache: mapping.NewCache()}
}

func (md *TimeMapped) Type() core.Type               { return md.backing.typ }
func (md *TimeMapped) Category() core.Category       { return core.CategoryNumeric }
func (md *TimeMapped) Size() uint32                  { return uint32(len(md.m)) }
func (md *TimeMapped) Format() core.Format           { return core.FormatMapped }
func (md *TimeMapped) Capabilities() core.Capability { return capabilitiesFor(md.backing.typ) }

func (md *TimeMapped) valueAt(row int) int64 {
	if row < 0 || row >= len(md.m) {
		return Missing
	}
	idx := md.m[row]
	if !mapping.InBounds(idx, len(md.backing.values)) {
		return Missing
	}
	return md.backing.values[idx]
}

func (md *TimeMapped) Fill(dst []int64, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < len(md.m) {
		dst[pos] = md.valueAt(row)
		pos += step
		row++
		n++
	}
	return n
}

func (md *TimeMapped) Map(m2 mapping.Mapping, preferView bool) (TimeColumn, error) {
	merged, err := md.cache.Compose(context.Background(), m2, md.m)
	if err != nil {
		return nil, err
	}
	return md.backing.Map(merged, preferView)
}

func (md *TimeMapped) Sort(order Order) ([]uint32, error) {
	perm := make([]uint32, len(md.m))
	for i := range perm {
		perm[i] = uint32(i)
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return timeLess(md.valueAt(int(perm[i])), md.valueAt(int(perm[j])), order)
	})
	return perm, nil
}
