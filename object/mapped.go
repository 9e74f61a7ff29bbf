package object

import (
	"context"
	"sort"

	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/mapping"
)

// Mapped is the object family's lazy row-selection view.
type Mapped struct {
	backing *Dense
	m       mapping.Mapping
	cache   *mapping.Cache
}

var _ Column = (*Mapped)(nil)

func newMapped(backing *Dense, m mapping.Mapping) *Mapped {
	return &Mapped{backing: backing, m: m, cache: mapping.NewCache()}
}

func (md *Mapped) Type() core.Type               { return md.backing.typ }
func (md *Mapped) Category() core.Category       { return core.CategoryObject }
func (md *Mapped) Size() uint32                  { return uint32(len(md.m)) }
func (md *Mapped) Format() core.Format           { return core.FormatMapped }
func (md *Mapped) Capabilities() core.Capability { return capabilitiesFor(md.backing.typ) }

func (md *Mapped) valueAt(row int) any {
	if row < 0 || row >= len(md.m) {
		return nil
	}
	idx := md.m[row]
	if !mapping.InBounds(idx, len(md.backing.values)) {
		return nil
	}
	return md.backing.values[idx]
}

func (md *Mapped) Fill(dst []any, rowOffset, arrayOffset, step int) int {
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

func (md *Mapped) Map(m2 mapping.Mapping, preferView bool) (Column, error) {
	merged, err := md.cache.Compose(context.Background(), m2, md.m)
	if err != nil {
		return nil, err
	}
	return md.backing.Map(merged, preferView)
}

func (md *Mapped) Sort(order Order) ([]uint32, error) {
	cmp, ok := comparatorFor(md.backing.typ)
	if !ok {
		return nil, unsupportedErrorf("Sort")
	}
	perm := make([]uint32, len(md.m))
	for i := range perm {
		perm[i] = uint32(i)
	}
	sort.SliceStable(perm, func(i, j int) bool {
		vi, vj := md.valueAt(int(perm[i])), md.valueAt(int(perm[j]))
		if vi == nil || vj == nil {
			if vi == nil && vj == nil {
				return false
			}
			return vj == nil
		}
		c := cmp(vi, vj)
		if order == Descending {
			return c > 0
		}
		return c < 0
	})
	return perm, nil
}
