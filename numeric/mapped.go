package numeric

import (
	"context"
	"math"
	"sort"

	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/mapping"
)

// Mapped is the numeric family's lazy view (spec §4.3 MappedNumeric): a
// Dense backing column plus a Mapping, with values computed on demand
// rather than copied at construction. Its own merge cache de-duplicates
// concurrent Map calls against this same view (spec §4.8).
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
func (md *Mapped) Category() core.Category       { return core.CategoryNumeric }
func (md *Mapped) Size() uint32                  { return uint32(len(md.m)) }
func (md *Mapped) Format() core.Format           { return core.FormatMapped }
func (md *Mapped) Capabilities() core.Capability { return capabilitiesFor(md.backing.typ) }

func (md *Mapped) valueAt(row int) float64 {
	if row < 0 || row >= len(md.m) {
		return math.NaN()
	}
	idx := md.m[row]
	if !mapping.InBounds(idx, len(md.backing.values)) {
		return math.NaN()
	}
	return md.backing.values[idx]
}

func (md *Mapped) Fill(dst []float64, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row := rowOffset
	pos := arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < len(md.m) {
		dst[pos] = md.valueAt(row)
		pos += step
		row++
		n++
	}
	return n
}

// Map composes the new mapping with this view's existing one through the
// shared merge cache (spec §4.8 step 1: "merged = Mapping.merge(m,
// self.mapping)") instead of nesting a second Mapped layer, then defers the
// view-vs-copy decision to the Dense backing so depth never exceeds one
// Mapping over one concrete column.
func (md *Mapped) Map(m2 mapping.Mapping, preferView bool) (Column, error) {
	merged, err := md.cache.Compose(context.Background(), m2, md.m)
	if err != nil {
		return nil, err
	}
	return md.backing.Map(merged, preferView)
}

func (md *Mapped) Sort(order Order) ([]uint32, error) {
	n := len(md.m)
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = md.valueAt(i)
	}
	perm := make([]uint32, n)
	for i := range perm {
		perm[i] = uint32(i)
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return valueLess(vals[perm[i]], vals[perm[j]], order)
	})
	return perm, nil
}
