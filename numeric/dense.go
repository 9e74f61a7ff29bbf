package numeric

import (
	"math"
	"sort"

	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/mapping"
)

// Dense is the numeric family's flat representation: one float64 per row,
// NaN marking missing values. It is the only backing a MappedNumeric view
// may wrap.
type Dense struct {
	typ    core.Type
	values []float64
}

var _ Column = (*Dense)(nil)

// NewDense wraps values as a Dense column of the given type. values is
// retained, not copied; callers must not mutate it afterwards, matching the
// column family's immutability invariant.
func NewDense(typ core.Type, values []float64) (*Dense, error) {
	if _, ok := core.Lookup(typ); !ok {
		return nil, shapeErrorf("NewDense: unregistered type %v", typ)
	}
	return &Dense{typ: typ, values: values}, nil
}

func (d *Dense) Type() core.Type             { return d.typ }
func (d *Dense) Category() core.Category     { return core.CategoryNumeric }
func (d *Dense) Size() uint32                { return uint32(len(d.values)) }
func (d *Dense) Format() core.Format         { return core.FormatDense }
func (d *Dense) Capabilities() core.Capability { return capabilitiesFor(d.typ) }

// Values exposes the backing slice read-only for consumers in the same
// module (sparsity heuristic, statistics engine, binary codec).
func (d *Dense) Values() []float64 { return d.values }

func (d *Dense) Fill(dst []float64, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row := rowOffset
	pos := arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < len(d.values) {
		dst[pos] = d.values[row]
		pos += step
		row++
		n++
	}
	return n
}

// Map implements spec §4.3/§6.3's view-vs-copy decision: below
// MappingThreshold the result is always materialized, even when preferView
// is set, since a tiny view would keep the whole backing array alive for
// little benefit; at or above the threshold, a view is returned only when
// preferView asks for one.
func (d *Dense) Map(m mapping.Mapping, preferView bool) (Column, error) {
	ratio := 0.0
	if len(d.values) > 0 {
		ratio = float64(len(m)) / float64(len(d.values))
	}
	if ratio >= MappingThreshold && preferView {
		return newMapped(d, m), nil
	}
	filled := mapping.Apply(d.values, m, math.NaN())
	return NewDense(d.typ, filled)
}

func (d *Dense) Sort(order Order) ([]uint32, error) {
	perm := make([]uint32, len(d.values))
	for i := range perm {
		perm[i] = uint32(i)
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return valueLess(d.values[perm[i]], d.values[perm[j]], order)
	})
	return perm, nil
}
