package object

import (
	"sort"

	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/mapping"
)

// Dense is the object family's flat representation: one value per row, nil
// meaning missing.
type Dense struct {
	typ    core.Type
	values []any
}

var _ Column = (*Dense)(nil)

func NewDense(typ core.Type, values []any) (*Dense, error) {
	if _, ok := core.Lookup(typ); !ok {
		return nil, shapeErrorf("NewDense: unregistered type %v", typ)
	}
	return &Dense{typ: typ, values: values}, nil
}

func (d *Dense) Type() core.Type               { return d.typ }
func (d *Dense) Category() core.Category       { return core.CategoryObject }
func (d *Dense) Size() uint32                  { return uint32(len(d.values)) }
func (d *Dense) Format() core.Format           { return core.FormatDense }
func (d *Dense) Capabilities() core.Capability { return capabilitiesFor(d.typ) }

func (d *Dense) Values() []any { return d.values }

func (d *Dense) Fill(dst []any, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < len(d.values) {
		dst[pos] = d.values[row]
		pos += step
		row++
		n++
	}
	return n
}

// Map implements the same view-vs-copy rule as numeric.Dense.Map (spec
// §6.3's MappingThreshold), with nil as the missing fill.
func (d *Dense) Map(m mapping.Mapping, preferView bool) (Column, error) {
	ratio := 0.0
	if len(d.values) > 0 {
		ratio = float64(len(m)) / float64(len(d.values))
	}
	if ratio >= MappingThreshold && preferView {
		return newMapped(d, m), nil
	}
	applied := mapping.Apply(d.values, m, any(nil))
	return NewDense(d.typ, applied)
}

// Sort requires typ to carry a registered comparator (spec §4.6); nil
// always sorts last regardless of order.
func (d *Dense) Sort(order Order) ([]uint32, error) {
	cmp, ok := comparatorFor(d.typ)
	if !ok {
		return nil, unsupportedErrorf("Sort")
	}
	perm := make([]uint32, len(d.values))
	for i := range perm {
		perm[i] = uint32(i)
	}
	sort.SliceStable(perm, func(i, j int) bool {
		vi, vj := d.values[perm[i]], d.values[perm[j]]
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
