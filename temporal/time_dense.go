package temporal

import (
	"sort"

	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/mapping"
)

// TimeDense is the Time family's flat representation.
type TimeDense struct {
	typ    core.Type
	values []int64
}

var _ TimeColumn = (*TimeDense)(nil)

// NewTimeDense validates every value against the nanos-of-day domain (spec
// §4.5: a value outside [0, 86_399_999_999_999], other than Missing, fails
// with a range error).
func NewTimeDense(typ core.Type, values []int64) (*TimeDense, error) {
	if _, ok := core.Lookup(typ); !ok {
		return nil, shapeErrorf("NewTimeDense: unregistered type %v", typ)
	}
	for _, v := range values {
		if err := validateNanosOfDay(v); err != nil {
			return nil, err
		}
	}
	return &TimeDense{typ: typ, values: values}, nil
}

func (d *TimeDense) Type() core.Type               { return d.typ }
func (d *TimeDense) Category() core.Category       { return core.CategoryNumeric }
func (d *TimeDense) Size() uint32                  { return uint32(len(d.values)) }
func (d *TimeDense) Format() core.Format           { return core.FormatDense }
func (d *TimeDense) Capabilities() core.Capability { return capabilitiesFor(d.typ) }

func (d *TimeDense) Values() []int64 { return d.values }

func (d *TimeDense) Fill(dst []int64, rowOffset, arrayOffset, step int) int {
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
// §6.3's MappingThreshold).
func (d *TimeDense) Map(m mapping.Mapping, preferView bool) (TimeColumn, error) {
	ratio := 0.0
	if len(d.values) > 0 {
		ratio = float64(len(m)) / float64(len(d.values))
	}
	if ratio >= MappingThreshold && preferView {
		return newTimeMapped(d, m), nil
	}
	applied := mapping.Apply(d.values, m, Missing)
	return NewTimeDense(d.typ, applied)
}

func (d *TimeDense) Sort(order Order) ([]uint32, error) {
	perm := make([]uint32, len(d.values))
	for i := range perm {
		perm[i] = uint32(i)
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return timeLess(d.values[perm[i]], d.values[perm[j]], order)
	})
	return perm, nil
}
