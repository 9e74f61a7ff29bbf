package categorical

import (
	"math"

	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/dictionary"
	"github.com/vectorframe/column/mapping"
)

// Dense is the categorical family's flat representation (spec §4.4
// DenseCategorical): one dictionary index per row, index 0 meaning null.
type Dense struct {
	typ     core.Type
	indices []int32
	dict    dictionary.Interface
	format  IndexFormat
}

var (
	_ Column      = (*Dense)(nil)
	_ indexSource = (*Dense)(nil)
)

// NewDense builds a Dense categorical column. indices is retained, not
// copied, matching the family's immutability invariant; every entry must
// fall within [0, dict.MaximalIndex()].
func NewDense(typ core.Type, indices []int32, dict dictionary.Interface, format IndexFormat) (*Dense, error) {
	if _, ok := core.Lookup(typ); !ok {
		return nil, shapeErrorf("NewDense: unregistered type %v", typ)
	}
	for _, idx := range indices {
		if idx < 0 || idx > dict.MaximalIndex() {
			return nil, shapeErrorf("NewDense: index %d out of dictionary range [0, %d]", idx, dict.MaximalIndex())
		}
	}
	return &Dense{typ: typ, indices: indices, dict: dict, format: format}, nil
}

func (d *Dense) Type() core.Type               { return d.typ }
func (d *Dense) Category() core.Category       { return core.CategoryCategorical }
func (d *Dense) Size() uint32                  { return uint32(len(d.indices)) }
func (d *Dense) Format() core.Format           { return core.FormatDense }
func (d *Dense) Capabilities() core.Capability { return capabilitiesFor(d.typ) }
func (d *Dense) IndexFormat() IndexFormat      { return d.format }
func (d *Dense) Dictionary() dictionary.Interface { return d.dict }

func (d *Dense) rawIndexAt(row int) int32 {
	if row < 0 || row >= len(d.indices) {
		return 0
	}
	return d.indices[row]
}

func (d *Dense) Indices() []int32 { return d.indices }

func (d *Dense) FillIndex(dst []int32, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < len(d.indices) {
		dst[pos] = d.indices[row]
		pos += step
		row++
		n++
	}
	return n
}

func (d *Dense) FillFloat(dst []float64, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < len(d.indices) {
		idx := d.indices[row]
		if idx == 0 {
			dst[pos] = math.NaN()
		} else {
			dst[pos] = float64(idx)
		}
		pos += step
		row++
		n++
	}
	return n
}

func (d *Dense) FillObject(dst []any, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < len(d.indices) {
		dst[pos] = d.dict.Get(d.indices[row])
		pos += step
		row++
		n++
	}
	return n
}

// Map implements the same view-vs-copy rule as numeric.Dense.Map (spec
// §6.3's MappingThreshold), with the missing fill being index 0 (null)
// rather than NaN.
func (d *Dense) Map(m mapping.Mapping, preferView bool) (Column, error) {
	ratio := 0.0
	if len(d.indices) > 0 {
		ratio = float64(len(m)) / float64(len(d.indices))
	}
	if ratio >= MappingThreshold && preferView {
		return newMapped(d, m), nil
	}
	applied := mapping.Apply(d.indices, m, int32(0))
	return NewDense(d.typ, applied, d.dict, d.format)
}

func (d *Dense) Sort(order Order) ([]uint32, error) {
	return sortBySource(d, d.dict, d.typ, order)
}

// Remap attaches a value-transform layer over this Dense column (spec
// §4.4): indices are untouched, only dictionary interpretation changes.
func (d *Dense) Remap(newDict dictionary.Interface, indexRemap []int32) (Column, error) {
	return newRemapped(d, newDict, indexRemap), nil
}

func (d *Dense) SwapDictionary(newDict dictionary.Interface) (Column, error) {
	return swapDictionary(d, newDict)
}

func (d *Dense) MergeDictionaries(other dictionary.Interface) (Column, error) {
	return mergeDictionaries(d, other)
}

func (d *Dense) ToBoolean(positive any) (Column, error) {
	return toBoolean(d, positive)
}
