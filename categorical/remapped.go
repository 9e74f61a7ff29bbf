package categorical

import (
	"math"

	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/dictionary"
	"github.com/vectorframe/column/mapping"
)

// Remapped is the categorical family's value-transform view (spec §4.4
// RemappedCategorical): a backing indexSource (Dense or Sparse) plus an
// indexRemap layer reinterpreting raw indices against newDict. Unlike
// Mapped, it backs onto any indexSource since it only needs per-row raw
// index lookup, not row selection.
type Remapped struct {
	backing    indexSource
	newDict    dictionary.Interface
	indexRemap []int32
	typ        core.Type
}

var (
	_ Column      = (*Remapped)(nil)
	_ indexSource = (*Remapped)(nil)
)

func newRemapped(backing indexSource, newDict dictionary.Interface, indexRemap []int32) *Remapped {
	return &Remapped{backing: backing, newDict: newDict, indexRemap: indexRemap, typ: backing.Type()}
}

func (r *Remapped) Type() core.Type                  { return r.typ }
func (r *Remapped) Category() core.Category          { return core.CategoryCategorical }
func (r *Remapped) Size() uint32                     { return r.backing.Size() }
func (r *Remapped) Format() core.Format              { return core.FormatRemapped }
func (r *Remapped) Capabilities() core.Capability    { return capabilitiesFor(r.typ) }
func (r *Remapped) IndexFormat() IndexFormat         { return indexFormatOf(r.backing) }
func (r *Remapped) Dictionary() dictionary.Interface { return r.newDict }

func (r *Remapped) remapOne(raw int32) int32 {
	if raw < 0 || int(raw) >= len(r.indexRemap) {
		return 0
	}
	return r.indexRemap[raw]
}

func (r *Remapped) rawIndexAt(row int) int32 {
	return r.remapOne(r.backing.rawIndexAt(row))
}

func (r *Remapped) FillIndex(dst []int32, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	size := int(r.backing.Size())
	for pos >= 0 && pos < len(dst) && row >= 0 && row < size {
		dst[pos] = r.rawIndexAt(row)
		pos += step
		row++
		n++
	}
	return n
}

func (r *Remapped) FillFloat(dst []float64, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	size := int(r.backing.Size())
	for pos >= 0 && pos < len(dst) && row >= 0 && row < size {
		idx := r.rawIndexAt(row)
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

func (r *Remapped) FillObject(dst []any, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	size := int(r.backing.Size())
	for pos >= 0 && pos < len(dst) && row >= 0 && row < size {
		dst[pos] = r.newDict.Get(r.rawIndexAt(row))
		pos += step
		row++
		n++
	}
	return n
}

// Map promotes to RemappedMapped when the backing is Dense (keeping depth
// at two layers: row-mapping plus value-remap), and eagerly materializes to
// Dense when the backing is Sparse, since RemappedMapped is defined only
// over a Dense backing (spec §4.4's depth bound).
func (r *Remapped) Map(m mapping.Mapping, preferView bool) (Column, error) {
	if dense, ok := r.backing.(*Dense); ok {
		return newRemappedMapped(dense, m, r.newDict, r.indexRemap), nil
	}

	n := len(m)
	indices := make([]int32, n)
	for i, idx := range m {
		if mapping.InBounds(idx, int(r.backing.Size())) {
			indices[i] = r.rawIndexAt(int(idx))
		}
	}
	return NewDense(r.typ, indices, r.newDict, r.IndexFormat())
}

func (r *Remapped) Sort(order Order) ([]uint32, error) {
	return sortBySource(r, r.newDict, r.typ, order)
}

// Remap composes the new indexRemap on top of the existing one rather than
// nesting another Remapped layer (spec §4.4's "Remap composition").
func (r *Remapped) Remap(newDict dictionary.Interface, indexRemap []int32) (Column, error) {
	composed := composeIndexRemap(r.indexRemap, indexRemap)
	return newRemapped(r.backing, newDict, composed), nil
}

func (r *Remapped) SwapDictionary(newDict dictionary.Interface) (Column, error) {
	return swapDictionary(r, newDict)
}

func (r *Remapped) MergeDictionaries(other dictionary.Interface) (Column, error) {
	return mergeDictionaries(r, other)
}

func (r *Remapped) ToBoolean(positive any) (Column, error) {
	return toBoolean(r, positive)
}

// indexFormatOf recovers the declared IndexFormat of any indexSource,
// defaulting to I32 for views that don't carry one explicitly.
func indexFormatOf(src indexSource) IndexFormat {
	switch v := src.(type) {
	case *Dense:
		return v.format
	case *Sparse:
		return v.format
	case *Mapped:
		return v.IndexFormat()
	case *Remapped:
		return v.IndexFormat()
	case *RemappedMapped:
		return v.IndexFormat()
	default:
		return I32
	}
}
