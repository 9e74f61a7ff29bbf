package categorical

import (
	"context"
	"math"

	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/dictionary"
	"github.com/vectorframe/column/mapping"
)

// RemappedMapped is the categorical family's final representation (spec
// §4.4 RemappedMappedCategorical): a Dense backing, a row-selection Mapping,
// and a value-remap layer, composed side by side rather than nested so
// depth never exceeds these two layers regardless of how many Map/Remap
// calls produced it.
type RemappedMapped struct {
	backing    *Dense
	rowMapping mapping.Mapping
	newDict    dictionary.Interface
	indexRemap []int32
	cache      *mapping.Cache
}

var (
	_ Column      = (*RemappedMapped)(nil)
	_ indexSource = (*RemappedMapped)(nil)
)

func newRemappedMapped(backing *Dense, rowMapping mapping.Mapping, newDict dictionary.Interface, indexRemap []int32) *RemappedMapped {
	return &RemappedMapped{
		backing: backing, rowMapping: rowMapping, newDict: newDict,
		indexRemap: indexRemap, cache: mapping.NewCache(),
	}
}

func (rm *RemappedMapped) Type() core.Type                  { return rm.backing.typ }
func (rm *RemappedMapped) Category() core.Category          { return core.CategoryCategorical }
func (rm *RemappedMapped) Size() uint32                     { return uint32(len(rm.rowMapping)) }
func (rm *RemappedMapped) Format() core.Format               { return core.FormatRemappedMapped }
func (rm *RemappedMapped) Capabilities() core.Capability     { return capabilitiesFor(rm.backing.typ) }
func (rm *RemappedMapped) IndexFormat() IndexFormat          { return rm.backing.format }
func (rm *RemappedMapped) Dictionary() dictionary.Interface  { return rm.newDict }

func (rm *RemappedMapped) remapOne(raw int32) int32 {
	if raw < 0 || int(raw) >= len(rm.indexRemap) {
		return 0
	}
	return rm.indexRemap[raw]
}

func (rm *RemappedMapped) rawIndexAt(row int) int32 {
	if row < 0 || row >= len(rm.rowMapping) {
		return 0
	}
	idx := rm.rowMapping[row]
	if !mapping.InBounds(idx, len(rm.backing.indices)) {
		return 0
	}
	return rm.remapOne(rm.backing.indices[idx])
}

func (rm *RemappedMapped) FillIndex(dst []int32, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < len(rm.rowMapping) {
		dst[pos] = rm.rawIndexAt(row)
		pos += step
		row++
		n++
	}
	return n
}

func (rm *RemappedMapped) FillFloat(dst []float64, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < len(rm.rowMapping) {
		idx := rm.rawIndexAt(row)
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

func (rm *RemappedMapped) FillObject(dst []any, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < len(rm.rowMapping) {
		dst[pos] = rm.newDict.Get(rm.rawIndexAt(row))
		pos += step
		row++
		n++
	}
	return n
}

// Map composes m2 with the existing row mapping through the shared merge
// cache, keeping the value-remap layer fixed underneath.
func (rm *RemappedMapped) Map(m2 mapping.Mapping, preferView bool) (Column, error) {
	merged, err := rm.cache.Compose(context.Background(), m2, rm.rowMapping)
	if err != nil {
		return nil, err
	}

	ratio := 0.0
	if len(rm.backing.indices) > 0 {
		ratio = float64(len(merged)) / float64(len(rm.backing.indices))
	}
	if ratio >= MappingThreshold && preferView {
		return newRemappedMapped(rm.backing, merged, rm.newDict, rm.indexRemap), nil
	}

	n := len(merged)
	indices := make([]int32, n)
	for i, idx := range merged {
		if mapping.InBounds(idx, len(rm.backing.indices)) {
			indices[i] = rm.remapOne(rm.backing.indices[idx])
		}
	}
	return NewDense(rm.backing.typ, indices, rm.newDict, rm.backing.format)
}

func (rm *RemappedMapped) Sort(order Order) ([]uint32, error) {
	return sortBySource(rm, rm.newDict, rm.backing.typ, order)
}

// Remap folds the new indexRemap onto the existing one (spec §4.4's "Remap
// composition"), leaving the row mapping untouched.
func (rm *RemappedMapped) Remap(newDict dictionary.Interface, indexRemap []int32) (Column, error) {
	composed := composeIndexRemap(rm.indexRemap, indexRemap)
	return newRemappedMapped(rm.backing, rm.rowMapping, newDict, composed), nil
}

func (rm *RemappedMapped) SwapDictionary(newDict dictionary.Interface) (Column, error) {
	return swapDictionary(rm, newDict)
}

func (rm *RemappedMapped) MergeDictionaries(other dictionary.Interface) (Column, error) {
	return mergeDictionaries(rm, other)
}

func (rm *RemappedMapped) ToBoolean(positive any) (Column, error) {
	return toBoolean(rm, positive)
}
