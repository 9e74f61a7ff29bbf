package categorical

import (
	"context"
	"math"

	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/dictionary"
	"github.com/vectorframe/column/mapping"
)

// Mapped is the categorical family's lazy row-selection view (spec §4.4
// MappedCategorical): a Dense backing plus a Mapping, values computed on
// demand. Its own merge cache de-duplicates concurrent Map calls against
// this same view (spec §4.8).
type Mapped struct {
	backing *Dense
	dict    dictionary.Interface
	m       mapping.Mapping
	cache   *mapping.Cache
}

var (
	_ Column      = (*Mapped)(nil)
	_ indexSource = (*Mapped)(nil)
)

func newMapped(backing *Dense, m mapping.Mapping) *Mapped {
	return &Mapped{backing: backing, dict: backing.dict, m: m, cache: mapping.NewCache()}
}

func (md *Mapped) Type() core.Type                  { return md.backing.typ }
func (md *Mapped) Category() core.Category          { return core.CategoryCategorical }
func (md *Mapped) Size() uint32                     { return uint32(len(md.m)) }
func (md *Mapped) Format() core.Format              { return core.FormatMapped }
func (md *Mapped) Capabilities() core.Capability    { return capabilitiesFor(md.backing.typ) }
func (md *Mapped) IndexFormat() IndexFormat         { return md.backing.format }
func (md *Mapped) Dictionary() dictionary.Interface { return md.dict }

func (md *Mapped) rawIndexAt(row int) int32 {
	if row < 0 || row >= len(md.m) {
		return 0
	}
	idx := md.m[row]
	if !mapping.InBounds(idx, len(md.backing.indices)) {
		return 0
	}
	return md.backing.indices[idx]
}

func (md *Mapped) FillIndex(dst []int32, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < len(md.m) {
		dst[pos] = md.rawIndexAt(row)
		pos += step
		row++
		n++
	}
	return n
}

func (md *Mapped) FillFloat(dst []float64, rowOffset, arrayOffset, step int) int {
	tmp := make([]int32, len(dst))
	n := md.FillIndex(tmp, rowOffset, 0, 1)
	pos := arrayOffset
	for i := 0; i < n; i++ {
		if pos < 0 || pos >= len(dst) {
			break
		}
		if tmp[i] == 0 {
			dst[pos] = math.NaN()
		} else {
			dst[pos] = float64(tmp[i])
		}
		pos += step
	}
	return n
}

func (md *Mapped) FillObject(dst []any, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < len(md.m) {
		dst[pos] = md.dict.Get(md.rawIndexAt(row))
		pos += step
		row++
		n++
	}
	return n
}

// Map composes m2 with this view's existing mapping through the shared
// merge cache (spec §4.8), then defers the view-vs-copy decision to the
// Dense backing so depth never exceeds one Mapping layer.
func (md *Mapped) Map(m2 mapping.Mapping, preferView bool) (Column, error) {
	merged, err := md.cache.Compose(context.Background(), m2, md.m)
	if err != nil {
		return nil, err
	}
	return md.backing.Map(merged, preferView)
}

func (md *Mapped) Sort(order Order) ([]uint32, error) {
	return sortBySource(md, md.dict, md.backing.typ, order)
}

// Remap promotes directly to RemappedMapped (spec §4.4's depth bound):
// rather than nest a remap layer over a mapped view, the row mapping and
// the new value-remap layer sit side by side over the same Dense backing.
func (md *Mapped) Remap(newDict dictionary.Interface, indexRemap []int32) (Column, error) {
	return newRemappedMapped(md.backing, md.m, newDict, indexRemap), nil
}

func (md *Mapped) SwapDictionary(newDict dictionary.Interface) (Column, error) {
	return swapDictionary(md, newDict)
}

func (md *Mapped) MergeDictionaries(other dictionary.Interface) (Column, error) {
	return mergeDictionaries(md, other)
}

func (md *Mapped) ToBoolean(positive any) (Column, error) {
	return toBoolean(md, positive)
}
