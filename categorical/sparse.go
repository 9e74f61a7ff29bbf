package categorical

import (
	"fmt"
	"math"
	"sort"

	"github.com/vectorframe/column/bitmap"
	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/dictionary"
	"github.com/vectorframe/column/mapping"
)

// Sparse is the categorical family's default-index-elided representation
// (spec §4.4 SparseCategorical). Only U8/U16/I32 index formats may be
// sparse (spec §4.1); U2/U4 are dense-only.
type Sparse struct {
	typ               core.Type
	size              int
	defaultIndex      int32
	bm                *bitmap.Bitmap
	nonDefaultRows    []uint32
	nonDefaultIndices []int32
	dict              dictionary.Interface
	format            IndexFormat
}

var (
	_ Column      = (*Sparse)(nil)
	_ indexSource = (*Sparse)(nil)
)

// NewSparse builds a Sparse categorical column, rejecting U2/U4 formats
// (spec §4.4: "invoking sparse ... for those formats fails with
// Unsupported(format)").
func NewSparse(typ core.Type, size int, defaultIndex int32, nonDefaultRows []uint32, nonDefaultIndices []int32, dict dictionary.Interface, format IndexFormat) (*Sparse, error) {
	if _, ok := maxDensityFor(format); !ok {
		return nil, unsupportedErrorf("NewSparse", format)
	}
	if _, ok := core.Lookup(typ); !ok {
		return nil, shapeErrorf("NewSparse: unregistered type %v", typ)
	}
	if len(nonDefaultRows) != len(nonDefaultIndices) {
		return nil, shapeErrorf("NewSparse: %d non-default rows but %d indices", len(nonDefaultRows), len(nonDefaultIndices))
	}
	bm, err := bitmap.New(defaultIndex == 0, nonDefaultRows, size)
	if err != nil {
		return nil, fmt.Errorf("categorical.NewSparse: %w", err)
	}
	return &Sparse{
		typ: typ, size: size, defaultIndex: defaultIndex, bm: bm,
		nonDefaultRows: nonDefaultRows, nonDefaultIndices: nonDefaultIndices,
		dict: dict, format: format,
	}, nil
}

func (s *Sparse) Type() core.Type                  { return s.typ }
func (s *Sparse) Category() core.Category          { return core.CategoryCategorical }
func (s *Sparse) Size() uint32                     { return uint32(s.size) }
func (s *Sparse) Format() core.Format              { return core.FormatSparse }
func (s *Sparse) Capabilities() core.Capability    { return capabilitiesFor(s.typ) }
func (s *Sparse) IndexFormat() IndexFormat         { return s.format }
func (s *Sparse) Dictionary() dictionary.Interface { return s.dict }
func (s *Sparse) DefaultIndex() int32              { return s.defaultIndex }

func (s *Sparse) rawIndexAt(row int) int32 {
	if idx := s.bm.Get(row); idx >= 0 {
		return s.nonDefaultIndices[idx]
	}
	return s.defaultIndex
}

func (s *Sparse) FillIndex(dst []int32, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < s.size {
		dst[pos] = s.rawIndexAt(row)
		pos += step
		row++
		n++
	}
	return n
}

func (s *Sparse) FillFloat(dst []float64, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < s.size {
		idx := s.rawIndexAt(row)
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

func (s *Sparse) FillObject(dst []any, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < s.size {
		dst[pos] = s.dict.Get(s.rawIndexAt(row))
		pos += step
		row++
		n++
	}
	return n
}

// Map implements spec §4.4's per-format density rule: survivors above
// maxDensityFor(s.format) materialize Dense, otherwise a fresh Sparse.
func (s *Sparse) Map(m mapping.Mapping, preferView bool) (Column, error) {
	ceiling, _ := maxDensityFor(s.format)

	n := len(m)
	indices := make([]int32, n)
	survivorRows := make([]uint32, 0, n)
	survivorIndices := make([]int32, 0, n)
	for i, idx := range m {
		v := int32(0)
		if mapping.InBounds(idx, s.size) {
			v = s.rawIndexAt(int(idx))
		}
		indices[i] = v
		if v != s.defaultIndex {
			survivorRows = append(survivorRows, uint32(i))
			survivorIndices = append(survivorIndices, v)
		}
	}

	density := 0.0
	if n > 0 {
		density = float64(len(survivorRows)) / float64(n)
	}
	if density > ceiling {
		return NewDense(s.typ, indices, s.dict, s.format)
	}
	return NewSparse(s.typ, n, s.defaultIndex, survivorRows, survivorIndices, s.dict, s.format)
}

// Sort implements the same default-block splice strategy as
// numeric.Sparse.Sort, ordering by dictionary value instead of magnitude.
func (s *Sparse) Sort(order Order) ([]uint32, error) {
	if !capabilitiesFor(s.typ).Has(core.CapSortable) {
		return nil, fmt.Errorf("categorical: Sort: %w", core.ErrUnsupported)
	}
	cmp := comparatorFor(s.typ)

	const marker int32 = -1
	type entry struct {
		idx int32
		row int32
	}
	entries := make([]entry, len(s.nonDefaultRows)+1)
	for i, r := range s.nonDefaultRows {
		entries[i] = entry{idx: s.nonDefaultIndices[i], row: int32(r)}
	}
	entries[len(s.nonDefaultRows)] = entry{idx: s.defaultIndex, row: marker}

	sort.SliceStable(entries, func(i, j int) bool {
		vi, vj := s.dict.Get(entries[i].idx), s.dict.Get(entries[j].idx)
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

	blockPos := len(entries) - 1
	for i, e := range entries {
		if e.row == marker {
			blockPos = i
			break
		}
	}

	present := make(map[uint32]struct{}, len(s.nonDefaultRows))
	for _, r := range s.nonDefaultRows {
		present[r] = struct{}{}
	}
	complement := make([]uint32, 0, s.size-len(s.nonDefaultRows))
	for r := 0; r < s.size; r++ {
		if _, ok := present[uint32(r)]; !ok {
			complement = append(complement, uint32(r))
		}
	}

	perm := make([]uint32, 0, s.size)
	for i := 0; i < blockPos; i++ {
		perm = append(perm, uint32(entries[i].row))
	}
	perm = append(perm, complement...)
	for i := blockPos + 1; i < len(entries); i++ {
		perm = append(perm, uint32(entries[i].row))
	}
	return perm, nil
}

func (s *Sparse) Remap(newDict dictionary.Interface, indexRemap []int32) (Column, error) {
	return newRemapped(s, newDict, indexRemap), nil
}

func (s *Sparse) SwapDictionary(newDict dictionary.Interface) (Column, error) {
	return swapDictionary(s, newDict)
}

func (s *Sparse) MergeDictionaries(other dictionary.Interface) (Column, error) {
	return mergeDictionaries(s, other)
}

func (s *Sparse) ToBoolean(positive any) (Column, error) {
	return toBoolean(s, positive)
}
