package numeric

import (
	"fmt"
	"math"
	"sort"

	"github.com/vectorframe/column/bitmap"
	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/mapping"
)

// Sparse is the numeric family's default-value-elided representation
// (spec §4.3 SparseNumeric): every row holds defaultValue unless its index
// appears among nonDefaultRows, in which case it holds the parallel entry
// in nonDefaultValues. Presence lookup is O(1) via bitmap.Bitmap.
type Sparse struct {
	typ              core.Type
	size             int
	defaultValue     float64
	bm               *bitmap.Bitmap
	nonDefaultRows   []uint32
	nonDefaultValues []float64
}

var _ Column = (*Sparse)(nil)

// NewSparse builds a Sparse column. nonDefaultRows must be strictly
// ascending and in range [0, size); nonDefaultValues must be parallel to it
// and must not itself contain defaultValue (a row holding the default
// belongs in the implicit majority, not the explicit minority).
func NewSparse(typ core.Type, size int, defaultValue float64, nonDefaultRows []uint32, nonDefaultValues []float64) (*Sparse, error) {
	if _, ok := core.Lookup(typ); !ok {
		return nil, shapeErrorf("NewSparse: unregistered type %v", typ)
	}
	if len(nonDefaultRows) != len(nonDefaultValues) {
		return nil, shapeErrorf("NewSparse: %d non-default rows but %d values", len(nonDefaultRows), len(nonDefaultValues))
	}
	bm, err := bitmap.New(math.IsNaN(defaultValue), nonDefaultRows, size)
	if err != nil {
		return nil, fmt.Errorf("numeric.NewSparse: %w", err)
	}
	return &Sparse{
		typ:              typ,
		size:             size,
		defaultValue:     defaultValue,
		bm:               bm,
		nonDefaultRows:   nonDefaultRows,
		nonDefaultValues: nonDefaultValues,
	}, nil
}

func (s *Sparse) Type() core.Type               { return s.typ }
func (s *Sparse) Category() core.Category       { return core.CategoryNumeric }
func (s *Sparse) Size() uint32                  { return uint32(s.size) }
func (s *Sparse) Format() core.Format           { return core.FormatSparse }
func (s *Sparse) Capabilities() core.Capability { return capabilitiesFor(s.typ) }

// DefaultValue returns the value every non-listed row carries.
func (s *Sparse) DefaultValue() float64 { return s.defaultValue }

func (s *Sparse) valueAt(row int) float64 {
	if idx := s.bm.Get(row); idx >= 0 {
		return s.nonDefaultValues[idx]
	}
	return s.defaultValue
}

func (s *Sparse) Fill(dst []float64, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row := rowOffset
	pos := arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < s.size {
		dst[pos] = s.valueAt(row)
		pos += step
		row++
		n++
	}
	return n
}

func isDefault(v, defaultValue float64) bool {
	if math.IsNaN(defaultValue) {
		return math.IsNaN(v)
	}
	return v == defaultValue
}

// Map implements spec §4.3's sparse mapping rule: the survivor density
// among the mapped rows decides the result representation directly,
// materializing Dense above MaxDensityDoubleSparse and a fresh Sparse at or
// below it. Unlike Dense.Map, a Sparse column never produces a lazy
// MappedNumeric view (a view's backing must itself be Dense).
func (s *Sparse) Map(m mapping.Mapping, preferView bool) (Column, error) {
	n := len(m)
	values := make([]float64, n)
	survivorRows := make([]uint32, 0, n)
	survivorValues := make([]float64, 0, n)
	for i, idx := range m {
		v := math.NaN()
		if mapping.InBounds(idx, s.size) {
			v = s.valueAt(int(idx))
		}
		values[i] = v
		if !isDefault(v, s.defaultValue) {
			survivorRows = append(survivorRows, uint32(i))
			survivorValues = append(survivorValues, v)
		}
	}

	density := 0.0
	if n > 0 {
		density = float64(len(survivorRows)) / float64(n)
	}
	if density > MaxDensityDoubleSparse {
		return NewDense(s.typ, values)
	}
	return NewSparse(s.typ, n, s.defaultValue, survivorRows, survivorValues)
}

// Sort implements spec §4.5's splice strategy: sort the non-default values
// plus one sentinel standing in for the whole default block, locate where
// that sentinel lands, then splice every default row (in original row
// order) in as one contiguous run at that position.
func (s *Sparse) Sort(order Order) ([]uint32, error) {
	const defaultMarker int32 = -1
	type entry struct {
		val float64
		row int32
	}

	entries := make([]entry, len(s.nonDefaultRows)+1)
	for i, r := range s.nonDefaultRows {
		entries[i] = entry{val: s.nonDefaultValues[i], row: int32(r)}
	}
	entries[len(s.nonDefaultRows)] = entry{val: s.defaultValue, row: defaultMarker}

	sort.SliceStable(entries, func(i, j int) bool {
		return valueLess(entries[i].val, entries[j].val, order)
	})

	blockPos := len(entries) - 1
	for i, e := range entries {
		if e.row == defaultMarker {
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
