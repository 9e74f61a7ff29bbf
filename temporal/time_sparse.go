package temporal

import (
	"fmt"
	"sort"

	"github.com/vectorframe/column/bitmap"
	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/mapping"
)

// TimeSparse is the Time family's default-value-elided representation,
// structurally identical to numeric.Sparse over int64 instead of float64.
type TimeSparse struct {
	typ              core.Type
	size             int
	defaultValue     int64
	bm               *bitmap.Bitmap
	nonDefaultRows   []uint32
	nonDefaultValues []int64
}

var _ TimeColumn = (*TimeSparse)(nil)

func NewTimeSparse(typ core.Type, size int, defaultValue int64, nonDefaultRows []uint32, nonDefaultValues []int64) (*TimeSparse, error) {
	if _, ok := core.Lookup(typ); !ok {
		return nil, shapeErrorf("NewTimeSparse: unregistered type %v", typ)
	}
	if err := validateNanosOfDay(defaultValue); err != nil {
		return nil, err
	}
	if len(nonDefaultRows) != len(nonDefaultValues) {
		return nil, shapeErrorf("NewTimeSparse: %d non-default rows but %d values", len(nonDefaultRows), len(nonDefaultValues))
	}
	for _, v := range nonDefaultValues {
		if err := validateNanosOfDay(v); err != nil {
			return nil, err
		}
	}
	bm, err := bitmap.New(defaultValue == Missing, nonDefaultRows, size)
	if err != nil {
		return nil, fmt.Errorf("temporal.NewTimeSparse: %w", err)
	}
	return &TimeSparse{
		typ: typ, size: size, defaultValue: defaultValue, bm: bm,
		nonDefaultRows: nonDefaultRows, nonDefaultValues: nonDefaultValues,
	}, nil
}

func (s *TimeSparse) Type() core.Type               { return s.typ }
func (s *TimeSparse) Category() core.Category       { return core.CategoryNumeric }
func (s *TimeSparse) Size() uint32                  { return uint32(s.size) }
func (s *TimeSparse) Format() core.Format           { return core.FormatSparse }
func (s *TimeSparse) Capabilities() core.Capability { return capabilitiesFor(s.typ) }

func (s *TimeSparse) DefaultValue() int64 { return s.defaultValue }

func (s *TimeSparse) valueAt(row int) int64 {
	if idx := s.bm.Get(row); idx >= 0 {
		return s.nonDefaultValues[idx]
	}
	return s.defaultValue
}

func (s *TimeSparse) Fill(dst []int64, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < s.size {
		dst[pos] = s.valueAt(row)
		pos += step
		row++
		n++
	}
	return n
}

func (s *TimeSparse) Map(m mapping.Mapping, preferView bool) (TimeColumn, error) {
	n := len(m)
	values := make([]int64, n)
	survivorRows := make([]uint32, 0, n)
	survivorValues := make([]int64, 0, n)
	for i, idx := range m {
		v := Missing
		if mapping.InBounds(idx, s.size) {
			v = s.valueAt(int(idx))
		}
		values[i] = v
		if v != s.defaultValue {
			survivorRows = append(survivorRows, uint32(i))
			survivorValues = append(survivorValues, v)
		}
	}

	density := 0.0
	if n > 0 {
		density = float64(len(survivorRows)) / float64(n)
	}
	if density > MaxDensityDoubleSparse {
		return NewTimeDense(s.typ, values)
	}
	return NewTimeSparse(s.typ, n, s.defaultValue, survivorRows, survivorValues)
}

// Sort implements the default-block splice strategy shared across this
// module's sparse representations.
func (s *TimeSparse) Sort(order Order) ([]uint32, error) {
	const defaultMarker int32 = -1
	type entry struct {
		val int64
		row int32
	}

	entries := make([]entry, len(s.nonDefaultRows)+1)
	for i, r := range s.nonDefaultRows {
		entries[i] = entry{val: s.nonDefaultValues[i], row: int32(r)}
	}
	entries[len(s.nonDefaultRows)] = entry{val: s.defaultValue, row: defaultMarker}

	sort.SliceStable(entries, func(i, j int) bool {
		return timeLess(entries[i].val, entries[j].val, order)
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
