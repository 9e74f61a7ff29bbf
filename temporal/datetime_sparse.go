package temporal

import (
	"fmt"
	"sort"

	"github.com/vectorframe/column/bitmap"
	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/mapping"
)

// DateTimeSparse encodes only the seconds array sparsely; nanos, when the
// column is high precision, are always dense (spec §4.5).
type DateTimeSparse struct {
	typ               core.Type
	size              int
	defaultSeconds    int64
	bm                *bitmap.Bitmap
	nonDefaultRows    []uint32
	nonDefaultSeconds []int64
	nanos             []int32
	highPrecision     bool
}

var _ DateTimeColumn = (*DateTimeSparse)(nil)

// NewDateTimeSparse builds a sparse DateTime column. nanos, when non-nil,
// must be dense over the full size (not just the non-default rows).
func NewDateTimeSparse(typ core.Type, size int, defaultSeconds int64, nonDefaultRows []uint32, nonDefaultSeconds []int64, nanos []int32) (*DateTimeSparse, error) {
	if _, ok := core.Lookup(typ); !ok {
		return nil, shapeErrorf("NewDateTimeSparse: unregistered type %v", typ)
	}
	if len(nonDefaultRows) != len(nonDefaultSeconds) {
		return nil, shapeErrorf("NewDateTimeSparse: %d non-default rows but %d seconds", len(nonDefaultRows), len(nonDefaultSeconds))
	}
	highPrecision := nanos != nil
	if highPrecision && len(nanos) != size {
		return nil, shapeErrorf("NewDateTimeSparse: %d nanos but column size %d", len(nanos), size)
	}
	bm, err := bitmap.New(defaultSeconds == Missing, nonDefaultRows, size)
	if err != nil {
		return nil, fmt.Errorf("temporal.NewDateTimeSparse: %w", err)
	}
	return &DateTimeSparse{
		typ: typ, size: size, defaultSeconds: defaultSeconds, bm: bm,
		nonDefaultRows: nonDefaultRows, nonDefaultSeconds: nonDefaultSeconds,
		nanos: nanos, highPrecision: highPrecision,
	}, nil
}

func (s *DateTimeSparse) Type() core.Type               { return s.typ }
func (s *DateTimeSparse) Category() core.Category       { return core.CategoryNumeric }
func (s *DateTimeSparse) Size() uint32                  { return uint32(s.size) }
func (s *DateTimeSparse) Format() core.Format           { return core.FormatSparse }
func (s *DateTimeSparse) Capabilities() core.Capability { return capabilitiesFor(s.typ) }
func (s *DateTimeSparse) HighPrecision() bool           { return s.highPrecision }

func (s *DateTimeSparse) secondsAt(row int) int64 {
	if idx := s.bm.Get(row); idx >= 0 {
		return s.nonDefaultSeconds[idx]
	}
	return s.defaultSeconds
}

func (s *DateTimeSparse) nanosAt(row int) int32 {
	if !s.highPrecision || row < 0 || row >= len(s.nanos) {
		return 0
	}
	return s.nanos[row]
}

func (s *DateTimeSparse) FillSeconds(dst []int64, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < s.size {
		dst[pos] = s.secondsAt(row)
		pos += step
		row++
		n++
	}
	return n
}

func (s *DateTimeSparse) FillNanos(dst []int32, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < s.size {
		dst[pos] = s.nanosAt(row)
		pos += step
		row++
		n++
	}
	return n
}

func (s *DateTimeSparse) Map(m mapping.Mapping, preferView bool) (DateTimeColumn, error) {
	n := len(m)
	seconds := make([]int64, n)
	var nanos []int32
	if s.highPrecision {
		nanos = make([]int32, n)
	}
	survivorRows := make([]uint32, 0, n)
	survivorSeconds := make([]int64, 0, n)
	for i, idx := range m {
		sec := Missing
		var nsec int32
		if mapping.InBounds(idx, s.size) {
			sec = s.secondsAt(int(idx))
			nsec = s.nanosAt(int(idx))
		}
		seconds[i] = sec
		if s.highPrecision {
			nanos[i] = nsec
		}
		if sec != s.defaultSeconds {
			survivorRows = append(survivorRows, uint32(i))
			survivorSeconds = append(survivorSeconds, sec)
		}
	}

	density := 0.0
	if n > 0 {
		density = float64(len(survivorRows)) / float64(n)
	}
	if density > MaxDensityDoubleSparse {
		return NewDateTimeDense(s.typ, seconds, nanos)
	}
	return NewDateTimeSparse(s.typ, n, s.defaultSeconds, survivorRows, survivorSeconds, nanos)
}

// Sort implements spec §4.5's two-phase strategy: splice-sort by seconds
// using the default-block strategy shared across this module's sparse
// representations, then stably re-sort equal-seconds runs by nanos.
func (s *DateTimeSparse) Sort(order Order) ([]uint32, error) {
	const defaultMarker int32 = -1
	type entry struct {
		val int64
		row int32
	}

	entries := make([]entry, len(s.nonDefaultRows)+1)
	for i, r := range s.nonDefaultRows {
		entries[i] = entry{val: s.nonDefaultSeconds[i], row: int32(r)}
	}
	entries[len(s.nonDefaultRows)] = entry{val: s.defaultSeconds, row: defaultMarker}

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

	if s.highPrecision {
		sortEqualSecondsRunsByNanos(perm, func(row uint32) int64 { return s.secondsAt(int(row)) }, func(row uint32) int32 { return s.nanosAt(int(row)) }, order)
	}
	return perm, nil
}
