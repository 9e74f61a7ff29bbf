package temporal

import (
	"sort"

	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/mapping"
)

// DateTimeDense is the DateTime family's flat representation: one seconds
// value per row plus, for high-precision columns, a parallel dense nanos
// array (spec §4.5).
type DateTimeDense struct {
	typ           core.Type
	seconds       []int64
	nanos         []int32
	highPrecision bool
}

var _ DateTimeColumn = (*DateTimeDense)(nil)

// NewDateTimeDense builds a low-precision column when nanos is nil, or a
// high-precision one when nanos is supplied (must be parallel to seconds,
// each in [0, 999_999_999]).
func NewDateTimeDense(typ core.Type, seconds []int64, nanos []int32) (*DateTimeDense, error) {
	if _, ok := core.Lookup(typ); !ok {
		return nil, shapeErrorf("NewDateTimeDense: unregistered type %v", typ)
	}
	highPrecision := nanos != nil
	if highPrecision {
		if len(nanos) != len(seconds) {
			return nil, shapeErrorf("NewDateTimeDense: %d seconds but %d nanos", len(seconds), len(nanos))
		}
		for i, n := range nanos {
			if seconds[i] == Missing {
				continue
			}
			if err := validateNanosOfSecond(n); err != nil {
				return nil, err
			}
		}
	}
	return &DateTimeDense{typ: typ, seconds: seconds, nanos: nanos, highPrecision: highPrecision}, nil
}

func (d *DateTimeDense) Type() core.Type               { return d.typ }
func (d *DateTimeDense) Category() core.Category       { return core.CategoryNumeric }
func (d *DateTimeDense) Size() uint32                  { return uint32(len(d.seconds)) }
func (d *DateTimeDense) Format() core.Format           { return core.FormatDense }
func (d *DateTimeDense) Capabilities() core.Capability { return capabilitiesFor(d.typ) }
func (d *DateTimeDense) HighPrecision() bool           { return d.highPrecision }

func (d *DateTimeDense) Seconds() []int64 { return d.seconds }
func (d *DateTimeDense) Nanos() []int32   { return d.nanos }

func (d *DateTimeDense) nanosAt(row int) int32 {
	if !d.highPrecision || row < 0 || row >= len(d.nanos) {
		return 0
	}
	return d.nanos[row]
}

func (d *DateTimeDense) FillSeconds(dst []int64, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < len(d.seconds) {
		dst[pos] = d.seconds[row]
		pos += step
		row++
		n++
	}
	return n
}

// FillNanos writes zeros throughout when the column lacks sub-second
// precision (spec §4.5).
func (d *DateTimeDense) FillNanos(dst []int32, rowOffset, arrayOffset, step int) int {
	if step <= 0 {
		step = 1
	}
	n := 0
	row, pos := rowOffset, arrayOffset
	for pos >= 0 && pos < len(dst) && row >= 0 && row < len(d.seconds) {
		dst[pos] = d.nanosAt(row)
		pos += step
		row++
		n++
	}
	return n
}

func (d *DateTimeDense) Map(m mapping.Mapping, preferView bool) (DateTimeColumn, error) {
	ratio := 0.0
	if len(d.seconds) > 0 {
		ratio = float64(len(m)) / float64(len(d.seconds))
	}
	if ratio >= MappingThreshold && preferView {
		return newDateTimeMapped(d, m), nil
	}

	seconds := mapping.Apply(d.seconds, m, Missing)
	var nanos []int32
	if d.highPrecision {
		nanos = mapping.Apply(d.nanos, m, int32(0))
	}
	return NewDateTimeDense(d.typ, seconds, nanos)
}

// Sort for a dense column compares the full (seconds, nanos) compound key
// directly; only the sparse representation needs the two-phase splice
// strategy (spec §4.5).
func (d *DateTimeDense) Sort(order Order) ([]uint32, error) {
	perm := make([]uint32, len(d.seconds))
	for i := range perm {
		perm[i] = uint32(i)
	}
	sort.SliceStable(perm, func(i, j int) bool {
		a, b := perm[i], perm[j]
		if d.seconds[a] != d.seconds[b] {
			return timeLess(d.seconds[a], d.seconds[b], order)
		}
		if !d.highPrecision {
			return false
		}
		return timeLess(int64(d.nanosAt(int(a))), int64(d.nanosAt(int(b))), order)
	})
	return perm, nil
}
