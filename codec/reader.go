package codec

import (
	"encoding/binary"
	"math"

	"github.com/vectorframe/column/categorical"
	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/dictionary"
	"github.com/vectorframe/column/numeric"
	"github.com/vectorframe/column/temporal"
)

// RealReader incrementally builds a numeric column of declared length from
// one or more byte buffers (spec §6.2's readReal/readInteger53Bit): each
// Put call decodes as many complete 8-byte IEEE-754 doubles as buf holds,
// until the declared length is reached. Build pads any unfilled tail with
// NaN.
type RealReader struct {
	typ    core.Type
	length int
	values []float64
}

// NewRealReader returns a reader for a REAL (or, with typ ==
// core.TypeInteger53Bit, an INTEGER_53_BIT) column of the given declared
// row count.
func NewRealReader(typ core.Type, length int) *RealReader {
	return &RealReader{typ: typ, length: length, values: make([]float64, 0, length)}
}

// Put decodes as many complete 8-byte rows from buf as fit within the
// reader's remaining declared length, returning the number of bytes
// consumed.
func (r *RealReader) Put(buf []byte) int {
	n := 0
	for len(r.values) < r.length && len(buf)-n >= 8 {
		bits := binary.LittleEndian.Uint64(buf[n:])
		r.values = append(r.values, math.Float64frombits(bits))
		n += 8
	}
	return n
}

// Build pads any rows not supplied via Put with NaN and returns the
// finished column.
func (r *RealReader) Build() (*numeric.Dense, error) {
	values := r.values
	for len(values) < r.length {
		values = append(values, math.NaN())
	}
	return numeric.NewDense(r.typ, values)
}

// TimeReader incrementally builds a Time column (nanoseconds-of-day) from
// one or more buffers of 8-byte signed i64 rows. Values outside
// [0, 86_399_999_999_999] ∪ {Missing} fail with a RangeError at Put time
// (spec §6.2).
type TimeReader struct {
	typ    core.Type
	length int
	values []int64
}

// NewTimeReader returns a reader for a TIME column of the given declared
// row count.
func NewTimeReader(typ core.Type, length int) *TimeReader {
	return &TimeReader{typ: typ, length: length, values: make([]int64, 0, length)}
}

// Put decodes as many complete 8-byte rows from buf as fit within the
// reader's remaining declared length.
func (r *TimeReader) Put(buf []byte) (int, error) {
	n := 0
	for len(r.values) < r.length && len(buf)-n >= 8 {
		v := int64(binary.LittleEndian.Uint64(buf[n:]))
		if v != temporal.Missing && (v < temporal.MinNanosOfDay || v > temporal.MaxNanosOfDay) {
			return n, rangeErrorf("TimeReader.Put", v)
		}
		r.values = append(r.values, v)
		n += 8
	}
	return n, nil
}

// Build pads any rows not supplied via Put with temporal.Missing and
// returns the finished column.
func (r *TimeReader) Build() (*temporal.TimeDense, error) {
	values := r.values
	for len(values) < r.length {
		values = append(values, temporal.Missing)
	}
	return temporal.NewTimeDense(r.typ, values)
}

// DateTimeReader incrementally builds a DateTime column from a seconds
// buffer and, for high-precision columns, a parallel nanos-of-second
// buffer (spec §6.2's putDateTimeLongs / putDateTimeNanoInts pair).
type DateTimeReader struct {
	typ           core.Type
	length        int
	seconds       []int64
	nanos         []int32
	highPrecision bool
}

// NewDateTimeReader returns a reader for a DATE_TIME column of the given
// declared row count.
func NewDateTimeReader(typ core.Type, length int) *DateTimeReader {
	return &DateTimeReader{typ: typ, length: length, seconds: make([]int64, 0, length)}
}

// PutSeconds decodes as many complete 8-byte seconds-since-epoch rows from
// buf as fit within the reader's remaining declared length.
func (r *DateTimeReader) PutSeconds(buf []byte) int {
	n := 0
	for len(r.seconds) < r.length && len(buf)-n >= 8 {
		r.seconds = append(r.seconds, int64(binary.LittleEndian.Uint64(buf[n:])))
		n += 8
	}
	return n
}

// PutNanos decodes as many complete 4-byte nanos-of-second rows from buf as
// fit the declared length, marking the column high-precision. Values
// outside [0, 999_999_999] fail with a RangeError.
func (r *DateTimeReader) PutNanos(buf []byte) (int, error) {
	r.highPrecision = true
	if r.nanos == nil {
		r.nanos = make([]int32, 0, r.length)
	}
	n := 0
	for len(r.nanos) < r.length && len(buf)-n >= 4 {
		v := int32(binary.LittleEndian.Uint32(buf[n:]))
		if v < 0 || v > temporal.MaxNanosOfSecond {
			return n, rangeErrorf("DateTimeReader.PutNanos", v)
		}
		r.nanos = append(r.nanos, v)
		n += 4
	}
	return n, nil
}

// Build pads any unfilled seconds rows with temporal.Missing and any
// unfilled nanos rows with 0, then returns the finished column.
func (r *DateTimeReader) Build() (*temporal.DateTimeDense, error) {
	seconds := r.seconds
	for len(seconds) < r.length {
		seconds = append(seconds, temporal.Missing)
	}
	var nanos []int32
	if r.highPrecision {
		nanos = r.nanos
		for len(nanos) < r.length {
			nanos = append(nanos, 0)
		}
	}
	return temporal.NewDateTimeDense(r.typ, seconds, nanos)
}

// NominalReader incrementally builds a categorical column from a buffer of
// 4-byte signed int32 dictionary indices (spec §6.2's readNominal). The
// supplied dictionary must reserve index 0 for null, per spec §4.1/§4.4.
type NominalReader struct {
	typ     core.Type
	length  int
	dict    dictionary.Interface
	indices []int32
}

// NewNominalReader returns a reader for a NOMINAL column of the given
// declared row count, backed by dict. It fails if dict does not reserve
// index 0 for null.
func NewNominalReader(typ core.Type, dict dictionary.Interface, length int) (*NominalReader, error) {
	if dict.Get(0) != nil {
		return nil, shapeErrorf("NewNominalReader: dictionary does not reserve index 0 for null: %w", core.ErrInvalidDictionaryShape)
	}
	return &NominalReader{typ: typ, length: length, dict: dict, indices: make([]int32, 0, length)}, nil
}

// Put decodes as many complete 4-byte rows from buf as fit within the
// reader's remaining declared length.
func (r *NominalReader) Put(buf []byte) int {
	n := 0
	for len(r.indices) < r.length && len(buf)-n >= 4 {
		r.indices = append(r.indices, int32(binary.LittleEndian.Uint32(buf[n:])))
		n += 4
	}
	return n
}

// Build pads any rows not supplied via Put with index 0 (null) and returns
// the finished column.
func (r *NominalReader) Build() (*categorical.Dense, error) {
	indices := r.indices
	for len(indices) < r.length {
		indices = append(indices, 0)
	}
	return categorical.NewDense(r.typ, indices, r.dict, categorical.I32)
}
