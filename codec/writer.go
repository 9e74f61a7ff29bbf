package codec

import (
	"encoding/binary"
	"math"

	"github.com/vectorframe/column/categorical"
	"github.com/vectorframe/column/numeric"
	"github.com/vectorframe/column/temporal"
)

// PutNumericDoubles serializes col (spec §3's REAL type, and INTEGER_53_BIT
// via the same wire shape — both are stored as float64 internally) as
// 8 bytes/row IEEE-754 little-endian doubles, starting at buf[offset].
func PutNumericDoubles(col numeric.Column, offset int, buf []byte) (int, error) {
	size := int(col.Size())
	need := offset + size*8
	if len(buf) < need {
		return 0, shapeErrorf("PutNumericDoubles: buffer too short: need %d bytes, have %d", need, len(buf))
	}
	values := make([]float64, size)
	col.Fill(values, 0, 0, 1)
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[offset+i*8:], math.Float64bits(v))
	}
	return size * 8, nil
}

// PutTimeLongs serializes col (nanoseconds-of-day, spec §4.5) as 8 bytes/row
// signed i64, temporal.Missing standing in for a null row.
func PutTimeLongs(col temporal.TimeColumn, offset int, buf []byte) (int, error) {
	size := int(col.Size())
	need := offset + size*8
	if len(buf) < need {
		return 0, shapeErrorf("PutTimeLongs: buffer too short: need %d bytes, have %d", need, len(buf))
	}
	values := make([]int64, size)
	col.Fill(values, 0, 0, 1)
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[offset+i*8:], uint64(v))
	}
	return size * 8, nil
}

// PutDateTimeLongs serializes col's seconds-since-epoch component as
// 8 bytes/row signed i64, temporal.Missing standing in for a null row.
func PutDateTimeLongs(col temporal.DateTimeColumn, offset int, buf []byte) (int, error) {
	size := int(col.Size())
	need := offset + size*8
	if len(buf) < need {
		return 0, shapeErrorf("PutDateTimeLongs: buffer too short: need %d bytes, have %d", need, len(buf))
	}
	values := make([]int64, size)
	col.FillSeconds(values, 0, 0, 1)
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[offset+i*8:], uint64(v))
	}
	return size * 8, nil
}

// PutDateTimeNanoInts serializes col's nanos-of-second component as
// 4 bytes/row int32 (0 for every row when the column lacks sub-second
// precision — DateTimeColumn.FillNanos already does this).
func PutDateTimeNanoInts(col temporal.DateTimeColumn, offset int, buf []byte) (int, error) {
	size := int(col.Size())
	need := offset + size*4
	if len(buf) < need {
		return 0, shapeErrorf("PutDateTimeNanoInts: buffer too short: need %d bytes, have %d", need, len(buf))
	}
	values := make([]int32, size)
	col.FillNanos(values, 0, 0, 1)
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[offset+i*4:], uint32(v))
	}
	return size * 4, nil
}

// PutCategoricalIntegers serializes col's raw dictionary indices as
// 4 bytes/row signed int32.
func PutCategoricalIntegers(col categorical.Column, offset int, buf []byte) (int, error) {
	size := int(col.Size())
	need := offset + size*4
	if len(buf) < need {
		return 0, shapeErrorf("PutCategoricalIntegers: buffer too short: need %d bytes, have %d", need, len(buf))
	}
	indices := make([]int32, size)
	col.FillIndex(indices, 0, 0, 1)
	for i, v := range indices {
		binary.LittleEndian.PutUint32(buf[offset+i*4:], uint32(v))
	}
	return size * 4, nil
}

// PutCategoricalShorts serializes col's raw dictionary indices as
// 2 bytes/row signed int16. It fails with a RangeError if the dictionary's
// maximal index cannot fit in an int16.
func PutCategoricalShorts(col categorical.Column, offset int, buf []byte) (int, error) {
	if max := col.Dictionary().MaximalIndex(); max > math.MaxInt16 {
		return 0, rangeErrorf("PutCategoricalShorts: dictionary maximalIndex", max)
	}
	size := int(col.Size())
	need := offset + size*2
	if len(buf) < need {
		return 0, shapeErrorf("PutCategoricalShorts: buffer too short: need %d bytes, have %d", need, len(buf))
	}
	indices := make([]int32, size)
	col.FillIndex(indices, 0, 0, 1)
	for i, v := range indices {
		binary.LittleEndian.PutUint16(buf[offset+i*2:], uint16(int16(v)))
	}
	return size * 2, nil
}

// PutCategoricalBytes serializes col's raw dictionary indices as 1 byte/row
// signed int8. It fails with a RangeError if the dictionary's maximal index
// cannot fit in an int8.
func PutCategoricalBytes(col categorical.Column, offset int, buf []byte) (int, error) {
	if max := col.Dictionary().MaximalIndex(); max > math.MaxInt8 {
		return 0, rangeErrorf("PutCategoricalBytes: dictionary maximalIndex", max)
	}
	size := int(col.Size())
	need := offset + size
	if len(buf) < need {
		return 0, shapeErrorf("PutCategoricalBytes: buffer too short: need %d bytes, have %d", need, len(buf))
	}
	indices := make([]int32, size)
	col.FillIndex(indices, 0, 0, 1)
	for i, v := range indices {
		buf[offset+i] = byte(int8(v))
	}
	return size, nil
}
