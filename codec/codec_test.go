package codec

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorframe/column/categorical"
	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/dictionary"
	"github.com/vectorframe/column/numeric"
	"github.com/vectorframe/column/temporal"
)

func TestPutAndReadRealRoundTrips(t *testing.T) {
	col, err := numeric.NewDense(core.TypeReal, []float64{1, 2, math.NaN(), 4})
	require.NoError(t, err)

	buf := make([]byte, 32)
	n, err := PutNumericDoubles(col, 0, buf)
	require.NoError(t, err)
	require.Equal(t, 32, n)

	reader := NewRealReader(core.TypeReal, 4)
	consumed := reader.Put(buf)
	require.Equal(t, 32, consumed)
	rebuilt, err := reader.Build()
	require.NoError(t, err)

	out := make([]float64, 4)
	rebuilt.Fill(out, 0, 0, 1)
	require.Equal(t, 1.0, out[0])
	require.Equal(t, 2.0, out[1])
	require.True(t, math.IsNaN(out[2]))
	require.Equal(t, 4.0, out[3])
}

func TestRealReaderPadsTailWithNaN(t *testing.T) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, math.Float64bits(7))

	reader := NewRealReader(core.TypeReal, 3)
	reader.Put(buf)
	col, err := reader.Build()
	require.NoError(t, err)

	out := make([]float64, 3)
	col.Fill(out, 0, 0, 1)
	require.Equal(t, 7.0, out[0])
	require.True(t, math.IsNaN(out[1]))
	require.True(t, math.IsNaN(out[2]))
}

// TestTimeReaderRejectsOutOfRangeValue is golden scenario S5: a buffer
// encoding one nanos-of-day value one nanosecond past the valid range must
// fail with a RangeError, not silently wrap or clamp.
func TestTimeReaderRejectsOutOfRangeValue(t *testing.T) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(86_400_000_000_000))

	reader := NewTimeReader(core.TypeTime, 1)
	_, err := reader.Put(buf)
	require.Error(t, err)
	require.ErrorIs(t, err, core.ErrRange)
}

func TestTimeReaderAcceptsMissingSentinel(t *testing.T) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(temporal.Missing))

	reader := NewTimeReader(core.TypeTime, 1)
	n, err := reader.Put(buf)
	require.NoError(t, err)
	require.Equal(t, 8, n)
}

func TestDateTimeReaderHighPrecisionRoundTrips(t *testing.T) {
	secBuf := make([]byte, 16)
	binary.LittleEndian.PutUint64(secBuf[0:], uint64(1000))
	binary.LittleEndian.PutUint64(secBuf[8:], uint64(2000))
	nanoBuf := make([]byte, 8)
	binary.LittleEndian.PutUint32(nanoBuf[0:], 500)
	binary.LittleEndian.PutUint32(nanoBuf[4:], 250)

	reader := NewDateTimeReader(core.TypeDateTime, 2)
	reader.PutSeconds(secBuf)
	_, err := reader.PutNanos(nanoBuf)
	require.NoError(t, err)

	col, err := reader.Build()
	require.NoError(t, err)
	require.True(t, col.HighPrecision())

	secs := make([]int64, 2)
	nanos := make([]int32, 2)
	col.FillSeconds(secs, 0, 0, 1)
	col.FillNanos(nanos, 0, 0, 1)
	require.Equal(t, []int64{1000, 2000}, secs)
	require.Equal(t, []int32{500, 250}, nanos)
}

func TestDateTimeReaderLowPrecisionFillsZeroNanos(t *testing.T) {
	secBuf := make([]byte, 8)
	binary.LittleEndian.PutUint64(secBuf, uint64(42))

	reader := NewDateTimeReader(core.TypeDateTime, 1)
	reader.PutSeconds(secBuf)
	col, err := reader.Build()
	require.NoError(t, err)
	require.False(t, col.HighPrecision())

	nanos := make([]int32, 1)
	col.FillNanos(nanos, 0, 0, 1)
	require.Equal(t, int32(0), nanos[0])
}

func TestPutCategoricalBytesRangeError(t *testing.T) {
	values := make([]any, 0, 300)
	values = append(values, nil)
	for i := 0; i < 300; i++ {
		values = append(values, i)
	}
	dict, err := dictionary.New(values)
	require.NoError(t, err)
	col, err := categorical.NewDense(core.TypeNominal, []int32{1, 2, 3}, dict, categorical.I32)
	require.NoError(t, err)

	buf := make([]byte, 3)
	_, err = PutCategoricalBytes(col, 0, buf)
	require.Error(t, err)
	require.ErrorIs(t, err, core.ErrRange)
}

func TestPutAndReadNominalRoundTrips(t *testing.T) {
	dict, err := dictionary.New([]any{nil, "red", "green", "blue"})
	require.NoError(t, err)
	col, err := categorical.NewDense(core.TypeNominal, []int32{1, 2, 0, 3}, dict, categorical.I32)
	require.NoError(t, err)

	buf := make([]byte, 16)
	n, err := PutCategoricalIntegers(col, 0, buf)
	require.NoError(t, err)
	require.Equal(t, 16, n)

	reader, err := NewNominalReader(core.TypeNominal, dict, 4)
	require.NoError(t, err)
	reader.Put(buf)
	rebuilt, err := reader.Build()
	require.NoError(t, err)

	indices := make([]int32, 4)
	rebuilt.FillIndex(indices, 0, 0, 1)
	require.Equal(t, []int32{1, 2, 0, 3}, indices)
}

func TestPutNumericDoublesRejectsShortBuffer(t *testing.T) {
	col, err := numeric.NewDense(core.TypeReal, []float64{1, 2})
	require.NoError(t, err)
	_, err = PutNumericDoubles(col, 0, make([]byte, 8))
	require.Error(t, err)
}
