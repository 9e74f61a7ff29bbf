package temporal

// Missing is the sentinel marking a missing Time or
// DateTime-seconds value (spec §4.5): the maximal i64, chosen so it never
// collides with a valid nanos-of-day or seconds-since-epoch value.
const Missing int64 = 1<<63 - 1

// MinNanosOfDay / MaxNanosOfDay bound the valid Time domain (spec §4.5): a
// non-sentinel value outside this range fails construction with a range
// error.
const (
	MinNanosOfDay int64 = 0
	MaxNanosOfDay int64 = 86_399_999_999_999
)

// MaxNanosOfSecond bounds the valid sub-second component of a high-precision
// DateTime value.
const MaxNanosOfSecond int32 = 999_999_999

// MappingThreshold mirrors numeric.MappingThreshold (spec §6.3): a Map call
// returns a lazy view only when the mapping is both requested (preferView)
// and at least this fraction of the backing's size; otherwise it
// materializes, even when a view was requested.
const MappingThreshold = 0.1

// MaxDensityDoubleSparse mirrors numeric.MaxDensityDoubleSparse: the
// survivor-density ceiling above which Sparse.Map materializes Dense
// instead of producing a new Sparse.
const MaxDensityDoubleSparse = 0.5
