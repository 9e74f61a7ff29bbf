package core

import "errors"

// Sentinel errors shared across every column family package. Each concrete
// package wraps these with its own operation context via fmt.Errorf("%s: %w", ...)
// rather than declaring parallel sentinels, so that a caller can always
// errors.Is against the one taxonomy described in spec §7.
var (
	// ErrRange indicates a value fell outside the valid domain for its type
	// (a categorical index, a nanos-of-day value, a seconds-since-epoch
	// value arriving through a binary codec).
	ErrRange = errors.New("core: value out of range")

	// ErrInvalidDictionaryShape indicates a dictionary violates the
	// null-at-zero invariant or a boolean dictionary's shape/positive-index
	// constraints.
	ErrInvalidDictionaryShape = errors.New("core: invalid dictionary shape")

	// ErrUnsupported indicates an operation this representation or format
	// does not support: sparse 2-bit/4-bit categorical storage, Sort
	// without a comparator, a statistic not defined for the column's type,
	// or a boolean-only getter called on a non-boolean dictionary.
	ErrUnsupported = errors.New("core: unsupported operation")

	// ErrIllegalReplacement indicates a dictionary replacement would alias
	// two distinct indices to the same value.
	ErrIllegalReplacement = errors.New("core: illegal dictionary replacement")

	// ErrExecutionAborted indicates the execution context was deactivated
	// or cancelled while a job was in flight.
	ErrExecutionAborted = errors.New("core: execution aborted")
)
