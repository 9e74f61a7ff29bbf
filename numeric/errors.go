package numeric

import (
	"fmt"

	"github.com/vectorframe/column/core"
)

func rangeErrorf(op string, idx int) error {
	return fmt.Errorf("numeric: %s: index %d: %w", op, idx, core.ErrRange)
}

// shapeErrorf reports a construction-time invariant violation (mismatched
// slice lengths, an out-of-range default position) that has no dedicated
// sentinel in spec §7's shared taxonomy because it can only arise from a
// caller assembling column data incorrectly, not from domain input.
func shapeErrorf(format string, args ...any) error {
	return fmt.Errorf("numeric: "+format, args...)
}

func unsupportedErrorf(op string) error {
	return fmt.Errorf("numeric: %s: %w", op, core.ErrUnsupported)
}
