package temporal

import (
	"fmt"

	"github.com/vectorframe/column/core"
)

func shapeErrorf(format string, args ...any) error {
	return fmt.Errorf("temporal: "+format, args...)
}

func rangeErrorf(op string, value int64) error {
	return fmt.Errorf("temporal: %s: value %d: %w", op, value, core.ErrRange)
}

func unsupportedErrorf(op string) error {
	return fmt.Errorf("temporal: %s: %w", op, core.ErrUnsupported)
}
