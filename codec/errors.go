package codec

import (
	"fmt"

	"github.com/vectorframe/column/core"
)

func rangeErrorf(op string, value any) error {
	return fmt.Errorf("codec: %s: value %v out of range: %w", op, value, core.ErrRange)
}

func shapeErrorf(format string, args ...any) error {
	return fmt.Errorf("codec: "+format, args...)
}
