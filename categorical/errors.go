package categorical

import (
	"fmt"

	"github.com/vectorframe/column/core"
)

func shapeErrorf(format string, args ...any) error {
	return fmt.Errorf("categorical: "+format, args...)
}

func unsupportedErrorf(op string, format IndexFormat) error {
	return fmt.Errorf("categorical: %s: format %v: %w", op, format, core.ErrUnsupported)
}

func illegalReplacementErrorf(value any, first, second int32) error {
	return fmt.Errorf("categorical: replacement dictionary aliases indices %d and %d to value %v: %w",
		first, second, value, core.ErrIllegalReplacement)
}
