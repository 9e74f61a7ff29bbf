package object

import (
	"fmt"

	"github.com/vectorframe/column/core"
)

func shapeErrorf(format string, args ...any) error {
	return fmt.Errorf("object: "+format, args...)
}

func unsupportedErrorf(op string) error {
	return fmt.Errorf("object: %s: %w", op, core.ErrUnsupported)
}
