package dictionary

import (
	"fmt"

	"github.com/vectorframe/column/core"
)

func shapeErrorf(format string, args ...any) error {
	return fmt.Errorf("dictionary: %s: %w", fmt.Sprintf(format, args...), core.ErrInvalidDictionaryShape)
}

func unsupportedErrorf(op string) error {
	return fmt.Errorf("dictionary: %s: %w", op, core.ErrUnsupported)
}
