package stats

import (
	"fmt"

	"github.com/vectorframe/column/core"
)

func unsupportedErrorf(stat Statistic) error {
	return fmt.Errorf("stats: statistic %s: %w", stat, core.ErrUnsupported)
}

func shapeErrorf(format string, args ...any) error {
	return fmt.Errorf("stats: "+format, args...)
}
