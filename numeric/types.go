package numeric

import (
	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/mapping"
)

// Order selects ascending or descending Sort output.
type Order uint8

const (
	Ascending Order = iota
	Descending
)

// Column is the numeric-family surface (spec §4.3): every concrete
// representation (Dense, Sparse, Mapped) implements it.
type Column interface {
	core.Column

	// Fill gathers up to len(dst) values starting at logical row rowOffset
	// into dst, writing one value every step slots starting at arrayOffset
	// (step=1, arrayOffset=0 for a contiguous fill). It returns the number
	// of rows written, which is less than the requested count only when the
	// column runs out of rows first.
	Fill(dst []float64, rowOffset, arrayOffset, step int) int

	// Map produces the column obtained by gathering this column's rows
	// through m (spec §4.3's map operation); preferView hints that a lazy
	// MappedNumeric view is acceptable when the representation allows one.
	Map(m mapping.Mapping, preferView bool) (Column, error)

	// Sort returns a permutation of [0, Size()) that would place this
	// column's rows in the requested order, NaN rows sorting last
	// regardless of order.
	Sort(order Order) ([]uint32, error)
}

func capabilitiesFor(typ core.Type) core.Capability {
	return core.MustLookup(typ).Capabilities()
}
