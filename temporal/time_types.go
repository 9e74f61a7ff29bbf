package temporal

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

// TimeColumn is the C5 family surface: nanoseconds-of-day values, one i64
// per row, Missing marking a null row.
type TimeColumn interface {
	core.Column
	Fill(dst []int64, rowOffset, arrayOffset, step int) int
	Map(m mapping.Mapping, preferView bool) (TimeColumn, error)
	Sort(order Order) ([]uint32, error)
}

func capabilitiesFor(typ core.Type) core.Capability {
	return core.MustLookup(typ).Capabilities()
}

func timeLess(a, b int64, order Order) bool {
	aMissing, bMissing := a == Missing, b == Missing
	if aMissing || bMissing {
		if aMissing && bMissing {
			return false
		}
		return bMissing
	}
	if order == Descending {
		return a > b
	}
	return a < b
}

func validateNanosOfDay(v int64) error {
	if v == Missing {
		return nil
	}
	if v < MinNanosOfDay || v > MaxNanosOfDay {
		return rangeErrorf("validateNanosOfDay", v)
	}
	return nil
}
