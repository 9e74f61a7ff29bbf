package object

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

// MappingThreshold mirrors numeric.MappingThreshold (spec §6.3).
const MappingThreshold = 0.1

// Column is the object-family surface (spec §4.6).
type Column interface {
	core.Column
	Fill(dst []any, rowOffset, arrayOffset, step int) int
	Map(m mapping.Mapping, preferView bool) (Column, error)
	Sort(order Order) ([]uint32, error)
}

func capabilitiesFor(typ core.Type) core.Capability {
	return core.MustLookup(typ).Capabilities()
}

func comparatorFor(typ core.Type) (core.Comparator, bool) {
	cmp := core.MustLookup(typ).Comparator()
	return cmp, cmp != nil
}
