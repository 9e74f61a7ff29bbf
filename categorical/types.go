package categorical

import (
	"github.com/vectorframe/column/core"
	"github.com/vectorframe/column/dictionary"
	"github.com/vectorframe/column/mapping"
)

// IndexFormat is the declared dictionary-index bit width (spec §4.1).
// Sparse storage supports only U8, U16, and I32; U2 and U4 are dense-only.
type IndexFormat uint8

const (
	U2 IndexFormat = iota
	U4
	U8
	U16
	I32
)

func (f IndexFormat) String() string {
	switch f {
	case U2:
		return "U2"
	case U4:
		return "U4"
	case U8:
		return "U8"
	case U16:
		return "U16"
	case I32:
		return "I32"
	default:
		return "UNKNOWN_INDEX_FORMAT"
	}
}

// Order selects ascending or descending Sort output.
type Order uint8

const (
	Ascending Order = iota
	Descending
)

// Column is the categorical-family surface (spec §4.4).
type Column interface {
	core.Column

	IndexFormat() IndexFormat
	Dictionary() dictionary.Interface

	// FillIndex gathers raw dictionary indices (0 for missing/null).
	FillIndex(dst []int32, rowOffset, arrayOffset, step int) int
	// FillFloat gathers dictionary indices coerced to float64, for
	// consumers (the statistics engine) that read categorical data
	// numerically by index.
	FillFloat(dst []float64, rowOffset, arrayOffset, step int) int
	// FillObject gathers dereferenced dictionary values (nil for
	// missing/null).
	FillObject(dst []any, rowOffset, arrayOffset, step int) int

	Map(m mapping.Mapping, preferView bool) (Column, error)
	Sort(order Order) ([]uint32, error)

	// Remap attaches a value-transform layer: indexRemap[i] names the
	// index this column's raw index i corresponds to in newDict, without
	// touching any index data. Composes with an existing Remap/RemapMapped
	// layer instead of nesting (spec §4.4's "Remap composition").
	Remap(newDict dictionary.Interface, indexRemap []int32) (Column, error)
	// SwapDictionary replaces the dictionary identity with no index change.
	SwapDictionary(newDict dictionary.Interface) (Column, error)
	// MergeDictionaries produces a column whose dictionary begins with
	// other's entries, appending any of this column's values absent from
	// other, with indices remapped accordingly.
	MergeDictionaries(other dictionary.Interface) (Column, error)
	// ToBoolean returns a column whose dictionary is a BooleanDictionary
	// with positive located, when the dictionary's shape allows it.
	ToBoolean(positive any) (Column, error)
}

// indexSource is implemented by every concrete representation and gives the
// shared Remap/SwapDictionary/MergeDictionaries/ToBoolean helpers and the
// default comparator-driven Sort a uniform way to read raw indices without
// switching on concrete type.
type indexSource interface {
	core.Column
	rawIndexAt(row int) int32
}

func capabilitiesFor(typ core.Type) core.Capability {
	return core.MustLookup(typ).Capabilities()
}
