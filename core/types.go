package core

import "fmt"

// Type identifies the element type carried by a column. The built-in types
// cover the domains spec.md names explicitly; custom object types are
// allocated at runtime via RegisterObjectType and compare distinctly from
// every built-in and from each other.
type Type uint16

// Built-in column types (spec §3).
const (
	TypeUnknown Type = iota
	TypeReal
	TypeInteger53Bit
	TypeTime
	TypeDateTime
	TypeNominal
	TypeText
	TypeTextSet
	TypeTextList

	firstCustomType Type = 1000 // custom object types start here
)

// String renders the built-in type names; custom types render by their
// registered name.
func (t Type) String() string {
	switch t {
	case TypeUnknown:
		return "UNKNOWN"
	case TypeReal:
		return "REAL"
	case TypeInteger53Bit:
		return "INTEGER_53_BIT"
	case TypeTime:
		return "TIME"
	case TypeDateTime:
		return "DATE_TIME"
	case TypeNominal:
		return "NOMINAL"
	case TypeText:
		return "TEXT"
	case TypeTextSet:
		return "TEXT_SET"
	case TypeTextList:
		return "TEXT_LIST"
	default:
		if name, ok := customTypeName(t); ok {
			return name
		}
		return fmt.Sprintf("CUSTOM(%d)", uint16(t))
	}
}

// Category is the broad family a Type belongs to; it determines which
// family package (numeric, categorical, object) a column's concrete
// representation lives in.
type Category uint8

const (
	CategoryNumeric Category = iota
	CategoryCategorical
	CategoryObject
)

func (c Category) String() string {
	switch c {
	case CategoryNumeric:
		return "NUMERIC"
	case CategoryCategorical:
		return "CATEGORICAL"
	case CategoryObject:
		return "OBJECT"
	default:
		return "UNKNOWN_CATEGORY"
	}
}

// Capability is a bit set describing what a caller may do with a column.
type Capability uint8

const (
	// CapNumericReadable marks a column whose Fill can write into a []float64.
	CapNumericReadable Capability = 1 << iota
	// CapObjectReadable marks a column whose Fill can write into an []any.
	CapObjectReadable
	// CapSortable marks a column for which Sort is defined (a comparator
	// exists, either built-in for numeric/temporal/categorical or supplied
	// for object types).
	CapSortable
)

// Has reports whether every bit in flag is set in c.
func (c Capability) Has(flag Capability) bool {
	return c&flag == flag
}

// Format is the storage-representation tag of a concrete column value. It is
// orthogonal to Type/Category: a TypeReal column may be FormatDense,
// FormatSparse, or FormatMapped; a TypeNominal column may additionally be
// FormatRemapped or FormatRemappedMapped.
type Format uint8

const (
	FormatDense Format = iota
	FormatSparse
	FormatMapped
	FormatRemapped
	FormatRemappedMapped
)

func (f Format) String() string {
	switch f {
	case FormatDense:
		return "DENSE"
	case FormatSparse:
		return "SPARSE"
	case FormatMapped:
		return "MAPPED"
	case FormatRemapped:
		return "REMAPPED"
	case FormatRemappedMapped:
		return "REMAPPED_MAPPED"
	default:
		return "UNKNOWN_FORMAT"
	}
}

// Column is the identity every concrete column representation exposes,
// regardless of family. Family packages define richer interfaces
// (numeric.Column, categorical.Column, temporal.TimeColumn, ...) that embed this
// one and add Fill/Map/Sort with family-specific signatures.
type Column interface {
	// Type reports the column's element type.
	Type() Type
	// Category reports the column's broad family.
	Category() Category
	// Size reports the row count. Immutable for the lifetime of the value.
	Size() uint32
	// Format reports the current storage representation.
	Format() Format
	// Capabilities reports what operations this column supports.
	Capabilities() Capability
}
