// Package object implements the C7 object column family: arbitrary
// immutable values addressed by row, generic over core.Type rather than
// tied to a single Go type. Sort requires a comparator registered for the
// column's type (core.ColumnType.Comparator); absent one, Sort fails with
// core.ErrUnsupported. Missing values are represented as nil and always
// compare last.
package object
