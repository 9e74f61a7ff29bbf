// Package core defines the foundational type system shared by every column
// representation in this module: the enumerated element Type, the broader
// Category a type belongs to, the Capability bit set a column exposes, the
// process-wide ColumnType registry, and the minimal Column interface that
// every concrete representation (numeric, categorical, temporal, object)
// implements.
//
// Nothing in this package holds row data. It exists so that the family
// packages (numeric, categorical, temporal, object) can share one notion of
// "what kind of column is this" and "what can a caller do with it" without
// importing each other.
//
//	core/        — Type, Category, Capability, ColumnType registry, Column
//	bitmap/      — sparse presence bitmap (C1)
//	dictionary/  — Dictionary, BooleanDictionary (C2)
//	numeric/     — dense/sparse/mapped float64 columns (C3, C10)
//	categorical/ — dictionary-encoded columns (C4)
//	temporal/    — Time and DateTime columns (C5, C6)
//	object/      — arbitrary object columns (C7)
//	mapping/     — mapping algebra + merge cache (C9)
//	stats/       — statistics engine + cache (C11)
//	exec/        — execution context abstraction (C12)
//	codec/       — fixed-width binary I/O (C13)
package core
