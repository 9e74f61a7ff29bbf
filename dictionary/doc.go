// Package dictionary implements the category-index <-> value mapping used
// by every categorical column (spec §4.2, C2): an ordered list of distinct
// domain values with a reserved null at index 0, plus the BooleanDictionary
// specialization with its positive/negative index bookkeeping.
//
// A Dictionary is immutable once built. Index 0 is always null/missing.
// Gaps are allowed above index 0 (an entry may be nil while a higher index
// is populated), so MaximalIndex can exceed Size.
package dictionary
