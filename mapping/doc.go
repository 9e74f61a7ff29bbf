// Package mapping implements the row-mapping algebra (spec §4.8, C9): a
// Mapping is an int32 slice where entry j names the backing row that
// logical row j is drawn from (negative, or >= the backing size, reads as
// missing). Merge composes two mappings into one so that chained
// Mapped* views never nest more than one layer deep (spec §9's "keep
// representation depth <= 2"), and Cache de-duplicates concurrent merges
// that share the same outer and inner mapping identities, guaranteeing at
// most one in-flight computation per such pair while every concurrent
// caller observes the same result (spec §4.8, scenario S4).
package mapping
