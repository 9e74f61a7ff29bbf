// Package categorical implements the dictionary-encoded column family
// (spec §4.4, C4): DenseCategorical, SparseCategorical, MappedCategorical,
// RemappedCategorical, and RemappedMappedCategorical, over index widths
// U2/U4/U8/U16/I32.
//
// Every representation stores dictionary indices as int32 regardless of its
// declared IndexFormat; the format tag decides whether sparse storage is
// allowed and which density threshold a sparse Map decision uses, not the
// in-memory layout (DESIGN.md records why no byte-packed in-memory layout
// is implemented). The binary writers in codec do not consult it.
//
// RemappedCategorical composes a value-remap layer (a change of dictionary
// without touching indices) on top of any backing; RemappedMappedCategorical
// is the same value-remap layer combined with a row-selection Mapping, kept
// at representation depth two: one concrete Dense plus one remap plus one
// row mapping never nest further, since remap-of-remap and map-of-map both
// compose their respective tables instead of stacking layers (spec §4.4's
// "Remap composition" and spec §9's depth bound).
package categorical
