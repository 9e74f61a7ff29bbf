// Package codec implements the C13 binary I/O contracts: bit-exact,
// fixed-width conversions between in-memory columns and byte buffers (spec
// §6.2). Writers serialize an already-materialized column straight to
// little-endian bytes; readers are incremental builders that accept one or
// more buffers via Put and, once built, pad any unfilled tail rows with the
// type's missing-value sentinel.
package codec
