// Package interop converts between dense bitvec bitsets and compressed
// Roaring bitmaps.
//
// Dense bitsets win for small, densely populated universes; Roaring wins
// for large sparse ones. The conversions here are pure in-memory bridges,
// not a serialization format.
package interop
