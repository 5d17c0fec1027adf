// Package alloc provides the allocator abstraction backing owned bitset
// storage.
//
// Default is a plain heap allocator. Budget decorates another Allocator
// with a hard byte budget, turning unbounded growth into a recoverable
// failure instead of memory pressure.
package alloc
