// Package bytevec provides a growable, byte-addressable vector with
// amortized growth and optional proactive shrinking.
//
// A Vector is either owned (allocator-backed, grows without bound) or
// fixed (wrapping a caller-supplied buffer, fails instead of growing).
// Every capacity change funnels through a single grow path, so the fixed
// variant is rejected in exactly one place.
package bytevec
