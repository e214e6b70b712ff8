package memo

import (
	"encoding/binary"
	"unsafe"
)

// Ref is an identity key over a slice.
//
// Two Refs are equal only when they point at the same first element and
// have the same length. Contents are never compared: independently
// allocated slices holding the same values are different keys, and two
// suffixes of one backing array starting at different offsets are
// different keys.
//
// Ref is comparable, so it can be used directly as (part of) a Memoizer key.
// It holds a real pointer, which keeps the backing array reachable while the
// key is stored.
type Ref[T any] struct {
	ptr *T
	n   int
}

// RefOf returns the identity key of s.
//
// s must not be mutated or appended to (in a way that reallocates) while a
// table holds its Ref: the cached value would then describe data that no
// longer exists at that address.
func RefOf[T any](s []T) Ref[T] {
	return Ref[T]{ptr: unsafe.SliceData(s), n: len(s)}
}

// Len returns the length of the referenced slice.
func (r Ref[T]) Len() int {
	return r.n
}

// Same reports whether r refers to exactly the slice s.
func (r Ref[T]) Same(s []T) bool {
	return r == RefOf(s)
}

// VectorKey encodes a count vector into a comparable structural key.
// Equal vectors produce equal keys; the key is independent of the slice's
// address, so the vector may be reused or mutated afterwards.
func VectorKey(v []uint64) string {
	buf := make([]byte, 0, 8*len(v))
	for _, x := range v {
		buf = binary.LittleEndian.AppendUint64(buf, x)
	}
	return string(buf)
}
