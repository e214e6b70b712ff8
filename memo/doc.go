// Package memo provides memoization tables for pure, recursive computations.
//
// A table answers one question: "have I already computed this?"
// A miss is never an error, it only means the caller has to do the work.
//
// Two kinds of keys are supported:
//
//   - Structural keys compare by value. Any comparable Go value works with
//     Memoizer; non-comparable keys (slices, count vectors) work with
//     HashTable given a hash and an equality function, or can be encoded
//     into a comparable string with VectorKey.
//   - Identity keys compare by where the data lives, not by what it holds.
//     Ref wraps a slice and compares by the address of its first element
//     and its length, so lookups cost O(1) no matter how long the slice is.
//
// Identity keys are only meaningful while the referenced backing array is
// neither mutated nor reallocated. Two allocations with identical contents
// are different keys. A table keyed by Ref must not outlive the data it
// indexes in any meaningful way: Ref keeps the array reachable for the
// garbage collector, but once the caller mutates it the cached answers no
// longer describe it.
//
// Tables are owned by one top-level computation and are not safe for
// concurrent use, with the exception of the backends that wrap a
// third-party cache with its own synchronization (Ristretto, MemDB).
package memo
