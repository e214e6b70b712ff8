package memo

import (
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"
)

type hashEntry[K, V any] struct {
	key   K
	value V
}

// HashTable is a Table for keys that are not comparable in Go, such as
// count vectors. Keys are bucketed by a 64-bit fingerprint and confirmed
// with an equality function, so fingerprint collisions never alias.
//
// Inserted keys are retained as given: callers must not mutate a slice key
// after inserting it.
type HashTable[K, V any] struct {
	hash    func(K) uint64
	equal   func(a, b K) bool
	buckets map[uint64][]hashEntry[K, V]
	size    int
}

// NewHashTable returns an empty HashTable using hash and equal.
// equal(a, b) must imply hash(a) == hash(b).
func NewHashTable[K, V any](hash func(K) uint64, equal func(a, b K) bool) *HashTable[K, V] {
	return &HashTable[K, V]{
		hash:    hash,
		equal:   equal,
		buckets: make(map[uint64][]hashEntry[K, V]),
	}
}

// NewVectorTable returns a HashTable keyed by uint64 count vectors.
func NewVectorTable[V any]() *HashTable[[]uint64, V] {
	return NewHashTable[[]uint64, V](HashVector, equalVectors)
}

// NewStringHashTable returns a HashTable keyed by strings.
func NewStringHashTable[V any]() *HashTable[string, V] {
	return NewHashTable[string, V](xxhash.Sum64String, func(a, b string) bool { return a == b })
}

func (t *HashTable[K, V]) Get(key K) (V, bool) {
	for _, e := range t.buckets[t.hash(key)] {
		if t.equal(e.key, key) {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

func (t *HashTable[K, V]) Insert(key K, value V) {
	h := t.hash(key)
	bucket := t.buckets[h]
	for i := range bucket {
		if t.equal(bucket[i].key, key) {
			bucket[i].value = value
			return
		}
	}
	t.buckets[h] = append(bucket, hashEntry[K, V]{key: key, value: value})
	t.size++
}

func (t *HashTable[K, V]) Len() int {
	return t.size
}

// HashVector fingerprints a count vector with xxhash.
func HashVector(v []uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, x := range v {
		binary.LittleEndian.PutUint64(buf[:], x)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

func equalVectors(a, b []uint64) bool {
	return slices.Equal(a, b)
}
