package memo

import (
	ristretto "github.com/dgraph-io/ristretto/v2"
)

type ristrettoKey interface {
	ristretto.Key
	comparable
}

// Ristretto is a bounded Table backed by a ristretto cache.
//
// The admission policy may reject or evict entries; for a memoized search
// that only costs recomputation. Each entry has cost 1, so maxEntries bounds
// the number of entries held. Close releases the cache's goroutines.
type Ristretto[K ristrettoKey, V any] struct {
	cache *ristretto.Cache[K, V]
}

// NewRistretto returns an empty Ristretto table holding at most maxEntries.
func NewRistretto[K ristrettoKey, V any](maxEntries int64) (*Ristretto[K, V], error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	cache, err := ristretto.NewCache(&ristretto.Config[K, V]{
		NumCounters:        10 * maxEntries, // ten counters per entry, as recommended upstream
		MaxCost:            maxEntries,
		BufferItems:        64,
		Metrics:            true,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &Ristretto[K, V]{cache: cache}, nil
}

func (r *Ristretto[K, V]) Get(key K) (V, bool) {
	return r.cache.Get(key)
}

// Insert stores the value and waits for the write buffer to drain so a
// following Get observes it (unless the admission policy dropped it).
func (r *Ristretto[K, V]) Insert(key K, value V) {
	r.cache.Set(key, value, 1)
	r.cache.Wait()
}

func (r *Ristretto[K, V]) Len() int {
	m := r.cache.Metrics
	return int(m.KeysAdded() - m.KeysEvicted())
}

func (r *Ristretto[K, V]) Close() {
	r.cache.Close()
}
