package memo

import (
	"errors"
	"fmt"
)

// Backend names a Table implementation for string keys.
type Backend string

const (
	// BackendMap is the unbounded map-backed Memoizer.
	BackendMap Backend = "map"
	// BackendHashed is the xxhash-bucketed HashTable.
	BackendHashed Backend = "hashed"
	// BackendGenerational is the bounded two-generation table.
	BackendGenerational Backend = "generational"
	// BackendRistretto is the bounded ristretto cache.
	BackendRistretto Backend = "ristretto"
	// BackendMemDB is the go-memdb table.
	BackendMemDB Backend = "memdb"
)

// DefaultMaxEntries bounds the bounded backends when no size is configured.
const DefaultMaxEntries = 1 << 20

var ErrUnknownBackend = errors.New("memo: unknown backend")

// Backends lists every backend Open accepts.
func Backends() []Backend {
	return []Backend{BackendMap, BackendHashed, BackendGenerational, BackendRistretto, BackendMemDB}
}

// Config selects and sizes a backend.
type Config struct {
	Backend Backend
	// MaxEntries bounds the generational (per generation) and ristretto
	// backends. Zero means DefaultMaxEntries. Ignored by the others.
	MaxEntries int
}

// Open returns a fresh, empty table for string keys.
// Tables that hold resources should be released with Close.
func Open[V any](cfg Config) (Table[string, V], error) {
	size := cfg.MaxEntries
	if size <= 0 {
		size = DefaultMaxEntries
	}
	switch cfg.Backend {
	case BackendMap, "":
		return New[string, V](), nil
	case BackendHashed:
		return NewStringHashTable[V](), nil
	case BackendGenerational:
		return NewGenerational[string, V](size), nil
	case BackendRistretto:
		t, err := NewRistretto[string, V](int64(size))
		if err != nil {
			return nil, fmt.Errorf("memo: open ristretto: %w", err)
		}
		return t, nil
	case BackendMemDB:
		t, err := NewMemDB[V]()
		if err != nil {
			return nil, fmt.Errorf("memo: open memdb: %w", err)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// Close releases a table's resources if it holds any.
func Close[K, V any](t Table[K, V]) {
	if c, ok := t.(interface{ Close() }); ok {
		c.Close()
	}
}
