package memo

import (
	"fmt"

	memdb "github.com/hashicorp/go-memdb"
	"github.com/on-the-ground/memo_ive_go/shared/helper"
)

const (
	memDBTable = "memo"
	memDBIndex = "id"

	// memdb refuses to index empty strings, so every stored key gets a prefix.
	memDBKeyPrefix = ":"
)

type memDBEntry[V any] struct {
	Key   string
	Value V
}

// MemDB is a Table backed by an in-memory go-memdb database.
//
// Every Insert is its own write transaction. Snapshot returns a cheap,
// independent copy, which makes it easy to fork a partially populated table.
type MemDB[V any] struct {
	db *memdb.MemDB
}

// NewMemDB returns an empty MemDB table.
func NewMemDB[V any]() (*MemDB[V], error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memDBTable: {
				Name: memDBTable,
				Indexes: map[string]*memdb.IndexSchema{
					memDBIndex: {
						Name:    memDBIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Key"},
					},
				},
			},
		},
	}
	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, err
	}
	return &MemDB[V]{db: db}, nil
}

func (m *MemDB[V]) Get(key string) (V, bool) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	var zero V
	entry, err := helper.GetTypedValueOf[*memDBEntry[V]](func() (any, error) {
		return txn.First(memDBTable, memDBIndex, memDBKeyPrefix+key)
	})
	if err != nil {
		return zero, false
	}
	return entry.Value, true
}

// Insert panics if the write transaction fails, which only happens when the
// schema itself is broken.
func (m *MemDB[V]) Insert(key string, value V) {
	txn := m.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(memDBTable, &memDBEntry[V]{Key: memDBKeyPrefix + key, Value: value}); err != nil {
		panic(fmt.Errorf("memo: memdb insert: %w", err))
	}
	txn.Commit()
}

func (m *MemDB[V]) Len() int {
	txn := m.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(memDBTable, memDBIndex)
	if err != nil {
		return 0
	}
	n := 0
	for obj := it.Next(); obj != nil; obj = it.Next() {
		n++
	}
	return n
}

// Snapshot returns an independent copy of the table. Later inserts into
// either table are not visible in the other.
func (m *MemDB[V]) Snapshot() *MemDB[V] {
	return &MemDB[V]{db: m.db.Snapshot()}
}
