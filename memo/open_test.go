package memo_test

import (
	"testing"

	"github.com/on-the-ground/memo_ive_go/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_EveryBackendRoundTrips(t *testing.T) {
	for _, backend := range memo.Backends() {
		t.Run(string(backend), func(t *testing.T) {
			table, err := memo.Open[uint64](memo.Config{Backend: backend, MaxEntries: 1024})
			require.NoError(t, err)
			defer memo.Close(table)

			_, ok := table.Get("missing")
			assert.False(t, ok)

			keys := []string{"", "a", memo.VectorKey([]uint64{0, 1}), memo.VectorKey([]uint64{1, 0})}
			for i, k := range keys {
				table.Insert(k, uint64(i))
			}
			for i, k := range keys {
				v, ok := table.Get(k)
				require.Truef(t, ok, "key %q", k)
				assert.Equal(t, uint64(i), v)
			}
			assert.Equal(t, len(keys), table.Len())
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := memo.Open[uint64](memo.Config{Backend: "redis"})
	assert.ErrorIs(t, err, memo.ErrUnknownBackend)
}

func TestOpen_DefaultsToMap(t *testing.T) {
	table, err := memo.Open[int](memo.Config{})
	require.NoError(t, err)
	assert.IsType(t, &memo.Memoizer[string, int]{}, table)
}

func TestMemDB_SnapshotIsIndependent(t *testing.T) {
	table, err := memo.NewMemDB[uint64]()
	require.NoError(t, err)

	table.Insert("a", 1)
	snap := table.Snapshot()
	table.Insert("b", 2)
	snap.Insert("c", 3)

	_, ok := snap.Get("b")
	assert.False(t, ok)
	_, ok = table.Get("c")
	assert.False(t, ok)

	v, ok := snap.Get("a")
	require.True(t, ok)
	assert.Equal(t, uint64(1), v)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 2, snap.Len())
}
