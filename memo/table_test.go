package memo_test

import (
	"testing"

	"github.com/on-the-ground/memo_ive_go/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoizer_GetAfterInsert(t *testing.T) {
	m := memo.New[string, uint64]()

	_, ok := m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len(), "a miss must not grow the table")

	m.Insert("a", 1)
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, uint64(1), v)

	// overwrite
	m.Insert("a", 2)
	v, _ = m.Get("a")
	assert.Equal(t, uint64(2), v)
	assert.Equal(t, 1, m.Len())
}

func TestMemoizer_EqualStructuralKeysShareEntry(t *testing.T) {
	m := memo.New[memo.Pair[string, int], uint64]()
	m.Insert(memo.PairOf("bank", 3), 42)

	v, ok := m.Get(memo.Pair[string, int]{First: "bank", Second: 3})
	require.True(t, ok)
	assert.Equal(t, uint64(42), v)

	_, ok = m.Get(memo.PairOf("bank", 4))
	assert.False(t, ok)
}

func TestVectorKey(t *testing.T) {
	a := []uint64{1, 2, 3}
	b := []uint64{1, 2, 3}
	assert.Equal(t, memo.VectorKey(a), memo.VectorKey(b))
	assert.NotEqual(t, memo.VectorKey(a), memo.VectorKey([]uint64{1, 2, 4}))
	assert.NotEqual(t, memo.VectorKey([]uint64{1}), memo.VectorKey([]uint64{1, 0}))
	assert.Equal(t, "", memo.VectorKey(nil))

	key := memo.VectorKey(a)
	a[0] = 9
	assert.Equal(t, memo.VectorKey(b), key, "key must not alias the vector")
}

func TestHashTable_Vectors(t *testing.T) {
	h := memo.NewVectorTable[uint64]()

	h.Insert([]uint64{2, 1}, 7)
	v, ok := h.Get([]uint64{2, 1})
	require.True(t, ok)
	assert.Equal(t, uint64(7), v)

	_, ok = h.Get([]uint64{1, 2})
	assert.False(t, ok)

	h.Insert([]uint64{2, 1}, 8)
	v, _ = h.Get([]uint64{2, 1})
	assert.Equal(t, uint64(8), v)
	assert.Equal(t, 1, h.Len())
}

func TestHashTable_CollidingFingerprintsStayDistinct(t *testing.T) {
	// every key hashes to the same bucket
	h := memo.NewHashTable[string, int](func(string) uint64 { return 0 }, func(a, b string) bool { return a == b })

	h.Insert("x", 1)
	h.Insert("y", 2)

	x, _ := h.Get("x")
	y, _ := h.Get("y")
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)
	assert.Equal(t, 2, h.Len())
}

func TestGenerational_RotatesAndStaysBounded(t *testing.T) {
	g := memo.NewGenerational[int, int](2)

	g.Insert(1, 10)
	g.Insert(2, 20)
	g.Insert(3, 30) // rotation: {1,2} becomes the previous generation

	for k, want := range map[int]int{1: 10, 2: 20, 3: 30} {
		v, ok := g.Get(k)
		require.Truef(t, ok, "key %d", k)
		assert.Equal(t, want, v)
	}

	g.Insert(4, 40)
	g.Insert(5, 50) // rotation: {1,2} dropped

	_, ok := g.Get(1)
	assert.False(t, ok)
	assert.LessOrEqual(t, g.Len(), 4)
}

func TestGenerational_ReinsertMovesKeyToHead(t *testing.T) {
	g := memo.NewGenerational[string, int](1)
	g.Insert("a", 1)
	g.Insert("b", 2) // "a" in previous generation
	g.Insert("a", 3) // rotation; "a" lives only in the head now

	v, ok := g.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, g.Len())
}

func TestGenerational_ZeroSizePanics(t *testing.T) {
	assert.Panics(t, func() {
		memo.NewGenerational[int, int](0)
	})
}
