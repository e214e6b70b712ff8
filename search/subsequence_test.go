package search_test

import (
	"math/rand/v2"
	"testing"

	"github.com/on-the-ground/memo_ive_go/memo"
	"github.com/on-the-ground/memo_ive_go/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var piDigits = []uint8{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}

func TestLargestOrderedDigits(t *testing.T) {
	tests := []struct {
		count int
		want  uint64
	}{
		{0, 0},
		{1, 9},
		{2, 96},
		{4, 9653},
		{10, 3141592653},
	}
	for _, tt := range tests {
		got, err := search.LargestOrderedDigits(piDigits, tt.count, nil)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "count=%d", tt.count)
	}
}

func TestLargestOrderedDigits_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 42))
	for trial := 0; trial < 200; trial++ {
		digits := make([]uint8, 1+rng.IntN(12))
		for i := range digits {
			digits[i] = uint8(rng.IntN(10))
		}
		count := 1 + rng.IntN(len(digits))

		got, err := search.LargestOrderedDigits(digits, count, nil)
		require.NoError(t, err)
		assert.Equal(t, bruteForceDigits(digits, count), got, "digits=%v count=%d", digits, count)
	}
}

func TestLargestOrderedDigits_TableIsKeyedByIdentity(t *testing.T) {
	a := []uint8{8, 1, 8, 1, 8, 1, 9, 1, 1, 1, 1, 2}
	b := append([]uint8(nil), a...)

	table := memo.New[search.SuffixKey, uint64]()
	first, err := search.LargestOrderedDigits(a, 4, table)
	require.NoError(t, err)
	entries := table.Len()
	require.Positive(t, entries)

	// identical contents, different allocation: nothing is shared
	second, err := search.LargestOrderedDigits(b, 4, table)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 2*entries, table.Len())

	// the same allocation again is answered entirely from the table
	third, err := search.LargestOrderedDigits(a, 4, table)
	require.NoError(t, err)
	assert.Equal(t, first, third)
	assert.Equal(t, 2*entries, table.Len())
}

func TestLargestOrderedDigits_Errors(t *testing.T) {
	_, err := search.LargestOrderedDigits(piDigits, 11, nil)
	assert.ErrorIs(t, err, search.ErrTooFewDigits)

	_, err = search.LargestOrderedDigits(piDigits, -1, nil)
	assert.ErrorIs(t, err, search.ErrTooFewDigits)

	long := make([]uint8, 25)
	_, err = search.LargestOrderedDigits(long, 20, nil)
	assert.ErrorIs(t, err, search.ErrTooManyDigits)

	_, err = search.LargestOrderedDigits([]uint8{1, 10, 2}, 2, nil)
	assert.ErrorIs(t, err, search.ErrNotDigit)
}

func TestLargestOrderedDigits_NineteenNinesFit(t *testing.T) {
	nines := make([]uint8, search.MaxDigits)
	for i := range nines {
		nines[i] = 9
	}
	got, err := search.LargestOrderedDigits(nines, search.MaxDigits, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(9999999999999999999), got)
}

// bruteForceDigits tries every ordered choice of count indices.
func bruteForceDigits(digits []uint8, count int) uint64 {
	var best uint64
	var pick func(start, left int, acc uint64)
	pick = func(start, left int, acc uint64) {
		if left == 0 {
			best = max(best, acc)
			return
		}
		for i := start; i <= len(digits)-left; i++ {
			pick(i+1, left-1, acc*10+uint64(digits[i]))
		}
	}
	pick(0, count, 0)
	return best
}
