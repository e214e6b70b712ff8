package search

import (
	"fmt"
	"slices"

	"github.com/on-the-ground/memo_ive_go/memo"
)

// MaxDigits is the longest digit sequence whose value always fits a uint64.
const MaxDigits = 19

// SuffixKey memoizes "the best Count digits picked from this exact suffix".
// Digits is an identity key: suffixes are produced by slicing one backing
// array, so every suffix has its own address and lookups never compare
// digits.
type SuffixKey struct {
	Digits memo.Ref[uint8]
	Count  int
}

// LargestOrderedDigits returns the largest number spelled by picking count
// digits from digits while keeping their order.
//
// A nil table gets a fresh Memoizer. A caller-supplied table may be shared
// between calls, but no slice it has seen may be modified while it is in use:
// entries are keyed by address, not by contents.
func LargestOrderedDigits(digits []uint8, count int, table memo.Table[SuffixKey, uint64]) (uint64, error) {
	switch {
	case count < 0:
		return 0, fmt.Errorf("%w: negative count %d", ErrTooFewDigits, count)
	case count > MaxDigits:
		return 0, fmt.Errorf("%w: %d > %d", ErrTooManyDigits, count, MaxDigits)
	case count > len(digits):
		return 0, fmt.Errorf("%w: want %d, have %d", ErrTooFewDigits, count, len(digits))
	case count == 0:
		return 0, nil
	}
	for i, d := range digits {
		if d > 9 {
			return 0, fmt.Errorf("%w: %d at index %d", ErrNotDigit, d, i)
		}
	}
	if table == nil {
		table = memo.New[SuffixKey, uint64]()
	}
	return largestOrdered(digits, count, table), nil
}

// largestOrdered requires 1 <= count <= len(digits).
func largestOrdered(digits []uint8, count int, table memo.Table[SuffixKey, uint64]) uint64 {
	key := SuffixKey{Digits: memo.RefOf(digits), Count: count}
	if v, ok := table.Get(key); ok {
		return v
	}
	if count == 1 {
		return uint64(slices.Max(digits))
	}

	place := pow10(count - 1)
	var best uint64
	// leave room for the count-1 digits still to pick
	for i := 0; i <= len(digits)-count; i++ {
		v := uint64(digits[i])*place + largestOrdered(digits[i+1:], count-1, table)
		best = max(best, v)
	}

	table.Insert(key, best)
	return best
}

func pow10(n int) uint64 {
	p := uint64(1)
	for range n {
		p *= 10
	}
	return p
}
