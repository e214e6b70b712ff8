// Package battery totals the maximum joltage of battery banks.
//
// A bank is a line of digits. Turning on k batteries produces the number
// spelled by their digits in bank order; the maximum joltage of a bank is the
// largest such number. Part 1 turns on 2 batteries per bank, part 2 turns on
// 12.
package battery

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/on-the-ground/memo_ive_go/memo"
	"github.com/on-the-ground/memo_ive_go/search"
	"github.com/on-the-ground/memo_ive_go/shared/fanout"
)

const (
	// PairCount is the number of batteries turned on per bank in part 1.
	PairCount = 2
	// OverrideCount is the number of batteries turned on per bank in part 2.
	OverrideCount = 12
)

var ErrInvalidDigit = errors.New("battery: invalid digit")

// Bank is one line of battery joltage ratings, each 0-9.
type Bank []uint8

// Answer holds the totals for both parts.
type Answer struct {
	Part1 uint64
	Part2 uint64
}

// Parse reads one bank per non-blank line.
func Parse(r io.Reader) ([]Bank, error) {
	var banks []Bank
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		bank := make(Bank, 0, len(line))
		for col, c := range line {
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrInvalidDigit, lineNo, col+1, c)
			}
			bank = append(bank, uint8(c-'0'))
		}
		banks = append(banks, bank)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("battery: read: %w", err)
	}
	return banks, nil
}

// MaxJoltage returns the largest joltage obtainable by turning on count
// batteries of b. Each call memoizes into its own table.
func MaxJoltage(b Bank, count int) (uint64, error) {
	return search.LargestOrderedDigits(b, count, memo.New[search.SuffixKey, uint64]())
}

// Solve totals the maximum joltage of every bank for both parts, spreading
// banks across at most workers goroutines.
func Solve(ctx context.Context, banks []Bank, workers int) (Answer, error) {
	total := func(count int) (uint64, error) {
		return fanout.Sum(ctx, len(banks), workers, func(_ context.Context, i int) (uint64, error) {
			v, err := MaxJoltage(banks[i], count)
			if err != nil {
				return 0, fmt.Errorf("bank %d: %w", i+1, err)
			}
			return v, nil
		})
	}

	var (
		ans Answer
		err error
	)
	if ans.Part1, err = total(PairCount); err != nil {
		return Answer{}, err
	}
	if ans.Part2, err = total(OverrideCount); err != nil {
		return Answer{}, err
	}
	return ans, nil
}
