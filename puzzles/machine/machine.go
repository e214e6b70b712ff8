// Package machine configures factory machines from their manuals.
//
// Every button of a machine is wired to a set of indices. For the indicator
// lights (part 1) a press toggles those lights; for the joltage counters
// (part 2) a press adds one to each of those counters. Both parts ask for the
// fewest presses that reach the manual's target.
package machine

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"slices"

	"github.com/on-the-ground/memo_ive_go/memo"
	"github.com/on-the-ground/memo_ive_go/search"
	"github.com/on-the-ground/memo_ive_go/shared/fanout"
)

// MaxLightButtons bounds the exhaustive light search at 2^MaxLightButtons
// combinations.
const MaxLightButtons = 30

var (
	ErrNoSolution     = errors.New("machine: no button combination matches the lights")
	ErrTooManyButtons = errors.New("machine: too many buttons")
	ErrTooManyLights  = errors.New("machine: too many lights")
)

// Button lists the light/counter indices a button is wired to.
type Button []int

// Manual describes one machine.
type Manual struct {
	Lights   []bool
	Buttons  []Button
	Joltages []uint64
}

// Answer holds the totals for both parts.
type Answer struct {
	Part1 uint64
	Part2 uint64
}

// MinLightPresses returns the fewest presses that light exactly the pattern
// in m.Lights, starting from all lights off.
//
// Pressing a button twice undoes it, so every button is pressed at most once
// and all 2^n subsets are tried.
func MinLightPresses(m Manual) (uint64, error) {
	if len(m.Lights) > 64 {
		return 0, fmt.Errorf("%w: %d", ErrTooManyLights, len(m.Lights))
	}
	if len(m.Buttons) > MaxLightButtons {
		return 0, fmt.Errorf("%w: %d > %d", ErrTooManyButtons, len(m.Buttons), MaxLightButtons)
	}
	if err := m.checkWiring(); err != nil {
		return 0, err
	}

	var target uint64
	for i, on := range m.Lights {
		if on {
			target |= 1 << i
		}
	}
	masks := make([]uint64, len(m.Buttons))
	for i, b := range m.Buttons {
		for _, idx := range b {
			masks[i] ^= 1 << idx
		}
	}

	best := -1
	for combo := uint64(0); combo < 1<<len(masks); combo++ {
		n := bits.OnesCount64(combo)
		if best >= 0 && n >= best {
			continue
		}
		var lit uint64
		for i, mask := range masks {
			if combo&(1<<i) != 0 {
				lit ^= mask
			}
		}
		if lit == target {
			best = n
		}
	}
	if best < 0 {
		return 0, ErrNoSolution
	}
	return uint64(best), nil
}

// JoltageProblem is the search problem of raising every counter from zero
// to m.Joltages. Successors that overshoot any counter are pruned.
func JoltageProblem(m Manual) search.Problem[[]uint64, Button, string] {
	return search.Problem[[]uint64, Button, string]{
		Actions: m.Buttons,
		Apply: func(counters []uint64, b Button) []uint64 {
			next := slices.Clone(counters)
			for _, idx := range b {
				next[idx]++
			}
			return next
		},
		IsGoal: func(counters []uint64) bool {
			return slices.Equal(counters, m.Joltages)
		},
		Infeasible: func(counters []uint64) bool {
			for i, c := range counters {
				if c > m.Joltages[i] {
					return true
				}
			}
			return false
		},
		Key: memo.VectorKey,
	}
}

// MinJoltagePresses returns the fewest presses that bring every counter to
// its joltage requirement. A nil table gets a fresh Memoizer.
//
// An unreachable requirement yields search.ErrUnreachable and a manual that
// does not fit together yields ErrMalformedManual.
func MinJoltagePresses(m Manual, table memo.Table[string, uint64], opts ...search.Option) (uint64, error) {
	if err := m.validate(); err != nil {
		return 0, err
	}
	if table == nil {
		table = memo.New[string, uint64]()
	}
	s, err := search.New(JoltageProblem(m), table, opts...)
	if err != nil {
		return 0, err
	}
	return s.MinActions(make([]uint64, len(m.Joltages)))
}

// SolveOptions configures Solve.
type SolveOptions struct {
	// Workers bounds the number of machines solved concurrently.
	Workers int
	// Memo selects the table backend; every machine gets its own table.
	Memo memo.Config
	// Search is passed to every joltage search.
	Search []search.Option
}

// Solve totals both parts over all manuals.
func Solve(ctx context.Context, manuals []Manual, opts SolveOptions) (Answer, error) {
	var (
		ans Answer
		err error
	)

	ans.Part1, err = fanout.Sum(ctx, len(manuals), opts.Workers, func(_ context.Context, i int) (uint64, error) {
		v, err := MinLightPresses(manuals[i])
		if err != nil {
			return 0, fmt.Errorf("machine %d: %w", i+1, err)
		}
		return v, nil
	})
	if err != nil {
		return Answer{}, err
	}

	ans.Part2, err = fanout.Sum(ctx, len(manuals), opts.Workers, func(_ context.Context, i int) (uint64, error) {
		table, err := memo.Open[uint64](opts.Memo)
		if err != nil {
			return 0, err
		}
		defer memo.Close(table)

		searchOpts := append(slices.Clip(opts.Search), search.WithRunID(fmt.Sprintf("machine-%d", i+1)))
		v, err := MinJoltagePresses(manuals[i], table, searchOpts...)
		if err != nil {
			return 0, fmt.Errorf("machine %d: %w", i+1, err)
		}
		return v, nil
	})
	if err != nil {
		return Answer{}, err
	}
	return ans, nil
}
