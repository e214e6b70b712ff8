package search

import (
	"math"

	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Unreachable is the answer recorded for states from which no goal can be
// reached. It is also what MinActions returns alongside ErrUnreachable.
const Unreachable uint64 = math.MaxUint64

// DefaultMaxDepth is the depth guard applied when none is configured.
const DefaultMaxDepth = 1 << 20

// Problem describes a state space.
//
// S is the state, A an action and K the key under which a state's answer is
// memoized. All functions must be pure.
type Problem[S, A, K any] struct {
	// Actions are tried, in order, at every non-goal state.
	Actions []A

	// Apply returns the state reached by taking a from s.
	// It must not modify s: s may already be referenced by a table key.
	Apply func(s S, a A) S

	// IsGoal reports whether s is a terminal state.
	IsGoal func(s S) bool

	// Infeasible reports whether s can be discarded without exploring it,
	// e.g. because a count already exceeds its target. Nil disables pruning.
	Infeasible func(s S) bool

	// Key returns the memoization key of s. Equal keys must mean equal
	// answers.
	Key func(s S) K
}

// Options configures a Searcher.
type Options struct {
	// MaxDepth bounds the number of actions on any explored path.
	// Zero or negative disables the guard.
	MaxDepth int

	// Iterative runs the search on an explicit stack instead of the Go call
	// stack. Answers are identical.
	Iterative bool

	// Logger receives one debug entry per MinActions call.
	Logger *zap.Logger

	// RunID tags log entries. Empty means a fresh uuid per Searcher.
	RunID string
}

// Option configures optional Searcher behavior.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - MaxDepth = DefaultMaxDepth
//   - recursive evaluation
//   - a no-op logger
func DefaultOptions() Options {
	return Options{
		MaxDepth: DefaultMaxDepth,
		Logger:   zap.NewNop(),
	}
}

// WithMaxDepth sets the depth guard. Zero disables it.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithIterative selects explicit-stack evaluation.
func WithIterative(iterative bool) Option {
	return func(o *Options) {
		o.Iterative = iterative
	}
}

// WithLogger installs logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithRunID sets the identifier attached to log entries.
func WithRunID(id string) Option {
	return func(o *Options) {
		o.RunID = id
	}
}

// Stats describes the last MinActions call.
type Stats struct {
	Hits        uint64 // states answered from the table
	Misses      uint64 // table lookups that missed
	Expanded    uint64 // states whose actions were enumerated
	Pruned      uint64 // successors discarded as infeasible
	DeepestPath int    // longest path explored, in actions
	Span        timespan.TimeSpan
}

func (s Stats) fields() []zap.Field {
	return []zap.Field{
		zap.Uint64("hits", s.Hits),
		zap.Uint64("misses", s.Misses),
		zap.Uint64("expanded", s.Expanded),
		zap.Uint64("pruned", s.Pruned),
		zap.Int("deepest_path", s.DeepestPath),
		zap.Duration("elapsed", s.Span.Duration()),
	}
}
