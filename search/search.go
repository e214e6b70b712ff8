package search

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/memo_ive_go/memo"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Searcher finds minimum action counts for one Problem, memoizing answers in
// a table it does not own. Reusing the table across calls only changes how
// much work is done, never the answers.
type Searcher[S, A, K any] struct {
	problem Problem[S, A, K]
	table   memo.Table[K, uint64]
	opts    Options
	stats   Stats
}

// New validates p and returns a Searcher memoizing into table.
func New[S, A, K any](p Problem[S, A, K], table memo.Table[K, uint64], opts ...Option) (*Searcher[S, A, K], error) {
	switch {
	case p.Apply == nil:
		return nil, fmt.Errorf("%w: Apply is nil", ErrInvalidProblem)
	case p.IsGoal == nil:
		return nil, fmt.Errorf("%w: IsGoal is nil", ErrInvalidProblem)
	case p.Key == nil:
		return nil, fmt.Errorf("%w: Key is nil", ErrInvalidProblem)
	case table == nil:
		return nil, fmt.Errorf("%w: table is nil", ErrInvalidProblem)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.RunID == "" {
		o.RunID = uuid.NewString()
	}

	return &Searcher[S, A, K]{problem: p, table: table, opts: o}, nil
}

// MinActions returns the minimum number of actions leading from initial to a
// goal state.
//
// If no goal is reachable it returns Unreachable and ErrUnreachable. If the
// depth guard trips it returns Unreachable and ErrDepthExceeded; answers
// memoized before the guard tripped remain valid.
func (s *Searcher[S, A, K]) MinActions(initial S) (uint64, error) {
	s.stats = Stats{}
	start := time.Now()

	var (
		res uint64
		err error
	)
	if s.opts.Iterative {
		res, err = s.minIterative(initial)
	} else {
		res, err = s.minRecursive(initial, 0)
	}
	if err == nil && res == Unreachable {
		err = ErrUnreachable
	}

	s.stats.Span = timespan.BetweenTimes(start, time.Now())
	s.opts.Logger.Debug("search finished", append([]zap.Field{
		zap.String("run_id", s.opts.RunID),
		zap.Uint64("result", res),
		zap.Bool("iterative", s.opts.Iterative),
		zap.Error(err),
	}, s.stats.fields()...)...)

	if err != nil {
		return Unreachable, err
	}
	return res, nil
}

// Stats returns the statistics of the last MinActions call.
func (s *Searcher[S, A, K]) Stats() Stats {
	return s.stats
}

// RunID returns the identifier attached to this Searcher's log entries.
func (s *Searcher[S, A, K]) RunID() string {
	return s.opts.RunID
}

func (s *Searcher[S, A, K]) minRecursive(state S, depth int) (uint64, error) {
	if err := s.enter(depth); err != nil {
		return Unreachable, err
	}

	key := s.problem.Key(state)
	if v, ok := s.lookup(key); ok {
		return v, nil
	}
	if s.problem.IsGoal(state) {
		return 0, nil
	}

	s.stats.Expanded++
	best := Unreachable
	for _, a := range s.problem.Actions {
		next := s.problem.Apply(state, a)
		if s.infeasible(next) {
			continue
		}
		sub, err := s.minRecursive(next, depth+1)
		if err != nil {
			return Unreachable, err
		}
		best = relax(best, sub)
	}

	s.table.Insert(key, best)
	return best, nil
}

// enter applies the depth guard and records the deepest path seen.
func (s *Searcher[S, A, K]) enter(depth int) error {
	if s.opts.MaxDepth > 0 && depth > s.opts.MaxDepth {
		return fmt.Errorf("%w: %d", ErrDepthExceeded, s.opts.MaxDepth)
	}
	if depth > s.stats.DeepestPath {
		s.stats.DeepestPath = depth
	}
	return nil
}

func (s *Searcher[S, A, K]) lookup(key K) (uint64, bool) {
	v, ok := s.table.Get(key)
	if ok {
		s.stats.Hits++
	} else {
		s.stats.Misses++
	}
	return v, ok
}

func (s *Searcher[S, A, K]) infeasible(state S) bool {
	if s.problem.Infeasible == nil || !s.problem.Infeasible(state) {
		return false
	}
	s.stats.Pruned++
	return true
}

// relax folds the answer of one successor into the best answer so far.
func relax(best, sub uint64) uint64 {
	if sub == Unreachable {
		return best
	}
	return min(best, sub+1)
}
