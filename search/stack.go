package search

// frame is one state on the explicit stack, with the index of the next
// action to try and the best answer found among the actions tried so far.
type frame[S, K any] struct {
	state S
	key   K
	next  int
	best  uint64
}

// minIterative is minRecursive with the call stack replaced by a slice of
// frames, for state spaces whose paths are too long for comfortable
// recursion. Lookups, pruning and memoization happen in the same order.
func (s *Searcher[S, A, K]) minIterative(initial S) (uint64, error) {
	var stack []frame[S, K]

	// open answers state from the table or the goal test, or pushes a frame
	// to expand it.
	open := func(state S) (v uint64, resolved bool, err error) {
		if err := s.enter(len(stack)); err != nil {
			return Unreachable, false, err
		}
		key := s.problem.Key(state)
		if v, ok := s.lookup(key); ok {
			return v, true, nil
		}
		if s.problem.IsGoal(state) {
			return 0, true, nil
		}
		s.stats.Expanded++
		stack = append(stack, frame[S, K]{state: state, key: key, best: Unreachable})
		return 0, false, nil
	}

	if v, resolved, err := open(initial); err != nil || resolved {
		return v, err
	}

	for {
		top := &stack[len(stack)-1]

		if top.next == len(s.problem.Actions) {
			s.table.Insert(top.key, top.best)
			done := top.best
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return done, nil
			}
			parent := &stack[len(stack)-1]
			parent.best = relax(parent.best, done)
			continue
		}

		a := s.problem.Actions[top.next]
		top.next++
		next := s.problem.Apply(top.state, a)
		if s.infeasible(next) {
			continue
		}
		v, resolved, err := open(next)
		if err != nil {
			return Unreachable, err
		}
		if resolved {
			// open did not push, so top is still valid
			top.best = relax(top.best, v)
		}
	}
}
