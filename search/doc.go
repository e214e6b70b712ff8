// Package search implements a memoized, depth-first search for the minimum
// number of actions that turns an initial state into a goal state, and a
// memoized search for the largest ordered digit subsequence.
//
// What:
//
//   - Searcher.MinActions explores a discrete state space recursively. At
//     each state it consults a memo.Table, returns 0 at a goal, and otherwise
//     tries every action, skipping successors the problem declares
//     infeasible. The best answer for each expanded state is memoized on the
//     way back up.
//   - LargestOrderedDigits picks count digits, in order, maximizing the
//     number they spell. Subproblems are keyed by the identity of the
//     remaining suffix (memo.Ref), so a lookup never scans the digits.
//
// Termination:
//
// Search assumes monotonic progress: no sequence of actions may lead back to
// a state that is still being explored. Additive actions pruned on overshoot
// satisfy this. Problems that can cycle would recurse forever; the depth
// guard (WithMaxDepth) turns that into ErrDepthExceeded instead.
//
// Errors:
//
//   - ErrUnreachable       no action sequence reaches a goal
//   - ErrDepthExceeded     a path grew longer than the configured maximum
//   - ErrInvalidProblem    a required Problem function or the table is nil
//   - ErrTooFewDigits      more digits requested than available
//   - ErrTooManyDigits     the result would not fit in a uint64
//   - ErrNotDigit          an input value is not in 0..9
//
// A Searcher and its table belong to one goroutine. Independent problems may
// be searched concurrently as long as each has its own table.
package search
