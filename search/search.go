package search

import "cmp"

// Optimum runs a branch-and-bound maximization from initial and returns the
// best achievable value in Result.Value.
//
// The frontier pops the highest Estimate first; the run ends as soon as the
// popped bound is ≤ the incumbent (nothing pending can improve on it) or the
// frontier empties. The incumbent starts at initial.Value() and is raised by
// every finished state popped, so Result.Value is always defined; Found
// reports whether a finished state was reached at all.
//
// Errors: ErrOptionViolation for invalid options; ErrBudgetExceeded, context
// errors and OnStep errors abort the run and come with the partial Result.
//
// Complexity: O(P·log F) heap work for P pops and peak frontier size F, plus
// the cost of Moves; memory O(F + distinct keys).
func Optimum[S State[S, K, V], K comparable, V cmp.Ordered](initial S, opts ...Option) (*Result[S, V], error) {
	st, err := NewStepper[S, K, V](Maximize, initial, opts...)
	if err != nil {
		return nil, err
	}

	return st.Run()
}

// Goal runs an A* shortest-path search from initial and returns the first
// finished state popped, which is optimal when Estimate is admissible.
//
// Result.Found == false (with Status Exhausted) is the NoSolution outcome:
// the frontier emptied without reaching a finished state. It is not an
// error.
//
// Errors: same as Optimum.
func Goal[S State[S, K, V], K comparable, V cmp.Ordered](initial S, opts ...Option) (*Result[S, V], error) {
	st, err := NewStepper[S, K, V](Minimize, initial, opts...)
	if err != nil {
		return nil, err
	}

	return st.Run()
}
