// Package search implements a generic best-first state-space search kernel
// that serves both shortest-path search (A*) and constrained maximization
// (branch-and-bound) through one State contract.
//
// Overview:
//
//   - A caller implements State once per problem: Value (realized progress),
//     Estimate (optimistic bound), Key (duplication key) and Moves (lazy
//     successors). Finisher is optional.
//   - The driver pops the most promising state from a bound-ordered
//     frontier (package frontier), discards it if the dominance store
//     (package dominance) already holds an equal or better value for its key,
//     and otherwise expands it, queuing every successor that is not already
//     dominated.
//   - Maximize stops as soon as the popped bound cannot beat the incumbent;
//     since the frontier is ordered this prunes every pending entry at once.
//   - Minimize stops at the first finished state popped, which is optimal
//     for admissible estimates.
//
// Entry points:
//
//	Optimum[S, K, V](initial, opts...)     // branch-and-bound, Result.Value is the optimum
//	Goal[S, K, V](initial, opts...)        // A*, Result.Found == false means no solution
//	NewStepper[S, K, V](mode, initial, ...) // drive the loop one Step at a time
//	OptimumAll / GoalAll                    // independent runs in parallel (errgroup)
//	VerifyContract[S, K, V](initial, n)    // local checks of the State contract
//
// Type parameters are listed explicitly at call sites, e.g.
//
//	res, err := search.Optimum[*valveState, valveKey, int](start)
//
// Options:
//
//   - WithContext:       cancellation and deadlines, checked once per step.
//   - WithMaxExpansions: abort with ErrBudgetExceeded after n expansions.
//   - WithCapacity:      pre-size frontier and dominance store.
//   - WithLogger:        slog debug records (improvements, cutoff, finish).
//   - WithObserver:      per-event callbacks (see package metrics).
//   - WithOnStep:        hook after every step; an error aborts the run.
//   - WithRunID:         fixed run identifier instead of a random UUID.
//
// Caller contract (not detected at run time):
//
//   - Estimate must be admissible: never below the best value reachable
//     (Maximize), never above the cheapest total goal cost (Minimize).
//   - Value must never decrease along a successor chain.
//   - States sharing a Key must be interchangeable for all future moves.
//   - Moves must terminate, and the key space must be finite or the search
//     may not terminate.
//
// Violations produce silently wrong or non-terminating results; use
// VerifyContract and brute-force comparisons in tests.
//
// Errors (sentinel):
//
//   - ErrOptionViolation:    invalid option value or mode.
//   - ErrBudgetExceeded:     WithMaxExpansions limit reached.
//   - ErrEstimateBelowValue: VerifyContract found Estimate < Value.
//   - ErrValueDecreased:     VerifyContract found a successor with lower Value.
//
// Complexity:
//
//   - Time:  O(P·log F) heap work for P pops and peak frontier F, plus Moves.
//   - Space: O(F + D) for F pending states and D distinct duplication keys.
package search
