// Package lvsearch is a small, generic best-first search kernel: one driver
// that runs both shortest-path search (A*) and constrained maximization
// (branch-and-bound) over any state space you can describe with four methods.
//
// 🚀 What is lvsearch?
//
//	A zero-magic library built from three pieces:
//		• frontier/  : a bound-ordered priority queue with deterministic LIFO ties
//		• dominance/ : a duplicate-state table keeping the best value per key
//		• search/    : the driver (Optimum, Goal, Stepper), contract checker
//		               and batch runner for independent parallel searches
//	plus metrics/, a Prometheus observer for driver events.
//
// ✨ How it works
//
//	Implement search.State on your own immutable type:
//		Value()    realized progress so far (score, or cost spent)
//		Estimate() optimistic bound on the final value reachable from here
//		Key()      coarse "equivalent progress" class for duplicate detection
//		Moves()    lazy sequence of successor states
//	and optionally Finished() bool. Then call search.Optimum to maximize or
//	search.Goal to find the cheapest finished state.
//
// Quick start:
//
//	res, err := search.Goal[*cell, point, int](start)
//	if err != nil { ... }          // options, budget, cancellation
//	if !res.Found { ... }          // no goal reachable
//	fmt.Println(res.Value)         // optimal cost
//
// Guarantees hold only for admissible estimates and sound keys; use
// search.VerifyContract on small instances to catch the local violations.
//
// See the package docs of each subpackage for complexity notes.
package lvsearch
