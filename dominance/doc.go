// Package dominance implements the duplicate-state table of a best-first
// search: a map from a coarse duplication key to the best concrete value
// recorded for that key.
//
// A state whose key has already been recorded with a value at least as good
// as its own cannot lead anywhere its predecessor could not, so the search
// discards it without expansion. Only the best (key, value) pair per key is
// retained, which is what turns an exponential enumeration of move sequences
// into a search over distinct "equivalent progress" classes.
//
// Direction:
//
//   - Maximize: larger values are better; a recorded value ≥ candidate wins.
//   - Minimize: smaller values are better; a recorded value ≤ candidate wins.
//
// Ties always favor the recorded value: Record only overwrites on strict
// improvement, and ShouldExpand only admits strict improvement. This keeps
// equally good duplicates from being re-expanded forever.
//
// Precondition: states mapped to the same key must be interchangeable for
// every future move. A key that is too coarse silently yields wrong answers;
// the store cannot detect it.
//
// Complexity: ShouldExpand / Record / Best are O(1) expected; memory is
// O(distinct keys). The store never holds states, only keys and values.
package dominance
