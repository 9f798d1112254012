// Package frontier provides the bound-ordered priority structure used by
// best-first search to decide which pending state is expanded next.
//
// Overview:
//
//   - A Frontier holds (state, bound) entries and always pops the entry with
//     the extremal bound: the highest bound for maximization searches
//     (HighestFirst), the lowest bound for shortest-path searches
//     (LowestFirst).
//   - It is a binary heap on top of container/heap, the same "lazy" heap the
//     dijkstra package of lvlath uses: stale or dominated entries are never
//     removed in place, the consumer simply discards them when popped.
//
// Ties:
//
//   - Entries with equal bounds are popped last-in-first-out. Any tie order
//     is correct for admissible bounds; LIFO makes runs reproducible and
//     tends to reach complete (deeper) candidates earlier.
//
// Complexity:
//
//   - Push / Pop: O(log N) where N = Len().
//   - Peek / Len / IsEmpty: O(1).
//   - Memory: O(N) entries; the frontier owns each pushed state until popped.
//
// Example:
//
//	f := frontier.New[string, int](frontier.HighestFirst, 0)
//	f.Push("low", 1)
//	f.Push("high", 9)
//	s, b, _ := f.Pop() // "high", 9
package frontier
