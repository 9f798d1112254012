package dominance

import "cmp"

// Sense is the optimization direction a Store compares values in.
type Sense int

const (
	// Maximize treats larger values as better.
	Maximize Sense = iota

	// Minimize treats smaller values as better.
	Minimize
)

// String returns a short human-readable name for the sense.
func (s Sense) String() string {
	switch s {
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	default:
		return "unknown"
	}
}

// Store maps duplication keys to the best value witnessed for each key.
// It is owned by a single search and is not safe for concurrent use.
type Store[K comparable, V cmp.Ordered] struct {
	sense Sense
	best  map[K]V
}

// New returns an empty Store comparing values in the given sense.
// capacity is a sizing hint for the underlying map (values ≤ 0 mean none).
func New[K comparable, V cmp.Ordered](sense Sense, capacity int) *Store[K, V] {
	if capacity < 0 {
		capacity = 0
	}

	return &Store[K, V]{
		sense: sense,
		best:  make(map[K]V, capacity),
	}
}

// Sense reports the comparison direction of the store.
func (s *Store[K, V]) Sense() Sense { return s.sense }

// better reports whether a strictly beats b.
func (s *Store[K, V]) better(a, b V) bool {
	if s.sense == Minimize {
		return a < b
	}

	return a > b
}

// ShouldExpand reports whether value strictly improves on the value recorded
// for key, or whether nothing has been recorded for key yet.
func (s *Store[K, V]) ShouldExpand(key K, value V) bool {
	prev, ok := s.best[key]

	return !ok || s.better(value, prev)
}

// Record stores value for key if it is strictly better than the recorded
// value (or the first one). It reports whether the store changed.
func (s *Store[K, V]) Record(key K, value V) bool {
	if prev, ok := s.best[key]; ok && !s.better(value, prev) {
		return false
	}
	s.best[key] = value

	return true
}

// Best returns the recorded value for key, if any.
func (s *Store[K, V]) Best(key K) (V, bool) {
	v, ok := s.best[key]

	return v, ok
}

// Len returns the number of distinct keys recorded.
func (s *Store[K, V]) Len() int { return len(s.best) }

// Reset forgets every record.
func (s *Store[K, V]) Reset() { clear(s.best) }
