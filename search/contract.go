package search

import (
	"cmp"
	"fmt"
)

// VerifyContract walks the state space reachable from initial breadth-first
// and checks the parts of the State contract that can be checked locally:
//
//   - Estimate() ≥ Value() for every visited state (an optimistic bound can
//     never promise less than what is already realized, in either mode);
//   - Value() of every successor ≥ Value() of its parent (monotone progress,
//     i.e. non-negative step cost for Minimize).
//
// Admissibility with respect to the true optimum cannot be checked without
// solving the problem; compare Optimum/Goal against brute force on small
// instances for that.
//
// Finished states are not expanded, mirroring the driver. Each duplication
// key is visited once. maxStates caps the walk (0 means unlimited; negative
// is ErrOptionViolation). It returns the number of states checked and the
// first violation found, wrapping ErrEstimateBelowValue or ErrValueDecreased.
func VerifyContract[S State[S, K, V], K comparable, V cmp.Ordered](initial S, maxStates int) (int, error) {
	if maxStates < 0 {
		return 0, fmt.Errorf("%w: maxStates cannot be negative (%d)", ErrOptionViolation, maxStates)
	}

	seen := map[K]struct{}{initial.Key(): {}}
	queue := []S{initial}
	checked := 0
	for len(queue) > 0 {
		if maxStates > 0 && checked >= maxStates {
			break
		}
		s := queue[0]
		queue = queue[1:]
		checked++

		value := s.Value()
		if est := s.Estimate(); est < value {
			return checked, fmt.Errorf("%w: key %v estimate=%v value=%v", ErrEstimateBelowValue, s.Key(), est, value)
		}
		if fin, ok := any(s).(Finisher); ok && fin.Finished() {
			continue
		}

		for child := range s.Moves() {
			if cv := child.Value(); cv < value {
				return checked, fmt.Errorf("%w: key %v→%v value %v→%v", ErrValueDecreased, s.Key(), child.Key(), value, cv)
			}
			ck := child.Key()
			if _, dup := seen[ck]; dup {
				continue
			}
			seen[ck] = struct{}{}
			queue = append(queue, child)
		}
	}

	return checked, nil
}
