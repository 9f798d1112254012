package search

import (
	"cmp"
	"errors"
	"iter"

	"github.com/katalvlaran/lvsearch/dominance"
	"github.com/katalvlaran/lvsearch/frontier"
)

// Sentinel errors returned by the search package.
var (
	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrBudgetExceeded indicates that WithMaxExpansions stopped the driver
	// before it reached a terminal status. The partial Result is still
	// returned alongside the error.
	ErrBudgetExceeded = errors.New("search: expansion budget exceeded")

	// ErrEstimateBelowValue indicates a state whose optimistic bound is
	// smaller than its realized value (VerifyContract).
	ErrEstimateBelowValue = errors.New("search: estimate below value")

	// ErrValueDecreased indicates a successor whose value is smaller than its
	// parent's (VerifyContract).
	ErrValueDecreased = errors.New("search: successor value decreased")
)

// State is the contract a caller implements once per problem.
//
// S is the caller's own state type (usually a pointer to an immutable
// struct), K its duplication key and V the totally ordered type shared by
// realized values and bounds.
//
// Preconditions, not checked by the driver:
//   - Value never decreases along a successor chain.
//   - Maximize: Estimate ≥ the best value reachable from the state.
//   - Minimize: Estimate ≤ the total cost of the cheapest goal reachable
//     from the state (Value + an admissible heuristic).
//   - States with equal keys are interchangeable for every future move.
//   - Moves yields finitely many successors per call and never the state
//     itself unless waiting is a distinct legal move.
type State[S any, K comparable, V cmp.Ordered] interface {
	// Value is the progress realized so far.
	Value() V

	// Estimate is the optimistic bound used to order the frontier.
	Estimate() V

	// Key is the duplication key used for dominance pruning.
	Key() K

	// Moves lazily yields every legal successor. An empty sequence marks a
	// dead end.
	Moves() iter.Seq[S]
}

// Finisher is implemented by states that know whether they are complete
// candidate solutions. States that do not implement it are treated as
// finished once their Moves sequence turns out to be empty.
type Finisher interface {
	Finished() bool
}

// Mode selects the optimization direction of a search.
type Mode int

const (
	// Maximize runs branch-and-bound: the frontier pops the highest bound and
	// the search stops once that bound cannot beat the incumbent.
	Maximize Mode = iota

	// Minimize runs A*: the frontier pops the lowest bound and the first
	// finished state popped is optimal.
	Minimize
)

// String returns the mode name; it is also used as a metrics label.
func (m Mode) String() string {
	switch m {
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	default:
		return "unknown"
	}
}

// order maps the mode onto the frontier pop order.
func (m Mode) order() frontier.Order {
	if m == Minimize {
		return frontier.LowestFirst
	}

	return frontier.HighestFirst
}

// sense maps the mode onto the dominance comparison.
func (m Mode) sense() dominance.Sense {
	if m == Minimize {
		return dominance.Minimize
	}

	return dominance.Maximize
}

// Status is the state of the driver's own state machine.
type Status int

const (
	// Running: the frontier still holds entries that may improve the answer.
	Running Status = iota

	// Exhausted: the frontier emptied. For Minimize this is the NoSolution
	// outcome; for Maximize the incumbent is final.
	Exhausted

	// Solved: Maximize cut off the whole frontier, or Minimize popped a
	// finished state.
	Solved

	// Aborted: cancellation, budget or a hook error stopped the driver.
	Aborted
)

// String returns the status name; it is also used as a metrics label.
func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Exhausted:
		return "exhausted"
	case Solved:
		return "solved"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Stats counts driver work for one search run.
type Stats struct {
	Mode         Mode // optimization direction of the run
	Pushed       int  // entries pushed onto the frontier, initial state included
	Popped       int  // entries popped from the frontier
	Expanded     int  // states whose Moves were drained
	Generated    int  // successors yielded by Moves
	Dominated    int  // popped states discarded by the dominance store
	Filtered     int  // successors discarded by the dominance store before queuing
	BoundPruned  int  // Maximize: successors whose bound could not beat the incumbent
	Improvements int  // times the incumbent value strictly improved
	MaxFrontier  int  // largest frontier size observed
	Keys         int  // distinct duplication keys recorded
}

// Result is the outcome of a search run.
type Result[S any, V cmp.Ordered] struct {
	// Value is the answer: the best value for Maximize, the value of the
	// goal state for Minimize (zero when Found is false).
	Value V

	// State is the finished state that produced Value. For Maximize with no
	// finished state it is the initial state.
	State S

	// Found reports whether a finished state achieving Value was reached
	// (Maximize also counts a finished successor dropped by the incumbent
	// bound). Minimize with Found == false is the NoSolution outcome.
	Found bool

	// Status is the terminal driver status.
	Status Status

	// Stats summarizes the work done.
	Stats Stats

	// RunID identifies the run in logs and observers.
	RunID string
}

// EventKind names the driver events reported to an Observer.
type EventKind int

const (
	EventPush        EventKind = iota // entry pushed onto the frontier
	EventPop                          // entry popped from the frontier
	EventExpand                       // state expanded
	EventDominated                    // popped state discarded as dominated
	EventFiltered                     // successor discarded as dominated
	EventBoundPruned                  // successor discarded by incumbent bound
	EventImprovement                  // incumbent improved
	EventCutoff                       // frontier cut off by incumbent
)

// String returns the event name; it is also used as a metrics label.
func (k EventKind) String() string {
	switch k {
	case EventPush:
		return "push"
	case EventPop:
		return "pop"
	case EventExpand:
		return "expand"
	case EventDominated:
		return "dominated"
	case EventFiltered:
		return "filtered"
	case EventBoundPruned:
		return "bound_pruned"
	case EventImprovement:
		return "improvement"
	case EventCutoff:
		return "cutoff"
	default:
		return "unknown"
	}
}

// Observer receives driver events. Implementations must be cheap; they are
// invoked from the hot loop. The metrics package provides a Prometheus one.
type Observer interface {
	OnEvent(mode Mode, kind EventKind)
	OnFinish(status Status, stats Stats)
}

// nopObserver is installed when no Observer is configured.
type nopObserver struct{}

func (nopObserver) OnEvent(Mode, EventKind) {}
func (nopObserver) OnFinish(Status, Stats)  {}
