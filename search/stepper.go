package search

import (
	"cmp"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvsearch/dominance"
	"github.com/katalvlaran/lvsearch/frontier"
)

// Stepper is the best-first search driver exposed as a state machine.
//
// Each call to Step performs exactly one loop iteration: one frontier pop and
// at most one expansion. Optimum and Goal simply step until the status leaves
// Running; callers that need their own budget, progress reporting or early
// stop drive a Stepper directly and stop calling Step whenever they like.
//
// A Stepper owns its frontier and dominance store. It is not safe for
// concurrent use, but independent Steppers may run in parallel.
type Stepper[S State[S, K, V], K comparable, V cmp.Ordered] struct {
	// Configuration / policy
	mode Mode
	opts Options
	log  *slog.Logger
	obs  Observer

	// Search structures
	front *frontier.Frontier[S, V]
	store *dominance.Store[K, V]

	// Current incumbent
	best      V
	bestState S
	found     bool

	// Driver state
	status Status
	err    error
	stats  Stats
	runID  string
}

// NewStepper prepares a search from initial in the given mode.
// It fails only on invalid options (ErrOptionViolation).
func NewStepper[S State[S, K, V], K comparable, V cmp.Ordered](mode Mode, initial S, opts ...Option) (*Stepper[S, K, V], error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if mode != Maximize && mode != Minimize {
		return nil, fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, mode)
	}

	runID := cfg.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	st := &Stepper[S, K, V]{
		mode:   mode,
		opts:   cfg,
		obs:    cfg.Observer,
		front:  frontier.New[S, V](mode.order(), cfg.Capacity),
		store:  dominance.New[K, V](mode.sense(), cfg.Capacity),
		status: Running,
		stats:  Stats{Mode: mode},
		runID:  runID,
	}
	if cfg.Logger != nil {
		st.log = cfg.Logger.With("run_id", runID, "mode", mode.String())
	}

	// Maximize starts from the initial value as incumbent; it is realized
	// progress and therefore a valid lower bound on the answer.
	if mode == Maximize {
		st.best, st.bestState = initial.Value(), initial
		if fin, ok := any(initial).(Finisher); ok && fin.Finished() {
			st.found = true
		}
	}
	st.push(initial, initial.Estimate())

	return st, nil
}

// Status returns the current driver status.
func (st *Stepper[S, K, V]) Status() Status { return st.status }

// Err returns the error that aborted the run, if any.
func (st *Stepper[S, K, V]) Err() error { return st.err }

// Stats returns the counters accumulated so far.
func (st *Stepper[S, K, V]) Stats() Stats {
	s := st.stats
	s.Keys = st.store.Len()

	return s
}

// Frontier returns the number of pending entries.
func (st *Stepper[S, K, V]) Frontier() int { return st.front.Len() }

// Incumbent returns the best value known so far and whether it comes from a
// finished state. For Minimize there is no incumbent before Solved.
func (st *Stepper[S, K, V]) Incumbent() (V, bool) { return st.best, st.found }

// Result snapshots the outcome. It may be called at any time; before a
// terminal status it reports the incumbent.
func (st *Stepper[S, K, V]) Result() *Result[S, V] {
	return &Result[S, V]{
		Value:  st.best,
		State:  st.bestState,
		Found:  st.found,
		Status: st.status,
		Stats:  st.Stats(),
		RunID:  st.runID,
	}
}

// Run steps until the status leaves Running and returns the Result.
// On cancellation, budget or hook failure the partial Result is returned
// together with the error.
func (st *Stepper[S, K, V]) Run() (*Result[S, V], error) {
	for {
		status, err := st.Step()
		if err != nil {
			return st.Result(), err
		}
		if status != Running {
			return st.Result(), nil
		}
	}
}

// Step performs one iteration of the best-first loop:
//  1. Pop the extremal entry; an empty frontier means Exhausted.
//  2. Maximize: if the popped bound cannot beat the incumbent, no pending
//     entry can either (the frontier is ordered), so the run is Solved.
//  3. Finished states are never expanded: Maximize folds them into the
//     incumbent, Minimize returns the first one popped.
//  4. Dominated states (same key, value no better than recorded) are dropped.
//  5. Otherwise record the value, drain Moves and queue every successor that
//     is not already dominated.
//
// Calling Step after the run ended is a no-op returning the final status.
func (st *Stepper[S, K, V]) Step() (Status, error) {
	if st.status != Running {
		return st.status, st.err
	}
	if err := st.opts.Ctx.Err(); err != nil {
		return st.abort(err)
	}

	// 1) Pop.
	s, bound, ok := st.front.Pop()
	if !ok {
		return st.finish(Exhausted)
	}
	st.stats.Popped++
	st.obs.OnEvent(st.mode, EventPop)

	// 2) Whole-frontier cutoff.
	if st.mode == Maximize && bound <= st.best {
		st.obs.OnEvent(st.mode, EventCutoff)
		st.debug("frontier cut off", "bound", bound, "best", st.best, "pending", st.front.Len())

		return st.finish(Solved)
	}

	// 3) Finished candidates.
	fin, hasFinisher := any(s).(Finisher)
	if hasFinisher && fin.Finished() {
		return st.accept(s)
	}

	// 4) Dominance.
	key, value := s.Key(), s.Value()
	if !st.store.ShouldExpand(key, value) {
		st.stats.Dominated++
		st.obs.OnEvent(st.mode, EventDominated)

		return st.next()
	}

	// 5) Expansion.
	if st.opts.MaxExpansions > 0 && st.stats.Expanded >= st.opts.MaxExpansions {
		// Put the state back so Result/Frontier stay consistent.
		st.front.Push(s, bound)
		return st.abort(fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, st.stats.Expanded))
	}
	st.store.Record(key, value)
	st.stats.Expanded++
	st.obs.OnEvent(st.mode, EventExpand)

	children := 0
	for child := range s.Moves() {
		children++
		st.stats.Generated++
		if !st.store.ShouldExpand(child.Key(), child.Value()) {
			st.stats.Filtered++
			st.obs.OnEvent(st.mode, EventFiltered)
			continue
		}
		est := child.Estimate()
		if st.mode == Maximize && est <= st.best {
			st.stats.BoundPruned++
			st.obs.OnEvent(st.mode, EventBoundPruned)
			st.adoptPruned(child)
			continue
		}
		st.push(child, est)
	}

	// A dead end without its own Finished method is a finished candidate.
	if children == 0 && !hasFinisher {
		return st.accept(s)
	}

	return st.next()
}

// push queues s and keeps the frontier statistics current.
func (st *Stepper[S, K, V]) push(s S, bound V) {
	st.front.Push(s, bound)
	st.stats.Pushed++
	if n := st.front.Len(); n > st.stats.MaxFrontier {
		st.stats.MaxFrontier = n
	}
	st.obs.OnEvent(st.mode, EventPush)
}

// accept handles a finished state popped from the frontier.
func (st *Stepper[S, K, V]) accept(s S) (Status, error) {
	v := s.Value()
	if st.mode == Minimize {
		st.best, st.bestState, st.found = v, s, true
		st.debug("goal reached", "value", v)

		return st.finish(Solved)
	}

	if v > st.best || (!st.found && v == st.best) {
		if v > st.best {
			st.stats.Improvements++
			st.obs.OnEvent(st.mode, EventImprovement)
			st.debug("incumbent improved", "from", st.best, "to", v, "pending", st.front.Len())
		}
		st.best, st.bestState = v, s
	}
	st.found = true

	return st.next()
}

// adoptPruned keeps a bound-pruned finished successor as the result state
// when no finished state has been reached yet. Its value can only tie the
// incumbent: it is at least the initial value and at most its own bound.
func (st *Stepper[S, K, V]) adoptPruned(child S) {
	if st.found {
		return
	}
	if fin, ok := any(child).(Finisher); ok && fin.Finished() && child.Value() == st.best {
		st.bestState, st.found = child, true
	}
}

// next runs the OnStep hook for a step that keeps the driver Running.
func (st *Stepper[S, K, V]) next() (Status, error) {
	if err := st.opts.OnStep(st.Stats()); err != nil {
		return st.abort(fmt.Errorf("search: OnStep error after %d expansions: %w", st.stats.Expanded, err))
	}

	return Running, nil
}

// finish moves the driver into a terminal status.
func (st *Stepper[S, K, V]) finish(status Status) (Status, error) {
	st.status = status
	stats := st.Stats()
	st.obs.OnFinish(status, stats)
	st.debug("search finished",
		"status", status.String(),
		"found", st.found,
		"value", st.best,
		"expanded", stats.Expanded,
		"keys", stats.Keys,
	)

	return status, nil
}

// abort moves the driver into Aborted and records err.
func (st *Stepper[S, K, V]) abort(err error) (Status, error) {
	st.status = Aborted
	st.err = err
	st.obs.OnFinish(Aborted, st.Stats())
	if st.log != nil {
		st.log.Warn("search aborted", "error", err, "expanded", st.stats.Expanded)
	}

	return Aborted, err
}

// debug logs at debug level when a logger is configured.
func (st *Stepper[S, K, V]) debug(msg string, args ...any) {
	if st.log == nil {
		return
	}
	st.log.Log(st.opts.Ctx, slog.LevelDebug, msg, args...)
}
