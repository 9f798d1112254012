package search

import (
	"context"
	"fmt"
	"log/slog"
)

// defaultCapacity sizes the frontier and dominance store of a fresh run.
const defaultCapacity = 64

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// search is constructed.
type Option func(*Options)

// Options holds the parameters and hooks of one search run.
type Options struct {
	// Ctx allows cancellation and deadlines; it is checked once per step.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts the run with ErrBudgetExceeded once that
	// many states have been expanded. 0 means no limit.
	MaxExpansions int

	// Capacity sizes the frontier and dominance store up front.
	Capacity int

	// Logger receives debug records on improvements, cutoffs and
	// termination. nil disables logging.
	Logger *slog.Logger

	// Observer receives every driver event.
	Observer Observer

	// OnStep is called after every step that leaves the driver Running.
	// Returning an error aborts the run and propagates the error.
	OnStep func(stats Stats) error

	// RunID tags logs and results; generated when empty.
	RunID string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no expansion budget
//   - capacity hint of 64 entries
//   - no logger, no-op observer and OnStep hook
//   - generated run ID
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		Capacity:      defaultCapacity,
		Logger:        nil,
		Observer:      nopObserver{},
		OnStep:        func(Stats) error { return nil },
		RunID:         "",
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions limits the number of expanded states.
//
//	n > 0:  abort with ErrBudgetExceeded after n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.MaxExpansions = n
	}
}

// WithCapacity pre-sizes the frontier and dominance store.
// Negative values are rejected with ErrOptionViolation.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: Capacity cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.Capacity = n
	}
}

// WithLogger enables structured debug logging on l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithObserver registers an Observer for driver events.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithOnStep registers a hook run after every step; an error stops the run.
func WithOnStep(fn func(stats Stats) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithRunID fixes the run identifier instead of generating one.
func WithRunID(id string) Option {
	return func(o *Options) {
		o.RunID = id
	}
}

// fail records err unless an earlier violation is already recorded.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// buildOptions applies opts over the defaults and reports the first
// recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
