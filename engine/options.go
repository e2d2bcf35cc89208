package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/rng"
	"github.com/katalvlaran/hyperrewrite/schedule"
)

// Progress reports macro-step advancement to an optional caller-supplied
// callback, spec.md §5's "progress reporting" requirement realized as
// an idiomatic Go callback instead of an event-emitter object.
type Progress struct {
	Step    int
	Matches int
	Events  int
	Phase   string
	Fraction float64
}

// Option customizes Options via functional arguments.
type Option func(*Options)

// Options resolves every knob Run needs: the script source, scheduler
// budgets/flags, and an optional progress callback.
type Options struct {
	Script string

	Evolution    int
	Interactions dagstore.Separation
	MaxEvents    int
	MaxSteps     int
	MaxTokens    int
	Timeslot     time.Duration

	NoDuplicates bool
	Deduplicate  bool
	Merge        bool
	PathCounts   bool
	BCoordinates bool
	KNN          int
	PhaseCutoff  int
	Order        schedule.Order
	RuleIndexTie bool

	Rand rng.Source

	OnProgress func(Progress)

	// RunID correlates this run's diagnostics; auto-generated if left
	// zero.
	RunID uuid.UUID
}

// DefaultOptions returns Options with the same defaults
// schedule.DefaultOptions resolves, plus a random RunID.
func DefaultOptions() Options {
	sched := schedule.DefaultOptions()
	return Options{
		Evolution:    sched.Evolution,
		Interactions: sched.Interactions,
		Timeslot:     sched.Timeslot,
		PathCounts:   sched.PathCounts,
		BCoordinates: sched.BCoordinates,
		Order:        sched.Order,
		Rand:         sched.Rand,
		RunID:        uuid.New(),
	}
}

// WithScript sets the rule/command script source text.
func WithScript(src string) Option {
	return func(o *Options) { o.Script = src }
}

// WithEvolution sets the tracked-branch count (0 = full multiway).
func WithEvolution(n int) Option { return func(o *Options) { o.Evolution = n } }

// WithInteractions sets the global separation mask.
func WithInteractions(mask dagstore.Separation) Option {
	return func(o *Options) { o.Interactions = mask }
}

// WithBudgets sets the macro-step/event/token termination budgets.
func WithBudgets(maxEvents, maxSteps, maxTokens int) Option {
	return func(o *Options) {
		o.MaxEvents = maxEvents
		o.MaxSteps = maxSteps
		o.MaxTokens = maxTokens
	}
}

// WithTimeslot sets the cooperative-yield budget.
func WithTimeslot(d time.Duration) Option { return func(o *Options) { o.Timeslot = d } }

// WithFlags sets the scheduler's post-processing toggles.
func WithFlags(noDuplicates, deduplicate, merge, pathCounts, bCoordinates bool) Option {
	return func(o *Options) {
		o.NoDuplicates = noDuplicates
		o.Deduplicate = deduplicate
		o.Merge = merge
		o.PathCounts = pathCounts
		o.BCoordinates = bCoordinates
	}
}

// WithKNN sets the k-nearest-neighbor count and phase-distance cutoff.
func WithKNN(k, cutoff int) Option {
	return func(o *Options) {
		o.KNN = k
		o.PhaseCutoff = cutoff
	}
}

// WithOrder sets the match processing order.
func WithOrder(order schedule.Order) Option { return func(o *Options) { o.Order = order } }

// WithRuleIndexTiebreak enables the rule-index tie-break.
func WithRuleIndexTiebreak(enabled bool) Option {
	return func(o *Options) { o.RuleIndexTie = enabled }
}

// WithRand injects the RNG used for every stochastic component of the run.
func WithRand(r rng.Source) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithProgress registers a callback invoked after every macro-step.
func WithProgress(fn func(Progress)) Option {
	return func(o *Options) { o.OnProgress = fn }
}

// WithRunID overrides the auto-generated run correlation id.
func WithRunID(id uuid.UUID) Option {
	return func(o *Options) { o.RunID = id }
}

// NewOptions resolves Options from DefaultOptions plus overrides, then
// validates the result.
func NewOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.Validate()
}

// Validate reports whether o is well-formed.
func (o Options) Validate() error {
	if o.Script == "" {
		return ErrEmptyScript
	}
	sched := schedule.Options{
		Evolution:    o.Evolution,
		Interactions: o.Interactions,
	}
	return sched.Validate()
}

// toSchedule projects the overlapping knobs into schedule.Options.
func (o Options) toSchedule() schedule.Options {
	return schedule.Options{
		Evolution:    o.Evolution,
		Interactions: o.Interactions,
		MaxEvents:    o.MaxEvents,
		MaxSteps:     o.MaxSteps,
		MaxTokens:    o.MaxTokens,
		Timeslot:     o.Timeslot,
		NoDuplicates: o.NoDuplicates,
		Deduplicate:  o.Deduplicate,
		Merge:        o.Merge,
		PathCounts:   o.PathCounts,
		BCoordinates: o.BCoordinates,
		KNN:          o.KNN,
		PhaseCutoff:  o.PhaseCutoff,
		Order:        o.Order,
		RuleIndexTie: o.RuleIndexTie,
		Rand:         o.Rand,
	}
}
