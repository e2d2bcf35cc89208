package schedule

import (
	"errors"
	"time"

	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/rng"
)

// Sentinel errors for Options validation.
var (
	// ErrInvalidEvolution indicates Evolution fell outside [0, 16].
	ErrInvalidEvolution = errors.New("schedule: evolution out of range")

	// ErrInvalidInteractions indicates Interactions fell outside [1, 7].
	ErrInvalidInteractions = errors.New("schedule: interactions out of range")
)

// Order selects the macro-step's match processing order, spec.md §4.7.
type Order int

const (
	// OrderWolfram sorts by (descending LHS token ids, position-sort of
	// ids, rule index) -- "least-recent edge" ordering, b=1.
	OrderWolfram Order = iota
	// OrderWolframReverse is the reverse of OrderWolfram, b=2.
	OrderWolframReverse
	// OrderRandom shuffles matches uniformly via the injected RNG.
	OrderRandom
)

// Option customizes Options via functional arguments, mirroring
// bfs.Option's shape.
type Option func(*Options)

// Options resolves every scheduler knob spec.md §6 names.
type Options struct {
	// Evolution selects full multiway (0) or the number of tracked,
	// bit-indexed branches (1..16).
	Evolution int

	// Interactions is the global separation mask (bits 1/2/4).
	Interactions dagstore.Separation

	MaxEvents int
	MaxSteps  int
	MaxTokens int

	// Timeslot is the cooperative-yield wall-clock budget (spec.md §5).
	Timeslot time.Duration

	NoDuplicates bool
	Deduplicate  bool
	Merge        bool
	PathCounts   bool
	BCoordinates bool
	KNN          int
	PhaseCutoff  int

	Order         Order
	RuleIndexTie  bool // "rulendx": stable-sort the order by rule index
	Rand          rng.Source
}

// DefaultOptions returns Options with sane defaults: full multiway,
// spacelike+branchlike interactions, a 250ms timeslot, wolfram
// ordering, path counts and branchial coordinates enabled, no budgets
// (run until the match set is empty).
func DefaultOptions() Options {
	return Options{
		Evolution:    0,
		Interactions: 5,
		Timeslot:     250 * time.Millisecond,
		PathCounts:   true,
		BCoordinates: true,
		Order:        OrderWolfram,
		Rand:         rng.Crypto(),
	}
}

// WithEvolution sets the tracked-branch count (0 = full multiway).
func WithEvolution(n int) Option {
	return func(o *Options) { o.Evolution = n }
}

// WithInteractions sets the global separation mask.
func WithInteractions(mask dagstore.Separation) Option {
	return func(o *Options) { o.Interactions = mask }
}

// WithBudgets sets the macro-step/event/token termination budgets; 0
// means "unbounded" for that dimension.
func WithBudgets(maxEvents, maxSteps, maxTokens int) Option {
	return func(o *Options) {
		o.MaxEvents = maxEvents
		o.MaxSteps = maxSteps
		o.MaxTokens = maxTokens
	}
}

// WithTimeslot sets the cooperative-yield budget.
func WithTimeslot(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.Timeslot = d
		}
	}
}

// WithOrder sets the match processing order.
func WithOrder(order Order) Option {
	return func(o *Options) { o.Order = order }
}

// WithRuleIndexTiebreak enables the "rulendx" stable rule-index tie-break.
func WithRuleIndexTiebreak(enabled bool) Option {
	return func(o *Options) { o.RuleIndexTie = enabled }
}

// WithNoDuplicates enables no-duplicates mode (spec.md §4.7).
func WithNoDuplicates(enabled bool) Option {
	return func(o *Options) { o.NoDuplicates = enabled }
}

// WithDeduplicate enables post-processing vertex-coining deduplication.
func WithDeduplicate(enabled bool) Option {
	return func(o *Options) { o.Deduplicate = enabled }
}

// WithMerge enables post-processing edge merging.
func WithMerge(enabled bool) Option {
	return func(o *Options) { o.Merge = enabled }
}

// WithPathCounts toggles path-count assignment.
func WithPathCounts(enabled bool) Option {
	return func(o *Options) { o.PathCounts = enabled }
}

// WithBCoordinates toggles branchial-coordinate assignment.
func WithBCoordinates(enabled bool) Option {
	return func(o *Options) { o.BCoordinates = enabled }
}

// WithKNN sets the k-nearest-neighbor count for post-processing (0
// disables it) and the phase-distance clustering cutoff.
func WithKNN(k, cutoff int) Option {
	return func(o *Options) {
		o.KNN = k
		o.PhaseCutoff = cutoff
	}
}

// WithRand injects the RNG used for OrderRandom's shuffle.
func WithRand(r rng.Source) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// NewOptions resolves Options from DefaultOptions plus the given Option
// overrides, then validates the result.
func NewOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.Validate()
}

// Validate reports whether o's fields are within their documented
// ranges, matching tsp.Options/bfs.Options's separate-validation split.
func (o Options) Validate() error {
	if o.Evolution < 0 || o.Evolution > 16 {
		return ErrInvalidEvolution
	}
	if o.Interactions < 1 || o.Interactions > 7 {
		return ErrInvalidInteractions
	}
	return nil
}
