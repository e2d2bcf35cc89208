package engine

import (
	"context"

	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/rulelang"
	"github.com/katalvlaran/hyperrewrite/schedule"
	"github.com/katalvlaran/hyperrewrite/stateindex"
)

// Outcome reports how a Run call ended, re-exporting schedule.Outcome's
// shape plus the run's correlation id.
type Outcome struct {
	Reason schedule.Reason
	Steps  int
	Events int
	Tokens int
	RunID  string
}

// Run parses and compiles opts.Script, assembles its seed hypergraph,
// then drives the rewrite scheduler to completion. Returns a Handle
// into the finished state alongside the Outcome describing why the run
// stopped; budget exhaustion and cancellation are reported via Outcome,
// never as an error, per spec.md §7.
func Run(ctx context.Context, opts ...Option) (*Handle, Outcome, error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return nil, Outcome{}, err
	}

	stmts, err := rulelang.Parse(o.Script)
	if err != nil {
		return nil, Outcome{}, err
	}

	script, err := rulelang.Compile(stmts, subrunFor(ctx, o), o.Rand)
	if err != nil {
		return nil, Outcome{}, err
	}
	if len(script.Rules) == 0 && len(script.Commands) == 0 {
		return nil, Outcome{}, ErrEmptyScript
	}

	seedEdges, err := assembleSeed(ctx, script, o)
	if err != nil {
		return nil, Outcome{}, err
	}
	if len(seedEdges) == 0 {
		return nil, Outcome{}, ErrNoSeed
	}

	store := dagstore.NewStore()
	idx := stateindex.New()
	if err := loadSeed(store, idx, seedEdges, allTrackedBranches(o.Evolution)); err != nil {
		return nil, Outcome{}, err
	}

	schedOutcome, err := schedule.NewScheduler().Run(ctx, store, idx, script.Rules, o.toSchedule())
	if err != nil {
		return nil, Outcome{}, err
	}

	h := &Handle{store: store, idx: idx}
	if o.OnProgress != nil {
		o.OnProgress(Progress{
			Step:    schedOutcome.Steps,
			Events:  schedOutcome.Events,
			Phase:   "done",
			Fraction: 1,
		})
	}

	return h, Outcome{
		Reason: schedOutcome.Reason,
		Steps:  schedOutcome.Steps,
		Events: schedOutcome.Events,
		Tokens: schedOutcome.Tokens,
		RunID:  o.RunID.String(),
	}, nil
}

// subrunFor adapts runSubEvolution to rulelang.SubrunFunc's signature:
// an empty-seed bounded spacelike evolution of the given rule,
// returning its leaves. rulelang.Compile only hands it on to nested
// Compile calls and never calls it; rule(...) and prerun commands are
// run by assembleSeed.
func subrunFor(ctx context.Context, o Options) rulelang.SubrunFunc {
	return func(subRule rulelang.Rule, maxEvents int) ([][]int, error) {
		return runSubEvolution(ctx, nil, []rulelang.Rule{subRule}, maxEvents, o)
	}
}
