package schedule

import (
	"context"
	"errors"

	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/match"
	"github.com/katalvlaran/hyperrewrite/post"
	"github.com/katalvlaran/hyperrewrite/rulelang"
	"github.com/katalvlaran/hyperrewrite/stateindex"
)

// Reason names why a Scheduler.Run call stopped.
type Reason int

const (
	// ReasonExhausted means the match set became empty.
	ReasonExhausted Reason = iota
	// ReasonMaxEvents means the event budget was reached.
	ReasonMaxEvents
	// ReasonMaxSteps means the macro-step budget was reached.
	ReasonMaxSteps
	// ReasonMaxTokens means the token budget was reached.
	ReasonMaxTokens
	// ReasonCancelled means ctx was cancelled mid-run.
	ReasonCancelled
	// ReasonStalled means a macro-step produced no new events.
	ReasonStalled
)

// Outcome reports how a run ended.
type Outcome struct {
	Reason Reason
	Steps  int
	Events int
	Tokens int
}

// Scheduler runs the macro-step rewrite loop of spec.md §4.7.
type Scheduler struct{}

// NewScheduler returns a ready Scheduler; it holds no state of its own,
// matching tsp.SolveWithMatrix's stateless-dispatcher shape.
func NewScheduler() *Scheduler { return &Scheduler{} }

// Run drives store/idx through macro-steps applying rules until a
// budget, cancellation, or an empty match set stops the run.
func (s *Scheduler) Run(ctx context.Context, store *dagstore.Store, idx *stateindex.Index, rules []rulelang.Rule, opts Options) (Outcome, error) {
	if err := opts.Validate(); err != nil {
		return Outcome{}, err
	}

	branches := trackedBranches(opts.Evolution)
	step := 0
	for {
		if ctx.Err() != nil {
			return s.finish(store, step, ReasonCancelled), nil
		}
		if opts.MaxSteps > 0 && step >= opts.MaxSteps {
			return s.finish(store, step, ReasonMaxSteps), nil
		}
		if opts.MaxTokens > 0 && len(store.Tokens()) >= opts.MaxTokens {
			return s.finish(store, step, ReasonMaxTokens), nil
		}

		snapshot := store.Len()
		matches := match.Match(ctx, store, idx, rules, match.Options{Interactions: opts.Interactions}, opts.Timeslot)
		if len(matches) == 0 {
			return s.finish(store, step, ReasonExhausted), nil
		}

		before := eventCount(store)
		for _, b := range branches {
			s.processMatches(store, idx, rules, matches, opts, step, b, opts.Evolution == 0)
			if opts.MaxEvents > 0 && eventCount(store) >= opts.MaxEvents {
				s.postProcess(ctx, store, idx, rules, opts, snapshot)
				return s.finish(store, step+1, ReasonMaxEvents), nil
			}
		}

		s.postProcess(ctx, store, idx, rules, opts, snapshot)
		step++

		if eventCount(store) == before {
			return s.finish(store, step, ReasonStalled), nil
		}
	}
}

func (s *Scheduler) finish(store *dagstore.Store, steps int, reason Reason) Outcome {
	return Outcome{
		Reason: reason,
		Steps:  steps,
		Events: eventCount(store),
		Tokens: len(store.Tokens()),
	}
}

// trackedBranches returns the bit-indexed branch identifiers to run,
// or a single sentinel element for a full-multiway (evolution == 0) run.
func trackedBranches(evolution int) []uint16 {
	if evolution == 0 {
		return []uint16{0}
	}
	out := make([]uint16, evolution)
	for i := range out {
		out[i] = uint16(1) << uint(i)
	}
	return out
}

// processMatches runs one tracked branch's pass over an already-ordered
// match set: admissibility, instantiation, and the "already instantiated
// for a different branch" OR-in shortcut, per spec.md §4.7 step 5.
func (s *Scheduler) processMatches(store *dagstore.Store, idx *stateindex.Index, rules []rulelang.Rule, matches []match.Match, opts Options, step int, b uint16, fullMultiway bool) {
	ordered := orderMatches(matches, opts)
	instantiated := make(map[string]dagstore.ID)

	for _, m := range ordered {
		if opts.MaxEvents > 0 && eventCount(store) >= opts.MaxEvents {
			return
		}
		if !allLeaf(store, m.Hit) {
			continue
		}
		rule := rules[m.Rule]
		if !admit(store, rule, m, b, opts.Interactions, fullMultiway) {
			continue
		}

		key := matchKey(m)
		if evID, ok := instantiated[key]; ok {
			store.SetBranch(evID, b)
			continue
		}

		evID := instantiate(store, rule, m, step, b, opts.NoDuplicates)
		instantiated[key] = evID
	}
}

// instantiate produces the RHS edges for m by mapping pattern vertices
// via the match's variable assignment, allocating fresh ids for any
// pattern index beyond the LHS binding, then records the event and its
// child tokens in store, each inheriting the producing event's branch
// bit so later admissibility checks can see it. Returns the new event's
// id.
//
// In no-duplicates mode the event still consumes the full original hit
// (so separation and path-count bookkeeping over its true parent set
// stay correct); only the RHS add-list drops the patterns textually
// duplicated on the LHS, per spec.md §4.7 step 5c.
func instantiate(store *dagstore.Store, rule rulelang.Rule, m match.Match, step int, b uint16, noDuplicates bool) dagstore.ID {
	parents := make([]dagstore.Token, 0, len(m.Hit))
	for _, id := range m.Hit {
		tok, err := store.TokenByID(id)
		if err == nil {
			parents = append(parents, tok)
		}
	}

	ev, _ := store.AddEvent(m.Rule, step, parents...)
	store.SetBranch(ev.ID(), b)

	mu := append([]int(nil), m.Map...)
	next := maxVertex(mu) + 1
	for _, tok := range store.Tokens() {
		if m := maxVertex(tok.Edge()); m >= next {
			next = m + 1
		}
	}

	rhsEdges := rule.RHS
	if noDuplicates {
		rhsEdges = dropRHSDuplicates(rule)
	}

	for _, pat := range rhsEdges {
		for _, v := range pat {
			if v >= len(mu) {
				grown := make([]int, v+1)
				copy(grown, mu)
				for i := len(mu); i < len(grown); i++ {
					grown[i] = -1
				}
				mu = grown
			}
			if mu[v] == -1 {
				mu[v] = next
				next++
			}
		}
		concrete := make([]int, len(pat))
		for i, v := range pat {
			concrete[i] = mu[v]
		}
		child, _ := store.AddToken(concrete, append([]int(nil), pat...), ev)
		store.SetBranch(child.ID(), b)
	}
	return ev.ID()
}

// dropRHSDuplicates drops, in no-duplicates mode, the RHS patterns
// textually duplicated on the LHS (rule.RHSDup), per spec.md §4.7 step
// 5c: those tokens already exist and are not recreated.
func dropRHSDuplicates(rule rulelang.Rule) []rulelang.Pattern {
	out := make([]rulelang.Pattern, 0, len(rule.RHS))
	for i, pat := range rule.RHS {
		if i < len(rule.RHSDup) && rule.RHSDup[i] {
			continue
		}
		out = append(out, pat)
	}
	return out
}

func maxVertex(mu []int) int {
	max := -1
	for _, v := range mu {
		if v > max {
			max = v
		}
	}
	return max
}

func allLeaf(store *dagstore.Store, ids []dagstore.ID) bool {
	for _, id := range ids {
		tok, err := store.TokenByID(id)
		if err != nil || !tok.Leaf() || tok.Deleted() {
			return false
		}
	}
	return true
}

// matchKey identifies a match by its rule and hit set, used to detect
// "already instantiated in a prior macro-step [or branch pass] for a
// different branch" per spec.md §4.7 step 5b.
func matchKey(m match.Match) string {
	buf := make([]byte, 0, 4+4*len(m.Hit))
	buf = appendInt(buf, m.Rule)
	for _, id := range m.Hit {
		buf = appendInt(buf, int(id))
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func eventCount(store *dagstore.Store) int {
	return len(store.Events())
}

// postProcess runs the post-processor phases over the records created
// since snapshot, in the fixed order spec.md §4.8 specifies.
func (s *Scheduler) postProcess(ctx context.Context, store *dagstore.Store, idx *stateindex.Index, rules []rulelang.Rule, opts Options, snapshot int) {
	if opts.Deduplicate {
		post.Dedup(store, idx, snapshot)
	}
	post.RegisterLeaves(store, idx, snapshot)
	if opts.Merge {
		post.Merge(store, idx, snapshot)
	}
	post.NegRecheck(store, idx, rules, snapshot)
	if opts.PathCounts {
		post.PathCounts(store, snapshot)
	}
	if opts.BCoordinates {
		post.BranchialCoordinates(store, opts.Rand, snapshot)
	}
	if opts.KNN > 0 {
		post.KNN(store, opts.KNN, opts.PhaseCutoff, snapshot)
	}
}

// ErrCancelled is returned by none of this package's functions directly
// today (Run reports cancellation via Outcome.Reason, per spec.md §7's
// "budgets/cancellation are not failures" rule) but is kept for callers
// that want an errors.Is-checkable sentinel around ctx.Err().
var ErrCancelled = errors.New("schedule: run cancelled")
