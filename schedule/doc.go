// Package schedule runs the macro-step rewrite loop of spec.md §4.7:
// match, order, admit per tracked branch, instantiate, then hand off to
// post for finalization, repeating until a budget or an empty match set
// stops the run.
//
// Grounded on tsp.SolveWithMatrix's dispatcher-with-validated-Options
// shape (tsp/solve.go) for Scheduler.Run's overall structure, and on
// bfs.WithOnVisit's functional-option construction (bfs/types.go) for
// schedule.Options. Cooperative yielding follows the same
// select-on-ctx.Done shape bfs.walker.loop uses, generalized with a
// wall-clock budget (spec.md §5's timeslot) rather than a pure
// cancellation check.
package schedule
