// Package engine is the top-level entry point: it compiles a
// rulelang script, assembles its seed edges (bare edges, minus negative
// subtractions, plus any seed.* generator commands and rule(...)
// sub-runs), loads them into a fresh dagstore.Store and stateindex.Index,
// then drives schedule.Scheduler.Run to completion.
//
// Grounded on the teacher's builder.Build dispatcher shape (functional
// Options, Validate() up front, one driving call) generalized from
// constructing a core.Graph to constructing a populated dagstore.Store,
// and on bfs's context-threaded cancellation convention for Run's
// ctx.Context parameter.
package engine
