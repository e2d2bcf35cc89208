// Package post runs the finalization phases spec.md §4.8 assigns
// to the end of every macro-step: vertex-coining deduplication, leaf
// registration, edge merging, negative-pattern re-checking, path-count
// and branchial-coordinate assignment, and an optional k-NN pass.
//
// Each phase is a free function over (*dagstore.Store, *stateindex.Index,
// ...) restricted to the record ids created since the macro-step's
// snapshot, mirroring the teacher's free-function-over-shared-state
// style rather than bundling them behind a stateful type: there is
// nothing for a "Processor" value to hold that store/idx don't already
// own.
package post
