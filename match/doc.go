// Package match enumerates every admissible instantiation of a
// compiled rule's LHS over the current multiway frontier: spec.md
// §4.6's mapset-extension algorithm, negative-pattern rejection, and
// the pairwise causal-separation filter.
//
// The spec describes the search as four sequential phases (seed from
// p1, extend through p2..pm, reject via neg, then Cartesian-enumerate
// token tuples with a separation filter). This package fuses all four
// into a single recursive backtracking walk over LHS positions —
// position j's candidate tokens are looked up via stateindex.Index at
// each step and unified against the partial variable map, which is
// exactly the mapset-extension the spec describes; the separation
// filter and duplicate-token rejection are applied once a full
// assignment is reached, and negative-pattern rejection is applied at
// the same point before a Match is emitted. This produces the same
// match set the phased description does without materializing an
// intermediate mapset slice per phase.
//
// Grounded on bfs.BFS's free-function-plus-walker-struct shape
// (bfs/bfs.go): an internal matcher struct holds the mutable search
// state the way bfs's walker does, and a context.Context threads
// through for the cooperative yield points spec.md §5 requires inside
// the matcher's per-leaf loop.
package match
