// Package stateindex maintains the two leaf-token indices spec.md §4.5
// names: an exact-edge index L and a one-slot-wildcard index P. Both
// are keyed by an FNV-1a hash of the edge tuple (internal/fnv1a) rather
// than a stringified key, per SPEC_FULL.md's Design Notes, and both are
// kept in sync by SetLeaf/UnsetLeaf as tokens enter and leave the
// multiway frontier.
//
// Hash keys admit collisions; candidates returned by Exact/Wildcard are
// *candidates*, not guaranteed matches — callers (the match package)
// must re-verify against the token's real edge via dagstore before
// accepting a hit, the same discipline the corpus applies to any
// hash-bucketed lookup (graph/core/adjacency_list.go's map-of-maps
// never needs this because Go maps compare keys exactly; a hashed
// integer key does not).
package stateindex
