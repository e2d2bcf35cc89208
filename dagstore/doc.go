// Package dagstore is the engine's Token/Event DAG: an arena of
// append-only token and event records addressed by a single monotonic id
// sequence, plus the derived operations (past-cone closure, causal
// separation, cascading delete, merge) spec.md §3 and §4.2 define.
//
// The source keeps parent/child pointers both ways and lets cycles form
// naturally through object identity; here every record lives in a flat
// slab (Store.nodes) addressed by dense ID, and "past" is a
// bitset.Set rather than a hash set, per SPEC_FULL.md's Design Notes —
// this avoids both pointer cycles (slab growth is append-only; nothing
// is freed mid-run except by the cascading deletes below) and hash
// lookups on the pattern-matching hot path.
//
// Token and Event are thin value handles (an ID plus the owning *Store),
// the same "handle into shared storage" shape core.Vertex/core.Edge use
// relative to core.Graph, except tokens/events never outlive their
// Store and are therefore safe to copy freely.
package dagstore
