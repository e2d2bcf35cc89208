package dagstore

import (
	"errors"

	"github.com/katalvlaran/hyperrewrite/bitset"
	"github.com/katalvlaran/hyperrewrite/hv"
)

// Sentinel errors for dagstore operations. Callers should branch with
// errors.Is, never string comparison, matching the corpus's error policy.
var (
	// ErrNotFound indicates an id does not name a record of the kind
	// requested (out of range, or a token id passed where an event is
	// expected and vice versa). Deleted records are still found; callers
	// check Deleted().
	ErrNotFound = errors.New("dagstore: id not found")

	// ErrKindMismatch names the wrong-Kind case as its own sentinel. The
	// accessors in this package do not return it: TokenByID, EventByID,
	// DeleteToken, DeleteEvent and Merge report a wrong-kind id as
	// ErrNotFound.
	ErrKindMismatch = errors.New("dagstore: id is the wrong kind")

	// ErrEmptyEdge indicates a token was constructed with a zero-length
	// hyperedge, which violates the "non-empty tuple" invariant.
	ErrEmptyEdge = errors.New("dagstore: hyperedge must be non-empty")
)

// ID is a dense identifier shared by tokens and events from a single
// monotonic sequence: ordering by ID is a topological order of the DAG.
type ID int

// invalidID marks "no id" in contexts where zero is a valid id.
const invalidID ID = -1

// Kind distinguishes a token record from an event record within the
// shared arena, the tagged-variant replacement for the source's ad hoc
// "has own property" dispatch (SPEC_FULL.md Design Notes).
type Kind uint8

const (
	// KindToken marks a record as a hyperedge occurrence.
	KindToken Kind = iota
	// KindEvent marks a record as a rewrite application.
	KindEvent
)

// Separation is the causal relationship between two DAG items, encoded
// as a bitmask exactly per spec.md §4.2.
type Separation uint8

const (
	// SepSame marks identical items (x == y).
	SepSame Separation = 0
	// SepSpacelike marks causally-unrelated items.
	SepSpacelike Separation = 1
	// SepTimelike marks items related by ancestry.
	SepTimelike Separation = 2
	// SepBranchlike marks items that diverge at a shared producing event.
	SepBranchlike Separation = 4
)

// node is the single arena record backing both Token and Event; fields
// not meaningful for a given Kind are left at their zero value.
type node struct {
	id      ID
	kind    Kind
	deleted bool

	// Token-only fields.
	edge []int // concrete hyperedge, vertex ids in order
	pat  []int // pattern template prior to vertex renaming
	leaf bool

	// Event-only fields.
	step int
	rule int

	// Shared fields. parent/child hold the *other* kind's ids: a
	// token's parent/child are event ids, an event's parent/child are
	// token ids.
	parent []ID
	child  []ID
	past   *bitset.Set

	pathcnt int
	bc      hv.Vector
	bcSet   bool
	branch  uint16
}
