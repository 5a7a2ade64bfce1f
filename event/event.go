// Package event implements EventSet, a family of four interchangeable
// representations of a set of per-actor event identifiers: MaxSet,
// BelowExSet, AboveExSet, and AboveRangeSet. All four satisfy the same
// Set contract and observable semantics; they differ only in the
// space/time trade-off of their internal representation.
package event

import "github.com/pkg/errors"

// ErrMeetUnsupported is returned by Meet on representations for which
// intersection is not defined. BelowExSet is the only such variant: its
// exceptions encode "not observed" information that Meet has no single
// obvious way to recombine (see DESIGN.md's Open Questions). Callers
// needing intersection should use MaxSet- or AboveExSet-backed sets.
var ErrMeetUnsupported = errors.New("event: meet not supported by this representation")

// Set is the contract shared by MaxSet, BelowExSet, AboveExSet, and
// AboveRangeSet. It is generic over the concrete type S so that Join,
// Meet, Subtracted, and Clone can be expressed without losing type
// information to an `any`-typed argument: the same self-referential
// generic-constraint pattern the standard library's cmp.Ordered uses for
// comparison methods, extended here to whole-value operations.
//
// Implementations use pointer receivers: every mutator updates shared
// internal state (a slice or map) in place, so S is always a pointer type
// such as *MaxSet.
type Set[S any] interface {
	// NextEvent returns and incorporates the successor of Frontier.
	// Precondition (AboveExSet/AboveRangeSet only, enforced by a panic):
	// no extras/ranges pending; this method is only meaningful for
	// producers whose own event stream never leaves gaps.
	NextEvent() uint64

	// AddEvent adds event to the set, returning true iff it was new.
	// event == 0 is a no-op and returns false.
	AddEvent(event uint64) bool

	// AddEventRange adds every event in [start, end], returning true iff
	// at least one event was newly added. Panics if start > end.
	AddEventRange(start, end uint64) bool

	// IsEvent reports whether event is a member of the set.
	IsEvent(event uint64) bool

	// Frontier returns the highest contiguous event (0 if empty).
	Frontier() uint64

	// Events returns (scalar, overflow), whose interpretation depends on
	// the concrete variant (see each type's doc comment). Producers and
	// consumers of this pair must agree on the variant.
	Events() (uint64, []uint64)

	// Join merges other into the receiver in place (set union).
	// Commutative, associative, idempotent.
	Join(other S)

	// Meet intersects other with the receiver in place (set
	// intersection). Returns ErrMeetUnsupported if the representation
	// does not define intersection (BelowExSet).
	Meet(other S) error

	// Subtracted returns, ascending, the events present in the receiver
	// but absent from other.
	Subtracted(other S) []uint64

	// EventIter returns every event in the set, ascending, exactly once.
	EventIter() []uint64

	// Clone returns a deep copy of the receiver.
	Clone() S
}

// FromEvent builds a new S containing event, or the empty set when event
// is 0. MaxSet, being lossy, ends up with {1..event}.
func FromEvent[S Set[S]](newSet func() S, event uint64) S {
	s := newSet()
	s.AddEvent(event)
	return s
}

// FromEventRange builds a new S containing [start, end].
func FromEventRange[S Set[S]](newSet func() S, start, end uint64) S {
	s := newSet()
	s.AddEventRange(start, end)
	return s
}

// FromEvents builds a new S containing every event in es.
func FromEvents[S Set[S]](newSet func() S, es ...uint64) S {
	s := newSet()
	for _, e := range es {
		s.AddEvent(e)
	}
	return s
}
