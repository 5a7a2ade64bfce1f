// Package clock implements Clock, a mapping from actor identifiers to
// EventSets with no implicit ordering between actors. A missing actor is
// equivalent to that actor mapped to an empty EventSet.
package clock

import (
	"sort"

	"github.com/dedis/threshold/event"
)

// Clock maps actor A to EventSet E. The zero value is not usable; build
// one with New, With, or From.
type Clock[A comparable, E event.Set[E]] struct {
	newSet func() E
	m      map[A]E
}

// New returns an empty Clock. newSet must return a fresh, empty E each
// call; it is the workaround for Go generics having no way to express
// "call E's own zero-arg constructor" as part of the type parameter.
func New[A comparable, E event.Set[E]](newSet func() E) *Clock[A, E] {
	return &Clock[A, E]{newSet: newSet, m: make(map[A]E)}
}

// With returns a Clock with every actor present, each mapped to an empty
// EventSet.
func With[A comparable, E event.Set[E]](newSet func() E, actors ...A) *Clock[A, E] {
	c := New[A, E](newSet)
	for _, a := range actors {
		c.m[a] = newSet()
	}
	return c
}

// From builds a Clock from a pre-populated actor -> EventSet mapping. The
// entries are not cloned; callers that need independent ownership should
// clone first.
func From[A comparable, E event.Set[E]](newSet func() E, entries map[A]E) *Clock[A, E] {
	c := New[A, E](newSet)
	for a, e := range entries {
		c.m[a] = e
	}
	return c
}

// upsert is the shared pattern behind Next, Add, and AddRange: if actor is
// present, apply f to its EventSet; otherwise insert a fresh one first.
// Join follows the same pattern inline, inserting a clone instead.
func (c *Clock[A, E]) upsert(actor A, f func(E)) E {
	e, ok := c.m[actor]
	if !ok {
		e = c.newSet()
		c.m[actor] = e
	}
	f(e)
	return e
}

// Next fetches-or-inserts actor's EventSet and returns next_event() on
// it: 1 for a brand-new actor, frontier+1 otherwise.
func (c *Clock[A, E]) Next(actor A) uint64 {
	var seq uint64
	c.upsert(actor, func(e E) { seq = e.NextEvent() })
	return seq
}

// Add upserts actor then delegates to AddEvent, returning whether seq was
// newly added.
func (c *Clock[A, E]) Add(actor A, seq uint64) bool {
	var added bool
	c.upsert(actor, func(e E) { added = e.AddEvent(seq) })
	return added
}

// AddRange upserts actor then delegates to AddEventRange.
func (c *Clock[A, E]) AddRange(actor A, start, end uint64) bool {
	var added bool
	c.upsert(actor, func(e E) { added = e.AddEventRange(start, end) })
	return added
}

// Contains reports whether actor's EventSet has seq. A missing actor
// never contains anything.
func (c *Clock[A, E]) Contains(actor A, seq uint64) bool {
	e, ok := c.m[actor]
	if !ok {
		return false
	}
	return e.IsEvent(seq)
}

// Set installs e as actor's EventSet outright, replacing any prior entry.
// Used by the threshold engine, which computes a whole new EventSet per
// actor rather than mutating one incrementally.
func (c *Clock[A, E]) Set(actor A, e E) {
	c.m[actor] = e
}

// Get returns actor's EventSet and whether actor is present.
func (c *Clock[A, E]) Get(actor A) (E, bool) {
	e, ok := c.m[actor]
	return e, ok
}

// Len returns the number of actors present.
func (c *Clock[A, E]) Len() int {
	return len(c.m)
}

// Actors returns every actor present, in unspecified order.
func (c *Clock[A, E]) Actors() []A {
	out := make([]A, 0, len(c.m))
	for a := range c.m {
		out = append(out, a)
	}
	return out
}

// Range calls f for every (actor, EventSet) pair, stopping early if f
// returns false.
func (c *Clock[A, E]) Range(f func(actor A, e E) bool) {
	for a, e := range c.m {
		if !f(a, e) {
			return
		}
	}
}

// Frontier returns a VClock mapping each present actor to its EventSet's
// frontier, collapsed down to the dense MaxSet representation.
func (c *Clock[A, E]) Frontier() *Clock[A, *event.MaxSet] {
	out := New[A, *event.MaxSet](event.NewMaxSet)
	for a, e := range c.m {
		out.Add(a, e.Frontier())
	}
	return out
}

// FrontierThreshold collects every actor's frontier, sorts ascending, and
// returns the value at position len(actors)-tau: "the largest event
// observed by at least tau actors". Returns (0, false) when tau is out of
// [1, len(actors)].
func (c *Clock[A, E]) FrontierThreshold(tau int) (uint64, bool) {
	if tau <= 0 || tau > len(c.m) {
		return 0, false
	}
	frontiers := make([]uint64, 0, len(c.m))
	for _, e := range c.m {
		frontiers = append(frontiers, e.Frontier())
	}
	sort.Slice(frontiers, func(i, j int) bool { return frontiers[i] < frontiers[j] })
	return frontiers[len(frontiers)-tau], true
}

// Join merges other into c in place: for each (actor, e) in other,
// actor's entry in c joins with e, inserting a clone of e if actor was
// absent.
func (c *Clock[A, E]) Join(other *Clock[A, E]) {
	for a, oe := range other.m {
		e, ok := c.m[a]
		if !ok {
			c.m[a] = oe.Clone()
			continue
		}
		e.Join(oe)
	}
}

// Meet intersects c with other in place: actors present in both have
// their EventSets intersected; actors absent from other are dropped from
// c entirely. Returns event.ErrMeetUnsupported if the backing EventSet
// does not support intersection (BelowExSet).
func (c *Clock[A, E]) Meet(other *Clock[A, E]) error {
	for a, e := range c.m {
		oe, ok := other.m[a]
		if !ok {
			delete(c.m, a)
			continue
		}
		if err := e.Meet(oe); err != nil {
			return err
		}
	}
	return nil
}

// Subtracted returns, per actor, the events in c's EventSet absent from
// other's (or the full event list, when actor is absent from other).
func (c *Clock[A, E]) Subtracted(other *Clock[A, E]) map[A][]uint64 {
	out := make(map[A][]uint64, len(c.m))
	for a, e := range c.m {
		oe, ok := other.m[a]
		if !ok {
			out[a] = e.EventIter()
			continue
		}
		out[a] = e.Subtracted(oe)
	}
	return out
}

// Clone returns a deep copy of c.
func (c *Clock[A, E]) Clone() *Clock[A, E] {
	out := New[A, E](c.newSet)
	for a, e := range c.m {
		out.m[a] = e.Clone()
	}
	return out
}
