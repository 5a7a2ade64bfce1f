package clock

import "github.com/dedis/threshold/event"

// Dot is a pair (actor, sequence) with sequence >= 1: a compact witness
// that a particular event has been observed by actor. The natural unit
// for handing a single observation around without naming a whole Clock.
type Dot[A comparable] struct {
	Actor A
	Seq   uint64
}

// NewDot builds a Dot. Panics if seq is 0: event 0 is reserved as bottom
// and is never a valid witness.
func NewDot[A comparable](actor A, seq uint64) Dot[A] {
	if seq == 0 {
		panic("clock: dot sequence must be >= 1")
	}
	return Dot[A]{Actor: actor, Seq: seq}
}

// AddDot adds d to c, returning whether it was newly added.
func AddDot[A comparable, E event.Set[E]](c *Clock[A, E], d Dot[A]) bool {
	return c.Add(d.Actor, d.Seq)
}

// IsElement reports whether d has been observed by c.
func IsElement[A comparable, E event.Set[E]](c *Clock[A, E], d Dot[A]) bool {
	return c.Contains(d.Actor, d.Seq)
}

// VClockFromSeqs builds a VClock directly from a per-actor highest-seq
// mapping, the common shape of a snapshot taken from some external
// membership/log system.
func VClockFromSeqs[A comparable](seqs map[A]uint64) *VClock[A] {
	c := NewVClock[A]()
	for a, seq := range seqs {
		if seq > 0 {
			c.Add(a, seq)
		}
	}
	return c
}
