// Package tclock implements TClock, the threshold engine: it ingests
// many Clocks and computes the highest event per actor observed by at
// least τ of the contributed clocks, in either of two output shapes
// (MaxSet-backed or BelowExSet-backed), plus the convenience τ=1 union.
package tclock

import (
	"github.com/dedis/threshold/clock"
	"github.com/dedis/threshold/event"
	"github.com/dedis/threshold/multiset"
)

// TClock accumulates, per actor, a MultiSet of (event -> positive/negative
// vote pair). It is not parameterized by the EventSet variant of the
// clocks it ingests: ingestion reduces every variant to the same
// (event, Votes) stream via EventSet.Events(), so one TClock can in
// principle absorb clocks of mixed backing (not a case the contract
// requires, but nothing here forbids it).
type TClock[A comparable] struct {
	actors map[A]*multiset.MultiSet[uint64, multiset.Votes]
	n      int
}

// New returns an empty TClock.
func New[A comparable]() *TClock[A] {
	return &TClock[A]{actors: make(map[A]*multiset.MultiSet[uint64, multiset.Votes])}
}

// Len returns the number of clocks ingested so far, the natural upper
// bound for a meaningful tau.
func (t *TClock[A]) Len() int {
	return t.n
}

func (t *TClock[A]) multisetFor(actor A) *multiset.MultiSet[uint64, multiset.Votes] {
	ms, ok := t.actors[actor]
	if !ok {
		ms = multiset.New[uint64, multiset.Votes]()
		t.actors[actor] = ms
	}
	return ms
}

// ingest absorbs one clock's entries. overflowIsNegative distinguishes
// BelowExSet's exceptions (negative votes, "specifically not observed")
// from every other variant's overflow, which is additional positive
// evidence (AboveExSet/AboveRangeSet extras, or MaxSet's always-empty
// overflow).
func ingest[A comparable, E event.Set[E]](t *TClock[A], c *clock.Clock[A, E], overflowIsNegative bool) {
	t.n++
	c.Range(func(actor A, e E) bool {
		ms := t.multisetFor(actor)
		max, overflow := e.Events()
		ms.AddElem(max, multiset.Votes{Pos: 1})
		for _, x := range overflow {
			if overflowIsNegative {
				ms.AddElem(x, multiset.Votes{Neg: 1})
			} else {
				ms.AddElem(x, multiset.Votes{Pos: 1})
			}
		}
		return true
	})
}

// AddVClock ingests a MaxSet-backed clock: one positive vote per actor at
// its reported max.
func (t *TClock[A]) AddVClock(c *clock.VClock[A]) {
	ingest[A, *event.MaxSet](t, c, false)
}

// AddBEClock ingests a BelowExSet-backed clock: one positive vote at the
// reported max, one negative vote per exception.
func (t *TClock[A]) AddBEClock(c *clock.BEClock[A]) {
	ingest[A, *event.BelowExSet](t, c, true)
}

// AddAEClock ingests an AboveExSet-backed clock: one positive vote at the
// contiguous max, one additional positive vote per extra.
func (t *TClock[A]) AddAEClock(c *clock.AEClock[A]) {
	ingest[A, *event.AboveExSet](t, c, false)
}

// AddARClock ingests an AboveRangeSet-backed clock, handled identically
// to AddAEClock (Events() already flattens ranges to individual events).
func (t *TClock[A]) AddARClock(c *clock.ARClock[A]) {
	ingest[A, *event.AboveRangeSet](t, c, false)
}

// passes reports whether cumulative positives minus this key's own
// negative votes reach tau, without underflowing when data is malformed
// (more exceptions recorded than corroborating positive votes).
func passes(cumPos, localNeg, tau uint64) bool {
	if localNeg > cumPos {
		return false
	}
	return cumPos-localNeg >= tau
}

// ThresholdUnion computes threshold_union(τ) over every MaxSet-backed
// clock ingested so far. Returns the result VClock and equalToUnion: true
// iff every actor's chosen event equals the highest key it contributed.
func (t *TClock[A]) ThresholdUnion(tau uint64) (*clock.VClock[A], bool) {
	out := clock.NewVClock[A]()
	equalToUnion := true
	for actor, ms := range t.actors {
		keys := ms.Keys()
		var cumPos uint64
		var chosen uint64
		for i := len(keys) - 1; i >= 0; i-- {
			cumPos += ms.Count(keys[i]).Pos
			if cumPos >= tau {
				chosen = keys[i]
				break
			}
		}
		out.Add(actor, chosen)
		if len(keys) > 0 && chosen != keys[len(keys)-1] {
			equalToUnion = false
		}
	}
	return out, equalToUnion
}

// Union is threshold_union(1), plus a report of whether every contributed
// clock was identical (every actor's MultiSet holds exactly one key).
func (t *TClock[A]) Union() (*clock.VClock[A], bool) {
	out, _ := t.ThresholdUnion(1)
	allEqual := true
	for _, ms := range t.actors {
		if ms.Len() != 1 {
			allEqual = false
			break
		}
	}
	return out, allEqual
}

// ThresholdUnionBelowEx computes threshold_union(τ) over every
// BelowExSet-backed clock ingested so far. This is the candidate-walk
// algorithm: when the highest key whose cumulative positives reach τ
// fails once its own exceptions are subtracted, the search continues
// downward through implicit candidates (events that never received a
// vote of their own) until one clears the threshold.
func (t *TClock[A]) ThresholdUnionBelowEx(tau uint64) *clock.BEClock[A] {
	out := clock.NewBEClock[A]()
	for actor, ms := range t.actors {
		highest, exceptions := thresholdBelowEx(ms, tau)
		be := event.NewBelowExSet()
		be.Max = highest
		for _, x := range exceptions {
			if x <= highest {
				be.Exceptions[x] = struct{}{}
			}
		}
		out.Set(actor, be)
	}
	return out
}

func thresholdBelowEx(ms *multiset.MultiSet[uint64, multiset.Votes], tau uint64) (highest uint64, exceptions []uint64) {
	keys := ms.Keys()
	n := len(keys)
	if n == 0 {
		return 0, nil
	}

	// Phase 1: accumulate positives descending until tau is reached.
	i := n - 1
	var cumPos uint64
	for i >= 0 {
		cumPos += ms.Count(keys[i]).Pos
		if cumPos >= tau {
			break
		}
		i--
	}
	if i < 0 {
		return 0, nil
	}
	seq := keys[i]

	var consumedIdx int
	if passes(cumPos, ms.Count(seq).Neg, tau) {
		highest = seq
		consumedIdx = i
	} else {
		candidate := seq - 1
		j := i - 1
		for {
			if j >= 0 && keys[j] == candidate {
				v := ms.Count(candidate)
				cumPos += v.Pos
				if passes(cumPos, v.Neg, tau) {
					highest = candidate
					consumedIdx = j
					break
				}
				j--
				candidate--
				continue
			}
			// candidate is implicit (no vote of its own): its only
			// negative contribution would be its own exception entry,
			// which by definition doesn't exist here.
			// j has not been consumed yet; it still needs checking below.
			if passes(cumPos, 0, tau) {
				highest = candidate
				consumedIdx = j + 1
				break
			}
			if candidate == 0 {
				highest = 0
				consumedIdx = j + 1
				break
			}
			candidate--
		}
	}

	for idx := consumedIdx - 1; idx >= 0; idx-- {
		k := keys[idx]
		v := ms.Count(k)
		cumPos += v.Pos
		if !passes(cumPos, v.Neg, tau) {
			exceptions = append(exceptions, k)
		}
	}
	return highest, exceptions
}
