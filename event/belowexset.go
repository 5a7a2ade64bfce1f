package event

import "fmt"

// BelowExSet represents the set {1, ..., Max} \ Exceptions: every event up
// to Max is observed except the handful recorded as exceptions. It is the
// dual of AboveExSet, ideal when S is nearly contiguous with a sparse set
// of known gaps (the typical shape of a quorum clock once a few slow
// replicas fall behind).
//
// Exceptions is a plain map rather than a sorted container: Frontier
// needs the minimum exception, which this type computes on demand by a
// linear scan. Exception sets are expected to stay small, so the O(n)
// scan costs less than keeping the set ordered on every insert.
type BelowExSet struct {
	Max        uint64
	Exceptions map[uint64]struct{}
}

// NewBelowExSet returns an empty BelowExSet.
func NewBelowExSet() *BelowExSet {
	return &BelowExSet{Exceptions: make(map[uint64]struct{})}
}

func (s *BelowExSet) ensure() {
	if s.Exceptions == nil {
		s.Exceptions = make(map[uint64]struct{})
	}
}

// NextEvent adds and returns Frontier()+1: Max+1 when there are no
// exceptions, otherwise the smallest exception, which stops being one.
func (s *BelowExSet) NextEvent() uint64 {
	next := s.Frontier() + 1
	s.AddEvent(next)
	return next
}

// AddEvent adds event to the set:
//   - e < max: remove e from exceptions; return whether it was present.
//   - e = max: no-op, returns false.
//   - e > max: insert {max+1, ..., e-1} into exceptions, set max := e,
//     return true.
func (s *BelowExSet) AddEvent(event uint64) bool {
	if event == 0 {
		return false
	}
	s.ensure()
	switch {
	case event < s.Max:
		if _, ok := s.Exceptions[event]; ok {
			delete(s.Exceptions, event)
			return true
		}
		return false
	case event == s.Max:
		return false
	default:
		for e := s.Max + 1; e < event; e++ {
			s.Exceptions[e] = struct{}{}
		}
		s.Max = event
		return true
	}
}

func (s *BelowExSet) AddEventRange(start, end uint64) bool {
	if start > end {
		panic(fmt.Sprintf("event: AddEventRange called with start %d > end %d", start, end))
	}
	added := false
	for e := start; e <= end; e++ {
		if s.AddEvent(e) {
			added = true
		}
	}
	return added
}

func (s *BelowExSet) IsEvent(event uint64) bool {
	if event == 0 || event > s.Max {
		return false
	}
	_, excluded := s.Exceptions[event]
	return !excluded
}

// Events returns (Max, Exceptions), the exceptions in unspecified order.
func (s *BelowExSet) Events() (uint64, []uint64) {
	out := make([]uint64, 0, len(s.Exceptions))
	for e := range s.Exceptions {
		out = append(out, e)
	}
	return s.Max, out
}

// Frontier is the largest k such that {1,...,k} is fully observed: the
// smallest exception minus one, or Max if there are no exceptions.
func (s *BelowExSet) Frontier() uint64 {
	min, ok := s.minException()
	if !ok {
		return s.Max
	}
	return min - 1
}

func (s *BelowExSet) minException() (uint64, bool) {
	first := true
	var min uint64
	for e := range s.Exceptions {
		if first || e < min {
			min = e
			first = false
		}
	}
	return min, !first
}

// Join merges other into s: every event present in either becomes present
// in the result, with Max advancing to the larger of the two and
// exceptions recomputed accordingly (an exception in one side that is an
// actual event in the other is not an exception in the join).
func (s *BelowExSet) Join(other *BelowExSet) {
	s.ensure()
	lo, hi := s, other
	if hi.Max < lo.Max {
		lo, hi = hi, lo
	}
	// every event in (lo.Max, hi.Max] is present in hi unless it's one of
	// hi's own exceptions; absorb hi's exceptions above lo.Max as-is, and
	// reconcile exceptions at or below lo.Max by removing any that the
	// other side actually observed.
	merged := make(map[uint64]struct{}, len(s.Exceptions)+len(other.Exceptions))
	for e := range s.Exceptions {
		if e <= hi.Max {
			merged[e] = struct{}{}
		}
	}
	for e := range other.Exceptions {
		if e <= hi.Max {
			merged[e] = struct{}{}
		}
	}
	for e := range merged {
		if lo.IsEvent(e) || hi.IsEvent(e) {
			delete(merged, e)
		}
	}
	s.Max = hi.Max
	s.Exceptions = merged
}

// Meet is not defined for BelowExSet: see ErrMeetUnsupported.
func (s *BelowExSet) Meet(other *BelowExSet) error {
	return ErrMeetUnsupported
}

func (s *BelowExSet) Subtracted(other *BelowExSet) []uint64 {
	var out []uint64
	for e := uint64(1); e <= s.Max; e++ {
		if s.IsEvent(e) && !other.IsEvent(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s *BelowExSet) EventIter() []uint64 {
	out := make([]uint64, 0, int(s.Max))
	for e := uint64(1); e <= s.Max; e++ {
		if s.IsEvent(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s *BelowExSet) Clone() *BelowExSet {
	out := &BelowExSet{Max: s.Max, Exceptions: make(map[uint64]struct{}, len(s.Exceptions))}
	for e := range s.Exceptions {
		out.Exceptions[e] = struct{}{}
	}
	return out
}

func (s *BelowExSet) String() string {
	_, exs := s.Events()
	return fmt.Sprintf("%d-%v", s.Max, exs)
}
