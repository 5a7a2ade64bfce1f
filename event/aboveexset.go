package event

import (
	"fmt"

	"github.com/dedis/threshold/internal/xsort"
)

// AboveExSet represents the set {1, ..., Max} ∪ Extras, where every value
// in Extras is strictly greater than Max+1 (anything adjacent to Max would
// have been compressed into Max itself). It captures out-of-order delivery
// precisely: observing event 10 before event 9 keeps Max at whatever it
// was and records 10 as an extra, rather than lying about having seen 9.
type AboveExSet struct {
	Max    uint64
	Extras xsort.Uint64Set
}

// NewAboveExSet returns an empty AboveExSet.
func NewAboveExSet() *AboveExSet {
	return &AboveExSet{}
}

func (s *AboveExSet) NextEvent() uint64 {
	if s.Extras.Len() != 0 {
		panic("event: NextEvent called on AboveExSet with pending extras")
	}
	s.Max++
	return s.Max
}

func (s *AboveExSet) AddEvent(event uint64) bool {
	switch {
	case event == 0 || event <= s.Max:
		return false
	case event == s.Max+1:
		s.Max = event
		if newMax, _ := s.Extras.DropLeadingRun(s.Max); newMax != s.Max {
			s.Max = newMax
		}
		return true
	default:
		return s.Extras.Insert(event)
	}
}

func (s *AboveExSet) AddEventRange(start, end uint64) bool {
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

func (s *AboveExSet) IsEvent(event uint64) bool {
	if event > 0 && event <= s.Max {
		return true
	}
	return s.Extras.Contains(event)
}

// Events returns (Max, Extras) ascending.
func (s *AboveExSet) Events() (uint64, []uint64) {
	return s.Max, s.Extras.Values()
}

func (s *AboveExSet) Frontier() uint64 {
	return s.Max
}

func (s *AboveExSet) Join(other *AboveExSet) {
	if other.Max > s.Max {
		s.Max = other.Max
	}
	for _, e := range other.Extras.Values() {
		if e > s.Max {
			s.Extras.Insert(e)
		}
	}
	stale := append([]uint64(nil), s.Extras.Values()...)
	for _, e := range stale {
		if e <= s.Max {
			s.Extras.Remove(e)
		}
	}
	if newMax, dropped := s.Extras.DropLeadingRun(s.Max); dropped {
		s.Max = newMax
	}
}

// Meet intersects other into s in place. An event survives iff both sides
// observed it: the new Max is the smaller of the two maxima, and any
// extra from either side that falls above the new Max is kept only when
// the *other* side also observed it (whether as part of its own
// contiguous prefix or as one of its own extras).
func (s *AboveExSet) Meet(other *AboveExSet) error {
	before := s.Clone()
	newMax := before.Max
	if other.Max < newMax {
		newMax = other.Max
	}
	candidates := append(append([]uint64(nil), before.Extras.Values()...), other.Extras.Values()...)
	s.Max = newMax
	s.Extras = xsort.Uint64Set{}
	for _, e := range candidates {
		if e > newMax && before.IsEvent(e) && other.IsEvent(e) {
			s.AddEvent(e)
		}
	}
	return nil
}

func (s *AboveExSet) Subtracted(other *AboveExSet) []uint64 {
	var out []uint64
	for e := other.Max + 1; e <= s.Max; e++ {
		if other.IsEvent(e) {
			continue
		}
		out = append(out, e)
	}
	for _, e := range s.Extras.Values() {
		if !other.IsEvent(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s *AboveExSet) EventIter() []uint64 {
	out := make([]uint64, 0, int(s.Max)+s.Extras.Len())
	for e := uint64(1); e <= s.Max; e++ {
		out = append(out, e)
	}
	out = append(out, s.Extras.Values()...)
	return out
}

func (s *AboveExSet) Clone() *AboveExSet {
	return &AboveExSet{Max: s.Max, Extras: s.Extras.Clone()}
}

func (s *AboveExSet) String() string {
	return fmt.Sprintf("%d+%v", s.Max, s.Extras.Values())
}
