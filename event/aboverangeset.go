package event

import (
	"fmt"

	"github.com/dedis/threshold/internal/xsort"
)

// AboveRangeSet is like AboveExSet but coalesces extras into ranges
// instead of keeping each one individually. It trades a little CPU (range
// insertion does a binary search plus a merge scan, versus a single
// binary-search insert for AboveExSet) for much better memory behavior
// when extras arrive in bursts of contiguous events, e.g. a batched
// replication stream that delivers [40, 57] before [1, 39].
type AboveRangeSet struct {
	Max    uint64
	Ranges xsort.RangeSet
}

// NewAboveRangeSet returns an empty AboveRangeSet.
func NewAboveRangeSet() *AboveRangeSet {
	return &AboveRangeSet{}
}

func (s *AboveRangeSet) NextEvent() uint64 {
	if s.Ranges.Len() != 0 {
		panic("event: NextEvent called on AboveRangeSet with pending ranges")
	}
	s.Max++
	return s.Max
}

func (s *AboveRangeSet) AddEvent(event uint64) bool {
	return s.AddEventRange(event, event)
}

func (s *AboveRangeSet) AddEventRange(start, end uint64) bool {
	if start > end {
		panic(fmt.Sprintf("event: AddEventRange called with start %d > end %d", start, end))
	}
	if end <= s.Max {
		return false
	}
	if start <= s.Max+1 {
		// extends the contiguous prefix; Max+1 is never stored as a
		// range, so at least one event is new
		s.Max = end
		s.Ranges.DropBelow(s.Max)
	} else {
		if s.Ranges.CoversAll(start, end) {
			return false
		}
		s.Ranges.Add(start, end)
	}
	if newMax, dropped := s.Ranges.DropLeadingRun(s.Max); dropped {
		s.Max = newMax
	}
	return true
}

func (s *AboveRangeSet) IsEvent(event uint64) bool {
	if event > 0 && event <= s.Max {
		return true
	}
	return s.Ranges.Contains(event)
}

// Events returns (Max, every individual event covered by Ranges,
// ascending).
func (s *AboveRangeSet) Events() (uint64, []uint64) {
	return s.Max, s.Ranges.Values()
}

func (s *AboveRangeSet) Frontier() uint64 {
	return s.Max
}

func (s *AboveRangeSet) Join(other *AboveRangeSet) {
	if other.Max > s.Max {
		s.Max = other.Max
	}
	s.Ranges.Join(&other.Ranges)
	// either side's ranges may now fall below the merged Max
	s.Ranges.DropBelow(s.Max)
	if newMax, dropped := s.Ranges.DropLeadingRun(s.Max); dropped {
		s.Max = newMax
	}
}

// Meet intersects other into s in place, following the same rule as
// AboveExSet.Meet: the new Max is the smaller of the two maxima, and a
// candidate above it survives only if both sides observe it.
func (s *AboveRangeSet) Meet(other *AboveRangeSet) error {
	before := s.Clone()
	newMax := before.Max
	if other.Max < newMax {
		newMax = other.Max
	}
	candidates := append(append([]uint64(nil), before.Ranges.Values()...), other.Ranges.Values()...)
	s.Max = newMax
	s.Ranges = xsort.RangeSet{}
	for _, e := range candidates {
		if e > newMax && before.IsEvent(e) && other.IsEvent(e) {
			s.AddEvent(e)
		}
	}
	return nil
}

func (s *AboveRangeSet) Subtracted(other *AboveRangeSet) []uint64 {
	var out []uint64
	for e := other.Max + 1; e <= s.Max; e++ {
		if other.IsEvent(e) {
			continue
		}
		out = append(out, e)
	}
	for _, e := range s.Ranges.Values() {
		if !other.IsEvent(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s *AboveRangeSet) EventIter() []uint64 {
	out := make([]uint64, 0, int(s.Max))
	for e := uint64(1); e <= s.Max; e++ {
		out = append(out, e)
	}
	out = append(out, s.Ranges.Values()...)
	return out
}

func (s *AboveRangeSet) Clone() *AboveRangeSet {
	return &AboveRangeSet{Max: s.Max, Ranges: s.Ranges.Clone()}
}

func (s *AboveRangeSet) String() string {
	return fmt.Sprintf("%d+%v", s.Max, s.Ranges.Ranges())
}
