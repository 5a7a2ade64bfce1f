package event

import "fmt"

// MaxSet represents the set {1, ..., Max}. It is the most compact
// representation but the least precise: adding event 10 also implicitly
// "observes" events 1 through 9. Use it for sources that guarantee
// contiguous production (the classic vector clock).
type MaxSet struct {
	// Max is the highest event seen. Exported so that any encoder
	// (encoding/json, encoding/gob, ...) can round-trip it.
	Max uint64
}

// NewMaxSet returns an empty MaxSet. Suitable as the newSet constructor
// argument to clock.New and FromEvent.
func NewMaxSet() *MaxSet {
	return &MaxSet{}
}

func (s *MaxSet) NextEvent() uint64 {
	s.Max++
	return s.Max
}

func (s *MaxSet) AddEvent(event uint64) bool {
	if event <= s.Max {
		return false
	}
	s.Max = event
	return true
}

func (s *MaxSet) AddEventRange(start, end uint64) bool {
	if start > end {
		panic(fmt.Sprintf("event: AddEventRange called with start %d > end %d", start, end))
	}
	return s.AddEvent(end)
}

func (s *MaxSet) IsEvent(event uint64) bool {
	return event > 0 && event <= s.Max
}

// Events returns (Max, nil): MaxSet never carries overflow events.
func (s *MaxSet) Events() (uint64, []uint64) {
	return s.Max, nil
}

func (s *MaxSet) Frontier() uint64 {
	return s.Max
}

func (s *MaxSet) Join(other *MaxSet) {
	if other.Max > s.Max {
		s.Max = other.Max
	}
}

func (s *MaxSet) Meet(other *MaxSet) error {
	if other.Max < s.Max {
		s.Max = other.Max
	}
	return nil
}

func (s *MaxSet) Subtracted(other *MaxSet) []uint64 {
	if s.Max <= other.Max {
		return nil
	}
	out := make([]uint64, 0, s.Max-other.Max)
	for e := other.Max + 1; e <= s.Max; e++ {
		out = append(out, e)
	}
	return out
}

func (s *MaxSet) EventIter() []uint64 {
	out := make([]uint64, 0, s.Max)
	for e := uint64(1); e <= s.Max; e++ {
		out = append(out, e)
	}
	return out
}

func (s *MaxSet) Clone() *MaxSet {
	return &MaxSet{Max: s.Max}
}

func (s *MaxSet) String() string {
	return fmt.Sprintf("%d", s.Max)
}
