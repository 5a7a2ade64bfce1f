package event

import "testing"

// Empty set. AddEvent(3) -> extras={3}. AddEvent(2) -> extras={2,3}.
// AddEvent(1) -> max=1, then the now-contiguous extras {2,3} compress
// into max; final max=3, extras={}.
func TestAboveExSetCompression(t *testing.T) {
	s := NewAboveExSet()
	s.AddEvent(3)
	if got := s.Extras.Values(); len(got) != 1 || got[0] != 3 {
		t.Fatalf("after add(3): extras = %v, want [3]", got)
	}
	s.AddEvent(2)
	if got := s.Extras.Values(); len(got) != 2 {
		t.Fatalf("after add(2): extras = %v, want [2 3]", got)
	}
	s.AddEvent(1)
	if s.Max != 3 {
		t.Fatalf("after add(1): max = %d, want 3", s.Max)
	}
	if n := s.Extras.Len(); n != 0 {
		t.Fatalf("after add(1): extras len = %d, want 0", n)
	}
}

func TestAboveExSetIsEvent(t *testing.T) {
	s := FromEvents[*AboveExSet](NewAboveExSet, 1, 2, 5)
	for _, e := range []uint64{1, 2, 5} {
		if !s.IsEvent(e) {
			t.Errorf("IsEvent(%d) = false, want true", e)
		}
	}
	for _, e := range []uint64{3, 4, 6} {
		if s.IsEvent(e) {
			t.Errorf("IsEvent(%d) = true, want false", e)
		}
	}
}

func TestAboveExSetJoin(t *testing.T) {
	a := FromEvents[*AboveExSet](NewAboveExSet, 1, 3)
	b := FromEvents[*AboveExSet](NewAboveExSet, 2, 4)
	a.Join(b)
	if a.Max != 4 {
		t.Fatalf("got max %d, want 4", a.Max)
	}
	if n := a.Extras.Len(); n != 0 {
		t.Fatalf("got %d leftover extras, want 0", n)
	}
}

func TestAboveExSetSubtracted(t *testing.T) {
	// s = {1..5}; other = {1,2,4}. The difference must skip 4 even though
	// it sits above other's contiguous prefix.
	s := FromEventRange[*AboveExSet](NewAboveExSet, 1, 5)
	other := FromEvents[*AboveExSet](NewAboveExSet, 1, 2, 4)
	got := s.Subtracted(other)
	want := []uint64{3, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestAboveExSetMeet(t *testing.T) {
	// a observes {1,2,3,5,7}; b observes {1,2,8,9}. Intersection: {1,2}.
	a := FromEvents[*AboveExSet](NewAboveExSet, 1, 2, 3, 5, 7)
	b := FromEvents[*AboveExSet](NewAboveExSet, 1, 2, 8, 9)
	if err := a.Meet(b); err != nil {
		t.Fatalf("Meet() = %v, want nil", err)
	}
	for _, e := range []uint64{1, 2} {
		if !a.IsEvent(e) {
			t.Errorf("IsEvent(%d) = false, want true", e)
		}
	}
	for _, e := range []uint64{3, 5, 7, 8, 9} {
		if a.IsEvent(e) {
			t.Errorf("IsEvent(%d) = true, want false", e)
		}
	}
}

func TestAboveExSetMeetKeepsSharedExtraAboveNewMax(t *testing.T) {
	// a observes {1,2,3,5,7} (max=3, extras={5,7}); b observes {1,5,9}
	// (max=1, extras={5,9}). Intersection: {1,5} (7 and 9 are not shared).
	a := FromEvents[*AboveExSet](NewAboveExSet, 1, 2, 3, 5, 7)
	b := FromEvents[*AboveExSet](NewAboveExSet, 1, 5, 9)
	if err := a.Meet(b); err != nil {
		t.Fatalf("Meet() = %v, want nil", err)
	}
	for _, e := range []uint64{1, 5} {
		if !a.IsEvent(e) {
			t.Errorf("IsEvent(%d) = false, want true", e)
		}
	}
	for _, e := range []uint64{2, 3, 7, 9} {
		if a.IsEvent(e) {
			t.Errorf("IsEvent(%d) = true, want false", e)
		}
	}
}
