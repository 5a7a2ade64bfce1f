package xsort

import "testing"

func TestUint64SetInsertContains(t *testing.T) {
	var s Uint64Set
	for _, v := range []uint64{5, 1, 3} {
		if !s.Insert(v) {
			t.Fatalf("Insert(%d) = false, want true (first insertion)", v)
		}
	}
	if s.Insert(3) {
		t.Fatalf("Insert(3) = true on duplicate, want false")
	}
	for _, v := range []uint64{1, 3, 5} {
		if !s.Contains(v) {
			t.Errorf("Contains(%d) = false, want true", v)
		}
	}
	if s.Contains(2) {
		t.Errorf("Contains(2) = true, want false")
	}
	want := []uint64{1, 3, 5}
	got := s.Values()
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values() = %v, want %v", got, want)
		}
	}
}

func TestUint64SetRemove(t *testing.T) {
	var s Uint64Set
	s.Insert(1)
	s.Insert(2)
	if !s.Remove(1) {
		t.Fatalf("Remove(1) = false, want true")
	}
	if s.Remove(1) {
		t.Fatalf("Remove(1) second time = true, want false")
	}
	if s.Contains(1) {
		t.Errorf("Contains(1) = true after remove, want false")
	}
	if !s.Contains(2) {
		t.Errorf("Contains(2) = false, want true (untouched)")
	}
}

func TestUint64SetMin(t *testing.T) {
	var s Uint64Set
	if _, ok := s.Min(); ok {
		t.Fatalf("Min() on empty set = ok, want false")
	}
	s.Insert(5)
	s.Insert(2)
	s.Insert(9)
	if min, ok := s.Min(); !ok || min != 2 {
		t.Fatalf("Min() = (%d, %v), want (2, true)", min, ok)
	}
}

func TestUint64SetDropLeadingRun(t *testing.T) {
	var s Uint64Set
	s.Insert(2)
	s.Insert(3)
	s.Insert(5)
	newMax, dropped := s.DropLeadingRun(1)
	if !dropped || newMax != 3 {
		t.Fatalf("DropLeadingRun(1) = (%d, %v), want (3, true)", newMax, dropped)
	}
	if s.Contains(2) || s.Contains(3) {
		t.Errorf("run values 2,3 should have been dropped")
	}
	if !s.Contains(5) {
		t.Errorf("5 should remain (not part of the contiguous run)")
	}
	newMax, dropped = s.DropLeadingRun(3)
	if dropped {
		t.Fatalf("DropLeadingRun(3) with gap at 4 = dropped true, want false")
	}
	if newMax != 3 {
		t.Fatalf("DropLeadingRun(3) with no run = %d, want unchanged 3", newMax)
	}
}

func TestUint64SetClone(t *testing.T) {
	var s Uint64Set
	s.Insert(1)
	s.Insert(2)
	c := s.Clone()
	c.Insert(3)
	if s.Contains(3) {
		t.Errorf("mutating clone affected original")
	}
	if !c.Contains(1) || !c.Contains(2) || !c.Contains(3) {
		t.Errorf("clone missing original elements: %v", c.Values())
	}
}

func TestFromSlice(t *testing.T) {
	s := FromSlice([]uint64{3, 1, 3, 2, 1})
	want := []uint64{1, 2, 3}
	got := s.Values()
	if len(got) != len(want) {
		t.Fatalf("FromSlice(...).Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FromSlice(...).Values() = %v, want %v", got, want)
		}
	}
}
