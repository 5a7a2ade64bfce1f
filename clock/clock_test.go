package clock

import (
	"testing"

	"github.com/dedis/threshold/event"
)

// After Next(a) returns v, the clock must contain (a, v).
func TestNextThenContains(t *testing.T) {
	c := NewVClock[string]()
	for i := 0; i < 5; i++ {
		v := c.Next("A")
		if !c.Contains("A", v) {
			t.Fatalf("after Next(A) = %d, Contains(A, %d) = false", v, v)
		}
	}
}

func TestNextAbsentActorStartsAtOne(t *testing.T) {
	c := NewVClock[string]()
	if got := c.Next("A"); got != 1 {
		t.Fatalf("Next on fresh actor = %d, want 1", got)
	}
}

// After Join, every event in other is contained in self.
func TestJoinCoversOther(t *testing.T) {
	a := NewVClock[string]()
	a.Add("A", 3)
	b := NewVClock[string]()
	b.Add("A", 5)
	b.Add("B", 2)
	a.Join(b)
	if !a.Contains("A", 5) || !a.Contains("B", 2) {
		t.Fatalf("after join, a = %+v, want to contain A:5 and B:2", a)
	}
}

// Subtracted is the set-theoretic difference per actor, ascending.
func TestSubtracted(t *testing.T) {
	a := NewVClock[string]()
	a.Add("A", 7)
	b := NewVClock[string]()
	b.Add("A", 4)
	got := a.Subtracted(b)
	want := []uint64{5, 6, 7}
	if len(got["A"]) != len(want) {
		t.Fatalf("got %v, want %v", got["A"], want)
	}
	for i, e := range want {
		if got["A"][i] != e {
			t.Fatalf("got %v, want %v", got["A"], want)
		}
	}
}

func TestSubtractedActorAbsentFromOther(t *testing.T) {
	a := NewVClock[string]()
	a.Add("A", 3)
	b := NewVClock[string]()
	got := a.Subtracted(b)
	if len(got["A"]) != 3 {
		t.Fatalf("got %v, want full iteration of length 3", got["A"])
	}
}

// Meet yields per-actor intersection; actors missing from other are
// absent from the result.
func TestMeet(t *testing.T) {
	a := NewVClock[string]()
	a.Add("A", 7)
	a.Add("B", 3)
	b := NewVClock[string]()
	b.Add("A", 4)
	if err := a.Meet(b); err != nil {
		t.Fatalf("Meet returned %v", err)
	}
	got, ok := a.Get("A")
	if !ok || got.Max != 4 {
		t.Fatalf("A after meet = %+v, want max 4", got)
	}
	if _, ok := a.Get("B"); ok {
		t.Fatalf("B should have been dropped by meet, still present")
	}
}

func TestMeetUnsupportedOnBelowExSet(t *testing.T) {
	a := NewBEClock[string]()
	a.Add("A", 5)
	b := NewBEClock[string]()
	b.Add("A", 3)
	if err := a.Meet(b); err != event.ErrMeetUnsupported {
		t.Fatalf("Meet() = %v, want ErrMeetUnsupported", err)
	}
}

// FrontierThreshold(tau) is the largest event present in at least tau
// actors' frontiers. Here "A" observes {1,2,4} (frontier 2) and "B"
// observes {1,2,3,5,6} (frontier 3): one actor reaches 3, two reach 2,
// and no event is in three frontiers since only two actors exist.
func TestFrontierThreshold(t *testing.T) {
	c := NewAEClock[string]()
	c.Add("A", 1)
	c.Add("A", 2)
	c.Add("A", 4)
	c.Add("B", 1)
	c.Add("B", 2)
	c.Add("B", 3)
	c.Add("B", 5)
	c.Add("B", 6)

	f := c.Frontier()
	if got, ok := f.FrontierThreshold(1); !ok || got != 3 {
		t.Errorf("frontier_threshold(1) = (%d, %v), want (3, true)", got, ok)
	}
	if got, ok := f.FrontierThreshold(2); !ok || got != 2 {
		t.Errorf("frontier_threshold(2) = (%d, %v), want (2, true)", got, ok)
	}
	if _, ok := f.FrontierThreshold(3); ok {
		t.Errorf("frontier_threshold(3) = ok, want None")
	}
}

func TestDotHelpers(t *testing.T) {
	c := NewVClock[string]()
	d := NewDot("A", 3)
	if AddDot(c, d) != true {
		t.Fatalf("AddDot should report newly added")
	}
	if !IsElement(c, d) {
		t.Fatalf("IsElement should report true after AddDot")
	}
}

func TestVClockFromSeqs(t *testing.T) {
	c := VClockFromSeqs(map[string]uint64{"A": 3, "B": 5})
	if !c.Contains("A", 3) || !c.Contains("B", 5) {
		t.Fatalf("got %+v, want A:3 and B:5 present", c)
	}
}
