// Package xsort implements small ascending-sorted containers of uint64
// values. The event-set variants in package event need an ordered
// enumeration of a handful of "overflow" events (extras or ranges)
// without paying for a general-purpose balanced tree, so a sorted slice
// with binary-search insertion does the job.
package xsort

import "sort"

// Uint64Set is an ascending-sorted set of uint64 values with no
// duplicates. The zero value is an empty set ready to use.
type Uint64Set struct {
	vals []uint64
}

// Len returns the number of elements in s.
func (s *Uint64Set) Len() int {
	return len(s.vals)
}

// Contains reports whether v is in s.
func (s *Uint64Set) Contains(v uint64) bool {
	i := sort.Search(len(s.vals), func(i int) bool { return s.vals[i] >= v })
	return i < len(s.vals) && s.vals[i] == v
}

// Insert adds v to s, returning true if v was not already present.
func (s *Uint64Set) Insert(v uint64) bool {
	i := sort.Search(len(s.vals), func(i int) bool { return s.vals[i] >= v })
	if i < len(s.vals) && s.vals[i] == v {
		return false
	}
	s.vals = append(s.vals, 0)
	copy(s.vals[i+1:], s.vals[i:])
	s.vals[i] = v
	return true
}

// Remove deletes v from s, returning true if it was present.
func (s *Uint64Set) Remove(v uint64) bool {
	i := sort.Search(len(s.vals), func(i int) bool { return s.vals[i] >= v })
	if i >= len(s.vals) || s.vals[i] != v {
		return false
	}
	s.vals = append(s.vals[:i], s.vals[i+1:]...)
	return true
}

// Min returns the smallest element and true, or 0 and false if empty.
func (s *Uint64Set) Min() (uint64, bool) {
	if len(s.vals) == 0 {
		return 0, false
	}
	return s.vals[0], true
}

// DropLeadingRun removes elements from the front of s that form the
// contiguous run start, start+1, start+2, ... and returns the new
// frontier (the last value absorbed) and whether anything was dropped.
// Used by AboveExSet compression after a join or add.
func (s *Uint64Set) DropLeadingRun(start uint64) (newMax uint64, dropped bool) {
	newMax = start
	for len(s.vals) > 0 && s.vals[0] == newMax+1 {
		newMax = s.vals[0]
		s.vals = s.vals[1:]
		dropped = true
	}
	return newMax, dropped
}

// Values returns the elements of s in ascending order. The returned
// slice must not be mutated by the caller.
func (s *Uint64Set) Values() []uint64 {
	return s.vals
}

// Clone returns a deep copy of s.
func (s *Uint64Set) Clone() Uint64Set {
	out := Uint64Set{vals: make([]uint64, len(s.vals))}
	copy(out.vals, s.vals)
	return out
}

// FromSlice builds a Uint64Set from an arbitrary (possibly unsorted,
// possibly duplicated) slice of values.
func FromSlice(vs []uint64) Uint64Set {
	var s Uint64Set
	for _, v := range vs {
		s.Insert(v)
	}
	return s
}
