// Package multiset implements MultiSet, an ordered associative container
// keyed by a totally-ordered key and mapping to a commutative accumulator.
// It backs the threshold engine in package tclock: each actor's observed
// events accumulate here before a single descending pass picks out the
// threshold-union result.
package multiset

import (
	"cmp"
	"sort"
)

// Adder is a commutative accumulator: C's zero value acts as identity, and
// Add combines two values. Count and Votes below are the two instances
// this package actually uses.
type Adder[C any] interface {
	Add(other C) C
}

// MultiSet maps K to C, iterating in ascending key order. The zero value
// is not usable; build one with New.
type MultiSet[K cmp.Ordered, C Adder[C]] struct {
	keys []K
	vals map[K]C
}

// New returns an empty MultiSet.
func New[K cmp.Ordered, C Adder[C]]() *MultiSet[K, C] {
	return &MultiSet[K, C]{vals: make(map[K]C)}
}

// AddElem sets the value at k to (current value or zero) + delta.
func (m *MultiSet[K, C]) AddElem(k K, delta C) {
	cur, ok := m.vals[k]
	if !ok {
		i := sort.Search(len(m.keys), func(i int) bool { return m.keys[i] >= k })
		m.keys = append(m.keys, k)
		copy(m.keys[i+1:], m.keys[i:])
		m.keys[i] = k
		m.vals[k] = delta
		return
	}
	m.vals[k] = cur.Add(delta)
}

// Pair is a single (key, delta) contribution, used by Add.
type Pair[K cmp.Ordered, C Adder[C]] struct {
	Key   K
	Delta C
}

// Add folds every pair into m via AddElem.
func (m *MultiSet[K, C]) Add(pairs ...Pair[K, C]) {
	for _, p := range pairs {
		m.AddElem(p.Key, p.Delta)
	}
}

// Count returns the current value at k, or C's zero value if absent.
func (m *MultiSet[K, C]) Count(k K) C {
	return m.vals[k]
}

// Len returns the number of distinct keys.
func (m *MultiSet[K, C]) Len() int {
	return len(m.keys)
}

// Keys returns every key present, ascending. The returned slice must not
// be mutated.
func (m *MultiSet[K, C]) Keys() []K {
	return m.keys
}

// Iter calls f for every (key, value) pair in ascending key order,
// stopping early if f returns false.
func (m *MultiSet[K, C]) Iter(f func(k K, c C) bool) {
	for _, k := range m.keys {
		if !f(k, m.vals[k]) {
			return
		}
	}
}

// IterDesc calls f for every (key, value) pair in descending key order,
// the traversal order the threshold algorithms are built around.
func (m *MultiSet[K, C]) IterDesc(f func(k K, c C) bool) {
	for i := len(m.keys) - 1; i >= 0; i-- {
		k := m.keys[i]
		if !f(k, m.vals[k]) {
			return
		}
	}
}

// Threshold returns, ascending, every key whose Count value reaches tau.
// Defined only for C = Count, which is why it is a free function rather
// than a method: Go generics cannot specialize a method body on a
// particular instantiation of C.
func Threshold(m *MultiSet[uint64, Count], tau uint64) []uint64 {
	var out []uint64
	m.Iter(func(k uint64, c Count) bool {
		if uint64(c) >= tau {
			out = append(out, k)
		}
		return true
	})
	return out
}
