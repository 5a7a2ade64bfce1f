package clock

import "github.com/dedis/threshold/event"

// VClock is the classic vector clock: a Clock backed by MaxSet, where
// observing event 10 implies observing 1..9.
type VClock[A comparable] = Clock[A, *event.MaxSet]

// BEClock is a Clock backed by BelowExSet, precise about gaps below its
// per-actor max.
type BEClock[A comparable] = Clock[A, *event.BelowExSet]

// AEClock is a Clock backed by AboveExSet, precise about gaps above its
// per-actor contiguous prefix.
type AEClock[A comparable] = Clock[A, *event.AboveExSet]

// ARClock is a Clock backed by AboveRangeSet, like AEClock but with its
// tail coalesced into ranges.
type ARClock[A comparable] = Clock[A, *event.AboveRangeSet]

// NewVClock returns an empty VClock.
func NewVClock[A comparable]() *VClock[A] {
	return New[A, *event.MaxSet](event.NewMaxSet)
}

// NewBEClock returns an empty BEClock.
func NewBEClock[A comparable]() *BEClock[A] {
	return New[A, *event.BelowExSet](event.NewBelowExSet)
}

// NewAEClock returns an empty AEClock.
func NewAEClock[A comparable]() *AEClock[A] {
	return New[A, *event.AboveExSet](event.NewAboveExSet)
}

// NewARClock returns an empty ARClock.
func NewARClock[A comparable]() *ARClock[A] {
	return New[A, *event.AboveRangeSet](event.NewAboveRangeSet)
}
