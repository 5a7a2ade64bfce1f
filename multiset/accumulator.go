package multiset

// Count is a plain occurrence counter: MultiSet[K, Count] is the simple
// "how many times was this key contributed" shape used by threshold(τ)
// comparisons that don't need to distinguish positive from negative
// votes.
type Count uint64

// Add implements Adder.
func (c Count) Add(other Count) Count {
	return c + other
}

// Votes is the (positive, negative) vote pair the threshold engine
// actually accumulates: Pos counts clocks whose max reported this key as
// observed, Neg counts clocks that recorded this key as a BelowExSet
// exception.
type Votes struct {
	Pos uint64
	Neg uint64
}

// Add implements Adder.
func (v Votes) Add(other Votes) Votes {
	return Votes{Pos: v.Pos + other.Pos, Neg: v.Neg + other.Neg}
}
