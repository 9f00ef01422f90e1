package sim

import "github.com/kamstrup/intmap"

// Ledger maps a settled-rock count to the tower height reached at that
// count.
type Ledger struct {
	heights *intmap.Map[int64, int64]
	first   int64
	last    int64
}

func NewLedger() *Ledger {
	return &Ledger{
		heights: intmap.New[int64, int64](8),
		first:   -1,
		last:    -1,
	}
}

// Put records the height after rocks rocks have settled.
func (l *Ledger) Put(rocks, height int64) {
	l.heights.Put(rocks, height)
	if l.first < 0 || rocks < l.first {
		l.first = rocks
	}
	if rocks > l.last {
		l.last = rocks
	}
}

// Get returns the height recorded for the rock count, if any.
func (l *Ledger) Get(rocks int64) (int64, bool) {
	return l.heights.Get(rocks)
}

func (l *Ledger) Len() int {
	return l.heights.Len()
}

// Span returns the lowest and highest rock counts recorded, or -1, -1 for an
// empty ledger.
func (l *Ledger) Span() (first, last int64) {
	return l.first, l.last
}
