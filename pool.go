package decimal

import "sync"

// This file recycles the scratch allocations Karatsuba multiplication and
// long division churn through on every call: Karatsuba splits its two operands
// into four sub-Numbers per recursion level, and long division's estimate-
// and-correct loop needs three working limb slices for the life of a single
// divCore call. Grounded on db47h/decimal's dec.go, which keeps a
// package-level sync.Pool of scratch buffers for exactly this kind of
// transient arithmetic working storage rather than allocating fresh per call.

var numberPool = sync.Pool{New: func() any { return new(Number) }}

// getNumber returns a zeroed scratch Number from the pool.
func getNumber() *Number {
	n := numberPool.Get().(*Number)
	n.len, n.rdx, n.scale, n.neg = 0, 0, 0, false
	return n
}

// putNumber returns n to the pool. Callers must not use n afterward.
func putNumber(n *Number) {
	numberPool.Put(n)
}

var wordSlicePool = sync.Pool{New: func() any { return make([]word, 0) }}

// getWords returns a scratch []word of length n from the pool, zeroed.
func getWords(n int) []word {
	buf := wordSlicePool.Get().([]word)
	if cap(buf) < n {
		buf = make([]word, n)
	} else {
		buf = buf[:n]
	}
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// putWords returns buf to the pool. Callers must not use buf afterward.
func putWords(buf []word) {
	wordSlicePool.Put(buf[:0])
}
