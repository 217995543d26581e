package decimal

import "context"

// This file implements the L4 dispatcher of spec.md §4.4: an
// aliasing-safe wrapper around every binary operation, plus the
// request-size estimators operations use to size their output buffer
// with a single allocation. Grounded on original_source/src/num.c's
// bc_num_binary and its companion bc_num_*Req helpers.

// binaryOp invokes op(ctx, d, a, b) after snapshotting whichever of a, b
// alias the output d, so op is free to reinitialize d (which expand may
// do, reallocating its buffer) without corrupting an input that shares
// d's old buffer. This is the one place Go's garbage collector does not
// make the C engine's aliasing discipline moot: expand only grows a
// buffer in place when capacity allows, so a naive in-place op could
// still overwrite a or b before they are fully read.
func binaryOp(ctx context.Context, d, a, b *Number, op func(ctx context.Context, d, a, b *Number) error) error {
	ta, tb := a, b
	if d == a {
		var snap Number
		snap.Copy(a)
		ta = &snap
		if b == a {
			tb = &snap
		}
	}
	if d == b && tb == b {
		var snap Number
		snap.Copy(b)
		tb = &snap
	}
	return op(ctx, d, ta, tb)
}

// addReq returns an upper bound on the limb count an add/sub of a and b
// can require: one more integer limb than the wider operand's integer
// part, to absorb a possible carry, plus the wider fractional part.
func addReq(a, b *Number) int {
	intLimbs := a.intLimbs()
	if b.intLimbs() > intLimbs {
		intLimbs = b.intLimbs()
	}
	rdx := a.rdx
	if b.rdx > rdx {
		rdx = b.rdx
	}
	return intLimbs + 1 + rdx
}

// mulReq returns an upper bound on the limb count a multiply of a and b
// can require: the sum of both operands' limb counts, plus one.
func mulReq(a, b *Number) int {
	return a.len + b.len + 1
}

// divReq returns an upper bound on the limb count a division producing
// scale fractional digits can require.
func divReq(a *Number, scale int) int {
	return a.intLimbs() + ceilRdx(scale) + 1
}

// powReq returns an upper bound on the limb count raising a to the
// non-negative integer power p can require: schoolbook repeated
// squaring at most doubles the operand length each of log2(p) rounds,
// so a.len*max(p,1) safely bounds the final product's limb count.
func powReq(a *Number, p int64) int {
	if p < 1 {
		p = 1
	}
	return a.len*int(p) + 1
}

// placesReq returns an upper bound on the limb count truncating or
// extending n to the given scale can require.
func placesReq(n *Number, scale int) int {
	rdx := ceilRdx(scale)
	req := n.intLimbs() + rdx
	if req < n.len {
		req = n.len
	}
	return req + 1
}

// shiftLeftReq and shiftRightReq return upper bounds on the limb count
// shifting n by places decimal digits can require.
func shiftLeftReq(n *Number, places int) int {
	return n.len + 1
}

func shiftRightReq(n *Number, places int) int {
	return n.len + ceilRdx(places) + 1
}
