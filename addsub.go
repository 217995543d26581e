package decimal

import "context"

// This file implements L2 signed addition and subtraction, grounded on
// original_source/src/num.c's bc_num_a / bc_num_s / bc_num_add /
// bc_num_sub, structured after math/big/float.go's uadd/usub pattern: a
// magnitude-only core (uadd, usub, ucmp) wrapped by sign-aware dispatch
// (addCore, subCore) and exported through the aliasing-safe binaryOp.

// alignPair returns scratch limb slices for a and b padded to a common
// scale and integer width, ready for a straight limb-by-limb add/sub/
// compare. Grounded on the alignment bc_num_a/bc_num_s perform before
// calling addArrays/subArrays.
func alignPair(a, b *Number) (ta, tb []word, scale, rdx, length int) {
	scale = a.scale
	if b.scale > scale {
		scale = b.scale
	}
	rdx = ceilRdx(scale)

	intLimbs := a.intLimbs()
	if b.intLimbs() > intLimbs {
		intLimbs = b.intLimbs()
	}
	length = intLimbs + rdx

	ta = make([]word, length)
	copyAligned(ta, a, rdx)
	tb = make([]word, length)
	copyAligned(tb, b, rdx)
	return
}

// copyAligned places x's limbs into dst (already zeroed by make) so that
// x's fractional part lines up with a common rdx of rdx limbs.
func copyAligned(dst []word, x *Number, rdx int) {
	pad := rdx - x.rdx
	copy(dst[pad:pad+x.len], x.digits[:x.len])
}

// uadd computes d = |a| + |b|. Grounded on bc_num_a.
func uadd(ctx context.Context, d, a, b *Number) error {
	d.expand(addReq(a, b))
	ta, tb, scale, rdx, length := alignPair(a, b)
	sum := make([]word, length+1)
	copy(sum, ta)
	if err := addArrays(ctx, sum, tb, length); err != nil {
		return err
	}

	d.expand(length + 1)
	copy(d.digits, sum)
	d.len = length + 1
	for d.len > 0 && d.digits[d.len-1] == 0 {
		d.len--
	}
	if d.len < rdx {
		d.len = rdx
	}
	d.rdx = rdx
	d.scale = scale
	d.neg = false
	return nil
}

// usub computes d = |a| - |b|, assuming |a| >= |b|. Grounded on
// bc_num_s.
func usub(ctx context.Context, d, a, b *Number) error {
	d.expand(addReq(a, b))
	ta, tb, scale, rdx, length := alignPair(a, b)
	if err := subArrays(ctx, ta, tb, length); err != nil {
		return err
	}

	d.expand(length)
	copy(d.digits, ta)
	d.len = length
	for d.len > 0 && d.digits[d.len-1] == 0 {
		d.len--
	}
	if d.len < rdx {
		d.len = rdx
	}
	d.rdx = rdx
	d.scale = scale
	d.neg = false
	return nil
}

// ucmp compares |a| and |b|, returning -1, 0 or +1. Grounded on
// bc_num_compare's use inside bc_num_add/bc_num_sub to decide operand
// order.
func ucmp(ctx context.Context, a, b *Number) (int, error) {
	ta, tb, _, _, length := alignPair(a, b)
	c := compare(ctx, ta, tb, length)
	if c == cmpSignal {
		return 0, ErrSignal
	}
	return c, nil
}

// addCore implements signed addition by sign-combining uadd/usub.
// Grounded on bc_num_add.
func addCore(ctx context.Context, d, a, b *Number) error {
	if a.neg == b.neg {
		if err := uadd(ctx, d, a, b); err != nil {
			return err
		}
		d.neg = a.neg && !d.IsZero()
		return nil
	}
	cmp, err := ucmp(ctx, a, b)
	if err != nil {
		return err
	}
	if cmp >= 0 {
		if err := usub(ctx, d, a, b); err != nil {
			return err
		}
		d.neg = a.neg && !d.IsZero()
	} else {
		if err := usub(ctx, d, b, a); err != nil {
			return err
		}
		d.neg = b.neg && !d.IsZero()
	}
	return nil
}

// subCore implements signed subtraction as addition against b with its
// sign flipped, without mutating the caller's b. Grounded on bc_num_sub.
func subCore(ctx context.Context, d, a, b *Number) error {
	bNeg := !b.neg
	if a.neg == bNeg {
		if err := uadd(ctx, d, a, b); err != nil {
			return err
		}
		d.neg = a.neg && !d.IsZero()
		return nil
	}
	cmp, err := ucmp(ctx, a, b)
	if err != nil {
		return err
	}
	if cmp >= 0 {
		if err := usub(ctx, d, a, b); err != nil {
			return err
		}
		d.neg = a.neg && !d.IsZero()
	} else {
		if err := usub(ctx, d, b, a); err != nil {
			return err
		}
		d.neg = bNeg && !d.IsZero()
	}
	return nil
}

// Add sets d = a + b and returns d's error status, if any.
func (d *Number) Add(ctx context.Context, a, b *Number) error {
	return opErr("add", binaryOp(ctx, d, a, b, addCore))
}

// Sub sets d = a - b and returns d's error status, if any.
func (d *Number) Sub(ctx context.Context, a, b *Number) error {
	return opErr("sub", binaryOp(ctx, d, a, b, subCore))
}

// Cmp compares a and b by value (sign, then magnitude), returning -1, 0
// or +1. Grounded on bc_num_cmp.
func Cmp(ctx context.Context, a, b *Number) (int, error) {
	if a.neg != b.neg {
		if a.IsZero() && b.IsZero() {
			return 0, nil
		}
		if a.neg {
			return -1, nil
		}
		return 1, nil
	}
	c, err := ucmp(ctx, a, b)
	if err != nil {
		return 0, err
	}
	if a.neg {
		c = -c
	}
	return c, nil
}
