package decimal

import "context"

// This file implements L2 integer exponentiation by square-and-multiply,
// and the reciprocal helper it needs for negative exponents. Grounded on
// original_source/src/num.c's bc_num_p.

// toBigDig converts a non-negative integer-valued Number to a uint64,
// failing with ErrOverflow if it does not fit. Grounded on
// bc_num_bigdig.
func toBigDig(n *Number) (uint64, error) {
	const maxDiv = ^uint64(0) / BasePow
	var val uint64
	for i := n.len - 1; i >= 0; i-- {
		if val > maxDiv {
			return 0, ErrOverflow
		}
		val *= BasePow
		if val > ^uint64(0)-uint64(n.digits[i]) {
			return 0, ErrOverflow
		}
		val += uint64(n.digits[i])
	}
	return val, nil
}

// Inv sets d = 1/a truncated to scale fractional digits. Grounded on
// bc_num_inv.
func (d *Number) Inv(ctx context.Context, a *Number, scale int) error {
	if a.IsZero() {
		return opErr("inv", ErrDivideByZero)
	}
	one := New()
	one.one()
	return opErr("inv", divCore(ctx, d, one, a, scale))
}

// powCore implements b != 0, a != 0, |b| != 1 integer exponentiation via
// square-and-multiply, peeling bits of the (always non-negative, since
// exponent must be an integer) magnitude of b from the bottom up.
// Grounded on bc_num_p.
func powCore(ctx context.Context, d, a, b *Number, scale int) error {
	if b.rdx != 0 {
		return ErrNonInteger
	}
	if b.IsZero() {
		d.one()
		return nil
	}
	if a.IsZero() {
		d.setToZero(scale)
		return nil
	}
	if b.isOne() {
		if !b.neg {
			d.Copy(a)
			return nil
		}
		return d.Inv(ctx, a, scale)
	}

	neg := b.neg
	bMag := CreateCopy(b)
	bMag.neg = false
	pow, err := toBigDig(bMag)
	if err != nil {
		return err
	}

	cpy := CreateCopy(a)
	d.expand(powReq(a, int64(pow)))

	if !neg {
		max := scale
		if a.scale > max {
			max = a.scale
		}
		scalepow := a.scale * int(pow)
		if scalepow < max {
			scale = scalepow
		} else {
			scale = max
		}
	}

	powrdx := a.scale
	for pow&1 == 0 {
		if aborted(ctx) {
			return ErrSignal
		}
		powrdx <<= 1
		if err := mulCore(ctx, cpy, cpy, cpy, powrdx); err != nil {
			return err
		}
		pow >>= 1
	}

	d.Copy(cpy)
	resrdx := powrdx

	for pow >>= 1; pow != 0; pow >>= 1 {
		if aborted(ctx) {
			return ErrSignal
		}
		powrdx <<= 1
		if err := mulCore(ctx, cpy, cpy, cpy, powrdx); err != nil {
			return err
		}
		if pow&1 == 1 {
			resrdx += powrdx
			if err := mulCore(ctx, d, d, cpy, resrdx); err != nil {
				return err
			}
		}
	}

	if neg {
		if err := d.Inv(ctx, d, scale); err != nil {
			return err
		}
	}

	if d.scale > scale {
		d.truncate(d.scale - scale)
	}

	zero := true
	for i := 0; i < d.len && zero; i++ {
		zero = d.digits[i] == 0
	}
	if zero {
		d.setToZero(scale)
	}

	return nil
}

// Pow sets d = a**b truncated to scale fractional digits. b must be an
// integer; a negative b computes the reciprocal power.
func (d *Number) Pow(ctx context.Context, a, b *Number, scale int) error {
	return opErr("pow", binaryOp(ctx, d, a, b, func(ctx context.Context, d, a, b *Number) error {
		return powCore(ctx, d, a, b, scale)
	}))
}
