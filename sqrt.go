package decimal

import "context"

// This file implements L2 square root via Newton's method, grounded on
// original_source/src/num.c's bc_num_sqrt: a two-seed initial guess
// (2*10^k for an odd integer-digit count, 6*10^(k-1) for even) refined
// by x_{n+1} = (x_n + a/x_n) / 2, with a cycle-break heuristic that adds
// a decimal digit of working scale once the same (cmp, digs) pair has
// repeated more than twice in a row — the fix for inputs whose Newton
// iterates settle into a short oscillation rather than converging to a
// fixed point at the working precision.
func sqrtCore(ctx context.Context, b, a *Number, scale int) error {
	if a.neg {
		return ErrNegative
	}
	if a.scale > scale {
		scale = a.scale
	}
	if a.IsZero() {
		b.setToZero(scale)
		return nil
	}
	if a.isOne() {
		b.one()
		b.extend(scale)
		return nil
	}

	half := New()
	half.one()
	half.digits[0] = BasePow / 2
	half.len = 1
	half.rdx = 1
	half.scale = 1

	x0 := New()
	x1 := New()
	f := New()
	fprime := New()

	x0.one()
	pow := a.IntDigits()
	if pow != 0 {
		if pow&1 == 1 {
			x0.digits[0] = 2
		} else {
			x0.digits[0] = 6
		}
		pow -= 2 - (pow & 1)
		if err := x0.shiftLeft(ctx, pow/2); err != nil {
			return err
		}
	}
	x0.scale, x0.rdx = 0, 0

	resscale := (scale + BaseDigs) * 2
	length := ceilRdx(x0.IntDigits() + resscale - 1)

	cmp, cmp1, cmp2 := 1, 1<<30, 1<<30
	digs, digs1, times := 0, 0, 0

	for cmp != 0 || digs < length {
		if aborted(ctx) {
			return ErrSignal
		}

		if err := divCore(ctx, f, a, x0, resscale); err != nil {
			return err
		}
		if err := addCore(ctx, fprime, x0, f); err != nil {
			return err
		}
		if err := mulCore(ctx, x1, fprime, half, resscale); err != nil {
			return err
		}

		c, err := Cmp(ctx, x1, x0)
		if err != nil {
			return err
		}
		cmp = c

		absCmp := cmp
		if absCmp < 0 {
			absCmp = -absCmp
		}
		digs = x1.len - absCmp

		if cmp == cmp2 && digs == digs1 {
			times++
		} else {
			times = 0
		}
		if times > 2 {
			resscale++
		}

		cmp2 = cmp1
		cmp1 = cmp
		digs1 = digs

		x0, x1 = x1, x0
	}

	b.Copy(x0)
	if b.scale > scale {
		b.truncate(b.scale - scale)
	}
	return nil
}

// Sqrt sets n to the square root of a, carried out to scale fractional
// digits (or a.Scale(), whichever is larger). a must not be negative.
func (n *Number) Sqrt(ctx context.Context, a *Number, scale int) error {
	return opErr("sqrt", sqrtCore(ctx, n, a, scale))
}
