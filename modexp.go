package decimal

import "context"

// This file implements modular exponentiation by square-and-multiply
// over the exponent's bits, peeled one at a time via integer division
// by two rather than a native bit-shift (the exponent is an arbitrary-
// precision Number, not a machine integer). Grounded on
// original_source/src/num.c's bc_num_modexp.

// ModExp sets d = a**b mod c. b must be a non-negative integer and a, c
// must be integers; c must be nonzero.
func ModExp(ctx context.Context, d, a, b, c *Number) error {
	if c.IsZero() {
		return opErr("modexp", ErrDivideByZero)
	}
	if b.neg {
		return opErr("modexp", ErrNegative)
	}
	if a.rdx != 0 || b.rdx != 0 || c.rdx != 0 {
		return opErr("modexp", ErrNonInteger)
	}

	aSnap := CreateCopy(a)
	bSnap := CreateCopy(b)
	cSnap := CreateCopy(c)

	two := New()
	two.one()
	two.digits[0] = 2

	base := New()
	if err := base.Rem(ctx, aSnap, cSnap, 0); err != nil {
		return opErr("modexp", err)
	}

	exp := CreateCopy(bSnap)
	temp := New()
	result := New()
	result.one()

	for !exp.IsZero() {
		if aborted(ctx) {
			return opErr("modexp", ErrSignal)
		}

		if err := DivMod(ctx, exp, temp, exp, two, 0); err != nil {
			return opErr("modexp", err)
		}

		if temp.isOne() && !temp.neg {
			if err := mulCore(ctx, temp, result, base, 0); err != nil {
				return opErr("modexp", err)
			}
			if err := temp.Rem(ctx, temp, cSnap, 0); err != nil {
				return opErr("modexp", err)
			}
			result.Copy(temp)
		}

		if err := mulCore(ctx, temp, base, base, 0); err != nil {
			return opErr("modexp", err)
		}
		if err := temp.Rem(ctx, temp, cSnap, 0); err != nil {
			return opErr("modexp", err)
		}
		base.Copy(temp)
	}

	d.Copy(result)
	return nil
}
