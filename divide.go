package decimal

import "context"

// This file implements L2 division and remainder: the estimate-and-
// correct long-division core over raw limb windows (dLong, divCmp), the
// scale-aware quotient wrapper (divCore), and the combined quotient/
// remainder operation built on top of it (rCore). Grounded on
// original_source/src/num.c's bc_num_divCmp / bc_num_d_long / bc_num_d /
// bc_num_r / bc_num_rem / bc_num_divmod.

// trimHigh returns the active length of buf after dropping trailing
// (most-significant) zero limbs.
func trimHigh(buf []word, length int) int {
	for length > 0 && buf[length-1] == 0 {
		length--
	}
	return length
}

// divCmp compares the window n[0:blen] (plus n[blen] as an extra
// overflow digit) against b's blen significant limbs, the comparison
// bc_num_d_long uses to test whether the current quotient-digit guess
// over- or under-shoots. Grounded on bc_num_divCmp.
func divCmp(ctx context.Context, n, b []word, blen, length int) int {
	if blen > length {
		if n[length] != 0 {
			return compare(ctx, n, b, length+1)
		}
		return -1
	}
	if n[length] != 0 {
		return 1
	}
	return compare(ctx, n, b, length)
}

// dLong performs long division of a (an integer-scaled working copy,
// padded with a leading zero limb) by b (a pure-integer divisor of
// blen significant limbs), producing scale fractional digits of
// quotient. Grounded on bc_num_d_long's estimate-and-correct loop:
// each quotient digit is first guessed from the top two limbs of the
// remaining dividend divided by the divisor's leading limb, then
// corrected downward one decimal place at a time until it no longer
// overshoots.
func dLong(ctx context.Context, a, b *Number, blen, scale int) (*Number, error) {
	end := a.len - blen
	divisor := uint64(b.digits[blen-1])

	c := New()
	c.expand(a.len)
	c.rdx = a.rdx
	c.scale = a.scale
	c.len = a.len

	rdx := c.rdx - ceilRdx(scale)

	cpb := getWords(blen + 1)
	sub := getWords(blen + 1)
	temp := getWords(blen + 1)
	defer putWords(cpb)
	defer putWords(sub)
	defer putWords(temp)

	for i := end - 1; i >= rdx; i-- {
		if aborted(ctx) {
			return nil, ErrSignal
		}

		n := a.digits[i:]
		var q word

		cmp := divCmp(ctx, n, b.digits, blen, blen)
		if cmp == cmpSignal {
			return nil, ErrSignal
		}

		switch {
		case cmp == 0:
			q = 1
			if _, err := mulArray(ctx, b.digits, blen, q, cpb); err != nil {
				return nil, err
			}

		case cmp > 0:
			n1 := uint64(n[blen])
			dividend := n1*BasePow + uint64(n[blen-1])
			qq := dividend/divisor + 1
			if qq > BasePow {
				qq = BasePow
			}
			q = word(qq)

			digs := digitLen10(q)
			if digs == 0 {
				digs = 1
			}
			pow := uint64(pow10[digs-1])

			cpbLen, err := mulArray(ctx, b.digits, blen, q, cpb)
			if err != nil {
				return nil, err
			}
			subLen, err := mulArray(ctx, b.digits, blen, word(pow), sub)
			if err != nil {
				return nil, err
			}
			savedCpbLen := cpbLen

			for pow > 0 {
				if err := subArrays(ctx, cpb, sub, subLen); err != nil {
					return nil, err
				}
				cpbLen = trimHigh(cpb, cpbLen)

				cmp2 := divCmp(ctx, n, cpb, cpbLen, blen)
				if cmp2 == cmpSignal {
					return nil, ErrSignal
				}
				for cmp2 < 0 {
					q -= word(pow)
					if err := subArrays(ctx, cpb, sub, subLen); err != nil {
						return nil, err
					}
					cpbLen = trimHigh(cpb, cpbLen)
					cmp2 = divCmp(ctx, n, cpb, cpbLen, blen)
					if cmp2 == cmpSignal {
						return nil, ErrSignal
					}
				}

				pow /= Base
				if pow > 0 {
					if err := addArrays(ctx, cpb, sub, subLen); err != nil {
						return nil, err
					}
					cpbLen = trimHigh(cpb, savedCpbLen)

					if _, err := divArray(ctx, sub, subLen, Base, temp); err != nil {
						return nil, err
					}
					copy(sub, temp[:subLen])
					subLen = trimHigh(sub, subLen)
				}
			}

			q -= 1
		}

		if q != 0 {
			if err := subArrays(ctx, n, cpb, blen); err != nil {
				return nil, err
			}
		}
		c.digits[i] = q
	}

	return c, nil
}

// divCore implements scale-aware quotient division, preparing a padded
// working copy of the dividend and a pure-integer divisor before handing
// off to dLong. Grounded on bc_num_d.
func divCore(ctx context.Context, d, a, b *Number, scale int) error {
	if b.IsZero() {
		return ErrDivideByZero
	}
	// Captured before d is ever written: d may alias a or b (e.g. Inv's
	// in-place d.Inv(ctx, d, scale) aliases the divisor), so a.neg/b.neg
	// read after a Copy into d would otherwise observe d's new value.
	aNeg, bNeg := a.neg, b.neg

	if a.IsZero() {
		d.setToZero(scale)
		return nil
	}
	if b.isOne() {
		d.Copy(a)
		d.retireMul(scale, aNeg, bNeg)
		return nil
	}
	if a.rdx == 0 && b.rdx == 0 && b.len == 1 && scale == 0 {
		divisor := b.digits[0]
		q, err := divArray(ctx, a.digits, a.len, divisor, d.buf(a.len))
		if err != nil {
			return err
		}
		_ = q
		d.len = trimHigh(d.digits, a.len)
		d.retireMul(scale, aNeg, bNeg)
		return nil
	}

	d.expand(divReq(a, scale))

	var cpa, cpb Number
	cpa.Copy(a)
	cpb.Copy(b)

	blen := b.len

	if blen > cpa.len {
		cpa.expand(blen + 2)
		cpa.extend((blen - cpa.len) * BaseDigs)
	}

	cpa.scale = cpa.rdx * BaseDigs
	cpa.extend(b.scale)
	cpa.rdx -= ceilRdx(b.scale)
	cpa.scale = cpa.rdx * BaseDigs
	if scale > cpa.scale {
		cpa.extend(scale - cpa.scale)
		cpa.scale = cpa.rdx * BaseDigs
	}

	if b.rdx == b.len {
		i, zero := 0, true
		for zero && i < blen {
			zero = cpb.digits[blen-i-1] == 0
			i++
		}
		blen -= i - 1
	}

	cpa.expand(cpa.len + 1)
	cpa.digits[cpa.len] = 0
	cpa.len++

	if cpa.rdx == cpa.len {
		cpa.len = cpa.nonzeroLen()
	}
	if cpb.rdx == cpb.len {
		cpb.len = cpb.nonzeroLen()
	}
	cpb.scale, cpb.rdx = 0, 0

	result, err := dLong(ctx, &cpa, &cpb, blen, scale)
	if err != nil {
		return err
	}

	d.Copy(result)
	d.retireMul(scale, aNeg, bNeg)
	return nil
}

// rCore computes both the quotient (truncated to scale) and the true
// remainder a - quotient*b, the latter carried out to ts fractional
// digits with the sign of the dividend. Grounded on bc_num_r.
func rCore(ctx context.Context, quot, rem, a, b *Number, scale, ts int) error {
	if b.IsZero() {
		return ErrDivideByZero
	}
	if a.IsZero() {
		quot.setToZero(ts)
		rem.setToZero(ts)
		return nil
	}

	if err := divCore(ctx, quot, a, b, scale); err != nil {
		return err
	}

	mulScale := ts
	if scale != 0 {
		mulScale = ts + 1
	}

	var product Number
	if err := mulCore(ctx, &product, quot, b, mulScale); err != nil {
		return err
	}
	if err := subCore(ctx, rem, a, &product); err != nil {
		return err
	}

	if ts > rem.scale && !rem.IsZero() {
		rem.extend(ts - rem.scale)
	}

	neg := rem.neg
	rem.retireMul(ts, a.neg, b.neg)
	if !rem.IsZero() {
		rem.neg = neg
	} else {
		rem.neg = false
	}
	return nil
}

// Quo sets d = a / b truncated to scale fractional digits.
func (d *Number) Quo(ctx context.Context, a, b *Number, scale int) error {
	return opErr("div", binaryOp(ctx, d, a, b, func(ctx context.Context, d, a, b *Number) error {
		return divCore(ctx, d, a, b, scale)
	}))
}

// DivMod sets quot = a/b truncated to scale fractional digits and
// rem = a - quot*b, the true remainder with the sign of a. quot and rem
// must not alias each other, but either may alias a or b: both operands
// are snapshotted up front, mirroring bc_num_divmod's explicit a==c
// handling. Grounded on bc_num_divmod.
func DivMod(ctx context.Context, quot, rem, a, b *Number, scale int) error {
	ts := scale + b.scale
	if a.scale > ts {
		ts = a.scale
	}
	aSnap := CreateCopy(a)
	bSnap := CreateCopy(b)
	return opErr("divmod", rCore(ctx, quot, rem, aSnap, bSnap, scale, ts))
}

// Rem sets d to the remainder of a/b truncated to scale fractional
// digits, the sign of a. Grounded on bc_num_rem.
func (d *Number) Rem(ctx context.Context, a, b *Number, scale int) error {
	ts := scale + b.scale
	if a.scale > ts {
		ts = a.scale
	}
	var quot Number
	return opErr("rem", binaryOp(ctx, d, a, b, func(ctx context.Context, d, a, b *Number) error {
		return rCore(ctx, &quot, d, a, b, scale, ts)
	}))
}
