package decimal

import "context"

// This file implements L2 multiplication: schoolbook long multiplication
// over raw limb arrays, a Karatsuba divide-and-conquer layered on top of
// it once both operands reach KaratsubaLen limbs, and the signed,
// scale-aware wrapper Mul. Grounded on original_source/src/num.c's
// bc_num_m_simp / bc_num_k / bc_num_m, adapted from math/big's mulAddVWW_g
// carry style (radix BasePow instead of radix 2^W).

// mulSimple computes c = a[0:alen] * b[0:blen] by schoolbook long
// multiplication. c must have room for alen+blen limbs. Returns the
// resulting active length. Grounded on bc_num_m_simp.
func mulSimple(ctx context.Context, a []word, alen int, b []word, blen int, c []word) (int, error) {
	for i := 0; i < alen+blen; i++ {
		c[i] = 0
	}
	for j := 0; j < blen; j++ {
		if aborted(ctx) {
			return 0, ErrSignal
		}
		if b[j] == 0 {
			continue
		}
		var carry uint64
		for i := 0; i < alen; i++ {
			v := uint64(c[i+j]) + uint64(a[i])*uint64(b[j]) + carry
			c[i+j] = word(v % BasePow)
			carry = v / BasePow
		}
		for k := alen + j; carry != 0; k++ {
			v := uint64(c[k]) + carry
			c[k] = word(v % BasePow)
			carry = v / BasePow
		}
	}
	clen := alen + blen
	for clen > 0 && c[clen-1] == 0 {
		clen--
	}
	return clen, nil
}

// mulSchoolbook multiplies two pure-integer (scale 0) Numbers with
// mulSimple and returns the unsigned product as a freshly allocated
// Number.
func mulSchoolbook(ctx context.Context, a, b *Number) (*Number, error) {
	c := New()
	c.expand(a.len + b.len + 1)
	clen, err := mulSimple(ctx, a.digits, a.len, b.digits, b.len, c.digits)
	if err != nil {
		return nil, err
	}
	c.len = clen
	return c, nil
}

// mulKaratsuba multiplies two pure-integer (scale 0) Numbers via the
// standard three-multiply Karatsuba recursion, falling back to
// mulSchoolbook below KaratsubaLen limbs. Grounded on bc_num_k; the
// positional recombination reuses shiftLeft rather than bc's raw
// pointer-offset writes, since shifting an integer (scale 0) Number left
// by k*BaseDigs decimal digits is exactly multiplying it by 10^(9k) —
// i.e. repositioning it by k limbs.
func mulKaratsuba(ctx context.Context, a, b *Number) (*Number, error) {
	if a.len < KaratsubaLen || b.len < KaratsubaLen {
		return mulSchoolbook(ctx, a, b)
	}
	if aborted(ctx) {
		return nil, ErrSignal
	}

	half := a.len
	if b.len > half {
		half = b.len
	}
	half = (half + 1) / 2

	aLow, aHigh, bLow, bHigh := getNumber(), getNumber(), getNumber(), getNumber()
	defer putNumber(aLow)
	defer putNumber(aHigh)
	defer putNumber(bLow)
	defer putNumber(bHigh)
	a.split(half, aLow, aHigh)
	b.split(half, bLow, bHigh)

	low, err := mulKaratsuba(ctx, aLow, bLow)
	if err != nil {
		return nil, err
	}
	defer putNumber(low)
	high, err := mulKaratsuba(ctx, aHigh, bHigh)
	if err != nil {
		return nil, err
	}
	defer putNumber(high)

	sumA, sumB := getNumber(), getNumber()
	defer putNumber(sumA)
	defer putNumber(sumB)
	if err := uadd(ctx, sumA, aLow, aHigh); err != nil {
		return nil, err
	}
	if err := uadd(ctx, sumB, bLow, bHigh); err != nil {
		return nil, err
	}
	mid, err := mulKaratsuba(ctx, sumA, sumB)
	if err != nil {
		return nil, err
	}
	defer putNumber(mid)

	lowPlusHigh, midTerm := getNumber(), getNumber()
	defer putNumber(lowPlusHigh)
	defer putNumber(midTerm)
	if err := uadd(ctx, lowPlusHigh, low, high); err != nil {
		return nil, err
	}
	if err := usub(ctx, midTerm, mid, lowPlusHigh); err != nil {
		return nil, err
	}

	if err := high.shiftLeft(ctx, 2*half*BaseDigs); err != nil {
		return nil, err
	}
	if err := midTerm.shiftLeft(ctx, half*BaseDigs); err != nil {
		return nil, err
	}

	result := New()
	upper := getNumber()
	defer putNumber(upper)
	if err := uadd(ctx, upper, high, midTerm); err != nil {
		return nil, err
	}
	if err := uadd(ctx, result, upper, low); err != nil {
		return nil, err
	}
	return result, nil
}

// mulCore implements signed, scale-aware multiplication: the raw limb
// sequences of a and b are multiplied as plain integers, the scales
// added, and the result truncated or extended to the requested scale.
// scale < 0 requests full precision (a.scale + b.scale). Grounded on
// bc_num_m.
func mulCore(ctx context.Context, d, a, b *Number, scale int) error {
	neg1, neg2 := a.neg, b.neg

	if a.IsZero() || b.IsZero() {
		want := scale
		if want < 0 {
			want = a.scale + b.scale
		}
		d.setToZero(0)
		d.extend(want)
		return nil
	}

	d.expand(mulReq(a, b))

	var aInt, bInt Number
	aInt.Copy(a)
	aInt.neg, aInt.scale, aInt.rdx = false, 0, 0
	bInt.Copy(b)
	bInt.neg, bInt.scale, bInt.rdx = false, 0, 0

	var product *Number
	var err error
	if aInt.len >= KaratsubaLen && bInt.len >= KaratsubaLen {
		product, err = mulKaratsuba(ctx, &aInt, &bInt)
	} else {
		product, err = mulSchoolbook(ctx, &aInt, &bInt)
	}
	if err != nil {
		return err
	}

	// The operands' raw limbs carry a.rdx and b.rdx whole fractional
	// limbs, so the integer product carries a.rdx+b.rdx of them.
	product.rdx = a.rdx + b.rdx
	product.scale = product.rdx * BaseDigs
	if product.len < product.rdx {
		product.len = product.rdx
	}

	want := scale
	if want < 0 {
		want = a.scale + b.scale
	}
	d.Copy(product)
	d.retireMul(want, neg1, neg2)
	return nil
}

// Mul sets d = a * b truncated or extended to scale fractional digits.
// Passing a negative scale requests full precision (a.Scale()+b.Scale()).
func (d *Number) Mul(ctx context.Context, a, b *Number, scale int) error {
	return opErr("mul", binaryOp(ctx, d, a, b, func(ctx context.Context, d, a, b *Number) error {
		return mulCore(ctx, d, a, b, scale)
	}))
}
