package decimal

import "context"

// This file implements the L1 digit-array primitives of spec.md §4.2:
// in-place add/sub/mul-by-scalar/div-by-scalar/compare over raw limb
// slices, the sub-limb shift, and the Number-level decimal shiftLeft/
// shiftRight/truncate/extend operations built on top of them. Grounded
// on math/big/arith.go's addVV_g/subVV_g/shlVU_g/shrVU_g (carry-ripple
// structure) and on original_source/src/num.c's bc_num_addArrays /
// bc_num_subArrays / bc_num_shift / bc_num_shiftLeft / bc_num_shiftRight
// / bc_num_truncate / bc_num_extend / bc_num_split (exact semantics).

// addArrays computes a[0:length] += b[0:length] in place, propagating
// any carry past length back into a, whose capacity the caller
// guarantees. Grounded on bc_num_addArrays / addVV_g.
func addArrays(ctx context.Context, a, b []word, length int) error {
	var carry uint64
	for i := 0; i < length; i++ {
		if aborted(ctx) {
			return ErrSignal
		}
		sum := uint64(a[i]) + uint64(b[i]) + carry
		a[i] = word(sum % BasePow)
		carry = sum / BasePow
	}
	for i := length; carry != 0; i++ {
		if aborted(ctx) {
			return ErrSignal
		}
		sum := uint64(a[i]) + carry
		a[i] = word(sum % BasePow)
		carry = sum / BasePow
	}
	return nil
}

// subArrays computes a[0:length] -= b[0:length] in place via the
// standard schoolbook ripple borrow: when a limb would go negative, add
// BasePow to it and carry a borrow into the next. Caller guarantees
// a >= b at the given radix. Grounded on bc_num_subArrays.
func subArrays(ctx context.Context, a, b []word, length int) error {
	var borrow int64
	for i := 0; i < length; i++ {
		if aborted(ctx) {
			return ErrSignal
		}
		diff := int64(a[i]) - int64(b[i]) - borrow
		if diff < 0 {
			diff += BasePow
			borrow = 1
		} else {
			borrow = 0
		}
		a[i] = word(diff)
	}
	for i := length; borrow != 0; i++ {
		if aborted(ctx) {
			return ErrSignal
		}
		diff := int64(a[i]) - borrow
		if diff < 0 {
			diff += BasePow
			borrow = 1
		} else {
			borrow = 0
		}
		a[i] = word(diff)
	}
	return nil
}

// mulArray computes c = a[0:alen] * d, d a scalar in [0, BasePow]. c
// must have room for alen+1 limbs. Returns the resulting active length.
// Grounded on bc_num_mulArray.
func mulArray(ctx context.Context, a []word, alen int, d word, c []word) (int, error) {
	var carry uint64
	for i := 0; i < alen; i++ {
		if aborted(ctx) {
			return 0, ErrSignal
		}
		v := uint64(a[i])*uint64(d) + carry
		c[i] = word(v % BasePow)
		carry = v / BasePow
	}
	c[alen] = word(carry)
	clen := alen
	if carry != 0 {
		clen++
	}
	return clen, nil
}

// divArray computes c = a[0:alen] / d (truncated) and returns a[0:alen]
// mod d, d a scalar. Grounded on bc_num_divArray.
func divArray(ctx context.Context, a []word, alen int, d word, c []word) (word, error) {
	var carry uint64
	for i := alen - 1; i >= 0; i-- {
		if aborted(ctx) {
			return 0, ErrSignal
		}
		v := uint64(a[i]) + carry*BasePow
		c[i] = word(v / uint64(d))
		carry = v % uint64(d)
	}
	return word(carry), nil
}

// compare lexicographically compares a[0:length] and b[0:length] from
// the most significant limb down. Returns cmpSignal if ctx is canceled
// mid-scan, distinguishing abort from a real -1/0/+1 rank. Grounded on
// bc_num_compare.
func compare(ctx context.Context, a, b []word, length int) int {
	for i := length - 1; i >= 0; i-- {
		if aborted(ctx) {
			return cmpSignal
		}
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// shiftWithinLimbs divides the value held in n[0:length] by 10^k
// (0 <= k < BaseDigs), truncating: the low k decimal digits of each limb
// move into the top of the limb below, and the low k digits of n[0] are
// dropped. It does not multiply by 10^k; shiftLeft and shiftRight first
// insert whole zero limbs at the bottom and then divide back down with it.
// Grounded on bc_num_shift.
func shiftWithinLimbs(ctx context.Context, n []word, length int, k int) error {
	if k == 0 {
		return nil
	}
	pow := uint64(pow10[k])
	dig := uint64(pow10[BaseDigs-k])
	var carry uint64
	for i := length - 1; i >= 0; i-- {
		if aborted(ctx) {
			return ErrSignal
		}
		in := uint64(n[i])
		temp := carry * dig
		carry = in % pow
		n[i] = word(in/pow) + word(temp)
	}
	return nil
}

// truncate removes places fractional decimal digits from n, decreasing
// its scale. Grounded on bc_num_truncate.
func (n *Number) truncate(places int) {
	if places == 0 {
		return
	}
	placesRdx := n.rdx - ceilRdx(n.scale-places)
	n.scale -= places
	n.rdx -= placesRdx

	if !n.IsZero() {
		mod := n.scale % BaseDigs
		pow := word(1)
		if mod != 0 {
			pow = pow10[BaseDigs-mod]
		}

		n.len -= placesRdx
		copy(n.digits, n.digits[placesRdx:placesRdx+n.len])

		if !n.IsZero() {
			n.digits[0] -= n.digits[0] % pow
		}
		n.clean()
	}
}

// extend adds places fractional decimal digits to n, increasing its
// scale and, if necessary, inserting zero limbs at the bottom. Grounded
// on bc_num_extend.
func (n *Number) extend(places int) {
	if places == 0 {
		return
	}
	if n.IsZero() {
		// A zero value stays len == 0 regardless of scale; only rdx/scale
		// track how many fractional zero digits String should synthesize.
		n.scale += places
		n.rdx = ceilRdx(n.scale)
		return
	}
	placesRdx := ceilRdx(places+n.scale) - n.rdx
	if placesRdx > 0 {
		n.expand(n.len + placesRdx)
		copy(n.digits[placesRdx:placesRdx+n.len], n.digits[:n.len])
		for i := 0; i < placesRdx; i++ {
			n.digits[i] = 0
		}
	}
	n.rdx += placesRdx
	n.scale += places
	n.len += placesRdx
}

// retireMul normalizes a multiplication result to the requested scale
// and assigns its sign. Grounded on bc_num_retireMul.
func (n *Number) retireMul(scale int, neg1, neg2 bool) {
	if n.scale < scale {
		n.extend(scale - n.scale)
	} else {
		n.truncate(n.scale - scale)
	}
	n.clean()
	if !n.IsZero() {
		n.neg = neg1 != neg2
	}
}

// split divides n's limbs at index idx into an integer-valued low part
// a (limbs [0,idx)) and high part b (limbs [idx,len)), both with rdx
// and scale reset to 0. Grounded on bc_num_split.
func (n *Number) split(idx int, a, b *Number) {
	if idx < n.len {
		b.expand(n.len - idx)
		b.len = n.len - idx
		copy(b.digits[:b.len], n.digits[idx:n.len])

		a.expand(idx)
		a.len = idx
		copy(a.digits[:idx], n.digits[:idx])

		a.rdx, a.scale = 0, 0
		b.rdx, b.scale = 0, 0
		b.clean()
	} else {
		a.Copy(n)
		a.rdx, a.scale = 0, 0
		b.setToZero(0)
	}
	a.clean()
}

// mulArrayScalar multiplies n in place by the scalar d (d in
// [0, BasePow]). Grounded on bc_num_mulArray's use inside
// bc_num_parseBase.
func (n *Number) mulArrayScalar(ctx context.Context, d word) error {
	buf := n.buf(n.len + 1)
	clen, err := mulArray(ctx, buf, n.len, d, buf)
	if err != nil {
		return err
	}
	n.len = clen
	return nil
}

// addScalar adds the scalar v (v in [0, BasePow)) to n in place.
func (n *Number) addScalar(ctx context.Context, v word) error {
	s := CreateFromBigdig(uint64(v))
	return n.Add(ctx, n, s)
}

// shiftZero strips leading (least-significant-first, i.e. lowest-index)
// zero limbs from n, returning the count removed. The caller is expected
// to restore n's original backing slice afterward. No function in this
// package calls it; mulCore multiplies the operands' raw limbs directly.
// Grounded on bc_num_shiftZero.
func (n *Number) shiftZero() int {
	i := 0
	for i < n.len && n.digits[i] == 0 {
		i++
	}
	if i > 0 {
		n.digits = n.digits[i:]
		n.len -= i
	}
	return i
}

// shiftLeft shifts n left (toward the integers) by places decimal
// digits, decreasing its scale. Grounded on bc_num_shiftLeft.
func (n *Number) shiftLeft(ctx context.Context, places int) error {
	if places == 0 {
		return nil
	}
	if n.IsZero() {
		if n.scale >= places {
			n.scale -= places
		} else {
			n.scale = 0
		}
		n.rdx = ceilRdx(n.scale)
		return nil
	}

	dig := places % BaseDigs
	shift := dig != 0
	placesRdx := ceilRdx(places)

	if n.scale != 0 {
		if n.rdx >= placesRdx {
			mod := n.scale % BaseDigs
			if mod == 0 {
				mod = BaseDigs
			}
			revdig := 0
			if dig != 0 {
				revdig = BaseDigs - dig
			}
			if mod+revdig > BaseDigs {
				placesRdx = 1
			} else {
				placesRdx = 0
			}
		} else {
			placesRdx -= n.rdx
		}
	}

	if placesRdx > 0 {
		n.expand(n.len + placesRdx)
		copy(n.digits[placesRdx:placesRdx+n.len], n.digits[:n.len])
		for i := 0; i < placesRdx; i++ {
			n.digits[i] = 0
		}
		n.len += placesRdx
	}

	if places > n.scale {
		n.scale, n.rdx = 0, 0
	} else {
		n.scale -= places
		n.rdx = ceilRdx(n.scale)
	}

	if shift {
		if err := shiftWithinLimbs(ctx, n.digits, n.len, BaseDigs-dig); err != nil {
			return err
		}
	}

	n.clean()
	return nil
}

// shiftRight shifts n right (toward the fraction) by places decimal
// digits, increasing its scale. Grounded on bc_num_shiftRight.
func (n *Number) shiftRight(ctx context.Context, places int) error {
	if places == 0 {
		return nil
	}
	if n.IsZero() {
		n.scale += places
		n.rdx = ceilRdx(n.scale)
		return nil
	}

	dig := places % BaseDigs
	shift := dig != 0
	scale := n.scale
	scaleMod := scale % BaseDigs
	if scaleMod == 0 {
		scaleMod = BaseDigs
	}
	intLen := n.intLimbs()
	placesRdx := ceilRdx(places)

	var growth int
	if scaleMod+dig > BaseDigs {
		growth = placesRdx - 1
		placesRdx = 1
	} else {
		growth = placesRdx
		placesRdx = 0
	}
	if growth > intLen {
		growth -= intLen
	} else {
		growth = 0
	}

	n.extend(placesRdx * BaseDigs)
	n.expand(n.len + growth)
	for i := 0; i < growth; i++ {
		n.digits[n.len+i] = 0
	}
	n.len += growth
	n.scale, n.rdx = 0, 0

	if shift {
		if err := shiftWithinLimbs(ctx, n.digits, n.len, dig); err != nil {
			return err
		}
	}

	n.scale = scale + places
	n.rdx = ceilRdx(n.scale)

	n.clean()
	return nil
}
