// This file implements the Number type: packed radix-BasePow storage,
// construction, copy, expand and clean. Grounded on math/big's nat/Int
// split (_examples/Go-zh-go.old/src/pkg/math/big/{arith,int}.go) and on
// bc's BcNum lifecycle (original_source/src/num.c, bc_num_init /
// bc_num_setup / bc_num_copy / bc_num_clean).
package decimal

// A Number is a signed, arbitrary-precision decimal value carrying an
// explicit fractional scale. The zero value represents 0 with scale 0,
// ready to use without further initialization, exactly like math/big.Int.
type Number struct {
	digits []word // limbs, least-significant first; len(digits) >= len
	len    int    // active limb count; digits[len-1] != 0 when len > 0
	rdx    int    // fractional limb count, == ceilRdx(scale)
	scale  int    // fractional decimal digits

	neg bool // sign; zero is never negative

	// borrowed marks a Number set up on a caller-owned buffer via Setup.
	// Such a Number must never have its buffer replaced by expand beyond
	// the borrowed capacity in a way that would escape the caller's
	// backing array. Free leaves a borrowed Number untouched; beyond that
	// the flag only documents intent, since the Go garbage collector
	// (unlike bc's malloc/free discipline) does not require Free to
	// reclaim memory.
	borrowed bool
}

// New returns a new Number representing zero.
func New() *Number { return &Number{} }

// NewFromInt64 returns a new Number set to x.
func NewFromInt64(x int64) *Number {
	neg := x < 0
	u := uint64(x)
	if neg {
		u = uint64(-x)
	}
	n := New()
	n.setUint64(u)
	n.neg = neg && n.len > 0
	return n
}

// CreateFromBigdig returns a new Number set to the native unsigned
// integer val, grounded on bc_num_createFromBigdig / bc_num_bigdig2num.
func CreateFromBigdig(val uint64) *Number {
	n := New()
	n.setUint64(val)
	return n
}

// CreateCopy returns a new Number that is a deep copy of s, grounded on
// bc_num_createCopy.
func CreateCopy(s *Number) *Number {
	d := New()
	d.Copy(s)
	return d
}

// Setup installs buf as n's limb buffer and resets n to a borrowed zero
// value. buf is never freed or reallocated away from by this package
// beyond its own capacity; grounded on bc_num_setup, used by the engine
// to materialize small constants (1, 2, one-half) without an allocation.
func (n *Number) Setup(buf []word) *Number {
	n.digits = buf
	n.len, n.rdx, n.scale = 0, 0, 0
	n.neg = false
	n.borrowed = true
	return n
}

// Free releases n's resources. In this garbage-collected implementation
// it is a cooperative hint rather than a requirement — grounded on
// bc_num_free, kept for lifecycle parity with the spec and so callers
// that pool Numbers can reuse the call site unchanged.
func (n *Number) Free() {
	if n.borrowed {
		return
	}
	n.digits = nil
	n.len, n.rdx, n.scale = 0, 0, 0
	n.neg = false
}

func (n *Number) setUint64(x uint64) {
	n.setToZero(0)
	if x == 0 {
		return
	}
	n.expand(3)
	i := 0
	for x != 0 {
		n.digits[i] = word(x % BasePow)
		x /= BasePow
		i++
	}
	n.len = i
}

// expand ensures n's buffer can hold at least req limbs, preserving the
// active digits. Grounded on bc_num_expand.
func (n *Number) expand(req int) {
	if req < MinCap {
		req = MinCap
	}
	if cap(n.digits) < req {
		nd := make([]word, req)
		copy(nd, n.digits[:n.len])
		n.digits = nd
		return
	}
	if len(n.digits) < req {
		n.digits = n.digits[:cap(n.digits)]
	}
}

// buf returns n's full limb buffer, at least req limbs long, for direct
// indexing by internal primitives (the Go analogue of dereferencing
// n->num past n->len in the C engine, e.g. to zero scratch space).
func (n *Number) buf(req int) []word {
	n.expand(req)
	return n.digits
}

// setToZero resets n to the value zero carrying the given scale. len
// stays 0 (a zero value is always len == 0, independent of scale — see
// clean), but rdx must still reflect scale so String can synthesize the
// right number of zero fractional digits.
func (n *Number) setToZero(scale int) {
	n.scale = scale
	n.len = 0
	n.rdx = ceilRdx(scale)
	n.neg = false
}

func (n *Number) one() {
	n.setToZero(0)
	n.expand(1)
	n.digits[0] = 1
	n.len = 1
}

// clean trims trailing (most-significant) zero limbs, canonicalizes the
// sign of zero, and restores len >= rdx. Grounded on bc_num_clean.
func (n *Number) clean() {
	for n.len > 0 && n.digits[n.len-1] == 0 {
		n.len--
	}
	if n.len == 0 {
		n.neg = false
	} else if n.len < n.rdx {
		n.len = n.rdx
	}
}

// Copy sets d to a deep copy of s's value, including scale and sign. A
// self-copy is a no-op. Grounded on bc_num_copy.
func (d *Number) Copy(s *Number) *Number {
	if d == s {
		return d
	}
	d.expand(s.len)
	copy(d.digits[:s.len], s.digits[:s.len])
	d.len = s.len
	d.neg = s.neg
	d.rdx = s.rdx
	d.scale = s.scale
	return d
}

// IsZero reports whether n is the value zero.
func (n *Number) IsZero() bool { return n.len == 0 }

// isOne reports whether n is the unsigned value 1 (sign ignored), as
// bc's BC_NUM_ONE macro does.
func (n *Number) isOne() bool { return n.len == 1 && n.digits[0] == 1 && n.rdx == 0 }

// Sign returns -1, 0 or +1 according to whether n is negative, zero or
// positive.
func (n *Number) Sign() int {
	if n.len == 0 {
		return 0
	}
	if n.neg {
		return -1
	}
	return 1
}

// Scale returns the number of fractional decimal digits n carries.
func (n *Number) Scale() int { return n.scale }

// intLimbs returns the number of integer (non-fractional) limbs.
func (n *Number) intLimbs() int {
	if n.len == 0 {
		return 0
	}
	return n.len - n.rdx
}

// zeroDigits returns the count of unused leading decimal digit slots in
// limb x when x is the most significant limb of a Number.
func zeroDigits(x word) int {
	return BaseDigs - digitLen10(x)
}

// IntDigits returns the number of decimal digits in n's integer part,
// grounded on bc_num_intDigits.
func (n *Number) IntDigits() int {
	digits := n.intLimbs() * BaseDigs
	if digits > 0 {
		digits -= zeroDigits(n.digits[n.len-1])
	}
	return digits
}

// nonzeroLen returns the count of limbs up to and including the highest
// nonzero one, used when rdx == len (an all-fractional value) where
// clean cannot simply trim trailing zeros without losing scale.
// Grounded on bc_num_nonzeroLen.
func (n *Number) nonzeroLen() int {
	i := n.len - 1
	for i < n.len && n.digits[i] == 0 {
		i--
	}
	return i + 1
}

// Digits returns the count of significant decimal digits in n: the
// bc length() builtin. Grounded on bc_num_len.
func (n *Number) Digits() int {
	if n.IsZero() {
		return 0
	}
	ln := n.len
	if n.rdx == ln {
		ln = n.nonzeroLen()
	}
	scaleMod := n.scale % BaseDigs
	if scaleMod == 0 {
		scaleMod = BaseDigs
	}
	zero := zeroDigits(n.digits[ln-1])
	return ln*BaseDigs - zero - (BaseDigs - scaleMod)
}
