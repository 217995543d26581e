package decimal

import (
	"context"
	"strconv"
	"strings"
)

// This file implements L3 parsing: base-10 decimal text and arbitrary
// integer-base text (2..36), grounded on original_source/src/num.c's
// bc_num_parseChar / bc_num_parseDecimal / bc_num_parseBase. The base-10
// path places digit runs directly into limbs by string padding and
// chunking rather than bc's pointer-offset walk; the arbitrary-base path
// follows bc's successive multiply-and-add for the integer part and its
// multiply/divide reconstruction for the fractional part.

// parseChar converts a single input character to its digit value in the
// given base, rejecting characters outside the base's alphabet (0-9,
// A-Z) rather than bc's silent clamp. Grounded on bc_num_parseChar.
func parseChar(c byte, base word) (word, error) {
	var v word
	switch {
	case c >= '0' && c <= '9':
		v = word(c - '0')
	case c >= 'A' && c <= 'Z':
		v = word(c-'A') + 10
	default:
		return 0, ErrSyntax
	}
	if v >= base {
		return 0, ErrSyntax
	}
	return v, nil
}

func allZeroDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

// parseDecimalCore parses an unsigned base-10 numeral (digits and at
// most one '.') into a fresh Number. Grounded on bc_num_parseDecimal.
func parseDecimalCore(s string) (*Number, error) {
	n := New()
	if s == "" {
		return n, nil
	}

	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s, ""
	if dot >= 0 {
		intPart, fracPart = s[:dot], s[dot+1:]
	}

	for len(intPart) > 0 && intPart[0] == '0' {
		intPart = intPart[1:]
	}

	digits := intPart + fracPart
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, ErrSyntax
		}
	}

	scale := len(fracPart)
	n.scale = scale
	n.rdx = ceilRdx(scale)

	if digits == "" || allZeroDigits(digits) {
		return n, nil
	}

	intPad := (BaseDigs - len(intPart)%BaseDigs) % BaseDigs
	fracPad := (BaseDigs - scale%BaseDigs) % BaseDigs
	combined := strings.Repeat("0", intPad) + intPart + fracPart + strings.Repeat("0", fracPad)

	limbCount := len(combined) / BaseDigs
	n.expand(limbCount)
	for i := 0; i < limbCount; i++ {
		chunk := combined[len(combined)-(i+1)*BaseDigs : len(combined)-i*BaseDigs]
		v, err := strconv.ParseUint(chunk, 10, 32)
		if err != nil {
			return nil, ErrSyntax
		}
		n.digits[i] = word(v)
	}
	n.len = limbCount
	n.clean()
	return n, nil
}

// parseBaseCore parses an unsigned numeral in an arbitrary integer base
// (digits/letters and at most one '.'). The integer part is accumulated
// by repeated multiply-and-add; the fractional part is accumulated the
// same way into a numerator and a running power of base, then divided
// out at double the requested precision and truncated. Grounded on
// bc_num_parseBase.
func parseBaseCore(ctx context.Context, s string, base word) (*Number, error) {
	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s, ""
	if dot >= 0 {
		intPart, fracPart = s[:dot], s[dot+1:]
	}

	n := New()
	for i := 0; i < len(intPart); i++ {
		if aborted(ctx) {
			return nil, ErrSignal
		}
		v, err := parseChar(intPart[i], base)
		if err != nil {
			return nil, err
		}
		if err := n.mulArrayScalar(ctx, base); err != nil {
			return nil, err
		}
		if err := n.addScalar(ctx, v); err != nil {
			return nil, err
		}
	}

	if fracPart == "" {
		return n, nil
	}

	result := New()
	mult := New()
	mult.one()

	for i := 0; i < len(fracPart); i++ {
		if aborted(ctx) {
			return nil, ErrSignal
		}
		v, err := parseChar(fracPart[i], base)
		if err != nil {
			return nil, err
		}
		if err := result.mulArrayScalar(ctx, base); err != nil {
			return nil, err
		}
		if err := result.addScalar(ctx, v); err != nil {
			return nil, err
		}
		if err := mult.mulArrayScalar(ctx, base); err != nil {
			return nil, err
		}
	}

	digs := len(fracPart)
	var frac Number
	if err := frac.Quo(ctx, result, mult, digs*2); err != nil {
		return nil, err
	}
	frac.truncate(digs)
	if err := n.Add(ctx, n, &frac); err != nil {
		return nil, err
	}
	if !n.IsZero() && n.scale < digs {
		n.extend(digs - n.scale)
	}
	return n, nil
}

// Parse reads s as a signed numeral in the given base (2..36, or 10 for
// plain decimal text) and returns the corresponding Number. letterFlag
// requests bc's single-letter-digit-constant mode: s's first character
// (after any leading '-') is read as one digit in base 36 regardless of
// base, the form dc uses for constants like "A" when ibase is above 10.
// Grounded on bc_num_parse's letter branch (original_source/src/num.c:
// 1884-1886).
func Parse(ctx context.Context, s string, base int, letterFlag bool) (*Number, error) {
	if s == "" {
		return New(), nil
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if s == "" {
		return nil, opErr("parse", ErrSyntax)
	}
	if base < 2 || base > MaxLbase {
		return nil, opErr("parse", ErrSyntax)
	}

	var n *Number
	var err error
	switch {
	case letterFlag:
		var v word
		v, err = parseChar(s[0], MaxLbase)
		if err == nil {
			n = CreateFromBigdig(uint64(v))
		}
	case base == Base:
		n, err = parseDecimalCore(s)
	default:
		n, err = parseBaseCore(ctx, s, word(base))
	}
	if err != nil {
		return nil, opErr("parse", err)
	}
	if neg && !n.IsZero() {
		n.neg = true
	}
	return n, nil
}
