package decimal

import "context"

// This file implements the extra-math decimal-place operators: Places
// (set scale to an exact value), LShift and RShift (move the decimal
// point by a given count of digits). Grounded on original_source/src/
// num.c's bc_num_place / bc_num_left / bc_num_right, which all share the
// bc_num_intop helper to pull a plain integer count out of the second
// operand.

// intVal extracts b's value as a plain non-negative int, requiring b to
// be a non-negative integer. Grounded on bc_num_intop.
func intVal(b *Number) (int, error) {
	if b.rdx != 0 {
		return 0, ErrNonInteger
	}
	if b.neg {
		return 0, ErrNegative
	}
	v, err := toBigDig(b)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func placesCore(ctx context.Context, d, a, b *Number) error {
	val, err := intVal(b)
	if err != nil {
		return err
	}
	d.expand(placesReq(a, val))
	d.Copy(a)
	if val < d.scale {
		d.truncate(d.scale - val)
	} else if val > d.scale {
		d.extend(val - d.scale)
	}
	return nil
}

func lshiftCore(ctx context.Context, d, a, b *Number) error {
	val, err := intVal(b)
	if err != nil {
		return err
	}
	d.expand(shiftLeftReq(a, val))
	d.Copy(a)
	return d.shiftLeft(ctx, val)
}

func rshiftCore(ctx context.Context, d, a, b *Number) error {
	val, err := intVal(b)
	if err != nil {
		return err
	}
	d.expand(shiftRightReq(a, val))
	d.Copy(a)
	return d.shiftRight(ctx, val)
}

// Places sets d to a with its scale forced to exactly b (an integer),
// truncating or zero-extending the fractional part as needed.
func (d *Number) Places(ctx context.Context, a, b *Number) error {
	return opErr("places", binaryOp(ctx, d, a, b, placesCore))
}

// LShift sets d to a with its decimal point moved b places toward the
// integers (multiplying by 10**b).
func (d *Number) LShift(ctx context.Context, a, b *Number) error {
	return opErr("lshift", binaryOp(ctx, d, a, b, lshiftCore))
}

// RShift sets d to a with its decimal point moved b places toward the
// fraction (dividing by 10**b).
func (d *Number) RShift(ctx context.Context, a, b *Number) error {
	return opErr("rshift", binaryOp(ctx, d, a, b, rshiftCore))
}
