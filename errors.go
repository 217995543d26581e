package decimal

import "errors"

// Sentinel errors surfaced as the status of an operation, mirroring the
// strconv.ErrSyntax / strconv.ErrRange convention: callers test with
// errors.Is(err, decimal.ErrDivideByZero) rather than comparing codes.
var (
	// ErrDivideByZero is returned by Quo, Rem, DivMod and Inv when the
	// divisor is zero, and by ModExp when the modulus is zero.
	ErrDivideByZero = errors.New("decimal: divide by zero")
	// ErrNegative is returned by Sqrt and ModExp when given a negative
	// operand that requires a non-negative one.
	ErrNegative = errors.New("decimal: negative number")
	// ErrNonInteger is returned by Pow, ModExp and the place/shift
	// operators when an operand that must be an integer carries a
	// fractional part.
	ErrNonInteger = errors.New("decimal: non-integer number")
	// ErrOverflow is returned when a Number cannot be represented in a
	// native unsigned integer.
	ErrOverflow = errors.New("decimal: overflow")
	// ErrSyntax is returned by Parse when the input string is not a
	// valid numeral in the requested base.
	ErrSyntax = errors.New("decimal: invalid syntax")
	// ErrSignal is returned when an operation was aborted through its
	// context before completion. The receiver Number is left in a
	// valid but unspecified state; callers should treat it as zero.
	ErrSignal = errors.New("decimal: aborted by signal")
)

// OpError records the operation that failed alongside the sentinel error
// it failed with. It is the concrete type every error returned by this
// package's operations is wrapped in.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "decimal: " + e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error { return e.Err }

func opErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err}
}
