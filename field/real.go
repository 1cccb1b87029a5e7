package field

import (
	"fmt"
	"strconv"
)

// Real is an element of the field of real numbers, backed by a float64.
// It mirrors the method set of [Element] so that code generic over a
// coordinate domain works with either field. The real domain is exact for
// the small integer coordinates used to verify curve geometry; it is not
// meant for cryptographic work.
type Real float64

// Add returns r + other. The error is always nil; it exists to match the
// finite-field method set.
func (r Real) Add(other Real) (Real, error) { return r + other, nil }

// Sub returns r - other.
func (r Real) Sub(other Real) (Real, error) { return r - other, nil }

// Mul returns r * other.
func (r Real) Mul(other Real) (Real, error) { return r * other, nil }

// Div returns r / other, failing with [ErrDivisionByZero] when other is
// zero.
func (r Real) Div(other Real) (Real, error) {
	if other == 0 {
		return 0, fmt.Errorf("%w: real divisor", ErrDivisionByZero)
	}
	return r / other, nil
}

// MulInt returns n * r for a small integer n.
func (r Real) MulInt(n int64) Real { return r * Real(n) }

// Equal reports exact equality. The coordinates exercised over the real
// domain are small integers, for which float64 arithmetic is exact.
func (r Real) Equal(other Real) bool { return r == other }

// IsZero reports whether r is the additive identity.
func (r Real) IsZero() bool { return r == 0 }

// String renders the real number in its shortest exact decimal form.
func (r Real) String() string {
	return strconv.FormatFloat(float64(r), 'g', -1, 64)
}
