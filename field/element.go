package field

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrOutOfRange is returned when an element is constructed with a
	// value outside [0, prime).
	ErrOutOfRange = errors.New("value out of field range")
	// ErrFieldMismatch is returned when a binary operation mixes
	// elements of different fields.
	ErrFieldMismatch = errors.New("elements belong to different fields")
	// ErrDivisionByZero is returned when dividing by the zero element,
	// which has no multiplicative inverse.
	ErrDivisionByZero = errors.New("division by zero")
)

// Element is one element of the prime field F_p. The zero value of the
// type is not a valid element; use [New] or [NewInt64].
//
// Elements are immutable: arithmetic methods return a new Element and
// never modify the receiver, so values can be shared freely across
// goroutines without synchronization.
type Element struct {
	num   *big.Int
	prime *big.Int
}

// New returns the element of F_prime with value num.
// It fails with [ErrOutOfRange] unless 0 <= num < prime.
func New(num, prime *big.Int) (Element, error) {
	if num.Sign() < 0 || num.Cmp(prime) >= 0 {
		return Element{}, fmt.Errorf("%w: %v not in [0, %v)", ErrOutOfRange, num, prime)
	}
	return Element{
		num:   new(big.Int).Set(num),
		prime: new(big.Int).Set(prime),
	}, nil
}

// NewInt64 is a convenience constructor for small fields and test fixtures.
func NewInt64(num, prime int64) (Element, error) {
	return New(big.NewInt(num), big.NewInt(prime))
}

// sameField checks that both operands live in the same field.
func (e Element) sameField(other Element) error {
	if e.prime == nil || other.prime == nil || e.prime.Cmp(other.prime) != 0 {
		return fmt.Errorf("%w: %v vs %v", ErrFieldMismatch, e.prime, other.prime)
	}
	return nil
}

// Add returns e + other in F_p.
func (e Element) Add(other Element) (Element, error) {
	if err := e.sameField(other); err != nil {
		return Element{}, err
	}
	sum := new(big.Int).Add(e.num, other.num)
	return Element{num: Mod(sum, e.prime), prime: e.prime}, nil
}

// Sub returns e - other in F_p.
func (e Element) Sub(other Element) (Element, error) {
	if err := e.sameField(other); err != nil {
		return Element{}, err
	}
	diff := new(big.Int).Sub(e.num, other.num)
	return Element{num: Mod(diff, e.prime), prime: e.prime}, nil
}

// Mul returns e * other in F_p.
func (e Element) Mul(other Element) (Element, error) {
	if err := e.sameField(other); err != nil {
		return Element{}, err
	}
	prod := new(big.Int).Mul(e.num, other.num)
	return Element{num: Mod(prod, e.prime), prime: e.prime}, nil
}

// Div returns e / other in F_p, multiplying e by the inverse of other.
// The inverse is other^(p-2): by Fermat's Little Theorem other^(p-1) = 1
// for nonzero other, so other^(p-2) * other = 1. Dividing by the zero
// element fails with [ErrDivisionByZero].
func (e Element) Div(other Element) (Element, error) {
	if err := e.sameField(other); err != nil {
		return Element{}, err
	}
	if other.num.Sign() == 0 {
		return Element{}, fmt.Errorf("%w: %v", ErrDivisionByZero, other)
	}
	exp := new(big.Int).Sub(e.prime, big.NewInt(2))
	inv := new(big.Int).Exp(other.num, exp, e.prime)
	prod := new(big.Int).Mul(e.num, inv)
	return Element{num: Mod(prod, e.prime), prime: e.prime}, nil
}

// Pow returns e raised to exp in F_p. Negative exponents are supported:
// the exponent is first reduced modulo p-1, which maps a^(-n) to
// a^(p-1-n), again by Fermat's Little Theorem. The exponentiation itself
// is modular repeated squaring; e.num^exp is never materialized.
func (e Element) Pow(exp *big.Int) Element {
	pm1 := new(big.Int).Sub(e.prime, big.NewInt(1))
	n := Mod(exp, pm1)
	return Element{num: new(big.Int).Exp(e.num, n, e.prime), prime: e.prime}
}

// MulInt returns n * e in F_p for a small integer n. Negative n is
// normalized into the field, so MulInt(-1) is the additive inverse.
func (e Element) MulInt(n int64) Element {
	prod := new(big.Int).Mul(e.num, big.NewInt(n))
	return Element{num: Mod(prod, e.prime), prime: e.prime}
}

// Equal reports whether e and other have the same value and the same
// prime. Comparing against the zero value of Element reports false.
func (e Element) Equal(other Element) bool {
	if e.num == nil || other.num == nil {
		return false
	}
	return e.num.Cmp(other.num) == 0 && e.prime.Cmp(other.prime) == 0
}

// IsZero reports whether e is the additive identity of its field.
func (e Element) IsZero() bool {
	return e.num != nil && e.num.Sign() == 0
}

// Num returns a copy of the element's value.
func (e Element) Num() *big.Int {
	return new(big.Int).Set(e.num)
}

// Prime returns a copy of the field's order.
func (e Element) Prime() *big.Int {
	return new(big.Int).Set(e.prime)
}

// String renders the element as FieldElement_<prime>(<num>).
func (e Element) String() string {
	return fmt.Sprintf("FieldElement_%v(%v)", e.prime, e.num)
}
