// Package field implements arithmetic over the two coordinate domains used
// by the elliptic-curve group law: prime finite fields F_p and the real
// numbers.
//
// # Finite fields
//
// [Element] represents one element of F_p, the integers {0, ..., p-1} with
// addition and multiplication taken modulo the prime p. Elements are
// immutable values; every operation returns a fresh Element and leaves its
// operands untouched. All arithmetic is performed on arbitrary-precision
// integers (math/big), so fields of cryptographic size work without
// overflow.
//
// Division and negative exponents are resolved through Fermat's Little
// Theorem: for a nonzero element b of F_p, b^(p-1) = 1, so b^(p-2) is the
// multiplicative inverse of b. This makes division a modular
// exponentiation, computed by repeated squaring via big.Int.Exp.
//
// # Real numbers
//
// [Real] is a float64-backed element of the field of real numbers. It
// carries the same method set as [Element], so curve code written against
// a generic coordinate domain runs unchanged over either field. The real
// domain exists for verifying the curve geometry with small, exact numbers
// before moving to a finite field.
//
// # Errors
//
// Operations fail rather than silently producing a wrong value:
// constructing an element outside [0, p) returns [ErrOutOfRange], mixing
// elements of different fields returns [ErrFieldMismatch], and dividing by
// zero returns [ErrDivisionByZero]. All errors wrap their sentinel and can
// be tested with errors.Is.
package field
