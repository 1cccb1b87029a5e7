// Package curve implements the group law of elliptic curves in short
// Weierstrass form, y² = x³ + ax + b.
//
// # Coordinate domains
//
// The group law is written once, generically, against the [Element]
// constraint. A coordinate domain is any type providing field arithmetic
// on itself; the two domains in this module are [field.Element] (a prime
// finite field, the cryptographically meaningful case) and [field.Real]
// (the real numbers, for verifying the geometry with exact small
// numbers). Division inside the group law resolves to whatever the domain
// defines — modular-inverse multiplication for finite fields, ordinary
// division for reals.
//
// # Points
//
// A [Point] is either a validated coordinate pair on a specific curve or
// the point at infinity, the identity element of the group. Infinity is a
// distinct case carried by the Point itself, not a convention of special
// coordinate values: [Infinity] constructs it directly and [New] never
// produces it. Points are immutable values tied to their curve through
// the a and b coefficients; binary operations across different curves
// fail with [ErrCurveMismatch].
//
// # Addition
//
// Point addition follows the chord-and-tangent construction. For distinct
// points a secant line through both intersects the curve in a third
// point, which is reflected over the x-axis:
//
//	s  = (y₂ - y₁) / (x₂ - x₁)
//	x₃ = s² - x₁ - x₂
//	y₃ = s·(x₁ - x₃) - y₁
//
// For a point added to itself the tangent line takes the secant's place:
//
//	s = (3·x₁² + a) / (2·y₁)
//
// Points sharing an x coordinate but not a y are vertical reflections of
// each other and sum to infinity, as does doubling a point with y = 0,
// whose tangent is vertical.
package curve
