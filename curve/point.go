package curve

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNotOnCurve is returned when a point is constructed with
	// coordinates that do not satisfy the curve equation.
	ErrNotOnCurve = errors.New("point not on curve")
	// ErrCurveMismatch is returned when a binary operation mixes points
	// of curves with different coefficients.
	ErrCurveMismatch = errors.New("points not on the same curve")
)

// Element is the arithmetic a coordinate domain must provide for the
// group law. [field.Element] and [field.Real] both satisfy it.
type Element[E any] interface {
	Add(E) (E, error)
	Sub(E) (E, error)
	Mul(E) (E, error)
	Div(E) (E, error)
	MulInt(int64) E
	Equal(E) bool
	IsZero() bool
	fmt.Stringer
}

// Point is a point on the elliptic curve y² = x³ + ax + b over the
// coordinate domain E, or the point at infinity of that curve. Points are
// immutable; construct them with [New] or [Infinity].
type Point[E Element[E]] struct {
	x, y E
	a, b E
	inf  bool
}

// New returns the point (x, y) on the curve with coefficients a and b.
// It fails with [ErrNotOnCurve] when the coordinates do not satisfy
// y² = x³ + ax + b in the coordinate domain. Mixing coordinates from
// different finite fields surfaces as the domain's own mismatch error.
func New[E Element[E]](x, y, a, b E) (Point[E], error) {
	lhs, err := y.Mul(y)
	if err != nil {
		return Point[E]{}, err
	}
	rhs, err := weierstrass(x, a, b)
	if err != nil {
		return Point[E]{}, err
	}
	if !lhs.Equal(rhs) {
		return Point[E]{}, fmt.Errorf("%w: (%s, %s)", ErrNotOnCurve, x, y)
	}
	return Point[E]{x: x, y: y, a: a, b: b}, nil
}

// Infinity returns the point at infinity, the identity element of the
// curve with coefficients a and b. It performs no curve check.
func Infinity[E Element[E]](a, b E) Point[E] {
	return Point[E]{a: a, b: b, inf: true}
}

// weierstrass evaluates x³ + ax + b in the coordinate domain.
func weierstrass[E Element[E]](x, a, b E) (E, error) {
	var zero E
	x2, err := x.Mul(x)
	if err != nil {
		return zero, err
	}
	x3, err := x2.Mul(x)
	if err != nil {
		return zero, err
	}
	ax, err := a.Mul(x)
	if err != nil {
		return zero, err
	}
	sum, err := x3.Add(ax)
	if err != nil {
		return zero, err
	}
	return sum.Add(b)
}

// IsInfinity reports whether p is the point at infinity.
func (p Point[E]) IsInfinity() bool { return p.inf }

// X returns the x coordinate. Only meaningful for finite points.
func (p Point[E]) X() E { return p.x }

// Y returns the y coordinate. Only meaningful for finite points.
func (p Point[E]) Y() E { return p.y }

// A returns the curve coefficient a.
func (p Point[E]) A() E { return p.a }

// B returns the curve coefficient b.
func (p Point[E]) B() E { return p.b }

// Add returns p + q under the chord-and-tangent group law. It fails with
// [ErrCurveMismatch] when the operands carry different curve
// coefficients.
func (p Point[E]) Add(q Point[E]) (Point[E], error) {
	if !p.a.Equal(q.a) || !p.b.Equal(q.b) {
		return Point[E]{}, fmt.Errorf("%w: %s vs %s", ErrCurveMismatch, p, q)
	}
	if p.inf {
		return q, nil
	}
	if q.inf {
		return p, nil
	}
	switch {
	case p.x.Equal(q.x) && !p.y.Equal(q.y):
		// Vertical reflections are additive inverses.
		return Infinity(p.a, p.b), nil
	case !p.x.Equal(q.x):
		return p.secant(q)
	case p.Equal(q):
		return p.tangent()
	}
	// The three cases above cover every combination of equal/unequal
	// coordinates between two finite points on one curve.
	panic("curve: point addition fell through an exhaustive case split")
}

// secant adds two points with distinct x coordinates through the line
// joining them.
func (p Point[E]) secant(q Point[E]) (Point[E], error) {
	num, err := q.y.Sub(p.y)
	if err != nil {
		return Point[E]{}, err
	}
	den, err := q.x.Sub(p.x)
	if err != nil {
		return Point[E]{}, err
	}
	s, err := num.Div(den)
	if err != nil {
		return Point[E]{}, err
	}
	s2, err := s.Mul(s)
	if err != nil {
		return Point[E]{}, err
	}
	x3, err := s2.Sub(p.x)
	if err != nil {
		return Point[E]{}, err
	}
	x3, err = x3.Sub(q.x)
	if err != nil {
		return Point[E]{}, err
	}
	return p.chordEnd(s, x3)
}

// tangent doubles a point through the tangent line at it.
func (p Point[E]) tangent() (Point[E], error) {
	if p.y.IsZero() {
		// The tangent at y = 0 is vertical.
		return Infinity(p.a, p.b), nil
	}
	x2, err := p.x.Mul(p.x)
	if err != nil {
		return Point[E]{}, err
	}
	num, err := x2.MulInt(3).Add(p.a)
	if err != nil {
		return Point[E]{}, err
	}
	s, err := num.Div(p.y.MulInt(2))
	if err != nil {
		return Point[E]{}, err
	}
	s2, err := s.Mul(s)
	if err != nil {
		return Point[E]{}, err
	}
	x3, err := s2.Sub(p.x.MulInt(2))
	if err != nil {
		return Point[E]{}, err
	}
	return p.chordEnd(s, x3)
}

// chordEnd completes an addition: given the line slope s and the result's
// x coordinate, it reflects the third intersection over the x-axis by
// computing y₃ = s·(x₁ - x₃) - y₁.
func (p Point[E]) chordEnd(s, x3 E) (Point[E], error) {
	dx, err := p.x.Sub(x3)
	if err != nil {
		return Point[E]{}, err
	}
	sy, err := s.Mul(dx)
	if err != nil {
		return Point[E]{}, err
	}
	y3, err := sy.Sub(p.y)
	if err != nil {
		return Point[E]{}, err
	}
	return Point[E]{x: x3, y: y3, a: p.a, b: p.b}, nil
}

// ScalarMul returns k*p computed by double-and-add over the group law.
// The scalar must be non-negative; zero yields the point at infinity.
func (p Point[E]) ScalarMul(k *big.Int) (Point[E], error) {
	if k.Sign() < 0 {
		return Point[E]{}, errors.New("negative scalar multiple")
	}
	result := Infinity(p.a, p.b)
	addend := p
	for i := 0; i < k.BitLen(); i++ {
		var err error
		if k.Bit(i) == 1 {
			result, err = result.Add(addend)
			if err != nil {
				return Point[E]{}, err
			}
		}
		addend, err = addend.Add(addend)
		if err != nil {
			return Point[E]{}, err
		}
	}
	return result, nil
}

// Equal reports structural equality of (x, y, a, b) under the domain's
// equality. Two infinity points of the same curve are equal.
func (p Point[E]) Equal(q Point[E]) bool {
	if p.inf || q.inf {
		return p.inf && q.inf && p.a.Equal(q.a) && p.b.Equal(q.b)
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y) && p.a.Equal(q.a) && p.b.Equal(q.b)
}

// String renders the point with all of its defining fields, for logs and
// test assertions.
func (p Point[E]) String() string {
	if p.inf {
		return fmt.Sprintf("Point(infinity)_%s_%s", p.a, p.b)
	}
	return fmt.Sprintf("Point(%s,%s)_%s_%s", p.x, p.y, p.a, p.b)
}
