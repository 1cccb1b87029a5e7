package secp256k1

import (
	"math/big"

	dcrec "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/appsecpleb/programming-bitcoin/curve"
	"github.com/appsecpleb/programming-bitcoin/field"
)

var (
	prime *big.Int
	order *big.Int
	a, b  field.Element

	generator curve.Point[field.Element]
)

func init() {
	params := dcrec.S256().Params()
	prime = new(big.Int).Set(params.P)
	order = new(big.Int).Set(params.N)

	var err error
	if a, err = field.New(new(big.Int), prime); err != nil {
		panic(err)
	}
	if b, err = field.New(params.B, prime); err != nil {
		panic(err)
	}
	if generator, err = NewPoint(params.Gx, params.Gy); err != nil {
		panic(err)
	}
}

// Prime returns the order of the secp256k1 base field,
// 2^256 - 2^32 - 977.
func Prime() *big.Int { return new(big.Int).Set(prime) }

// Order returns the order of the group generated by the base point.
func Order() *big.Int { return new(big.Int).Set(order) }

// Generator returns the standard base point G.
func Generator() curve.Point[field.Element] { return generator }

// Infinity returns the identity element of the secp256k1 group.
func Infinity() curve.Point[field.Element] { return curve.Infinity(a, b) }

// NewPoint returns the validated curve point (x, y). It fails when a
// coordinate is outside the base field or the pair is not on the curve.
func NewPoint(x, y *big.Int) (curve.Point[field.Element], error) {
	fx, err := field.New(x, prime)
	if err != nil {
		return curve.Point[field.Element]{}, err
	}
	fy, err := field.New(y, prime)
	if err != nil {
		return curve.Point[field.Element]{}, err
	}
	return curve.New(fx, fy, a, b)
}
