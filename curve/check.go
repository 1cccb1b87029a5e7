package curve

import (
	"math/big"

	"github.com/appsecpleb/programming-bitcoin/field"
)

// OnCurve reports whether y² ≡ a·x³ + b (mod p) over plain integers. It
// is a quick sanity probe usable without constructing field elements or
// points. Note that it evaluates the literal form a·x³ + b, not the
// Weierstrass right-hand side x³ + ax + b that [New] validates. Negative
// coordinates are normalized into [0, p) before comparing.
func OnCurve(x, y, a, b, p *big.Int) bool {
	lhs := field.Mod(new(big.Int).Mul(y, y), p)
	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)
	rhs := new(big.Int).Mul(a, x3)
	rhs.Add(rhs, b)
	return lhs.Cmp(field.Mod(rhs, p)) == 0
}
