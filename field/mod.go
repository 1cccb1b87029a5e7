package field

import "math/big"

// Mod returns the canonical representative of value modulo modulus, always
// in the range [0, modulus) even when value is negative. This is the
// mathematical modulo, not the truncating remainder: Mod(-27, 13) is 12,
// where a remainder operator would yield -1. The modulus must be positive.
func Mod(value, modulus *big.Int) *big.Int {
	// big.Int.Mod is the Euclidean modulus, which already normalizes
	// negative values for a positive modulus.
	return new(big.Int).Mod(value, modulus)
}
