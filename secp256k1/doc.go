// Package secp256k1 binds the generic group law to the secp256k1 curve,
// y² = x³ + 7 over the 256-bit prime field used by Bitcoin. The curve
// parameters are sourced from the decred secp256k1 implementation, which
// also serves as the reference the package is differentially tested
// against.
package secp256k1
