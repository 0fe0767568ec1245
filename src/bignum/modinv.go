package bignum

import "math/big"

// ModInv returns v in [0, n) such that x*v ≡ 1 (mod n), derived from ExtGCD
// by reducing its first coefficient modulo n. The second return value is
// false when gcd(x, n) != 1, in which case no inverse exists and the first
// return value is the zero value.
func ModInv(x, n *big.Int) (*big.Int, bool) {
	if x.Sign() < 0 || n.Sign() < 0 {
		panic("bignum: ModInv requires non-negative operands")
	}
	a, _, g := ExtGCD(x, n)
	if g.Cmp(bigOne) != 0 {
		return new(big.Int), false
	}
	return new(big.Int).Mod(a, n), true
}
