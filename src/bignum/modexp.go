package bignum

import "math/big"

// ModExp returns x^y mod n, computed by left-to-right binary exponentiation
// over the bits of y: z starts at 1, and for each bit of y from most to
// least significant z is squared (via ModMul) and, if the bit is set,
// multiplied by x.
//
// x and y must be non-negative and n must be positive. ModExp(x, 0, n) is
// 1 mod n (so the result is 0 when n == 1); ModExp(0, 0, n) is likewise
// 1 mod n.
func ModExp(x, y, n *big.Int) *big.Int {
	if x.Sign() < 0 || y.Sign() < 0 {
		panic("bignum: ModExp requires non-negative operands")
	}
	if n.Sign() <= 0 {
		panic("bignum: ModExp requires a positive modulus")
	}

	z := big.NewInt(1)
	for i := y.BitLen() - 1; i >= 0; i-- {
		z = ModMul(z, z, n)
		if y.Bit(i) == 1 {
			z = ModMul(x, z, n)
		}
	}
	return z.Mod(z, n)
}
